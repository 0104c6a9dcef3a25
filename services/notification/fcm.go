package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	directoryRepo "condoreserve/database/repository/directory"
	"condoreserve/models"
	"condoreserve/utils"
)

// FCMDispatcher delivers notices as Firebase Cloud Messaging pushes,
// resolving recipient tokens through the actor directory.
type FCMDispatcher struct {
	Directory directoryRepo.ActorDirectory
}

func NewFCMDispatcher(directory directoryRepo.ActorDirectory) (*FCMDispatcher, error) {
	if directory == nil {
		return nil, fmt.Errorf("notification dispatcher initialization error: directory is nil")
	}
	return &FCMDispatcher{Directory: directory}, nil
}

// Dispatch sends the payload to every recipient with a registered FCM
// token. Recipients without a token are skipped; partial failures are
// logged and the last one is returned for the worker's bookkeeping.
func (d *FCMDispatcher) Dispatch(ctx context.Context, payload models.NotificationPayload) error {
	logger := utils.GetLogger()
	var lastErr error

	for _, recipientID := range payload.RecipientIDs {
		actor, err := d.Directory.GetByID(ctx, recipientID)
		if err != nil {
			logger.Warn("notification: could not resolve recipient",
				zap.String("recipientId", recipientID), zap.Error(err))
			lastErr = err
			continue
		}
		if actor.FCMToken == "" {
			logger.Debug("notification: recipient has no FCM token",
				zap.String("recipientId", recipientID))
			continue
		}

		msg := &messaging.Message{
			Token: actor.FCMToken,
			Notification: &messaging.Notification{
				Title: payload.Title,
				Body:  payload.Body,
			},
			Data: payload.Data,
		}
		if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
			logger.Warn("notification: failed to send FCM message",
				zap.String("recipientId", recipientID), zap.Error(err))
			lastErr = err
		}
	}
	return lastErr
}

package notification

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"condoreserve/config"
	"condoreserve/models"
)

// AsynqEnqueuer queues notification payloads on Redis for the
// notifier worker to consume.
type AsynqEnqueuer struct {
	client *asynq.Client
}

func NewAsynqEnqueuer() *AsynqEnqueuer {
	return &AsynqEnqueuer{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisNotifyQueueDB,
		}),
	}
}

func (e *AsynqEnqueuer) Enqueue(payload models.NotificationPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}
	task := asynq.NewTask(TypeNotificationDispatch, data)
	if _, err := e.client.Enqueue(task); err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	return nil
}

func (e *AsynqEnqueuer) Close() error {
	return e.client.Close()
}

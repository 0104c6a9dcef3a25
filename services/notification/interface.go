package notification

import (
	"context"

	"condoreserve/models"
)

// TypeNotificationDispatch is the asynq task type for queued notices.
const TypeNotificationDispatch = "notification:dispatch"

// Dispatcher delivers a notification payload to its recipients.
// Delivery is best-effort: booking correctness never depends on it.
type Dispatcher interface {
	Dispatch(ctx context.Context, payload models.NotificationPayload) error
}

// Enqueuer hands a payload to the asynchronous delivery path. Callers
// log and swallow enqueue failures; they must never fail a booking
// operation.
type Enqueuer interface {
	Enqueue(payload models.NotificationPayload) error
}

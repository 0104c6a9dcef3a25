package models

// NotificationPayload is the unit of work queued for the notification
// worker: a recipient set plus title, body and free-form metadata.
// Delivery is fire-and-forget; booking operations never wait on it.
type NotificationPayload struct {
	RecipientIDs []string          `json:"recipientIds"`
	Title        string            `json:"title"`
	Body         string            `json:"body"`
	Data         map[string]string `json:"data,omitempty"`
}

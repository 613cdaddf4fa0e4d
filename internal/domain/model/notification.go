package model

import "time"

// NotificationStatus tracks outbox delivery state.
type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
)

// Notification is a queued outbound email. Rows are written in the same
// transaction as the operation they announce and delivered best-effort by
// the dispatcher.
type Notification struct {
	ID             int64
	Kind           string
	RecipientEmail string
	Subject        string
	Body           string
	Status         NotificationStatus
	Attempts       int
	CreatedAt      time.Time
}

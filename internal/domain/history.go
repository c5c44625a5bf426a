package domain

import "time"

// HistoryLimit caps the per-user notification history; the oldest entries
// beyond it are dropped.
const HistoryLimit = 50

// DeliveryStatus records the outcome of a dispatch attempt
type DeliveryStatus string

const (
	DeliverySent   DeliveryStatus = "sent"
	DeliveryFailed DeliveryStatus = "failed"
)

// NotificationHistoryEntry is one delivered (or attempted) notification.
// Entries are append-only and read newest-first.
type NotificationHistoryEntry struct {
	ID      string         `json:"id" bson:"_id"`
	UserID  string         `json:"user_id" bson:"user_id"`
	Title   string         `json:"title" bson:"title"`
	Message string         `json:"message" bson:"message"`
	SentAt  time.Time      `json:"sent_at" bson:"sent_at"`
	Status  DeliveryStatus `json:"status" bson:"status"`
}

package models

import "time"

// Notification is a per-user notification record. Rows are insert-only:
// a notification is never updated after creation, and there is no dedup
// key, so reprocessing an event produces distinct rows.
type Notification struct {
	ID        string    `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

package notify

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/models"
)

// Store persists notification records. It does not classify its own
// failures; the coordinator decides at each call site whether a failed
// insert is best-effort or grounds for redelivery.
type Store struct {
	DB *sql.DB
}

// NewStore creates a notification store on top of db.
func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

// Save inserts one notification record. There is no dedup key: identical
// (userID, message) pairs produce distinct rows every time.
func (s *Store) Save(ctx context.Context, userID int64, message string) (models.Notification, error) {
	n := models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now(),
	}

	_, err := s.DB.ExecContext(ctx,
		"INSERT INTO notifications (id, user_id, message, created_at) VALUES ($1, $2, $3, $4)",
		n.ID, n.UserID, n.Message, n.CreatedAt,
	)
	if err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

// FindByUserID returns the user's notifications. Rows come back in
// created_at order, but ordering is implementation-defined upstream and
// callers must not rely on it.
func (s *Store) FindByUserID(ctx context.Context, userID int64) ([]models.Notification, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT id, user_id, message, created_at FROM notifications WHERE user_id = $1 ORDER BY created_at",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notifications, nil
}

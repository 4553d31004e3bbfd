package postgres

import (
	"database/sql"
	"log"
)

// RunMigrations executes the notification schema migrations. All statements
// are idempotent so the consumer and the read API can both run them at boot.
func RunMigrations(db *sql.DB) error {
	for _, m := range notificationMigrations() {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}
	log.Println("Migrations completed for notifications")
	return nil
}

func notificationMigrations() []string {
	// Insert-only table: no updated_at, no uniqueness on (user_id, message).
	// Duplicate rows under redelivery are expected.
	return []string{
		`CREATE TABLE IF NOT EXISTS notifications (
			id VARCHAR(36) PRIMARY KEY,
			user_id BIGINT NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_user_id
			ON notifications (user_id)`,
	}
}

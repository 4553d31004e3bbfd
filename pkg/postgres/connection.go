package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

const (
	connectAttempts = 30
	connectBackoff  = 2 * time.Second
	pingTimeout     = 5 * time.Second
)

// Connect establishes a connection to PostgreSQL with retries. Domain
// services usually come up before the database in compose setups, so we
// keep trying for a while before giving up.
func Connect(databaseURL string) (*sql.DB, error) {
	var db *sql.DB
	var err error

	for i := 0; i < connectAttempts; i++ {
		db, err = sql.Open("postgres", databaseURL)
		if err != nil {
			log.Printf("Failed to open database: %v, retrying in %s...", err, connectBackoff)
			time.Sleep(connectBackoff)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		err = db.PingContext(ctx)
		cancel()
		if err == nil {
			log.Println("Connected to PostgreSQL")
			return db, nil
		}

		log.Printf("Failed to ping database: %v, retrying in %s...", err, connectBackoff)
		time.Sleep(connectBackoff)
	}

	return nil, fmt.Errorf("could not connect to database after %d attempts: %w", connectAttempts, err)
}

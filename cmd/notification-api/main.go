package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rupal-draft/Tripezzy-Backend-sub000/internal/api"
	"github.com/rupal-draft/Tripezzy-Backend-sub000/internal/notify"
	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/config"
	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/postgres"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[API] Starting notification-api...")

	cfg := config.Load()

	// Connect to PostgreSQL
	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[API] Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := postgres.RunMigrations(db); err != nil {
		log.Fatalf("[API] Failed to run migrations: %v", err)
	}

	// Redis for the rate limiter; optional
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
	}

	handler := api.NewNotificationHandler(notify.NewStore(db))
	router := api.NewRouter(handler, rdb)

	// HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: router,
	}

	go func() {
		log.Printf("[API] Listening on port %s", cfg.APIPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[API] Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[API] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[API] Forced shutdown: %v", err)
	}

	log.Println("[API] Server stopped")
}

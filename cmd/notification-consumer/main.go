package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rupal-draft/Tripezzy-Backend-sub000/internal/identity"
	"github.com/rupal-draft/Tripezzy-Backend-sub000/internal/notify"
	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/config"
	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/metrics"
	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/models"
	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/postgres"
	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/rabbitmq"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[Consumer] Starting notification-consumer...")

	cfg := config.Load()

	// Connect to PostgreSQL
	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[Consumer] Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := postgres.RunMigrations(db); err != nil {
		log.Fatalf("[Consumer] Failed to run migrations: %v", err)
	}

	// Identity directory client; the startup probe is mandatory, so a dead
	// directory keeps the consumer from starting at all.
	directory, err := identity.New(cfg.IdentityServiceURL)
	if err != nil {
		log.Fatalf("[Consumer] Identity service unavailable: %v", err)
	}
	defer directory.Close()

	// Connect to RabbitMQ
	rmqConn, err := rabbitmq.Connect(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("[Consumer] Failed to connect to RabbitMQ: %v", err)
	}
	defer rmqConn.Close()

	m := metrics.NewConsumerMetrics(prometheus.DefaultRegisterer)
	coordinator := notify.NewCoordinator(directory, notify.NewStore(db), m)
	dispatcher := notify.NewDispatcher(coordinator, m)

	// One queue and one consumer goroutine per channel. Ordering holds
	// within a channel; channels run concurrently with each other.
	for _, channel := range models.Channels {
		consumerCfg := rabbitmq.ConsumerConfig{
			QueueName:    "notifications." + channel,
			RoutingKey:   channel,
			ConsumerName: "notification-consumer." + channel,
		}
		if err := rabbitmq.SetupConsumer(rmqConn, consumerCfg, dispatcher.Handler(channel)); err != nil {
			log.Fatalf("[Consumer] Failed to setup consumer for %s: %v", channel, err)
		}
	}

	// Prometheus endpoint
	go func() {
		addr := ":" + cfg.MetricsPort
		log.Printf("[Consumer] Metrics listening on %s", addr)
		if err := http.ListenAndServe(addr, metrics.Handler()); err != nil {
			log.Printf("[Consumer] Metrics server error: %v", err)
		}
	}()

	log.Println("[Consumer] All channel consumers running. Waiting for messages...")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[Consumer] Shutting down...")
}

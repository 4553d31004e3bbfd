package notify

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/rupal-draft/Tripezzy-Backend-sub000/internal/identity"
	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/metrics"
	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/models"
)

// Directory is the slice of the identity client the coordinator needs.
type Directory interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetAllAdminUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
}

// Recorder is the slice of the store the coordinator needs.
type Recorder interface {
	Save(ctx context.Context, userID int64, message string) (models.Notification, error)
}

// Coordinator fans an event out to its recipients. Two shapes:
//
//   - Broadcast (BookingCreated to all admins, BlogCreated to all users):
//     resolve the recipient list, then persist one record per recipient.
//     A failed resolution aborts the whole event as retryable before any
//     write. A failed write is logged and the loop moves on.
//
//   - Targeted (everything else): resolve the single recipient by id, then
//     persist one record under the same best-effort write policy. A missing
//     recipient is a hard error, not a retryable one: redelivery cannot
//     conjure the user.
//
// All work happens synchronously on the calling channel worker.
type Coordinator struct {
	directory Directory
	store     Recorder
	metrics   *metrics.ConsumerMetrics
}

// NewCoordinator wires the fan-out over the given directory and store.
// metrics may be nil.
func NewCoordinator(directory Directory, store Recorder, m *metrics.ConsumerMetrics) *Coordinator {
	return &Coordinator{directory: directory, store: store, metrics: m}
}

// Handle routes one event by kind. The returned error is either retryable
// (redeliver), or a hard per-attempt failure (ack and drop), or nil.
func (c *Coordinator) Handle(ctx context.Context, event models.Event, correlationID string) error {
	switch e := event.(type) {
	case models.BookingCreatedEvent:
		return c.broadcast(ctx, event, c.directory.GetAllAdminUsers, correlationID)
	case models.BlogCreatedEvent:
		return c.broadcast(ctx, event, c.directory.GetAllUsers, correlationID)
	case models.BookingStatusUpdatedEvent:
		return c.targeted(ctx, event, e.User, correlationID)
	case models.BookingConfirmedEvent:
		return c.targeted(ctx, event, e.User, correlationID)
	case models.BlogLikedEvent:
		return c.targeted(ctx, event, e.User, correlationID)
	case models.BlogCommentedEvent:
		return c.targeted(ctx, event, e.User, correlationID)
	case models.CheckoutProductEvent:
		return c.targeted(ctx, event, e.User, correlationID)
	default:
		return fmt.Errorf("no handler for channel %q", event.Channel())
	}
}

func (c *Coordinator) broadcast(ctx context.Context, event models.Event, resolve func(context.Context) ([]models.User, error), correlationID string) error {
	recipients, err := resolve(ctx)
	if err != nil {
		c.metrics.IncFailure(metrics.FailureRetryable)
		return Retryable(fmt.Errorf("resolving recipients for %s: %w", event.Channel(), err))
	}

	message, err := BuildMessage(event)
	if err != nil {
		return err
	}

	for _, recipient := range recipients {
		if _, err := c.store.Save(ctx, recipient.ID, message); err != nil {
			// Best effort: this recipient misses out, the rest still get theirs.
			log.Printf("[Notify] Failed to persist notification: channel=%s user_id=%d correlation_id=%s error=%v",
				event.Channel(), recipient.ID, correlationID, err)
			c.metrics.IncFailure(metrics.FailureBestEffort)
			continue
		}
		c.metrics.IncPersisted()
	}

	log.Printf("[Notify] Broadcast complete: channel=%s recipients=%d correlation_id=%s",
		event.Channel(), len(recipients), correlationID)
	return nil
}

func (c *Coordinator) targeted(ctx context.Context, event models.Event, userID int64, correlationID string) error {
	recipient, err := c.directory.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, identity.ErrUnavailable) {
			c.metrics.IncFailure(metrics.FailureRetryable)
			return Retryable(fmt.Errorf("resolving recipient for %s: %w", event.Channel(), err))
		}
		if errors.Is(err, identity.ErrNotFound) {
			c.metrics.IncFailure(metrics.FailureNotFound)
		}
		return fmt.Errorf("resolving recipient %d for %s: %w", userID, event.Channel(), err)
	}

	message, err := BuildMessage(event)
	if err != nil {
		return err
	}

	if _, err := c.store.Save(ctx, recipient.ID, message); err != nil {
		log.Printf("[Notify] Failed to persist notification: channel=%s user_id=%d correlation_id=%s error=%v",
			event.Channel(), recipient.ID, correlationID, err)
		c.metrics.IncFailure(metrics.FailureBestEffort)
		return nil
	}
	c.metrics.IncPersisted()

	log.Printf("[Notify] Notification persisted: channel=%s user_id=%d correlation_id=%s",
		event.Channel(), recipient.ID, correlationID)
	return nil
}

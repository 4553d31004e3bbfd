package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/metrics"
	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/models"
	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/rabbitmq"
)

// Dispatcher turns raw deliveries into typed events and decides the fate of
// each delivery attempt:
//
//	retryable coordinator error -> error out (nack, broker redelivers)
//	undecodable payload         -> ack (redelivery cannot fix a bad body)
//	any other error             -> log, ack (hard per-attempt failure)
//	nil                         -> ack
type Dispatcher struct {
	coordinator *Coordinator
	metrics     *metrics.ConsumerMetrics
}

// NewDispatcher wires the dispatcher over the coordinator. metrics may be nil.
func NewDispatcher(coordinator *Coordinator, m *metrics.ConsumerMetrics) *Dispatcher {
	return &Dispatcher{coordinator: coordinator, metrics: m}
}

// Handler returns the message handler for one channel. Each channel's queue
// binds exactly one routing key, so the payload shape is fixed per handler.
func (d *Dispatcher) Handler(channel string) rabbitmq.MessageHandler {
	return func(delivery amqp.Delivery) error {
		event, err := DecodeEvent(channel, delivery.Body)
		if err != nil {
			log.Printf("[Notify] Dropping undecodable message: channel=%s correlation_id=%s error=%v",
				channel, delivery.CorrelationId, err)
			d.metrics.IncFailure(metrics.FailureDecode)
			return nil
		}
		d.metrics.IncConsumed(channel)

		if err := d.coordinator.Handle(context.Background(), event, delivery.CorrelationId); err != nil {
			if IsRetryable(err) {
				return err
			}
			log.Printf("[Notify] Dropping event after hard failure: channel=%s correlation_id=%s error=%v",
				channel, delivery.CorrelationId, err)
			return nil
		}
		return nil
	}
}

// DecodeEvent unmarshals a channel's payload into its event type.
func DecodeEvent(channel string, body []byte) (models.Event, error) {
	var (
		event models.Event
		err   error
	)

	switch channel {
	case models.ChannelNewBooking:
		var e models.BookingCreatedEvent
		err = json.Unmarshal(body, &e)
		event = e
	case models.ChannelUpdateBookingStatus:
		var e models.BookingStatusUpdatedEvent
		err = json.Unmarshal(body, &e)
		event = e
	case models.ChannelBookingConfirmed:
		var e models.BookingConfirmedEvent
		err = json.Unmarshal(body, &e)
		event = e
	case models.ChannelNewBlog:
		var e models.BlogCreatedEvent
		err = json.Unmarshal(body, &e)
		event = e
	case models.ChannelBlogLiked:
		var e models.BlogLikedEvent
		err = json.Unmarshal(body, &e)
		event = e
	case models.ChannelBlogCommented:
		var e models.BlogCommentedEvent
		err = json.Unmarshal(body, &e)
		event = e
	case models.ChannelCheckoutProduct:
		var e models.CheckoutProductEvent
		err = json.Unmarshal(body, &e)
		event = e
	default:
		return nil, fmt.Errorf("unknown channel %q", channel)
	}

	if err != nil {
		return nil, fmt.Errorf("decoding %s payload: %w", channel, err)
	}
	return event, nil
}

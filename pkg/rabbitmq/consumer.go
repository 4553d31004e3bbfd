package rabbitmq

import (
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ConsumerConfig holds configuration for one channel consumer.
type ConsumerConfig struct {
	QueueName    string
	RoutingKey   string
	ConsumerName string
}

// MessageHandler processes a delivered message. Return nil to ack; return an
// error to nack with requeue, which makes the broker redeliver the message.
//
// There is no dead-letter queue and no redelivery cap: a message that keeps
// failing keeps coming back. That gap is inherited from the upstream event
// contract (payloads carry no event ID to dedup or count on) and is left
// open on purpose.
type MessageHandler func(delivery amqp.Delivery) error

// SetupConsumer declares the queue for one channel, binds it to the events
// exchange, and starts a consumer goroutine. Qos(1) plus manual ack gives
// in-order, one-at-a-time processing within the channel; separate channels
// get separate goroutines and run concurrently with each other.
func SetupConsumer(conn *Connection, cfg ConsumerConfig, handler MessageHandler) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}

	// Declare the topic exchange (idempotent)
	err = ch.ExchangeDeclare(
		ExchangeName,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	_, err = ch.QueueDeclare(
		cfg.QueueName,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	if err := ch.QueueBind(cfg.QueueName, cfg.RoutingKey, ExchangeName, false, nil); err != nil {
		return err
	}

	if err := ch.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := ch.Consume(
		cfg.QueueName,
		cfg.ConsumerName,
		false, // auto-ack = false (manual ack)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			log.Printf("[%s] Received message: routing_key=%s correlation_id=%s",
				cfg.ConsumerName, msg.RoutingKey, msg.CorrelationId)

			if err := handler(msg); err != nil {
				log.Printf("[%s] Error processing message: %v — nacking for redelivery",
					cfg.ConsumerName, err)
				_ = msg.Nack(false, true) // requeue
			} else {
				_ = msg.Ack(false)
			}
		}
	}()

	log.Printf("[%s] Consumer started, listening on queue: %s", cfg.ConsumerName, cfg.QueueName)
	return nil
}

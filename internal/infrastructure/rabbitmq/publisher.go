// Package rabbitmq carries tenant request lifecycle events over a RabbitMQ
// topic exchange. The exchange, routing key, and queue are dedicated to
// those events.
package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/rentwise/rentwise/internal/domain/entity"
	"github.com/rentwise/rentwise/internal/domain/repository"
)

const (
	ExchangeTenantRequest   = "tenant.request.exchange"
	RoutingKeyTenantRequest = "tenant.request.routingkey"
	QueueTenantRequest      = "tenant.request.queue"
)

// Publisher writes lifecycle events to the topic exchange. Callers treat
// publishing as best-effort; the connection is long-lived.
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewPublisher dials the broker and declares the exchange/queue/binding so
// either side can start first.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := declareTopology(ch); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &Publisher{conn: conn, ch: ch}, nil
}

func declareTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(
		ExchangeTenantRequest,
		"topic",
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(QueueTenantRequest, true, false, false, false, nil); err != nil {
		return err
	}
	return ch.QueueBind(QueueTenantRequest, RoutingKeyTenantRequest, ExchangeTenantRequest, false, nil)
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// Publish JSON-encodes the event onto the exchange.
func (p *Publisher) Publish(ctx context.Context, ev *entity.TenantRequestEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx,
		ExchangeTenantRequest,
		RoutingKeyTenantRequest,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         b,
		},
	)
}

var _ repository.EventPublisher = (*Publisher)(nil)

package rabbitmq

import (
	"encoding/json"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/rentwise/rentwise/internal/domain/entity"
)

// Consumer reads lifecycle events off the tenant request queue.
type Consumer struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewConsumer(url string) (*Consumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := ch.Qos(16, 0, false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	if err := declareTopology(ch); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &Consumer{conn: conn, ch: ch}, nil
}

func (c *Consumer) Close() {
	if c == nil {
		return
	}
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// Delivery pairs a decoded event with its ack handle.
type Delivery struct {
	Event *entity.TenantRequestEvent
	msg   amqp.Delivery
}

func (d Delivery) Ack() error         { return d.msg.Ack(false) }
func (d Delivery) Discard() error     { return d.msg.Nack(false, false) }
func (d Delivery) Requeue() error     { return d.msg.Nack(false, true) }
func (d Delivery) Raw() amqp.Delivery { return d.msg }

// Consume streams decoded deliveries until the channel closes. Messages
// that fail to decode are discarded with a nil Event so the caller can log
// them.
func (c *Consumer) Consume() (<-chan Delivery, error) {
	tag := "relay-" + uuid.NewString()
	msgs, err := c.ch.Consume(QueueTenantRequest, tag, false, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	out := make(chan Delivery)
	go func() {
		defer close(out)
		for msg := range msgs {
			var ev entity.TenantRequestEvent
			if err := json.Unmarshal(msg.Body, &ev); err != nil {
				out <- Delivery{Event: nil, msg: msg}
				continue
			}
			out <- Delivery{Event: &ev, msg: msg}
		}
	}()
	return out, nil
}

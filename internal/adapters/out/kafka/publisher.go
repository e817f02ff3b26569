// Package kafka publishes order notifications to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/notification"

	"github.com/segmentio/kafka-go"
)

// DefaultTopic receives cancellation notifications.
const DefaultTopic = "order-notifications"

// EventType is sent as the event_type header of every message.
const EventType = "order.cancelled.notification"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements ports.EventPublisher.
type Publisher struct {
	writer messageWriter
}

func NewPublisher(topic string, brokers ...string) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return NewPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	})
}

// NewPublisherWithWriter wraps an existing writer.
func NewPublisherWithWriter(writer messageWriter) *Publisher {
	return &Publisher{writer: writer}
}

type notificationMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	OrderID   string    `json:"order_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Publish writes all notifications in one batch keyed by user, so one user's
// notifications stay in order on a partition.
func (p *Publisher) Publish(ctx context.Context, notifications ...notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(notifications))
	for _, n := range notifications {
		payload, err := json.Marshal(notificationMessage{
			ID:        n.ID.String(),
			UserID:    n.UserID.String(),
			OrderID:   n.OrderID.String(),
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("marshal notification %s: %w", n.ID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(n.UserID.String()),
			Value: payload,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(EventType)},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("kafka write failed: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

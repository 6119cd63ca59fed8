package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"sales/internal/core/ports"

	"github.com/twmb/franz-go/pkg/kgo"
)

const DefaultOrderChangedTopic = "sales.order.changed"

// OrderChangedMessage is the JSON value written for every order change.
type OrderChangedMessage struct {
	EventID    string    `json:"event_id"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	State      string    `json:"state"`
	Operation  string    `json:"operation"`
	Total      string    `json:"total"`
	Currency   string    `json:"currency"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewOrderChangedMessage maps an event to its wire form.
func NewOrderChangedMessage(event ports.OrderChangedEvent) OrderChangedMessage {
	return OrderChangedMessage{
		EventID:    event.EventID.String(),
		OrderID:    event.OrderID.String(),
		CustomerID: event.CustomerID,
		State:      event.State.String(),
		Operation:  event.Operation,
		Total:      event.Total.Amount().StringFixed(2),
		Currency:   event.Total.Currency().Code(),
		OccurredAt: event.OccurredAt.UTC(),
	}
}

// Producer is the part of *kgo.Client the publisher needs.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// OrderChangedPublisher writes events keyed by order id, so all changes of one
// order land in the same partition and keep their order.
type OrderChangedPublisher struct {
	producer Producer
	topic    string
}

// NewOrderChangedPublisher creates a publisher that writes to topic.
func NewOrderChangedPublisher(producer Producer, topic string) *OrderChangedPublisher {
	if topic == "" {
		topic = DefaultOrderChangedTopic
	}
	return &OrderChangedPublisher{producer: producer, topic: topic}
}

// PublishOrderChanged sends the event keyed by order id so that changes of
// one order stay in one partition.
func (p *OrderChangedPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	value, err := json.Marshal(NewOrderChangedMessage(event))
	if err != nil {
		return fmt.Errorf("encode order changed event: %w", err)
	}

	record := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(event.OrderID.String()),
		Value:     value,
		Timestamp: event.OccurredAt,
		Headers:   []kgo.RecordHeader{{Key: "operation", Value: []byte(event.Operation)}},
	}
	if err = p.producer.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce order changed event: %w", err)
	}
	return nil
}

// LogPublisher stands in for Kafka when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a publisher that only logs events.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "order-events")}
}

// PublishOrderChanged logs the event at info level.
func (p *LogPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	msg := NewOrderChangedMessage(event)
	p.logger.InfoContext(ctx, "order changed",
		"event_id", msg.EventID,
		"order_id", msg.OrderID,
		"state", msg.State,
		"operation", msg.Operation,
		"total", msg.Total,
		"currency", msg.Currency,
	)
	return nil
}

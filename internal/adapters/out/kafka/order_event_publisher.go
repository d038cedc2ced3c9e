// Package kafka publishes order lifecycle events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"laundry/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// OrderChangedEvent is the JSON payload of one message.
type OrderChangedEvent struct {
	EventID    string    `json:"eventId"`
	Type       string    `json:"type"`
	OrderID    int64     `json:"orderId"`
	OrderCode  string    `json:"orderCode"`
	Status     string    `json:"status"`
	Total      string    `json:"total"`
	TotalCents int64     `json:"totalCents"`
	OccurredAt time.Time `json:"occurredAt"`
}

// OrderEventPublisher implements ports.EventPublisher. Messages are keyed by
// the order code so every event of one order lands on the same partition.
type OrderEventPublisher struct {
	writer messageWriter
}

func NewOrderEventPublisher(writer messageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer}
}

// WriterBatchTimeout bounds how long a publish waits for a batch to fill.
// Publishing is synchronous with the request that caused it.
const WriterBatchTimeout = 10 * time.Millisecond

// NewWriter builds the writer used in production for one topic.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           WriterBatchTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

func (p *OrderEventPublisher) Publish(ctx context.Context, events ...order.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		payload, err := json.Marshal(toMessage(e))
		if err != nil {
			return err
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.OrderID.Code()),
			Value: payload,
			Time:  e.OccurredAt,
		})
	}

	return p.writer.WriteMessages(ctx, msgs...)
}

func toMessage(e order.Event) OrderChangedEvent {
	return OrderChangedEvent{
		EventID:    e.ID.String(),
		Type:       string(e.Kind),
		OrderID:    int64(e.OrderID),
		OrderCode:  e.OrderID.Code(),
		Status:     e.Status.String(),
		Total:      e.Total.String(),
		TotalCents: e.Total.Cents(),
		OccurredAt: e.OccurredAt,
	}
}

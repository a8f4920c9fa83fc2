// Package orderpublisher sends order status changes to Kafka, one message per
// change, keyed by order ID so every change of an order lands on the same
// partition in the order it happened.
package orderpublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ootdverse/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// EventType is sent in the event-type header of every message.
const EventType = "order.status_changed"

// MessageWriter is the part of kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer MessageWriter
}

// New creates a publisher writing to topic on the given brokers.
func New(brokers []string, topic string) *Publisher {
	return NewWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	})
}

func NewWithWriter(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer}
}

type statusChangedMessage struct {
	OrderID        string    `json:"orderId"`
	OrderCode      string    `json:"orderCode"`
	BuyerID        string    `json:"buyerId"`
	SellerID       string    `json:"sellerId"`
	ListingID      string    `json:"listingId"`
	FromStatus     string    `json:"fromStatus"`
	ToStatus       string    `json:"toStatus"`
	Action         string    `json:"action"`
	Role           string    `json:"role"`
	TrackingNumber string    `json:"trackingNumber,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// Publish writes all events in one batch. Nothing is written if an event
// cannot be encoded.
func (p *Publisher) Publish(ctx context.Context, events ...order.StatusChanged) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(statusChangedMessage{
			OrderID:        e.OrderID.String(),
			OrderCode:      e.OrderCode,
			BuyerID:        e.BuyerID.String(),
			SellerID:       e.SellerID.String(),
			ListingID:      e.ListingID.String(),
			FromStatus:     e.From.String(),
			ToStatus:       e.To.String(),
			Action:         string(e.Action),
			Role:           e.Role.String(),
			TrackingNumber: e.TrackingNumber,
			OccurredAt:     e.OccurredAt.UTC(),
		})
		if err != nil {
			return fmt.Errorf("encode status change of order %s: %w", e.OrderID, err)
		}

		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.OrderID.String()),
			Value: value,
			Headers: []kafka.Header{
				{Key: "event-type", Value: []byte(EventType)},
			},
			Time: e.OccurredAt,
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d order events: %w", len(msgs), err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

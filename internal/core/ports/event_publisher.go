package ports

import (
	"context"

	"ootdverse/internal/core/domain/model/order"
)

// EventPublisher delivers order status changes to other services.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.StatusChanged) error
}

package ports

import (
	"context"
	"time"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/order"
)

// OrderRepository stores orders. Implementations returned by a UnitOfWork
// run inside its transaction.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	// Update fails with errs.VersionIsInvalidError when the stored order moved
	// past the version it was loaded at.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetUnpaidCreatedBefore returns up to limit orders still in
	// pending_payment that were created before the cutoff, oldest first.
	GetUnpaidCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*order.Order, error)
}

package commands

import (
	"context"

	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/core/ports"
)

// syncListing applies the listing side effect of an order reaching a terminal
// status: completed orders sell the listing, cancelled ones put it back on sale.
func syncListing(ctx context.Context, repo ports.ListingRepository, o *order.Order) error {
	if !o.Status().IsTerminal() {
		return nil
	}

	l, err := repo.Get(ctx, o.ListingID())
	if err != nil {
		return err
	}

	switch o.Status() {
	case order.Completed:
		l.MarkSold()
	case order.Cancelled:
		l.Release()
	default:
		return nil
	}

	return repo.UpdateStatus(ctx, l)
}

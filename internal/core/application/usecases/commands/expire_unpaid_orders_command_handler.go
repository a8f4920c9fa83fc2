package commands

import (
	"context"

	"ootdverse/internal/core/domain/model/order"
)

// ExpireUnpaidOrdersCommandHandler cancels stale unpaid orders as the system
// role and releases their listings. One batch runs in one transaction.
type ExpireUnpaidOrdersCommandHandler struct {
	uowFactory UoWFactory
}

func NewExpireUnpaidOrdersCommandHandler(uowFactory UoWFactory) ExpireUnpaidOrdersCommandHandler {
	return ExpireUnpaidOrdersCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of orders cancelled.
func (h *ExpireUnpaidOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireUnpaidOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	listingRepo := uow.ListingRepository()

	orders, err := orderRepo.GetUnpaidCreatedBefore(ctx, cmd.Cutoff(), cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(orders) == 0 {
		return 0, nil
	}

	for _, o := range orders {
		if err = o.Cancel(order.System, UnpaidOrderCancelReason, cmd.Now()); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		if err = syncListing(ctx, listingRepo, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(orders), nil
}

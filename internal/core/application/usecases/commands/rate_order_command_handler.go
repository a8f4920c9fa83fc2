package commands

import (
	"context"
)

// RateOrderCommandHandler stores a buyer's rating of the seller or a seller's
// rating of the buyer.
type RateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRateOrderCommandHandler(uowFactory OrderUoWFactory) RateOrderCommandHandler {
	return RateOrderCommandHandler{uowFactory: uowFactory}
}

func (h *RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	role, err := o.ParticipantRole(cmd.ActorID())
	if err != nil {
		return err
	}

	if err = o.Rate(role, cmd.Rating()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

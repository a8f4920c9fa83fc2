package commands

import (
	"context"
	"time"
)

// PerformOrderActionCommandHandler moves an order along the fulfillment flow.
// Reaching completed marks the listing sold; cancelling releases it.
type PerformOrderActionCommandHandler struct {
	uowFactory UoWFactory
}

func NewPerformOrderActionCommandHandler(uowFactory UoWFactory) PerformOrderActionCommandHandler {
	return PerformOrderActionCommandHandler{uowFactory: uowFactory}
}

// Handle applies the action. On any error the order is not persisted.
//
// Returns:
//   - order.ErrNotParticipant if the actor is neither buyer nor seller
//   - order.ErrActionNotAvailable if the action is not allowed right now
//   - order.ErrMissingTrackingNumber for ship_order without a tracking number
func (h *PerformOrderActionCommandHandler) Handle(ctx context.Context, cmd PerformOrderActionCommand) error {
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

	if err = o.Perform(role, cmd.Action(), cmd.TrackingNumber(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = syncListing(ctx, uow.ListingRepository(), o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

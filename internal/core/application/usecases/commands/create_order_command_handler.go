package commands

import (
	"context"
	"fmt"
	"time"

	"ootdverse/internal/core/domain/model/order"
)

// CreateOrderCommandHandler places an order on a listing.
// The listing is reserved (active -> pending) in the same transaction. The
// listing repository only writes the reservation while the row is still active,
// so when two buyers race the second one gets listing.ErrListingIsNotAvailable.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, resolver)
//	cmd, _ := NewCreateOrderCommand(orderID, buyerID, listingID, addressID,
//	    shipping.GHTK, order.COD, "", "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending payment
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	resolver   ShippingOptionResolver
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, resolver ShippingOptionResolver) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

// Handle processes the order creation command.
//
// Returns:
//   - ErrCannotShipToAddress if the listing does not ship to the address
//   - ErrShippingMethodNotOffered if the method is not available for the route
//   - listing.ErrListingIsNotAvailable if the listing is no longer active
//   - order.ErrBuyerIsSeller if the buyer owns the listing
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	listingRepo := uow.ListingRepository()
	l, err := listingRepo.Get(ctx, cmd.ListingID())
	if err != nil {
		return err
	}

	address, err := uow.AddressRepository().Get(ctx, cmd.BuyerID(), cmd.AddressID())
	if err != nil {
		return err
	}

	if !h.resolver.CanShipToRegion(l, address.Province()) {
		return fmt.Errorf("%w: %s", ErrCannotShipToAddress, address.Province())
	}

	option, ok := h.resolver.ResolveOption(l, address, cmd.ShippingMethod())
	if !ok {
		return fmt.Errorf("%w: %s", ErrShippingMethodNotOffered, cmd.ShippingMethod())
	}

	delivery, err := order.NewDelivery(option, l.ShipFrom(), address, cmd.DeliveryNote())
	if err != nil {
		return err
	}

	o, err := order.NewOrder(
		cmd.OrderID(), cmd.BuyerID(), l, delivery, option.Fee,
		cmd.PaymentMethod(), cmd.BuyerNote(), time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = l.Reserve(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = listingRepo.UpdateStatus(ctx, l); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

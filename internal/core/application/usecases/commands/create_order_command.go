package commands

import (
	"errors"
	"strings"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/core/domain/model/shipping"
	"ootdverse/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a buyer purchasing a listing with a chosen
// delivery address, shipping method and payment method.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), buyerID, listingID, addressID,
//	    shipping.GHN, order.VNPay, "", "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, resolver)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	buyerID        kernel.UUID
	listingID      kernel.UUID
	addressID      kernel.UUID
	shippingMethod shipping.Method
	paymentMethod  order.PaymentMethod
	buyerNote      string
	deliveryNote   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identifiers and the selected methods.
// Whether the listing offers the shipping method is checked by the handler.
func NewCreateOrderCommand(
	orderID, buyerID, listingID, addressID kernel.UUID,
	shippingMethod shipping.Method,
	paymentMethod order.PaymentMethod,
	buyerNote, deliveryNote string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		buyerNote:    strings.TrimSpace(buyerNote),
		deliveryNote: strings.TrimSpace(deliveryNote),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, buyerID, listingID, addressID),
		cmd.setShippingMethod(shippingMethod),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID               { return c.orderID }
func (c CreateOrderCommand) BuyerID() kernel.UUID               { return c.buyerID }
func (c CreateOrderCommand) ListingID() kernel.UUID             { return c.listingID }
func (c CreateOrderCommand) AddressID() kernel.UUID             { return c.addressID }
func (c CreateOrderCommand) ShippingMethod() shipping.Method    { return c.shippingMethod }
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod { return c.paymentMethod }
func (c CreateOrderCommand) BuyerNote() string                  { return c.buyerNote }
func (c CreateOrderCommand) DeliveryNote() string               { return c.deliveryNote }

func (c *CreateOrderCommand) setIDs(orderID, buyerID, listingID, addressID kernel.UUID) error {
	if err := errors.Join(
		orderID.Validate(),
		buyerID.Validate(),
		listingID.Validate(),
		addressID.Validate(),
	); err != nil {
		return err
	}

	c.orderID = orderID
	c.buyerID = buyerID
	c.listingID = listingID
	c.addressID = addressID
	return nil
}

func (c *CreateOrderCommand) setShippingMethod(m shipping.Method) error {
	if err := m.Validate(); err != nil {
		return err
	}
	c.shippingMethod = m
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(m order.PaymentMethod) error {
	if err := m.Validate(); err != nil {
		return err
	}
	c.paymentMethod = m
	return nil
}

package commands_test

import (
	"errors"
	"testing"

	"ootdverse/internal/core/application/usecases/commands"
	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/listing"
	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUoWMocks() (*MockUoWFactory, *MockUoW, *MockOrderRepository, *MockListingRepository) {
	orders := new(MockOrderRepository)
	listings := new(MockListingRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("OrderRepository").Return(orders).Maybe()
	uow.On("ListingRepository").Return(listings).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	return factory, uow, orders, listings
}

func TestNewPerformOrderActionCommand(t *testing.T) {
	cmd, err := commands.NewPerformOrderActionCommand(kernel.NewUUID(), kernel.NewUUID(), order.ActionShipOrder, " GHN9 ")
	require.NoError(t, err)
	assert.Equal(t, "GHN9", cmd.TrackingNumber())

	_, err = commands.NewPerformOrderActionCommand(kernel.NewUUID(), kernel.NewUUID(), "teleport", "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	// confirm_payment is reserved for the payment flow
	_, err = commands.NewPerformOrderActionCommand(kernel.NewUUID(), kernel.NewUUID(), order.ActionConfirmPayment, "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPerformOrderActionCommandHandler_Handle_ShipOrder(t *testing.T) {
	ctx := t.Context()
	l := newListing(t)
	o := newOrderIn(t, l, order.Preparing)
	factory, uow, orders, listings := newUoWMocks()

	cmd, err := commands.NewPerformOrderActionCommand(o.ID(), o.SellerID(), order.ActionShipOrder, "GHN-777")
	require.NoError(t, err)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orders.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)

	h := commands.NewPerformOrderActionCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Shipping, o.Status())
	assert.Equal(t, "GHN-777", o.TrackingNumber())
	require.Len(t, o.Events(), 1)
	listings.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPerformOrderActionCommandHandler_Handle_ConfirmDeliveryMarksListingSold(t *testing.T) {
	ctx := t.Context()
	l := newListing(t)
	require.NoError(t, l.Reserve())
	o := newOrderIn(t, l, order.Delivered)
	factory, uow, orders, listings := newUoWMocks()

	cmd, err := commands.NewPerformOrderActionCommand(o.ID(), o.BuyerID(), order.ActionConfirmDelivery, "")
	require.NoError(t, err)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orders.On("Update", ctx, o).Return(nil).Once(),
		listings.On("Get", ctx, l.ID()).Return(l, nil).Once(),
		listings.On("UpdateStatus", ctx, l).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)

	h := commands.NewPerformOrderActionCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Completed, o.Status())
	assert.Equal(t, listing.Sold, l.Status())
	listings.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPerformOrderActionCommandHandler_Handle_MissingTrackingNumber(t *testing.T) {
	ctx := t.Context()
	o := newOrderIn(t, newListing(t), order.Preparing)
	factory, uow, orders, _ := newUoWMocks()

	cmd, err := commands.NewPerformOrderActionCommand(o.ID(), o.SellerID(), order.ActionShipOrder, "   ")
	require.NoError(t, err)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
	)

	h := commands.NewPerformOrderActionCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrMissingTrackingNumber)
	assert.Equal(t, order.Preparing, o.Status())
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertCalled(t, "Rollback", ctx)
}

func TestPerformOrderActionCommandHandler_Handle_WrongRole(t *testing.T) {
	ctx := t.Context()
	o := newOrderIn(t, newListing(t), order.Paid)
	factory, uow, orders, _ := newUoWMocks()

	cmd, err := commands.NewPerformOrderActionCommand(o.ID(), o.BuyerID(), order.ActionStartPreparing, "")
	require.NoError(t, err)

	uow.On("Begin", ctx).Return(nil).Once()
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

	h := commands.NewPerformOrderActionCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), order.ErrActionNotAvailable)
}

func TestPerformOrderActionCommandHandler_Handle_Outsider(t *testing.T) {
	ctx := t.Context()
	o := newOrderIn(t, newListing(t), order.Paid)
	factory, uow, orders, _ := newUoWMocks()

	cmd, err := commands.NewPerformOrderActionCommand(o.ID(), kernel.NewUUID(), order.ActionStartPreparing, "")
	require.NoError(t, err)

	uow.On("Begin", ctx).Return(nil).Once()
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

	h := commands.NewPerformOrderActionCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), order.ErrNotParticipant)
}

func TestPerformOrderActionCommandHandler_Handle_ConcurrentUpdate(t *testing.T) {
	ctx := t.Context()
	o := newOrderIn(t, newListing(t), order.Paid)
	factory, uow, orders, _ := newUoWMocks()
	stale := errs.NewVersionIsInvalidError("version", errors.New("order changed"))

	cmd, err := commands.NewPerformOrderActionCommand(o.ID(), o.SellerID(), order.ActionStartPreparing, "")
	require.NoError(t, err)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orders.On("Update", ctx, o).Return(stale).Once(),
	)

	h := commands.NewPerformOrderActionCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrVersionIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

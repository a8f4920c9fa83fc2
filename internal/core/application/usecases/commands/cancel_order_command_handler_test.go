package commands_test

import (
	"strings"
	"testing"

	"ootdverse/internal/core/application/usecases/commands"
	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/listing"
	"ootdverse/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand(t *testing.T) {
	cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "  found a better size ")
	require.NoError(t, err)
	assert.Equal(t, "found a better size", cmd.Reason())

	_, err = commands.NewCancelOrderCommand(kernel.NewUUID(), kernel.NewUUID(), strings.Repeat("x", 501))
	require.Error(t, err)
}

func TestCancelOrderCommandHandler_Handle_ReleasesListing(t *testing.T) {
	ctx := t.Context()
	l := newListing(t)
	require.NoError(t, l.Reserve())
	o := newOrderIn(t, l, order.Preparing)
	factory, uow, orders, listings := newUoWMocks()

	cmd, err := commands.NewCancelOrderCommand(o.ID(), o.BuyerID(), "ordered by mistake")
	require.NoError(t, err)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orders.On("Update", ctx, o).Return(nil).Once(),
		listings.On("Get", ctx, l.ID()).Return(l, nil).Once(),
		listings.On("UpdateStatus", ctx, l).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)

	h := commands.NewCancelOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Cancelled, o.Status())
	require.NotNil(t, o.Cancellation())
	assert.Equal(t, order.Buyer, o.Cancellation().By)
	assert.Equal(t, "ordered by mistake", o.Cancellation().Reason)
	assert.Equal(t, listing.Active, l.Status())
	orders.AssertExpectations(t)
	listings.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AfterShipping(t *testing.T) {
	ctx := t.Context()
	o := newOrderIn(t, newListing(t), order.Shipping)
	factory, uow, orders, listings := newUoWMocks()

	cmd, err := commands.NewCancelOrderCommand(o.ID(), o.SellerID(), "")
	require.NoError(t, err)

	uow.On("Begin", ctx).Return(nil).Once()
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrActionNotAvailable)
	assert.Equal(t, order.Shipping, o.Status())
	listings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

package commands_test

import (
	"testing"

	"ootdverse/internal/core/application/usecases/commands"
	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRateOrderCommand(t *testing.T) {
	_, err := commands.NewRateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), 0, "")
	require.Error(t, err)

	cmd, err := commands.NewRateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), 4, "nice")
	require.NoError(t, err)
	assert.Equal(t, 4, cmd.Rating().Score())
}

func TestRateOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	o := newOrderIn(t, newListing(t), order.Completed)
	factory, uow, orders := newOrderUoWMocks()

	cmd, err := commands.NewRateOrderCommand(o.ID(), o.SellerID(), 5, "paid quickly")
	require.NoError(t, err)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orders.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)

	h := commands.NewRateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, o.SellerRating())
	assert.Equal(t, "paid quickly", o.SellerRating().Review())
	assert.Nil(t, o.BuyerRating())
}

func TestRateOrderCommandHandler_Handle_NotCompleted(t *testing.T) {
	ctx := t.Context()
	o := newOrderIn(t, newListing(t), order.Delivered)
	factory, uow, orders := newOrderUoWMocks()

	cmd, err := commands.NewRateOrderCommand(o.ID(), o.BuyerID(), 5, "")
	require.NoError(t, err)

	uow.On("Begin", ctx).Return(nil).Once()
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

	h := commands.NewRateOrderCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), order.ErrOrderNotCompleted)
}

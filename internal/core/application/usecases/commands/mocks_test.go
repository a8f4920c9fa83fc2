package commands_test

import (
	"context"
	"testing"
	"time"

	"ootdverse/internal/core/application/usecases/commands"
	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/listing"
	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/core/domain/model/shipping"
	"ootdverse/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetUnpaidCreatedBefore(
	ctx context.Context,
	cutoff time.Time,
	limit int,
) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff, limit)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockListingRepository struct{ mock.Mock }

func (m *MockListingRepository) Add(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*listing.Listing)
	return l, args.Error(1)
}

func (m *MockListingRepository) UpdateStatus(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) Add(ctx context.Context, userID, addressID kernel.UUID, a kernel.Address) error {
	args := m.Called(ctx, userID, addressID, a)
	return args.Error(0)
}

func (m *MockAddressRepository) Get(ctx context.Context, userID, addressID kernel.UUID) (kernel.Address, error) {
	args := m.Called(ctx, userID, addressID)
	a, _ := args.Get(0).(kernel.Address)
	return a, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ListingRepository() ports.ListingRepository {
	args := m.Called()
	return args.Get(0).(ports.ListingRepository)
}

func (m *MockUoW) AddressRepository() ports.AddressRepository {
	args := m.Called()
	return args.Get(0).(ports.AddressRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockShippingResolver struct{ mock.Mock }

func (m *MockShippingResolver) CanShipToRegion(l *listing.Listing, province string) bool {
	args := m.Called(l, province)
	return args.Bool(0)
}

func (m *MockShippingResolver) ResolveOption(
	l *listing.Listing,
	buyer kernel.Address,
	method shipping.Method,
) (shipping.MethodOption, bool) {
	args := m.Called(l, buyer, method)
	opt, _ := args.Get(0).(shipping.MethodOption)
	return opt, args.Bool(1)
}

// fixtures

var (
	shipFrom    = kernel.NewAddress("Hà Nội", "Hoàn Kiếm", "Hàng Trống", "10 Hàng Trống")
	buyerAddr   = kernel.NewAddress("Hà Nội", "Cầu Giấy", "Dịch Vọng", "1 Xuân Thủy").WithRecipient("Minh", "0987654321")
	ghnOption   shipping.MethodOption
	ghnETA, _   = shipping.NewETA(1, 2)
	testStarted = time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
)

func init() {
	eta := ghnETA
	ghnOption = shipping.MethodOption{
		ID: shipping.GHN, Name: "Giao Hàng Nhanh", Fee: 25040, ETA: &eta, Type: shipping.TypePlatform,
	}
}

func newListing(t *testing.T) *listing.Listing {
	t.Helper()

	cfg, err := shipping.NewConfig(true, true, 0, nil)
	require.NoError(t, err)

	l, err := listing.NewListing(kernel.NewUUID(), kernel.NewUUID(), "Áo len cổ lọ", 200000, 400, shipFrom, cfg)
	require.NoError(t, err)
	return l
}

func newPendingOrder(t *testing.T, l *listing.Listing) *order.Order {
	t.Helper()

	delivery, err := order.NewDelivery(ghnOption, l.ShipFrom(), buyerAddr, "")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), l, delivery, ghnOption.Fee, order.COD, "", testStarted)
	require.NoError(t, err)
	return o
}

func newOrderIn(t *testing.T, l *listing.Listing, status order.Status) *order.Order {
	t.Helper()

	o := newPendingOrder(t, l)
	steps := []func() error{
		func() error { return o.ConfirmPayment("TX-1", testStarted) },
		func() error { return o.Perform(order.Seller, order.ActionStartPreparing, "", testStarted) },
		func() error { return o.Perform(order.Seller, order.ActionShipOrder, "GHN-1", testStarted) },
		func() error { return o.Perform(order.Seller, order.ActionMarkDelivered, "", testStarted) },
		func() error { return o.Perform(order.Buyer, order.ActionConfirmDelivery, "", testStarted) },
	}
	for _, step := range steps {
		if o.Status() == status {
			break
		}
		require.NoError(t, step())
	}
	require.Equal(t, status, o.Status())
	o.ClearEvents()
	return o
}

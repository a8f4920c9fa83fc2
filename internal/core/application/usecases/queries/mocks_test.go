package queries_test

import (
	"context"
	"testing"
	"time"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/listing"
	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/core/domain/model/shipping"
	"ootdverse/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockListingReader struct{ mock.Mock }

func (m *MockListingReader) Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*listing.Listing)
	return l, args.Error(1)
}

type MockAddressReader struct{ mock.Mock }

func (m *MockAddressReader) Get(ctx context.Context, userID, addressID kernel.UUID) (kernel.Address, error) {
	args := m.Called(ctx, userID, addressID)
	a, _ := args.Get(0).(kernel.Address)
	return a, args.Error(1)
}

var (
	hanoiShop  = kernel.NewAddress("Hà Nội", "Hoàn Kiếm", "Hàng Gai", "9 Hàng Gai")
	hanoiBuyer = kernel.NewAddress("Thành phố Hà Nội", "Cầu Giấy", "Dịch Vọng", "1 Xuân Thủy")
	hcmBuyer   = kernel.NewAddress("Hồ Chí Minh", "Quận 3", "Võ Thị Sáu", "5 Pasteur")
	orderTime  = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
)

func newResolver() *services.ShippingResolver {
	return services.NewShippingResolver(shipping.DefaultRateTable(), services.FixedDistanceEstimator{}, nil)
}

func newListing(t *testing.T, cfg shipping.Config) *listing.Listing {
	t.Helper()

	l, err := listing.NewListing(kernel.NewUUID(), kernel.NewUUID(), "Áo sơ mi lụa", 350000, 0, hanoiShop, cfg)
	require.NoError(t, err)
	return l
}

func mustConfig(t *testing.T, platform, self bool, fee int, regions ...shipping.Region) shipping.Config {
	t.Helper()

	cfg, err := shipping.NewConfig(platform, self, fee, regions)
	require.NoError(t, err)
	return cfg
}

// newOrder places an order on a new listing at orderTime.
func newOrder(t *testing.T, buyerID kernel.UUID, l *listing.Listing, buyer kernel.Address, at time.Time) *order.Order {
	t.Helper()

	option, ok := newResolver().ResolveOption(l, buyer, shipping.GHN)
	require.True(t, ok)
	delivery, err := order.NewDelivery(option, l.ShipFrom(), buyer, "")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), buyerID, l, delivery, option.Fee, order.MoMo, "", at)
	require.NoError(t, err)
	return o
}

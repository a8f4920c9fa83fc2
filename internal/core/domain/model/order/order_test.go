package order_test

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/listing"
	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/core/domain/model/shipping"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newListing(t *testing.T) *listing.Listing {
	t.Helper()

	cfg, err := shipping.NewConfig(true, true, 15000, nil)
	require.NoError(t, err)

	l, err := listing.NewListing(
		kernel.NewUUID(), kernel.NewUUID(), "Váy hoa vintage", 350000, 500,
		kernel.NewAddress("Hà Nội", "Đống Đa", "Láng Hạ", "5 Láng Hạ"), cfg,
	)
	require.NoError(t, err)
	return l
}

func newDelivery(t *testing.T, l *listing.Listing) order.Delivery {
	t.Helper()

	eta, err := shipping.NewETA(1, 2)
	require.NoError(t, err)

	d, err := order.NewDelivery(
		shipping.MethodOption{ID: shipping.GHN, Name: "Giao Hàng Nhanh", Fee: 31000, ETA: &eta, Type: shipping.TypePlatform},
		l.ShipFrom(),
		kernel.NewAddress("Hà Nội", "Cầu Giấy", "Dịch Vọng", "1 Xuân Thủy").WithRecipient("Lan", "0912345678"),
		"call before delivery",
	)
	require.NoError(t, err)
	return d
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()

	l := newListing(t)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), l, newDelivery(t, l), 31000, order.COD, "", createdAt)
	require.NoError(t, err)
	return o
}

// advance walks the order to the target status along the normal flow.
func advance(t *testing.T, o *order.Order, target order.Status) {
	t.Helper()

	steps := []func() error{
		func() error { return o.ConfirmPayment("TX-1", createdAt.Add(time.Minute)) },
		func() error { return o.Perform(order.Seller, order.ActionStartPreparing, "", createdAt.Add(time.Hour)) },
		func() error { return o.Perform(order.Seller, order.ActionShipOrder, "GHN123456", createdAt.Add(2*time.Hour)) },
		func() error { return o.Perform(order.Seller, order.ActionMarkDelivered, "", createdAt.Add(48*time.Hour)) },
		func() error { return o.Perform(order.Buyer, order.ActionConfirmDelivery, "", createdAt.Add(50*time.Hour)) },
	}
	for _, step := range steps {
		if o.Status() == target {
			return
		}
		require.NoError(t, step())
	}
	require.Equal(t, target, o.Status())
}

func TestOrder_RenewCode(t *testing.T) {
	l := newListing(t)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), l, newDelivery(t, l), 31000, order.COD, "", createdAt)
	require.NoError(t, err)

	codes := map[string]struct{}{o.Code(): {}}
	for range 5 {
		o.RenewCode()
		assert.Regexp(t, regexp.MustCompile(`^ORD20250314[A-Z0-9]{4}$`), o.Code())
		codes[o.Code()] = struct{}{}
	}

	// six draws from 36^4 suffixes
	assert.Greater(t, len(codes), 1)
}

func TestNewOrder(t *testing.T) {
	l := newListing(t)
	buyerID := kernel.NewUUID()

	o, err := order.NewOrder(kernel.NewUUID(), buyerID, l, newDelivery(t, l), 31000, order.VNPay, " fragile ", createdAt)

	require.NoError(t, err)
	require.NoError(t, o.Validate())
	assert.Equal(t, order.PendingPayment, o.Status())
	assert.Equal(t, order.PaymentPending, o.PaymentStatus())
	assert.True(t, o.BuyerID().IsEqual(buyerID))
	assert.True(t, o.SellerID().IsEqual(l.SellerID()))
	assert.True(t, o.ListingID().IsEqual(l.ID()))
	assert.Equal(t, "fragile", o.BuyerNote())
	assert.Regexp(t, regexp.MustCompile(`^ORD20250314[A-Z0-9]{4}$`), o.Code())

	assert.Equal(t, 350000, o.Pricing().ItemPrice())
	assert.Equal(t, 31000, o.Pricing().ShippingFee())
	assert.Equal(t, 17500, o.Pricing().PlatformFee())
	assert.Equal(t, 398500, o.Pricing().Total())

	at, ok := o.StatusTime(order.PendingPayment)
	require.True(t, ok)
	assert.Equal(t, createdAt, at)
	assert.Empty(t, o.Events())
}

func TestNewOrder_Invalid(t *testing.T) {
	l := newListing(t)

	t.Run("buyer owns the listing", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), l.SellerID(), l, newDelivery(t, l), 31000, order.COD, "", createdAt)
		require.ErrorIs(t, err, order.ErrBuyerIsSeller)
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), l, order.Delivery{}, -1, order.PaymentMethodUnknown, "", createdAt)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "shippingFee")
	})

	t.Run("missing listing", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, newDelivery(t, l), 0, order.COD, "", createdAt)
		require.ErrorIs(t, err, listing.ErrListingIsNotConstructed)
	})
}

func TestOrder_HappyPath(t *testing.T) {
	o := newOrder(t)

	advance(t, o, order.Completed)

	assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	assert.Equal(t, "TX-1", o.TransactionID())
	assert.Equal(t, "GHN123456", o.TrackingNumber())

	events := o.Events()
	require.Len(t, events, 5)
	assert.Equal(t, order.PendingPayment, events[0].From)
	assert.Equal(t, order.Paid, events[0].To)
	assert.Equal(t, order.System, events[0].Role)
	assert.Equal(t, order.ActionShipOrder, events[2].Action)
	assert.Equal(t, "GHN123456", events[2].TrackingNumber)
	assert.Equal(t, order.Completed, events[4].To)

	for _, s := range []order.Status{order.Paid, order.Preparing, order.Shipping, order.Delivered, order.Completed} {
		_, ok := o.StatusTime(s)
		assert.True(t, ok, s.String())
	}

	o.ClearEvents()
	assert.Empty(t, o.Events())
}

func TestOrder_Perform(t *testing.T) {
	t.Run("missing tracking number leaves order unchanged", func(t *testing.T) {
		o := newOrder(t)
		advance(t, o, order.Preparing)
		before := len(o.Events())

		err := o.Perform(order.Seller, order.ActionShipOrder, "  ", time.Now())

		require.ErrorIs(t, err, order.ErrMissingTrackingNumber)
		assert.Equal(t, order.Preparing, o.Status())
		assert.Empty(t, o.TrackingNumber())
		assert.Len(t, o.Events(), before)
	})

	t.Run("buyer cannot ship", func(t *testing.T) {
		o := newOrder(t)
		advance(t, o, order.Preparing)

		err := o.Perform(order.Buyer, order.ActionShipOrder, "GHN1", time.Now())
		require.ErrorIs(t, err, order.ErrActionNotAvailable)
	})

	t.Run("tracking number is trimmed", func(t *testing.T) {
		o := newOrder(t)
		advance(t, o, order.Preparing)

		require.NoError(t, o.Perform(order.Seller, order.ActionShipOrder, "  VTP-77 ", time.Now()))
		assert.Equal(t, "VTP-77", o.TrackingNumber())
	})

	t.Run("cancel through perform", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Perform(order.Buyer, order.ActionCancel, "", time.Now()))
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_AvailableAction(t *testing.T) {
	o := newOrder(t)

	assert.Equal(t, order.ActionPay, o.AvailableAction(order.Buyer).ActionKey)
	assert.False(t, o.AvailableAction(order.Seller).CanAct)
	assert.True(t, o.CanCancel(order.Seller))

	advance(t, o, order.Shipping)
	assert.False(t, o.CanCancel(order.Buyer))
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("paid order is refunded", func(t *testing.T) {
		o := newOrder(t)
		advance(t, o, order.Paid)

		require.NoError(t, o.Cancel(order.Seller, " out of stock ", createdAt.Add(time.Hour)))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, order.PaymentRefunded, o.PaymentStatus())
		require.NotNil(t, o.Cancellation())
		assert.Equal(t, order.Seller, o.Cancellation().By)
		assert.Equal(t, "out of stock", o.Cancellation().Reason)
	})

	t.Run("cannot cancel once shipping", func(t *testing.T) {
		o := newOrder(t)
		advance(t, o, order.Shipping)

		err := o.Cancel(order.Buyer, "changed my mind", time.Now())
		require.ErrorIs(t, err, order.ErrActionNotAvailable)
		assert.Nil(t, o.Cancellation())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel(order.System, "payment timeout", time.Now()))

		require.ErrorIs(t, o.Cancel(order.Buyer, "", time.Now()), order.ErrActionNotAvailable)
		require.ErrorIs(t, o.ConfirmPayment("TX", time.Now()), order.ErrActionNotAvailable)
	})
}

func TestOrder_Payment(t *testing.T) {
	t.Run("failed payment keeps pending", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.FailPayment("TX-FAIL"))
		assert.Equal(t, order.PendingPayment, o.Status())
		assert.Equal(t, order.PaymentFailed, o.PaymentStatus())

		// retry succeeds
		require.NoError(t, o.ConfirmPayment("TX-OK", time.Now()))
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, "TX-OK", o.TransactionID())
	})

	t.Run("payment result after payment", func(t *testing.T) {
		o := newOrder(t)
		advance(t, o, order.Paid)

		require.ErrorIs(t, o.FailPayment("TX"), order.ErrPaymentNotPending)
		require.ErrorIs(t, o.ConfirmPayment("TX", time.Now()), order.ErrActionNotAvailable)
	})
}

func TestOrder_Rate(t *testing.T) {
	rating, err := order.NewRating(5, "Đúng mô tả, đóng gói cẩn thận", time.Now())
	require.NoError(t, err)

	t.Run("only when completed", func(t *testing.T) {
		o := newOrder(t)
		advance(t, o, order.Delivered)

		require.ErrorIs(t, o.Rate(order.Buyer, rating), order.ErrOrderNotCompleted)
	})

	t.Run("once per party", func(t *testing.T) {
		o := newOrder(t)
		advance(t, o, order.Completed)

		require.NoError(t, o.Rate(order.Buyer, rating))
		require.NoError(t, o.Rate(order.Seller, rating))
		require.ErrorIs(t, o.Rate(order.Buyer, rating), order.ErrAlreadyRated)

		assert.Equal(t, 5, o.BuyerRating().Score())
		assert.NotNil(t, o.SellerRating())
	})

	t.Run("system cannot rate", func(t *testing.T) {
		o := newOrder(t)
		advance(t, o, order.Completed)

		require.Error(t, o.Rate(order.System, rating))
	})
}

func TestNewRating(t *testing.T) {
	_, err := order.NewRating(0, "", time.Now())
	require.Error(t, err)

	_, err = order.NewRating(6, "", time.Now())
	require.Error(t, err)

	_, err = order.NewRating(4, strings.Repeat("á", 1001), time.Now())
	require.Error(t, err)

	r, err := order.NewRating(4, strings.Repeat("á", 1000), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 4, r.Score())
}

func TestOrder_RoleOf(t *testing.T) {
	o := newOrder(t)

	assert.Equal(t, order.Buyer, o.RoleOf(o.BuyerID()))
	assert.Equal(t, order.Seller, o.RoleOf(o.SellerID()))
	assert.Equal(t, order.RoleUnknown, o.RoleOf(kernel.NewUUID()))

	_, err := o.ParticipantRole(kernel.NewUUID())
	require.ErrorIs(t, err, order.ErrNotParticipant)

	role, err := o.ParticipantRole(o.SellerID())
	require.NoError(t, err)
	assert.Equal(t, order.Seller, role)
}

func TestRestoreOrder(t *testing.T) {
	o := newOrder(t)
	advance(t, o, order.Shipping)

	restored, err := order.RestoreOrder(o.Snapshot())

	require.NoError(t, err)
	assert.True(t, restored.IsEqual(o))
	assert.Equal(t, o.Code(), restored.Code())
	assert.Equal(t, order.Shipping, restored.Status())
	assert.Equal(t, "GHN123456", restored.TrackingNumber())
	assert.Equal(t, o.Pricing(), restored.Pricing())
	assert.Equal(t, o.StatusTimes(), restored.StatusTimes())
	assert.Empty(t, restored.Events())

	t.Run("shipping without tracking number", func(t *testing.T) {
		s := o.Snapshot()
		s.TrackingNumber = ""

		_, err := order.RestoreOrder(s)
		require.ErrorIs(t, err, order.ErrMissingTrackingNumber)
	})

	t.Run("totals must add up", func(t *testing.T) {
		s := o.Snapshot()
		s.Total++

		_, err := order.RestoreOrder(s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "total")
	})
}

func TestOrder_ZeroValue(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
}

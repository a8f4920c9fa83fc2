package order

import (
	"errors"
	"maps"
	"strings"
	"time"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/shipping"
	"ootdverse/internal/pkg/errs"
)

// Snapshot is the flat persisted form of an Order. Repositories map their rows
// to and from it; nothing else should build one by hand.
type Snapshot struct {
	ID        kernel.UUID
	Code      string
	BuyerID   kernel.UUID
	SellerID  kernel.UUID
	ListingID kernel.UUID

	ItemPrice   int
	ShippingFee int
	PlatformFee int
	Total       int

	ShippingMethod   shipping.Method
	ShippingProvider string
	TrackingNumber   string
	ETA              *shipping.ETA
	PickupAddress    kernel.Address
	DeliveryAddress  kernel.Address
	DeliveryNote     string

	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	TransactionID string

	Status       Status
	StatusTimes  map[Status]time.Time
	CancelledBy  Role
	CancelReason string

	BuyerRating  *Rating
	SellerRating *Rating

	BuyerNote string
	CreatedAt time.Time
	Version   int
}

// RestoreOrder rebuilds an order loaded from storage, re-checking the
// invariants that do not depend on history.
func RestoreOrder(s Snapshot) (*Order, error) {
	pricing, pricingErr := restorePricing(s.ItemPrice, s.ShippingFee, s.PlatformFee, s.Total)
	delivery, deliveryErr := restoreDelivery(
		s.ShippingMethod, s.ShippingProvider, s.TrackingNumber, s.ETA,
		s.PickupAddress, s.DeliveryAddress, s.DeliveryNote,
	)

	o := &Order{
		code:          strings.TrimSpace(s.Code),
		listingID:     s.ListingID,
		pricing:       pricing,
		delivery:      delivery,
		paymentStatus: s.PaymentStatus,
		transactionID: s.TransactionID,
		status:        s.Status,
		statusTimes:   maps.Clone(s.StatusTimes),
		buyerRating:   s.BuyerRating,
		sellerRating:  s.SellerRating,
		buyerNote:     s.BuyerNote,
		createdAt:     s.CreatedAt,
		version:       s.Version,
		isConstructed: true,
	}
	if o.statusTimes == nil {
		o.statusTimes = map[Status]time.Time{}
	}
	if s.CancelledBy != RoleUnknown {
		o.cancellation = &Cancellation{By: s.CancelledBy, Reason: s.CancelReason}
	}

	if err := errors.Join(
		pricingErr,
		deliveryErr,
		o.setID(s.ID),
		o.setParties(s.BuyerID, s.SellerID),
		s.ListingID.Validate(),
		o.setPaymentMethod(s.PaymentMethod),
		s.PaymentStatus.Validate(),
		s.Status.Validate(),
		o.validateRestored(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) validateRestored() error {
	var err error
	if o.code == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("code"))
	}
	if o.status == Shipping && o.delivery.trackingNumber == "" {
		err = errors.Join(err, ErrMissingTrackingNumber)
	}
	if o.status == Cancelled && o.cancellation == nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("cancelledBy"))
	}
	if o.status != Completed && (o.buyerRating != nil || o.sellerRating != nil) {
		err = errors.Join(err, ErrOrderNotCompleted)
	}
	return err
}

// Snapshot flattens the order for persistence.
func (o *Order) Snapshot() Snapshot {
	s := Snapshot{
		ID:               o.id,
		Code:             o.code,
		BuyerID:          o.buyerID,
		SellerID:         o.sellerID,
		ListingID:        o.listingID,
		ItemPrice:        o.pricing.itemPrice,
		ShippingFee:      o.pricing.shippingFee,
		PlatformFee:      o.pricing.platformFee,
		Total:            o.pricing.total,
		ShippingMethod:   o.delivery.method,
		ShippingProvider: o.delivery.providerName,
		TrackingNumber:   o.delivery.trackingNumber,
		ETA:              o.delivery.eta,
		PickupAddress:    o.delivery.pickup,
		DeliveryAddress:  o.delivery.destination,
		DeliveryNote:     o.delivery.note,
		PaymentMethod:    o.paymentMethod,
		PaymentStatus:    o.paymentStatus,
		TransactionID:    o.transactionID,
		Status:           o.status,
		StatusTimes:      maps.Clone(o.statusTimes),
		BuyerRating:      o.buyerRating,
		SellerRating:     o.sellerRating,
		BuyerNote:        o.buyerNote,
		CreatedAt:        o.createdAt,
		Version:          o.version,
	}
	if o.cancellation != nil {
		s.CancelledBy = o.cancellation.By
		s.CancelReason = o.cancellation.Reason
	}
	return s
}

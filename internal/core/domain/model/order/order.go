package order

import (
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"
	"strings"
	"time"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/listing"
	"ootdverse/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrBuyerIsSeller is returned when a seller tries to buy their own listing.
	ErrBuyerIsSeller = errors.New("buyer cannot order their own listing")

	// ErrOrderNotCompleted is returned when rating an order that is not completed.
	ErrOrderNotCompleted = errors.New("order can only be rated once completed")

	// ErrNotParticipant is returned when a user acts on an order they neither
	// bought nor sold.
	ErrNotParticipant = errors.New("user is not a party to this order")

	// ErrPaymentNotPending is returned when a payment result arrives for an
	// order that is no longer waiting for payment.
	ErrPaymentNotPending = errors.New("order is not waiting for payment")
)

const (
	orderCodePrefix   = "ORD"
	orderCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderCodeSuffix   = 4
)

// Cancellation records who cancelled an order and why.
type Cancellation struct {
	By     Role
	Reason string
}

// Order is the aggregate root of a marketplace purchase. It moves through the
// statuses defined in Status, and only through StateMachine.
//
// Order follows these invariants:
//   - buyer and seller are different users
//   - pricing adds up and the platform fee is 5% of the item price
//   - a tracking number is present once the order is shipping
//   - each status is entered at most once and its time is recorded
//   - ratings exist only on completed orders, at most one per party
type Order struct {
	id        kernel.UUID
	code      string
	buyerID   kernel.UUID
	sellerID  kernel.UUID
	listingID kernel.UUID

	pricing  Pricing
	delivery Delivery

	paymentMethod PaymentMethod
	paymentStatus PaymentStatus
	transactionID string

	status       Status
	statusTimes  map[Status]time.Time
	cancellation *Cancellation

	// buyerRating is the buyer's rating of the seller; sellerRating the reverse.
	buyerRating  *Rating
	sellerRating *Rating

	buyerNote string
	createdAt time.Time

	// version is the persisted version this instance was loaded at.
	version int

	events []StatusChanged

	isConstructed bool
}

// NewOrder places an order on a listing. The order starts in PendingPayment
// with a pending payment.
//
// Parameters:
//   - id: unique identifier for the order
//   - buyerID: the purchasing user, who must not own the listing
//   - l: the listing being bought; its price becomes the item price
//   - delivery: delivery details built from the selected shipping option
//   - shippingFee: the fee of the selected shipping option
//   - paymentMethod: vnpay, momo, cod or bank_transfer
//   - buyerNote: free text for the seller, may be empty
//   - now: creation time, also used for the order code date
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), buyerID, l, delivery, 31000, order.COD, "", time.Now())
func NewOrder(
	id, buyerID kernel.UUID,
	l *listing.Listing,
	delivery Delivery,
	shippingFee int,
	paymentMethod PaymentMethod,
	buyerNote string,
	now time.Time,
) (*Order, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	pricing, err := NewPricing(l.Price(), shippingFee)
	if err != nil {
		return nil, err
	}

	o := &Order{
		code:          newOrderCode(now),
		listingID:     l.ID(),
		pricing:       pricing,
		delivery:      delivery,
		paymentStatus: PaymentPending,
		status:        PendingPayment,
		statusTimes:   map[Status]time.Time{PendingPayment: now},
		buyerNote:     strings.TrimSpace(buyerNote),
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(buyerID, l.SellerID()),
		o.setPaymentMethod(paymentMethod),
		o.delivery.method.Validate(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// newOrderCode returns ORD + yyyymmdd + 4 random upper case alphanumerics.
func newOrderCode(now time.Time) string {
	var b strings.Builder
	b.WriteString(orderCodePrefix)
	b.WriteString(now.Format("20060102"))
	for range orderCodeSuffix {
		b.WriteByte(orderCodeAlphabet[rand.IntN(len(orderCodeAlphabet))]) //nolint:gosec // not security sensitive
	}
	return b.String()
}

// RenewCode draws a new random suffix for the order code and keeps its date.
// Repositories call it when the code is already taken.
func (o *Order) RenewCode() {
	o.code = newOrderCode(o.createdAt)
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) Code() string                 { return o.code }
func (o *Order) BuyerID() kernel.UUID         { return o.buyerID }
func (o *Order) SellerID() kernel.UUID        { return o.sellerID }
func (o *Order) ListingID() kernel.UUID       { return o.listingID }
func (o *Order) Pricing() Pricing             { return o.pricing }
func (o *Order) Delivery() Delivery           { return o.delivery }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) TransactionID() string        { return o.transactionID }
func (o *Order) Status() Status               { return o.status }
func (o *Order) Cancellation() *Cancellation  { return o.cancellation }
func (o *Order) BuyerRating() *Rating         { return o.buyerRating }
func (o *Order) SellerRating() *Rating        { return o.sellerRating }
func (o *Order) BuyerNote() string            { return o.buyerNote }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) Version() int                 { return o.version }
func (o *Order) TrackingNumber() string       { return o.delivery.trackingNumber }

// StatusTime returns when the order entered the status.
func (o *Order) StatusTime(s Status) (time.Time, bool) {
	t, ok := o.statusTimes[s]
	return t, ok
}

// StatusTimes returns a copy of every recorded status time.
func (o *Order) StatusTimes() map[Status]time.Time {
	return maps.Clone(o.statusTimes)
}

// RoleOf returns the role a user plays on this order, or RoleUnknown if the
// user is neither the buyer nor the seller.
func (o *Order) RoleOf(userID kernel.UUID) Role {
	switch {
	case o.buyerID.IsEqual(userID):
		return Buyer
	case o.sellerID.IsEqual(userID):
		return Seller
	default:
		return RoleUnknown
	}
}

// ParticipantRole is RoleOf for callers that must reject outsiders.
func (o *Order) ParticipantRole(userID kernel.UUID) (Role, error) {
	role := o.RoleOf(userID)
	if role == RoleUnknown {
		return RoleUnknown, ErrNotParticipant
	}
	return role, nil
}

// AvailableAction returns what the role can do on the order right now.
func (o *Order) AvailableAction(role Role) ActionDescriptor {
	return StateMachine{}.AvailableAction(o.status, role)
}

// CanCancel reports whether the role may cancel the order right now.
func (o *Order) CanCancel(role Role) bool {
	return StateMachine{}.CanCancel(o.status, role)
}

// Perform applies a table action for the role. The tracking number is only
// read for ship_order, where it is required.
//
// Returns:
//   - ErrActionNotAvailable if the table has no such action for the role now
//   - ErrMissingTrackingNumber if ship_order has a blank tracking number
//
// On error the order is left unchanged.
//
// Example:
//
//	err := o.Perform(order.Seller, order.ActionShipOrder, "GHN123456", time.Now())
func (o *Order) Perform(role Role, action Action, trackingNumber string, now time.Time) error {
	if action == ActionCancel {
		return o.Cancel(role, "", now)
	}

	next, err := StateMachine{}.Next(o.status, role, action, trackingNumber)
	if err != nil {
		return err
	}

	if action == ActionShipOrder {
		o.delivery.trackingNumber = strings.TrimSpace(trackingNumber)
	}

	o.moveTo(next, role, action, now)
	return nil
}

// Cancel cancels the order on behalf of the role. Cancellation is only possible
// before the order ships.
func (o *Order) Cancel(role Role, reason string, now time.Time) error {
	next, err := StateMachine{}.Next(o.status, role, ActionCancel, "")
	if err != nil {
		return err
	}

	o.cancellation = &Cancellation{By: role, Reason: strings.TrimSpace(reason)}
	if o.paymentStatus == PaymentPaid {
		o.paymentStatus = PaymentRefunded
	}

	o.moveTo(next, role, ActionCancel, now)
	return nil
}

// ConfirmPayment records a successful payment reported by the payment provider
// and moves the order to Paid.
func (o *Order) ConfirmPayment(transactionID string, now time.Time) error {
	next, err := StateMachine{}.Next(o.status, System, ActionConfirmPayment, "")
	if err != nil {
		return err
	}

	o.paymentStatus = PaymentPaid
	o.transactionID = strings.TrimSpace(transactionID)

	o.moveTo(next, System, ActionConfirmPayment, now)
	return nil
}

// FailPayment records a failed payment attempt. The order stays in
// PendingPayment so the buyer can retry.
func (o *Order) FailPayment(transactionID string) error {
	if o.status != PendingPayment {
		return fmt.Errorf("%w: order is %s", ErrPaymentNotPending, o.status)
	}

	o.paymentStatus = PaymentFailed
	o.transactionID = strings.TrimSpace(transactionID)
	return nil
}

// Rate stores the role's rating of the other party. Buyers rate sellers and
// sellers rate buyers, once each, after completion.
func (o *Order) Rate(role Role, rating Rating) error {
	if o.status != Completed {
		return fmt.Errorf("%w: order is %s", ErrOrderNotCompleted, o.status)
	}

	switch role {
	case Buyer:
		if o.buyerRating != nil {
			return ErrAlreadyRated
		}
		o.buyerRating = &rating
	case Seller:
		if o.sellerRating != nil {
			return ErrAlreadyRated
		}
		o.sellerRating = &rating
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%s cannot rate an order", role))
	}

	return nil
}

// Events returns the status changes recorded since the order was loaded.
func (o *Order) Events() []StatusChanged {
	return append([]StatusChanged(nil), o.events...)
}

// ClearEvents drops recorded events once they have been published.
func (o *Order) ClearEvents() {
	o.events = nil
}

// IncrementVersion is called by repositories after an update was stored, so a
// second update through the same instance is checked against the new version.
func (o *Order) IncrementVersion() {
	o.version++
}

func (o *Order) moveTo(next Status, role Role, action Action, now time.Time) {
	o.events = append(o.events, StatusChanged{
		OrderID:        o.id,
		OrderCode:      o.code,
		BuyerID:        o.buyerID,
		SellerID:       o.sellerID,
		ListingID:      o.listingID,
		From:           o.status,
		To:             next,
		Action:         action,
		Role:           role,
		TrackingNumber: o.delivery.trackingNumber,
		OccurredAt:     now,
	})

	o.status = next
	o.statusTimes[next] = now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(buyerID, sellerID kernel.UUID) error {
	if err := errors.Join(buyerID.Validate(), sellerID.Validate()); err != nil {
		return err
	}
	if buyerID.IsEqual(sellerID) {
		return ErrBuyerIsSeller
	}
	o.buyerID = buyerID
	o.sellerID = sellerID
	return nil
}

func (o *Order) setPaymentMethod(m PaymentMethod) error {
	if err := m.Validate(); err != nil {
		return err
	}
	o.paymentMethod = m
	return nil
}

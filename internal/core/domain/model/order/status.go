package order

import (
	"fmt"

	"ootdverse/internal/pkg/errs"
)

// Status represents the fulfillment stage of an order.
//
// State transitions (initial = PendingPayment):
//
//	PendingPayment ──(payment confirmed)──> Paid
//	Paid ──seller:start_preparing──> Preparing
//	Preparing ──seller:ship_order──> Shipping
//	Shipping ──seller:mark_delivered──> Delivered
//	Delivered ──buyer:confirm_delivery──> Completed
//	{PendingPayment, Paid, Preparing} ──cancel──> Cancelled
//
// Completed and Cancelled are terminal. The transitions themselves are owned by
// StateMachine; Status only names the stages.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingPayment is the initial status: the buyer placed the order and the
	// payment provider has not confirmed payment yet.
	PendingPayment

	// Paid means payment was confirmed and the seller has to prepare the item.
	Paid

	// Preparing means the seller is packing the item.
	Preparing

	// Shipping means the parcel was handed to the carrier with a tracking number.
	Shipping

	// Delivered means the carrier reported delivery; the buyer still has to
	// confirm receipt.
	Delivered

	// Completed is terminal: the buyer confirmed receipt.
	Completed

	// Cancelled is terminal: the order was cancelled before shipping.
	Cancelled
)

// getValidStatusStrings returns the wire keys of every valid Status.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingPayment: "pending_payment",
		Paid:           "paid",
		Preparing:      "preparing",
		Shipping:       "shipping",
		Delivered:      "delivered",
		Completed:      "completed",
		Cancelled:      "cancelled",
	}
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{PendingPayment, Paid, Preparing, Shipping, Delivered, Completed, Cancelled}
}

// ParseStatus converts a wire key such as "pending_payment" into a Status.
//
// Returns:
//   - the matching Status
//   - Unknown and a ValueIsInvalidError if the key is not recognised
func ParseStatus(key string) (Status, error) {
	for s, k := range getValidStatusStrings() {
		if k == key {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid status", key))
}

// Validate checks if the Status value is valid.
//
// Unknown (0) and any value outside the seven lifecycle stages are invalid.
// This is used for Status values coming from the database or the API.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire key of the status, or "unknown" for invalid values.
//
// Example:
//
//	fmt.Println(order.Preparing) // Output: "preparing"
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves the status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// MarshalText encodes the status as its wire key.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a wire key.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

package order

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrActionNotAvailable is returned when an action is not in the transition
	// table for the current status and role.
	ErrActionNotAvailable = errors.New("action is not available for this order")

	// ErrMissingTrackingNumber is returned when ship_order is attempted without a
	// tracking number. The caller should ask for one and retry.
	ErrMissingTrackingNumber = errors.New("tracking number is required to ship the order")

	// ErrPaymentIsExternal is returned when pay is performed directly. Payment
	// completes through the payment provider, which then confirms it.
	ErrPaymentIsExternal = errors.New("payment is completed by the payment provider")
)

const noActionDescription = "No action available"

// transition is one row of the transition table. A zero action means the role
// can only watch the order in that status.
type transition struct {
	action                 Action
	next                   Status
	requiresTrackingNumber bool
	description            string
}

type transitionKey struct {
	role   Role
	status Status
}

// transitions is the authoritative table of per-role actions.
var transitions = map[transitionKey]transition{
	{Buyer, PendingPayment}: {action: ActionPay, description: "Complete the payment to confirm your order"},
	{Buyer, Paid}:           {description: "The seller is getting your item ready"},
	{Buyer, Preparing}:      {description: "The seller is packing your item"},
	{Buyer, Shipping}:       {description: "Your order is on its way"},
	{Buyer, Delivered}: {
		action:      ActionConfirmDelivery,
		next:        Completed,
		description: "Check the item and confirm you received it",
	},
	{Buyer, Completed}: {description: "Order completed"},
	{Buyer, Cancelled}: {description: "Order cancelled"},

	{Seller, PendingPayment}: {description: "Waiting for the buyer to pay"},
	{Seller, Paid}: {
		action:      ActionStartPreparing,
		next:        Preparing,
		description: "Payment received, start preparing the item",
	},
	{Seller, Preparing}: {
		action:                 ActionShipOrder,
		next:                   Shipping,
		requiresTrackingNumber: true,
		description:            "Hand the parcel to the carrier and enter the tracking number",
	},
	{Seller, Shipping}: {
		action:      ActionMarkDelivered,
		next:        Delivered,
		description: "Mark the order as delivered once the carrier confirms",
	},
	{Seller, Delivered}: {description: "Waiting for the buyer to confirm receipt"},
	{Seller, Completed}: {description: "Order completed"},
	{Seller, Cancelled}: {description: "Order cancelled"},

	{System, PendingPayment}: {
		action:      ActionConfirmPayment,
		next:        Paid,
		description: "Confirm payment reported by the payment provider",
	},
}

// cancellable lists the statuses from which cancel leads to Cancelled.
var cancellable = map[Status]struct{}{
	PendingPayment: {},
	Paid:           {},
	Preparing:      {},
}

// cancelRoles lists who may cancel. Cancellation is approved immediately.
var cancelRoles = map[Role]struct{}{
	Buyer:  {},
	Seller: {},
	System: {},
}

// StateMachine answers which action a role may take on an order and what the
// resulting status is. It has no state; the zero value is ready to use.
type StateMachine struct{}

// AvailableAction returns the descriptor for the role at the status. Pairs that
// are not in the table yield a "no action" descriptor rather than an error.
//
// Example:
//
//	d := order.StateMachine{}.AvailableAction(order.Preparing, order.Seller)
//	// d.ActionKey == "ship_order", d.NextStatus == order.Shipping,
//	// d.RequiresTrackingNumber == true
func (StateMachine) AvailableAction(status Status, role Role) ActionDescriptor {
	t, ok := transitions[transitionKey{role: role, status: status}]
	if !ok {
		return ActionDescriptor{HumanDescription: noActionDescription}
	}

	return ActionDescriptor{
		CanAct:                 t.action != NoAction,
		ActionKey:              t.action,
		NextStatus:             t.next,
		RequiresTrackingNumber: t.requiresTrackingNumber,
		HumanDescription:       t.description,
	}
}

// CanCancel reports whether the role may cancel at the status.
func (StateMachine) CanCancel(status Status, role Role) bool {
	if _, ok := cancelRoles[role]; !ok {
		return false
	}
	_, ok := cancellable[status]
	return ok
}

// Next validates an action against the table and returns the status the order
// moves to.
//
// Returns:
//   - ErrActionNotAvailable if the role cannot take the action at the status
//   - ErrMissingTrackingNumber if ship_order is attempted with a blank number
//   - ErrPaymentIsExternal for pay, which has no direct status change
func (m StateMachine) Next(status Status, role Role, action Action, trackingNumber string) (Status, error) {
	if action == ActionCancel {
		if !m.CanCancel(status, role) {
			return Unknown, notAvailable(status, role, action)
		}
		return Cancelled, nil
	}

	t, ok := transitions[transitionKey{role: role, status: status}]
	if !ok || t.action == NoAction || t.action != action {
		return Unknown, notAvailable(status, role, action)
	}

	if t.next == Unknown {
		return Unknown, ErrPaymentIsExternal
	}

	if t.requiresTrackingNumber && strings.TrimSpace(trackingNumber) == "" {
		return Unknown, ErrMissingTrackingNumber
	}

	return t.next, nil
}

func notAvailable(status Status, role Role, action Action) error {
	return fmt.Errorf("%w: %s cannot %s when order is %s", ErrActionNotAvailable, role, action, status)
}

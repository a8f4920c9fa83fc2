package commands

import (
	"errors"
	"strings"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/pkg/errs"
	"ootdverse/internal/pkg/guard"
)

var ErrPerformOrderActionCommandIsNotConstructed = errors.New(
	"PerformOrderActionCommand must be created via NewPerformOrderActionCommand constructor",
)

// PerformOrderActionCommand asks to apply an action from the transition table
// on behalf of a user. The user's role is derived from the order.
type PerformOrderActionCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	actorID        kernel.UUID
	action         order.Action
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewPerformOrderActionCommand validates the identifiers and that the action is
// known. The tracking number is checked against the table by the order itself.
func NewPerformOrderActionCommand(
	orderID, actorID kernel.UUID,
	action order.Action,
	trackingNumber string,
) (PerformOrderActionCommand, error) {
	cmd := PerformOrderActionCommand{
		trackingNumber: strings.TrimSpace(trackingNumber),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
		cmd.setAction(action),
	); err != nil {
		return PerformOrderActionCommand{}, err
	}
	cmd.orderID = orderID
	cmd.actorID = actorID

	return cmd, nil
}

func (c PerformOrderActionCommand) Validate() error {
	return c.guard.Validate(ErrPerformOrderActionCommandIsNotConstructed)
}

func (c PerformOrderActionCommand) OrderID() kernel.UUID   { return c.orderID }
func (c PerformOrderActionCommand) ActorID() kernel.UUID   { return c.actorID }
func (c PerformOrderActionCommand) Action() order.Action   { return c.action }
func (c PerformOrderActionCommand) TrackingNumber() string { return c.trackingNumber }

func (c *PerformOrderActionCommand) setAction(action order.Action) error {
	parsed, err := order.ParseAction(string(action))
	if err != nil {
		return err
	}
	if parsed == order.ActionConfirmPayment {
		return errs.NewValueIsInvalidError("action")
	}
	c.action = parsed
	return nil
}

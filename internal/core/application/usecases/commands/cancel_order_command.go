package commands

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/pkg/errs"
	"ootdverse/internal/pkg/guard"
)

const maxCancelReasonLength = 500

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels an order before it ships.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID, actorID kernel.UUID, reason string) (CancelOrderCommand, error) {
	reason = strings.TrimSpace(reason)

	err := errors.Join(orderID.Validate(), actorID.Validate())
	if n := utf8.RuneCountInString(reason); n > maxCancelReasonLength {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"reason", fmt.Errorf("%d characters exceeds %d", n, maxCancelReasonLength)))
	}
	if err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID: orderID,
		actorID: actorID,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c CancelOrderCommand) ActorID() kernel.UUID { return c.actorID }
func (c CancelOrderCommand) Reason() string       { return c.reason }

package commands

import (
	"errors"
	"strings"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/pkg/errs"
	"ootdverse/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand carries a payment result reported by the payment
// provider. Only paid and failed results are accepted.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	result        order.PaymentStatus
	transactionID string

	guard guard.ConstructorGuard
}

func NewRecordPaymentCommand(
	orderID kernel.UUID,
	result order.PaymentStatus,
	transactionID string,
) (RecordPaymentCommand, error) {
	err := orderID.Validate()
	if result != order.PaymentPaid && result != order.PaymentFailed {
		err = errors.Join(err, errs.NewValueIsInvalidError("paymentStatus"))
	}
	transactionID = strings.TrimSpace(transactionID)
	if result == order.PaymentPaid && transactionID == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("transactionId"))
	}
	if err != nil {
		return RecordPaymentCommand{}, err
	}

	return RecordPaymentCommand{
		orderID:       orderID,
		result:        result,
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

func (c RecordPaymentCommand) OrderID() kernel.UUID        { return c.orderID }
func (c RecordPaymentCommand) Result() order.PaymentStatus { return c.result }
func (c RecordPaymentCommand) TransactionID() string       { return c.transactionID }

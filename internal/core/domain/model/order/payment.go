package order

import (
	"fmt"

	"ootdverse/internal/pkg/errs"
)

// PaymentMethod is how the buyer pays for the order.
type PaymentMethod int

const (
	PaymentMethodUnknown PaymentMethod = iota
	VNPay
	MoMo
	COD
	BankTransfer
)

var paymentMethodKeys = map[PaymentMethod]string{
	VNPay:        "vnpay",
	MoMo:         "momo",
	COD:          "cod",
	BankTransfer: "bank_transfer",
}

func ParsePaymentMethod(key string) (PaymentMethod, error) {
	for m, k := range paymentMethodKeys {
		if k == key {
			return m, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", fmt.Errorf("%q is not a supported payment method", key))
}

func (m PaymentMethod) Validate() error {
	if _, ok := paymentMethodKeys[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

func (m PaymentMethod) String() string {
	if k, ok := paymentMethodKeys[m]; ok {
		return k
	}
	return "unknown"
}

// PaymentStatus tracks the payment independently of the order status, so a
// failed attempt is visible while the order stays pending_payment.
type PaymentStatus int

const (
	PaymentStatusUnknown PaymentStatus = iota
	PaymentPending
	PaymentPaid
	PaymentFailed
	PaymentRefunded
)

var paymentStatusKeys = map[PaymentStatus]string{
	PaymentPending:  "pending",
	PaymentPaid:     "paid",
	PaymentFailed:   "failed",
	PaymentRefunded: "refunded",
}

func ParsePaymentStatus(key string) (PaymentStatus, error) {
	for s, k := range paymentStatusKeys {
		if k == key {
			return s, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a valid payment status", key))
}

func (s PaymentStatus) Validate() error {
	if _, ok := paymentStatusKeys[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

func (s PaymentStatus) String() string {
	if k, ok := paymentStatusKeys[s]; ok {
		return k
	}
	return "unknown"
}

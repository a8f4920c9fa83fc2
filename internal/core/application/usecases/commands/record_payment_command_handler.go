package commands

import (
	"context"
	"time"

	"ootdverse/internal/core/domain/model/order"
)

// RecordPaymentCommandHandler applies a payment provider result. A successful
// payment moves the order to paid; a failed one keeps it pending_payment so
// the buyer can retry.
type RecordPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRecordPaymentCommandHandler(uowFactory OrderUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{uowFactory: uowFactory}
}

func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Result() == order.PaymentPaid {
		err = o.ConfirmPayment(cmd.TransactionID(), time.Now().UTC())
	} else {
		err = o.FailPayment(cmd.TransactionID())
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package queries

import (
	"errors"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/pkg/guard"
)

var ErrGetOrderActionsQueryIsNotConstructed = errors.New(
	"GetOrderActionsQuery must be created via NewGetOrderActionsQuery constructor",
)

// GetOrderActionsQuery asks what the session user can do on an order right now.
type GetOrderActionsQuery struct {
	orderID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderActionsQuery(orderID, userID kernel.UUID) (GetOrderActionsQuery, error) {
	if err := errors.Join(orderID.Validate(), userID.Validate()); err != nil {
		return GetOrderActionsQuery{}, err
	}
	return GetOrderActionsQuery{
		orderID: orderID,
		userID:  userID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderActionsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderActionsQueryIsNotConstructed)
}

func (q GetOrderActionsQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetOrderActionsQuery) UserID() kernel.UUID  { return q.userID }

// GetOrderActionsQueryResponse is the primary action for the user's role plus
// whether the user may cancel.
type GetOrderActionsQueryResponse struct {
	Status    order.Status
	Role      order.Role
	Action    order.ActionDescriptor
	CanCancel bool
}

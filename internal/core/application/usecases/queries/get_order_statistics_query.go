package queries

import (
	"errors"
	"fmt"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/pkg/errs"
	"ootdverse/internal/pkg/guard"
)

var ErrGetOrderStatisticsQueryIsNotConstructed = errors.New(
	"GetOrderStatisticsQuery must be created via NewGetOrderStatisticsQuery constructor",
)

// GetOrderStatisticsQuery summarises a user's orders as buyer or as seller.
type GetOrderStatisticsQuery struct {
	userID kernel.UUID
	role   order.Role

	guard guard.ConstructorGuard
}

// NewGetOrderStatisticsQuery defaults to the seller view when role is RoleUnknown.
func NewGetOrderStatisticsQuery(userID kernel.UUID, role order.Role) (GetOrderStatisticsQuery, error) {
	if role == order.RoleUnknown {
		role = order.Seller
	}

	err := userID.Validate()
	if role != order.Buyer && role != order.Seller {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%s has no orders", role)))
	}
	if err != nil {
		return GetOrderStatisticsQuery{}, err
	}

	return GetOrderStatisticsQuery{
		userID: userID,
		role:   role,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatisticsQueryIsNotConstructed)
}

func (q GetOrderStatisticsQuery) UserID() kernel.UUID { return q.userID }
func (q GetOrderStatisticsQuery) Role() order.Role    { return q.role }

// GetOrderStatisticsQueryResponse holds order counts and the value of
// completed orders. AverageRating is the mean score the other side left, or 0
// when nobody rated yet.
type GetOrderStatisticsQueryResponse struct {
	TotalOrders       int64
	ActiveOrders      int64
	CompletedOrders   int64
	CancelledOrders   int64
	TotalRevenue      int64
	AverageOrderValue float64
	RatingCount       int64
	AverageRating     float64
}

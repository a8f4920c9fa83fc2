package queries

import (
	"errors"
	"fmt"
	"time"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/core/domain/model/shipping"
	"ootdverse/internal/pkg/errs"
	"ootdverse/internal/pkg/guard"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery pages through a user's orders, newest first.
//
// Role narrows the list to orders where the user is the buyer or the seller;
// RoleUnknown returns both. Unknown status means any status.
//
// Example:
//
//	query, err := NewListOrdersQuery(userID, order.Seller, order.Paid, 1, 20)
type ListOrdersQuery struct {
	userID   kernel.UUID
	role     order.Role
	status   order.Status
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery defaults page to 1 and pageSize to DefaultPageSize when
// they are not positive.
func NewListOrdersQuery(
	userID kernel.UUID,
	role order.Role,
	status order.Status,
	page, pageSize int,
) (ListOrdersQuery, error) {
	err := userID.Validate()
	if role != order.RoleUnknown && role != order.Buyer && role != order.Seller {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%s has no orders", role)))
	}
	if status != order.Unknown {
		err = errors.Join(err, status.Validate())
	}
	if pageSize > MaxPageSize {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, MaxPageSize))
	}
	if err != nil {
		return ListOrdersQuery{}, err
	}

	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return ListOrdersQuery{
		userID:   userID,
		role:     role,
		status:   status,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) UserID() kernel.UUID  { return q.userID }
func (q ListOrdersQuery) Role() order.Role     { return q.role }
func (q ListOrdersQuery) Status() order.Status { return q.status }
func (q ListOrdersQuery) Page() int            { return q.page }
func (q ListOrdersQuery) PageSize() int        { return q.pageSize }
func (q ListOrdersQuery) Offset() int          { return (q.page - 1) * q.pageSize }

// OrderSummary is one row of an order list.
type OrderSummary struct {
	ID             kernel.UUID
	Code           string
	ListingID      kernel.UUID
	ListingTitle   string
	Role           order.Role
	Status         order.Status
	ShippingMethod shipping.Method
	TrackingNumber string
	Total          int
	CreatedAt      time.Time
}

// ListOrdersQueryResponse is one page of orders plus the unpaged total.
type ListOrdersQueryResponse struct {
	Items      []OrderSummary
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
}

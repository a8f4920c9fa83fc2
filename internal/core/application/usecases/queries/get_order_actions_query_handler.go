package queries

import (
	"context"
	"database/sql"
	"errors"

	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderActionsQueryHandler answers action lookups from the orders table
// without loading the whole aggregate.
type GetOrderActionsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderActionsQueryHandler(db *gorm.DB) GetOrderActionsQueryHandler {
	return GetOrderActionsQueryHandler{db: db}
}

// Handle returns order.ErrNotParticipant when the user is neither the buyer
// nor the seller, and errs.ObjectNotFoundError for an unknown order.
func (h GetOrderActionsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderActionsQuery,
) (GetOrderActionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderActionsQueryResponse{}, err
	}

	var (
		statusKey         string
		buyerID, sellerID uuid.UUID
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT status, buyer_id, seller_id
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row().Scan(&statusKey, &buyerID, &sellerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderActionsQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderActionsQueryResponse{}, err
	}

	status, err := order.ParseStatus(statusKey)
	if err != nil {
		return GetOrderActionsQueryResponse{}, err
	}

	var role order.Role
	switch query.UserID().Bytes() {
	case buyerID:
		role = order.Buyer
	case sellerID:
		role = order.Seller
	default:
		return GetOrderActionsQueryResponse{}, order.ErrNotParticipant
	}

	sm := order.StateMachine{}
	return GetOrderActionsQueryResponse{
		Status:    status,
		Role:      role,
		Action:    sm.AvailableAction(status, role),
		CanCancel: sm.CanCancel(status, role),
	}, nil
}

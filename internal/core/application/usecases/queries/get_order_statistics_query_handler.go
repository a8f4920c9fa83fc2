package queries

import (
	"context"

	"ootdverse/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetOrderStatisticsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatisticsQueryHandler(db *gorm.DB) GetOrderStatisticsQueryHandler {
	return GetOrderStatisticsQueryHandler{db: db}
}

// Handle aggregates in one statement. A seller is rated by buyers
// (buyer_rating_score) and a buyer by sellers (seller_rating_score).
func (h GetOrderStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatisticsQuery,
) (GetOrderStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}

	party, ratingColumn := "seller_id", "buyer_rating_score"
	if query.Role() == order.Buyer {
		party, ratingColumn = "buyer_id", "seller_rating_score"
	}

	var resp GetOrderStatisticsQueryResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status NOT IN (?, ?)),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COALESCE(SUM(total) FILTER (WHERE status = ?), 0)::bigint,
			COALESCE(AVG(total) FILTER (WHERE status = ?), 0)::float8,
			COUNT(`+ratingColumn+`),
			COALESCE(AVG(`+ratingColumn+`), 0)::float8
		FROM orders
		WHERE `+party+` = ?
	`,
		order.Completed.String(), order.Cancelled.String(),
		order.Completed.String(),
		order.Cancelled.String(),
		order.Completed.String(),
		order.Completed.String(),
		query.UserID().Bytes(),
	).Row().Scan(
		&resp.TotalOrders,
		&resp.ActiveOrders,
		&resp.CompletedOrders,
		&resp.CancelledOrders,
		&resp.TotalRevenue,
		&resp.AverageOrderValue,
		&resp.RatingCount,
		&resp.AverageRating,
	)
	if err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}

	return resp, nil
}

package queries

import (
	"context"
	"strings"
	"time"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/core/domain/model/shipping"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order lists straight from the orders table,
// joined with listings for the title.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns an empty, non-nil page when nothing matches.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where, args := listOrdersFilter(query)

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders o WHERE "+where, args...).
		Row().Scan(&total)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.code,
			o.listing_id,
			COALESCE(l.title, ''),
			o.buyer_id,
			o.status,
			o.shipping_method,
			o.tracking_number,
			o.total,
			o.created_at
		FROM orders o
		LEFT JOIN listings l ON l.id = o.listing_id
		WHERE `+where+`
		ORDER BY o.created_at DESC, o.id
		LIMIT ? OFFSET ?
	`, append(args, query.PageSize(), query.Offset())...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]OrderSummary, 0, query.PageSize())
	for rows.Next() {
		var (
			item                   OrderSummary
			id, listingID, buyerID uuid.UUID
			statusKey, methodKey   string
			createdAt              time.Time
		)
		if err = rows.Scan(
			&id,
			&item.Code,
			&listingID,
			&item.ListingTitle,
			&buyerID,
			&statusKey,
			&methodKey,
			&item.TrackingNumber,
			&item.Total,
			&createdAt,
		); err != nil {
			return ListOrdersQueryResponse{}, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ListOrdersQueryResponse{}, err
		}
		if item.ListingID, err = kernel.UUIDFromBytes(listingID[:]); err != nil {
			return ListOrdersQueryResponse{}, err
		}
		if item.Status, err = order.ParseStatus(statusKey); err != nil {
			return ListOrdersQueryResponse{}, err
		}
		if item.ShippingMethod, err = shipping.ParseMethod(methodKey); err != nil {
			return ListOrdersQueryResponse{}, err
		}

		item.Role = order.Seller
		if buyerID == query.UserID().Bytes() {
			item.Role = order.Buyer
		}
		item.CreatedAt = createdAt.UTC()
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Items:      items,
		Page:       query.Page(),
		PageSize:   query.PageSize(),
		Total:      total,
		TotalPages: int((total + int64(query.PageSize()) - 1) / int64(query.PageSize())),
	}, nil
}

func listOrdersFilter(query ListOrdersQuery) (string, []any) {
	userID := query.UserID().Bytes()

	var (
		conds []string
		args  []any
	)
	switch query.Role() {
	case order.Buyer:
		conds = append(conds, "o.buyer_id = ?")
		args = append(args, userID)
	case order.Seller:
		conds = append(conds, "o.seller_id = ?")
		args = append(args, userID)
	default:
		conds = append(conds, "(o.buyer_id = ? OR o.seller_id = ?)")
		args = append(args, userID, userID)
	}

	if query.Status() != order.Unknown {
		conds = append(conds, "o.status = ?")
		args = append(args, query.Status().String())
	}

	return strings.Join(conds, " AND "), args
}

package http

import (
	"time"

	"ootdverse/internal/adapters/in/http/servers"
	"ootdverse/internal/core/application/usecases/queries"
	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/core/domain/model/shipping"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toAddress(a servers.Address) kernel.Address {
	return kernel.NewAddress(a.Province, a.District, a.Ward, a.Street).
		WithRecipient(a.FullName, a.Phone)
}

func fromAddress(a kernel.Address) servers.Address {
	return servers.Address{
		FullName: a.FullName(),
		Phone:    a.Phone(),
		Province: a.Province(),
		District: a.District(),
		Ward:     a.Ward(),
		Street:   a.Street(),
	}
}

func toEta(eta *shipping.ETA) *servers.Eta {
	if eta == nil {
		return nil
	}
	return &servers.Eta{MinDays: eta.MinDays(), MaxDays: eta.MaxDays()}
}

func toActionDescriptor(d order.ActionDescriptor) servers.ActionDescriptor {
	out := servers.ActionDescriptor{
		CanAct:                 d.CanAct,
		ActionKey:              string(d.ActionKey),
		RequiresTrackingNumber: d.RequiresTrackingNumber,
		HumanDescription:       d.HumanDescription,
	}
	if d.NextStatus != order.Unknown {
		out.NextStatus = d.NextStatus.String()
	}
	return out
}

func toRating(r *order.Rating) *servers.Rating {
	if r == nil {
		return nil
	}
	return &servers.Rating{
		Rating:  r.Score(),
		Review:  r.Review(),
		RatedAt: r.RatedAt().UTC(),
	}
}

func toOrderDetails(resp queries.GetOrderQueryResponse) servers.OrderDetails {
	o := resp.Order
	delivery := o.Delivery()
	pricing := o.Pricing()

	statusTimes := make(map[string]time.Time)
	for status, at := range o.StatusTimes() {
		statusTimes[status.String()] = at.UTC()
	}

	details := servers.OrderDetails{
		Id:        o.ID().Bytes(),
		Code:      o.Code(),
		BuyerId:   o.BuyerID().Bytes(),
		SellerId:  o.SellerID().Bytes(),
		ListingId: o.ListingID().Bytes(),
		Status:    o.Status().String(),
		Role:      resp.Role.String(),
		Pricing: servers.Pricing{
			ItemPrice:   pricing.ItemPrice(),
			ShippingFee: pricing.ShippingFee(),
			PlatformFee: pricing.PlatformFee(),
			Total:       pricing.Total(),
		},
		Shipping: servers.ShippingInfo{
			Method:          delivery.Method().String(),
			Provider:        delivery.ProviderName(),
			TrackingNumber:  delivery.TrackingNumber(),
			Eta:             toEta(delivery.ETA()),
			PickupAddress:   fromAddress(delivery.Pickup()),
			DeliveryAddress: fromAddress(delivery.Destination()),
			DeliveryNote:    delivery.Note(),
		},
		Payment: servers.PaymentInfo{
			Method:        o.PaymentMethod().String(),
			Status:        o.PaymentStatus().String(),
			TransactionId: o.TransactionID(),
		},
		StatusTimes:  statusTimes,
		BuyerRating:  toRating(o.BuyerRating()),
		SellerRating: toRating(o.SellerRating()),
		BuyerNote:    o.BuyerNote(),
		Action:       toActionDescriptor(resp.Action),
		CanCancel:    resp.CanCancel,
		CreatedAt:    o.CreatedAt().UTC(),
	}

	if c := o.Cancellation(); c != nil {
		details.CancelledBy = c.By.String()
		details.CancelReason = c.Reason
	}

	return details
}

func toOrderPage(page queries.ListOrdersQueryResponse) servers.OrderPage {
	items := make([]servers.OrderSummary, len(page.Items))
	for i, item := range page.Items {
		items[i] = servers.OrderSummary{
			Id:             item.ID.Bytes(),
			Code:           item.Code,
			ListingId:      item.ListingID.Bytes(),
			ListingTitle:   item.ListingTitle,
			Role:           item.Role.String(),
			Status:         item.Status.String(),
			ShippingMethod: item.ShippingMethod.String(),
			TrackingNumber: item.TrackingNumber,
			Total:          item.Total,
			CreatedAt:      item.CreatedAt,
		}
	}

	return servers.OrderPage{
		Items:      items,
		Page:       page.Page,
		Limit:      page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
}

func toMethodOption(opt shipping.MethodOption) servers.MethodOption {
	return servers.MethodOption{
		Id:   opt.ID.String(),
		Name: opt.Name,
		Fee:  opt.Fee,
		Eta:  toEta(opt.ETA),
		Type: opt.Type.String(),
		Note: opt.Note,
	}
}

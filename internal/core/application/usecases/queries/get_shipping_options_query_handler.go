package queries

import (
	"context"

	"ootdverse/internal/core/domain/model/shipping"
)

type GetShippingOptionsQueryHandler struct {
	listings  ListingReader
	addresses AddressReader
	resolver  ShippingOptionsResolver
}

func NewGetShippingOptionsQueryHandler(
	listings ListingReader,
	addresses AddressReader,
	resolver ShippingOptionsResolver,
) GetShippingOptionsQueryHandler {
	return GetShippingOptionsQueryHandler{
		listings:  listings,
		addresses: addresses,
		resolver:  resolver,
	}
}

func (h GetShippingOptionsQueryHandler) Handle(
	ctx context.Context,
	query GetShippingOptionsQuery,
) (GetShippingOptionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShippingOptionsQueryResponse{}, err
	}

	l, err := h.listings.Get(ctx, query.ListingID())
	if err != nil {
		return GetShippingOptionsQueryResponse{}, err
	}

	buyer, err := h.addresses.Get(ctx, query.BuyerID(), query.AddressID())
	if err != nil {
		return GetShippingOptionsQueryResponse{}, err
	}

	resp := GetShippingOptionsQueryResponse{
		Province: buyer.Province(),
		Options:  []shipping.MethodOption{},
	}
	if !h.resolver.CanShipToRegion(l, buyer.Province()) {
		return resp, nil
	}

	resp.CanShip = true
	resp.Options = h.resolver.AvailableMethods(l, buyer)
	return resp, nil
}

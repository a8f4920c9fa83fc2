package queries

import (
	"context"
)

type ValidateShippingQueryHandler struct {
	listings ListingReader
	resolver ShippingOptionsResolver
}

func NewValidateShippingQueryHandler(listings ListingReader, resolver ShippingOptionsResolver) ValidateShippingQueryHandler {
	return ValidateShippingQueryHandler{listings: listings, resolver: resolver}
}

func (h ValidateShippingQueryHandler) Handle(
	ctx context.Context,
	query ValidateShippingQuery,
) (ValidateShippingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ValidateShippingQueryResponse{}, err
	}

	l, err := h.listings.Get(ctx, query.ListingID())
	if err != nil {
		return ValidateShippingQueryResponse{}, err
	}

	return ValidateShippingQueryResponse{
		CanShip:      h.resolver.CanShipToRegion(l, query.Province()),
		Regions:      l.ShippingConfig().Regions(),
		ShippingNote: l.ShippingConfig().ShippingNote(),
	}, nil
}

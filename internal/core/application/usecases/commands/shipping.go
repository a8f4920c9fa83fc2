package commands

import (
	"errors"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/listing"
	"ootdverse/internal/core/domain/model/shipping"
)

var (
	// ErrCannotShipToAddress is returned when the listing's shipping regions do
	// not cover the buyer's province.
	ErrCannotShipToAddress = errors.New("seller does not ship to this address")

	// ErrShippingMethodNotOffered is returned when the selected method is not
	// among the options the listing offers for the address.
	ErrShippingMethodNotOffered = errors.New("shipping method is not offered for this listing and address")
)

// ShippingOptionResolver resolves the delivery option a buyer selected.
type ShippingOptionResolver interface {
	CanShipToRegion(l *listing.Listing, buyerProvince string) bool
	ResolveOption(l *listing.Listing, buyer kernel.Address, method shipping.Method) (shipping.MethodOption, bool)
}

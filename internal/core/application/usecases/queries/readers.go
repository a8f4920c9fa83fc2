// Package queries contains read-only operations of the order service.
// Queries never change state. Order lists, statistics and action lookups read
// the orders table directly through GORM raw SQL; order details and shipping
// lookups go through the domain so their rules stay in one place.
package queries

import (
	"context"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/listing"
	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/core/domain/model/shipping"
)

type (
	// OrderReader loads a single order aggregate.
	OrderReader interface {
		Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	}

	// ListingReader loads a single listing.
	ListingReader interface {
		Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error)
	}

	// AddressReader loads an address owned by the user.
	AddressReader interface {
		Get(ctx context.Context, userID, addressID kernel.UUID) (kernel.Address, error)
	}

	// ShippingOptionsResolver lists what a buyer can choose for a listing.
	ShippingOptionsResolver interface {
		CanShipToRegion(l *listing.Listing, buyerProvince string) bool
		AvailableMethods(l *listing.Listing, buyer kernel.Address) []shipping.MethodOption
	}

	// FeeCalculator quotes a platform carrier.
	FeeCalculator interface {
		CalculateFee(method shipping.Method, from, to kernel.Address, weightGrams int) (shipping.Quote, error)
	}
)

package ports

import (
	"context"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/listing"
)

// ListingRepository gives the order workflow access to listings. Listings are
// owned by the catalogue; ordering only changes their availability status.
type ListingRepository interface {
	Add(ctx context.Context, l *listing.Listing) error

	// Get returns errs.ObjectNotFoundError when no such listing exists.
	Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error)

	// UpdateStatus persists the listing's current availability status.
	UpdateStatus(ctx context.Context, l *listing.Listing) error
}

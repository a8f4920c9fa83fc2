package ports

import (
	"context"

	"ootdverse/internal/core/domain/model/kernel"
)

// AddressRepository reads a user's saved delivery addresses.
type AddressRepository interface {
	Add(ctx context.Context, userID, addressID kernel.UUID, address kernel.Address) error

	// Get returns the address only if it belongs to the user, and
	// errs.ObjectNotFoundError otherwise.
	Get(ctx context.Context, userID, addressID kernel.UUID) (kernel.Address, error)
}

package queries

import (
	"errors"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/shipping"
	"ootdverse/internal/pkg/guard"
)

var ErrGetShippingOptionsQueryIsNotConstructed = errors.New(
	"GetShippingOptionsQuery must be created via NewGetShippingOptionsQuery constructor",
)

// GetShippingOptionsQuery lists the delivery options a buyer can pick for a
// listing, given one of the buyer's saved addresses.
type GetShippingOptionsQuery struct {
	listingID kernel.UUID
	buyerID   kernel.UUID
	addressID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetShippingOptionsQuery(listingID, buyerID, addressID kernel.UUID) (GetShippingOptionsQuery, error) {
	if err := errors.Join(listingID.Validate(), buyerID.Validate(), addressID.Validate()); err != nil {
		return GetShippingOptionsQuery{}, err
	}
	return GetShippingOptionsQuery{
		listingID: listingID,
		buyerID:   buyerID,
		addressID: addressID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetShippingOptionsQuery) Validate() error {
	return q.guard.Validate(ErrGetShippingOptionsQueryIsNotConstructed)
}

func (q GetShippingOptionsQuery) ListingID() kernel.UUID { return q.listingID }
func (q GetShippingOptionsQuery) BuyerID() kernel.UUID   { return q.buyerID }
func (q GetShippingOptionsQuery) AddressID() kernel.UUID { return q.addressID }

// GetShippingOptionsQueryResponse carries an empty, non-nil Options slice when
// the listing does not ship to the buyer's province.
type GetShippingOptionsQueryResponse struct {
	CanShip  bool
	Province string
	Options  []shipping.MethodOption
}

package queries

import (
	"errors"
	"strings"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/shipping"
	"ootdverse/internal/pkg/errs"
	"ootdverse/internal/pkg/guard"
)

var ErrValidateShippingQueryIsNotConstructed = errors.New(
	"ValidateShippingQuery must be created via NewValidateShippingQuery constructor",
)

// ValidateShippingQuery checks whether a listing ships to a province before
// the buyer picks an address.
type ValidateShippingQuery struct {
	listingID kernel.UUID
	province  string

	guard guard.ConstructorGuard
}

func NewValidateShippingQuery(listingID kernel.UUID, province string) (ValidateShippingQuery, error) {
	province = strings.TrimSpace(province)

	err := listingID.Validate()
	if province == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("province"))
	}
	if err != nil {
		return ValidateShippingQuery{}, err
	}

	return ValidateShippingQuery{
		listingID: listingID,
		province:  province,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ValidateShippingQuery) Validate() error {
	return q.guard.Validate(ErrValidateShippingQueryIsNotConstructed)
}

func (q ValidateShippingQuery) ListingID() kernel.UUID { return q.listingID }
func (q ValidateShippingQuery) Province() string       { return q.province }

// ValidateShippingQueryResponse echoes the listing's regions and shipping note
// so clients can explain a refusal.
type ValidateShippingQueryResponse struct {
	CanShip      bool
	Regions      []shipping.Region
	ShippingNote string
}

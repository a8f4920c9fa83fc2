package listing

import (
	"errors"
	"fmt"
	"strings"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/shipping"
	"ootdverse/internal/pkg/errs"
)

var (
	ErrListingIsNotConstructed = errors.New("listing must be created via NewListing or RestoreListing")

	// ErrListingIsNotAvailable is returned when an order is placed on a listing
	// that is no longer active.
	ErrListingIsNotAvailable = errors.New("listing is not available for purchase")
)

// Listing is the read model of a second-hand item offered for sale.
type Listing struct {
	id             kernel.UUID
	sellerID       kernel.UUID
	title          string
	price          int
	weightGrams    int
	shipFrom       kernel.Address
	shippingConfig shipping.Config
	status         Status

	// storedStatus is the status last read from or written to storage.
	storedStatus Status

	isConstructed bool
}

// NewListing creates an active listing. A zero weight means the seller did not
// weigh the parcel and the default weight applies when pricing.
func NewListing(
	id, sellerID kernel.UUID,
	title string,
	price, weightGrams int,
	shipFrom kernel.Address,
	cfg shipping.Config,
) (*Listing, error) {
	return RestoreListing(id, sellerID, title, price, weightGrams, shipFrom, cfg, Active)
}

// RestoreListing rebuilds a listing loaded from storage.
func RestoreListing(
	id, sellerID kernel.UUID,
	title string,
	price, weightGrams int,
	shipFrom kernel.Address,
	cfg shipping.Config,
	status Status,
) (*Listing, error) {
	l := &Listing{
		shippingConfig: cfg,
		isConstructed:  true,
	}

	if err := errors.Join(
		l.setIDs(id, sellerID),
		l.setTitle(title),
		l.setPrice(price),
		l.setWeight(weightGrams),
		l.setShipFrom(shipFrom),
		l.setStatus(status),
	); err != nil {
		return nil, err
	}

	l.storedStatus = l.status
	return l, nil
}

func (l *Listing) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrListingIsNotConstructed
	}
	return nil
}

func (l *Listing) ID() kernel.UUID                 { return l.id }
func (l *Listing) SellerID() kernel.UUID           { return l.sellerID }
func (l *Listing) Title() string                   { return l.title }
func (l *Listing) Price() int                      { return l.price }
func (l *Listing) WeightGrams() int                { return l.weightGrams }
func (l *Listing) ShipFrom() kernel.Address        { return l.shipFrom }
func (l *Listing) ShippingConfig() shipping.Config { return l.shippingConfig }
func (l *Listing) Status() Status                  { return l.status }
func (l *Listing) StoredStatus() Status            { return l.storedStatus }

// MarkStored is called by repositories once the current status was written.
func (l *Listing) MarkStored() {
	l.storedStatus = l.status
}

// Reserve moves an active listing to pending while an order is open on it.
func (l *Listing) Reserve() error {
	if l.status != Active {
		return fmt.Errorf("%w: status is %s", ErrListingIsNotAvailable, l.status)
	}
	l.status = Pending
	return nil
}

// Release puts a pending listing back on sale. Listings in any other status are
// left untouched.
func (l *Listing) Release() {
	if l.status == Pending {
		l.status = Active
	}
}

// MarkSold closes the listing once its order completes.
func (l *Listing) MarkSold() {
	l.status = Sold
}

func (l *Listing) setIDs(id, sellerID kernel.UUID) error {
	if err := errors.Join(id.Validate(), sellerID.Validate()); err != nil {
		return err
	}
	l.id = id
	l.sellerID = sellerID
	return nil
}

func (l *Listing) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	l.title = title
	return nil
}

func (l *Listing) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price))
	}
	l.price = price
	return nil
}

func (l *Listing) setWeight(weightGrams int) error {
	if weightGrams < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightGrams", fmt.Errorf("%d is negative", weightGrams))
	}
	l.weightGrams = weightGrams
	return nil
}

func (l *Listing) setShipFrom(addr kernel.Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	l.shipFrom = addr
	return nil
}

func (l *Listing) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	l.status = status
	return nil
}

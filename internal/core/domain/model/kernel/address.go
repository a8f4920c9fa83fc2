package kernel

import (
	"strings"

	"ootdverse/internal/pkg/errs"
	"ootdverse/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when a zero-value Address is used.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address is a postal address: the ship-from location of a listing, a buyer's
// delivery address, or the snapshot stored on an order. Fields are trimmed on
// construction; an empty province is allowed here and rejected by the operations
// that need one (fee calculation, region checks).
type Address struct {
	fullName    string
	phone       string
	province    string
	district    string
	ward        string
	street      string
	coordinates *Coordinates

	guard guard.ConstructorGuard
}

// NewAddress builds an Address from its administrative parts.
//
// Example:
//
//	to := kernel.NewAddress("Hà Nội", "Cầu Giấy", "Dịch Vọng", "144 Xuân Thủy")
//	to = to.WithRecipient("Nguyễn Văn A", "0901234567")
func NewAddress(province, district, ward, street string) Address {
	return Address{
		province: strings.TrimSpace(province),
		district: strings.TrimSpace(district),
		ward:     strings.TrimSpace(ward),
		street:   strings.TrimSpace(street),
		guard:    guard.NewConstructorGuard(),
	}
}

// WithRecipient returns a copy of the address with the recipient's name and phone.
func (a Address) WithRecipient(fullName, phone string) Address {
	a.fullName = strings.TrimSpace(fullName)
	a.phone = strings.TrimSpace(phone)
	return a
}

// WithCoordinates returns a copy of the address pinned to the given coordinates.
func (a Address) WithCoordinates(c Coordinates) Address {
	a.coordinates = &c
	return a
}

// Validate fails for zero-value addresses.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) FullName() string { return a.fullName }
func (a Address) Phone() string    { return a.phone }
func (a Address) Province() string { return a.province }
func (a Address) District() string { return a.district }
func (a Address) Ward() string     { return a.ward }
func (a Address) Street() string   { return a.street }

// Coordinates returns the pinned location, or nil when the address was never geocoded.
func (a Address) Coordinates() *Coordinates {
	return a.coordinates
}

// HasProvince reports whether the province is set.
func (a Address) HasProvince() bool {
	return a.province != ""
}

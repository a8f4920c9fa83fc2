// Package addressrepo persists buyers' saved delivery addresses and provides
// the address columns embedded in order and listing rows.
package addressrepo

import (
	"ootdverse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AddressFields are the columns of a postal address. Order and listing rows
// embed them with a prefix (pickup_, delivery_, ship_from_).
type AddressFields struct {
	FullName string
	Phone    string
	Province string `gorm:"index"`
	District string
	Ward     string
	Street   string
	Lat      *float64
	Lng      *float64
}

// NewAddressFields flattens a domain address.
func NewAddressFields(a kernel.Address) AddressFields {
	f := AddressFields{
		FullName: a.FullName(),
		Phone:    a.Phone(),
		Province: a.Province(),
		District: a.District(),
		Ward:     a.Ward(),
		Street:   a.Street(),
	}
	if c := a.Coordinates(); c != nil {
		lat, lng := c.Lat(), c.Lng()
		f.Lat = &lat
		f.Lng = &lng
	}
	return f
}

// ToDomain rebuilds the address. Coordinates are only restored when both
// columns are set.
func (f AddressFields) ToDomain() (kernel.Address, error) {
	a := kernel.NewAddress(f.Province, f.District, f.Ward, f.Street).WithRecipient(f.FullName, f.Phone)
	if f.Lat == nil || f.Lng == nil {
		return a, nil
	}

	c, err := kernel.NewCoordinates(*f.Lat, *f.Lng)
	if err != nil {
		return kernel.Address{}, err
	}
	return a.WithCoordinates(c), nil
}

// AddressDTO is a saved address of a user.
type AddressDTO struct {
	ID      uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID     `gorm:"type:uuid;index"`
	Address AddressFields `gorm:"embedded"`
}

func (AddressDTO) TableName() string {
	return "addresses"
}

// Package listingrepo maps listings to the listings table.
package listingrepo

import (
	"errors"

	"ootdverse/internal/adapters/out/postgres/addressrepo"
	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/listing"
	"ootdverse/internal/core/domain/model/shipping"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ListingDTO is a listings row. Shipping regions are stored as a text array
// of region keys.
type ListingDTO struct {
	ID          uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	SellerID    uuid.UUID                 `gorm:"type:uuid;index"`
	Title       string                    `gorm:"not null"`
	Price       int                       `gorm:"not null"`
	WeightGrams int                       `gorm:"not null"`
	ShipFrom    addressrepo.AddressFields `gorm:"embedded;embeddedPrefix:ship_from_"`

	PlatformShippingEnabled bool
	SelfDeliveryEnabled     bool
	FixedShippingFee        int
	ShippingRegions         pq.StringArray `gorm:"type:text[]"`
	ShippingNote            string

	Status string `gorm:"index;not null"`
}

func (ListingDTO) TableName() string {
	return "listings"
}

func fromDomain(l *listing.Listing) ListingDTO {
	cfg := l.ShippingConfig()

	regions := make(pq.StringArray, 0, len(cfg.Regions()))
	for _, r := range cfg.Regions() {
		regions = append(regions, r.String())
	}

	return ListingDTO{
		ID:                      l.ID().Bytes(),
		SellerID:                l.SellerID().Bytes(),
		Title:                   l.Title(),
		Price:                   l.Price(),
		WeightGrams:             l.WeightGrams(),
		ShipFrom:                addressrepo.NewAddressFields(l.ShipFrom()),
		PlatformShippingEnabled: cfg.PlatformShippingEnabled(),
		SelfDeliveryEnabled:     cfg.SelfDeliveryEnabled(),
		FixedShippingFee:        cfg.FixedShippingFee(),
		ShippingRegions:         regions,
		ShippingNote:            cfg.ShippingNote(),
		Status:                  l.Status().String(),
	}
}

func toDomain(dto ListingDTO) (*listing.Listing, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	sellerID, sellerErr := kernel.UUIDFromBytes(dto.SellerID[:])
	shipFrom, addrErr := dto.ShipFrom.ToDomain()
	status, statusErr := listing.ParseStatus(dto.Status)

	regions := make([]shipping.Region, 0, len(dto.ShippingRegions))
	var regionErr error
	for _, key := range dto.ShippingRegions {
		r, err := shipping.ParseRegion(key)
		regionErr = errors.Join(regionErr, err)
		regions = append(regions, r)
	}

	if err := errors.Join(idErr, sellerErr, addrErr, statusErr, regionErr); err != nil {
		return nil, err
	}

	cfg, err := shipping.NewConfig(
		dto.PlatformShippingEnabled,
		dto.SelfDeliveryEnabled,
		dto.FixedShippingFee,
		regions,
	)
	if err != nil {
		return nil, err
	}

	return listing.RestoreListing(id, sellerID, dto.Title, dto.Price, dto.WeightGrams, shipFrom,
		cfg.WithShippingNote(dto.ShippingNote), status)
}

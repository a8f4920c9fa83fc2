// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"errors"
	"time"

	"ootdverse/internal/adapters/out/postgres/addressrepo"
	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/core/domain/model/shipping"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Enumerations are stored by key so the table stays readable from SQL, and
// status timestamps live in a jsonb column keyed by status.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code      string    `gorm:"uniqueIndex:idx_orders_code;not null"`
	BuyerID   uuid.UUID `gorm:"type:uuid;index"`
	SellerID  uuid.UUID `gorm:"type:uuid;index"`
	ListingID uuid.UUID `gorm:"type:uuid;index"`

	ItemPrice   int
	ShippingFee int
	PlatformFee int
	Total       int

	ShippingMethod   string
	ShippingProvider string
	TrackingNumber   string
	EtaMinDays       *int
	EtaMaxDays       *int
	Pickup           addressrepo.AddressFields `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery         addressrepo.AddressFields `gorm:"embedded;embeddedPrefix:delivery_"`
	DeliveryNote     string

	PaymentMethod string
	PaymentStatus string
	TransactionID string

	Status       string               `gorm:"index;not null"`
	StatusTimes  map[string]time.Time `gorm:"type:jsonb;serializer:json"`
	CancelledBy  string
	CancelReason string

	BuyerRating  RatingDTO `gorm:"embedded;embeddedPrefix:buyer_rating_"`
	SellerRating RatingDTO `gorm:"embedded;embeddedPrefix:seller_rating_"`

	BuyerNote string
	CreatedAt time.Time `gorm:"index"`
	Version   int       `gorm:"not null;default:0"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// RatingDTO holds one party's rating. A NULL score means not rated yet.
type RatingDTO struct {
	Score   *int
	Review  string
	RatedAt *time.Time
}

func newRatingDTO(r *order.Rating) RatingDTO {
	if r == nil {
		return RatingDTO{}
	}
	score, ratedAt := r.Score(), r.RatedAt()
	return RatingDTO{Score: &score, Review: r.Review(), RatedAt: &ratedAt}
}

func (d RatingDTO) toDomain() (*order.Rating, error) {
	if d.Score == nil {
		return nil, nil //nolint:nilnil // absent rating
	}

	var ratedAt time.Time
	if d.RatedAt != nil {
		ratedAt = *d.RatedAt
	}
	r, err := order.NewRating(*d.Score, d.Review, ratedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()

	dto := OrderDTO{
		ID:               s.ID.Bytes(),
		Code:             s.Code,
		BuyerID:          s.BuyerID.Bytes(),
		SellerID:         s.SellerID.Bytes(),
		ListingID:        s.ListingID.Bytes(),
		ItemPrice:        s.ItemPrice,
		ShippingFee:      s.ShippingFee,
		PlatformFee:      s.PlatformFee,
		Total:            s.Total,
		ShippingMethod:   s.ShippingMethod.String(),
		ShippingProvider: s.ShippingProvider,
		TrackingNumber:   s.TrackingNumber,
		Pickup:           addressrepo.NewAddressFields(s.PickupAddress),
		Delivery:         addressrepo.NewAddressFields(s.DeliveryAddress),
		DeliveryNote:     s.DeliveryNote,
		PaymentMethod:    s.PaymentMethod.String(),
		PaymentStatus:    s.PaymentStatus.String(),
		TransactionID:    s.TransactionID,
		Status:           s.Status.String(),
		StatusTimes:      make(map[string]time.Time, len(s.StatusTimes)),
		CancelReason:     s.CancelReason,
		BuyerRating:      newRatingDTO(s.BuyerRating),
		SellerRating:     newRatingDTO(s.SellerRating),
		BuyerNote:        s.BuyerNote,
		CreatedAt:        s.CreatedAt,
		Version:          s.Version,
	}

	if s.ETA != nil {
		minDays, maxDays := s.ETA.MinDays(), s.ETA.MaxDays()
		dto.EtaMinDays = &minDays
		dto.EtaMaxDays = &maxDays
	}
	if s.CancelledBy != order.RoleUnknown {
		dto.CancelledBy = s.CancelledBy.String()
	}
	for status, at := range s.StatusTimes {
		dto.StatusTimes[status.String()] = at
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	var err error
	collect := func(e error) { err = errors.Join(err, e) }

	s := order.Snapshot{
		Code:             dto.Code,
		ItemPrice:        dto.ItemPrice,
		ShippingFee:      dto.ShippingFee,
		PlatformFee:      dto.PlatformFee,
		Total:            dto.Total,
		ShippingProvider: dto.ShippingProvider,
		TrackingNumber:   dto.TrackingNumber,
		DeliveryNote:     dto.DeliveryNote,
		TransactionID:    dto.TransactionID,
		StatusTimes:      make(map[order.Status]time.Time, len(dto.StatusTimes)),
		CancelReason:     dto.CancelReason,
		BuyerNote:        dto.BuyerNote,
		CreatedAt:        dto.CreatedAt,
		Version:          dto.Version,
	}

	var e error
	s.ID, e = kernel.UUIDFromBytes(dto.ID[:])
	collect(e)
	s.BuyerID, e = kernel.UUIDFromBytes(dto.BuyerID[:])
	collect(e)
	s.SellerID, e = kernel.UUIDFromBytes(dto.SellerID[:])
	collect(e)
	s.ListingID, e = kernel.UUIDFromBytes(dto.ListingID[:])
	collect(e)

	s.ShippingMethod, e = shipping.ParseMethod(dto.ShippingMethod)
	collect(e)
	s.PickupAddress, e = dto.Pickup.ToDomain()
	collect(e)
	s.DeliveryAddress, e = dto.Delivery.ToDomain()
	collect(e)
	if dto.EtaMinDays != nil && dto.EtaMaxDays != nil {
		eta, etaErr := shipping.NewETA(*dto.EtaMinDays, *dto.EtaMaxDays)
		collect(etaErr)
		s.ETA = &eta
	}

	s.PaymentMethod, e = order.ParsePaymentMethod(dto.PaymentMethod)
	collect(e)
	s.PaymentStatus, e = order.ParsePaymentStatus(dto.PaymentStatus)
	collect(e)
	s.Status, e = order.ParseStatus(dto.Status)
	collect(e)
	for key, at := range dto.StatusTimes {
		status, statusErr := order.ParseStatus(key)
		collect(statusErr)
		s.StatusTimes[status] = at
	}
	if dto.CancelledBy != "" {
		s.CancelledBy, e = order.ParseRole(dto.CancelledBy)
		collect(e)
	}

	s.BuyerRating, e = dto.BuyerRating.toDomain()
	collect(e)
	s.SellerRating, e = dto.SellerRating.toDomain()
	collect(e)

	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(s)
}

package listingrepo

import (
	"context"
	"errors"
	"fmt"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/listing"
	"ootdverse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormListingRepository implements ports.ListingRepository using GORM.
type GormListingRepository struct {
	db *gorm.DB
}

func NewGormListingRepository(db *gorm.DB) *GormListingRepository {
	return &GormListingRepository{db: db}
}

func (r *GormListingRepository) Add(ctx context.Context, l *listing.Listing) error {
	if err := l.Validate(); err != nil {
		return err
	}

	dto := fromDomain(l)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	l.MarkStored()
	return nil
}

func (r *GormListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ListingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("listing", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus writes only the status column; the rest of the listing is owned
// by the catalogue. The write only applies while the row still holds the status
// the listing was loaded with, so of two transactions reserving the same
// listing only the first succeeds.
func (r *GormListingRepository) UpdateStatus(ctx context.Context, l *listing.Listing) error {
	if err := l.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ListingDTO{}).
		Where("id = ? AND status = ?", l.ID().Bytes(), l.StoredStatus().String()).
		Update("status", l.Status().String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&ListingDTO{}).Where("id = ?", l.ID().Bytes()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("listing", l.ID().String())
		}
		if l.Status() == listing.Pending {
			return fmt.Errorf("%w: listing %s was reserved by another order", listing.ErrListingIsNotAvailable, l.ID())
		}
		return errs.NewVersionIsInvalidError("status",
			fmt.Errorf("listing %s is no longer %s", l.ID(), l.StoredStatus()))
	}

	l.MarkStored()
	return nil
}

package addressrepo

import (
	"context"
	"errors"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAddressRepository implements ports.AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// Add stores an address for the user.
func (r *GormAddressRepository) Add(ctx context.Context, userID, addressID kernel.UUID, address kernel.Address) error {
	if err := errors.Join(userID.Validate(), addressID.Validate(), address.Validate()); err != nil {
		return err
	}

	dto := AddressDTO{
		ID:      addressID.Bytes(),
		UserID:  userID.Bytes(),
		Address: NewAddressFields(address),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get returns the address only when it belongs to the user. An address of
// another user is reported as not found.
func (r *GormAddressRepository) Get(ctx context.Context, userID, addressID kernel.UUID) (kernel.Address, error) {
	if err := errors.Join(userID.Validate(), addressID.Validate()); err != nil {
		return kernel.Address{}, err
	}

	var dto AddressDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND user_id = ?", addressID.Bytes(), userID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.Address{}, errs.NewObjectNotFoundError("address", addressID.String())
		}
		return kernel.Address{}, err
	}

	return dto.Address.ToDomain()
}

package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	// orderCodeIndex must match the uniqueIndex tag on OrderDTO.Code.
	orderCodeIndex  = "idx_orders_code"
	uniqueViolation = "23505"

	maxCodeAttempts = 5
)

// GormOrderRepository keeps orders in the orders table. Writes report the
// saved aggregate to the tracker so its status changes are published on commit.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository accepts a nil tracker for read-only use.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	// Each insert runs in its own savepoint so a code collision does not abort
	// the surrounding unit of work.
	for attempt := 1; ; attempt++ {
		dto := fromDomain(aggregate)
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.Create(&dto).Error
		})
		if err == nil {
			break
		}
		if !isOrderCodeConflict(err) || attempt == maxCodeAttempts {
			return err
		}
		aggregate.RenewCode()
	}

	r.track(aggregate)
	return nil
}

// Update saves an existing order, guarded by the version it was loaded at.
// A concurrent writer that got there first makes this update fail with
// errs.VersionIsInvalidError.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidError("version",
			fmt.Errorf("order %s was modified after version %d was loaded", aggregate.Code(), aggregate.Version()))
	}

	aggregate.IncrementVersion()
	r.track(aggregate)
	return nil
}

// Get loads the order with its ratings and status times.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetUnpaidCreatedBefore returns the oldest orders still awaiting payment.
func (r *GormOrderRepository) GetUnpaidCreatedBefore(
	ctx context.Context,
	cutoff time.Time,
	limit int,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", order.PendingPayment.String(), cutoff).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) track(aggregate *order.Order) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}

func isOrderCodeConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == orderCodeIndex
}

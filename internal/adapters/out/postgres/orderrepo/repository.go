package orderrepo

import (
	"context"
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
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

// GetByRiderToken retrieves the order a rider token grants access to.
func (r *GormOrderRepository) GetByRiderToken(ctx context.Context, token string) (*order.Order, error) {
	return r.getByToken(ctx, "rider_token = ?", token)
}

// GetByCustomerToken retrieves the order a customer token grants access to.
func (r *GormOrderRepository) GetByCustomerToken(ctx context.Context, token string) (*order.Order, error) {
	return r.getByToken(ctx, "customer_token = ?", token)
}

// getByToken performs a token lookup. Both token columns report the same
// not-found shape so a caller cannot probe which role a token belongs to.
func (r *GormOrderRepository) getByToken(ctx context.Context, condition string, token string) (*order.Order, error) {
	if token == "" {
		return nil, errs.NewValueIsRequiredError("token")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, condition, token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("token", token)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateWhereStatus persists a transitioned aggregate as a compare-and-swap on
// the status column. Zero rows affected means another writer moved the order
// first; a duplicated-key error means a freshly minted token collided with an
// existing one, which the caller may retry with a new token.
func (r *GormOrderRepository) UpdateWhereStatus(
	ctx context.Context,
	aggregate *order.Order,
	expectedStatus order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expectedStatus.String()).
		Select("status", "rider_phone", "rider_token", "customer_token", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("access token", errs.ErrTokenCollision)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("order status")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// SaveCsat persists only the satisfaction columns, leaving lifecycle columns
// untouched so a rating never clobbers a concurrent transition.
func (r *GormOrderRepository) SaveCsat(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("csat_score", "csat_comment", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetCompletedAwaitingCsat lists completed orders updated before the cutoff
// that have neither a score nor a sent reminder.
func (r *GormOrderRepository) GetCompletedAwaitingCsat(ctx context.Context, olderThan time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND csat_score IS NULL AND csat_reminder_sent = false AND updated_at < ?",
			order.Completed.String(), olderThan).
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

// MarkCsatReminderSent flags the order so the feedback reminder goes out at most once.
func (r *GormOrderRepository) MarkCsatReminderSent(ctx context.Context, id kernel.UUID, at time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{"csat_reminder_sent": true, "updated_at": at})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

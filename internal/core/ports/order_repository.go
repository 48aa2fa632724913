package ports

import (
	"context"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Lookups exist by internal id (authenticated paths) and by either access
// token (public paths); the internal id is never derivable from a token by
// the caller.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its internal identifier.
	// Returns errs.ObjectNotFoundError when no order matches.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByRiderToken retrieves the order a rider token grants access to.
	// Returns errs.ObjectNotFoundError when no order matches.
	GetByRiderToken(ctx context.Context, token string) (*order.Order, error)

	// GetByCustomerToken retrieves the order a customer token grants access to.
	// Returns errs.ObjectNotFoundError when no order matches.
	GetByCustomerToken(ctx context.Context, token string) (*order.Order, error)

	// UpdateWhereStatus persists a transitioned aggregate as a conditional
	// update: the write applies only while the persisted status still equals
	// expectedStatus. A lost race surfaces as errs.ConflictError, as does a
	// token unique-index violation (with errs.ErrTokenCollision as cause so
	// the caller can re-mint and retry once).
	UpdateWhereStatus(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// SaveCsat persists only the satisfaction fields of the aggregate,
	// leaving lifecycle columns untouched so a concurrent transition is
	// never clobbered by a rating write.
	SaveCsat(ctx context.Context, aggregate *order.Order) error

	// GetCompletedAwaitingCsat lists completed orders updated before the
	// given instant that have neither a score nor a sent reminder.
	GetCompletedAwaitingCsat(ctx context.Context, olderThan time.Time) ([]*order.Order, error)

	// MarkCsatReminderSent flags the order so the feedback reminder is
	// delivered at most once.
	MarkCsatReminderSent(ctx context.Context, id kernel.UUID, at time.Time) error
}

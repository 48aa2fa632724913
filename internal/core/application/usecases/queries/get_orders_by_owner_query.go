// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain aggregates and read projections directly
// from the database.
package queries

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrGetOrdersByOwnerQueryIsNotConstructed = errors.New(
	"GetOrdersByOwnerQuery must be created via NewGetOrdersByOwnerQuery constructor",
)

// GetOrdersByOwnerQuery retrieves every order owned by one merchant,
// newest first.
type GetOrdersByOwnerQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByOwnerQuery creates a query scoped to the authenticated merchant.
func NewGetOrdersByOwnerQuery(ownerID kernel.UUID) (GetOrdersByOwnerQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetOrdersByOwnerQuery{}, errs.NewValueIsRequiredErrorWithCause("owner_id", err)
	}

	return GetOrdersByOwnerQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByOwnerQueryIsNotConstructed)
}

// OwnerID returns the merchant whose orders are listed.
func (q GetOrdersByOwnerQuery) OwnerID() kernel.UUID { return q.ownerID }

// GetOrdersByOwnerQueryResponse is the merchant's view of one order.
// Access tokens are deliberately absent: they exist for the anonymous
// rider/customer links, not for the merchant dashboard.
type GetOrdersByOwnerQueryResponse struct {
	ID              kernel.UUID
	ReadableID      string
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	PriceTotal      float64
	Status          order.Status
	RiderPhone      string
	CsatScore       *int
	CsatComment     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

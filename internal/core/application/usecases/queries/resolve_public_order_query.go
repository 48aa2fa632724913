package queries

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrResolvePublicOrderQueryIsNotConstructed = errors.New(
	"ResolvePublicOrderQuery must be created via NewResolvePublicOrderQuery constructor",
)

// ResolvePublicOrderQuery resolves an opaque access token to a role and the
// matching sanitized projection of one order. The caller never supplies an
// order id or a role hint; both are derived from which token column matches.
type ResolvePublicOrderQuery struct {
	token string

	guard guard.ConstructorGuard
}

// NewResolvePublicOrderQuery creates a token resolution query.
func NewResolvePublicOrderQuery(token string) (ResolvePublicOrderQuery, error) {
	if token == "" {
		return ResolvePublicOrderQuery{}, errs.NewValueIsRequiredError("token")
	}

	return ResolvePublicOrderQuery{
		token: token,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ResolvePublicOrderQuery) Validate() error {
	return q.guard.Validate(ErrResolvePublicOrderQueryIsNotConstructed)
}

// Token returns the opaque token presented by the caller.
func (q ResolvePublicOrderQuery) Token() string { return q.token }

// RiderOrderProjection is the rider's view: full delivery context, but no
// internal ids, no owner, no tokens.
type RiderOrderProjection struct {
	ReadableID      string
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	PriceTotal      float64
	Status          order.Status
	CreatedAt       time.Time
	RiderPhone      string
}

// CustomerOrderProjection is the customer's view: the minimum needed to follow
// the delivery. The customer's own contact data, the price, and the other
// party's details are deliberately absent.
type CustomerOrderProjection struct {
	ReadableID      string
	DeliveryAddress string
	Status          order.Status
	RiderPhone      string
}

// ResolvePublicOrderQueryResponse is a tagged union: exactly one projection is
// set, matching Role. Keeping the two shapes as distinct types prevents
// accidental privilege confusion between the rider and customer views.
type ResolvePublicOrderQueryResponse struct {
	Role     kernel.TokenRole
	Rider    *RiderOrderProjection
	Customer *CustomerOrderProjection
}

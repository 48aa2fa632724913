package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// ResolvePublicOrderQueryHandler resolves opaque tokens for the unauthenticated
// tracking endpoint. The rider column is tried first, then the customer column;
// each role reads only the columns its projection declares. Any miss yields the
// same not-found error so the response never reveals whether a token exists in
// the other role.
type ResolvePublicOrderQueryHandler struct {
	db *gorm.DB
}

// NewResolvePublicOrderQueryHandler creates a handler for public token resolution.
func NewResolvePublicOrderQueryHandler(db *gorm.DB) ResolvePublicOrderQueryHandler {
	return ResolvePublicOrderQueryHandler{db: db}
}

// Handle executes the dual lookup and returns the role-scoped projection.
func (h ResolvePublicOrderQueryHandler) Handle(
	ctx context.Context,
	query ResolvePublicOrderQuery,
) (ResolvePublicOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ResolvePublicOrderQueryResponse{}, err
	}

	rider, err := h.lookupRider(ctx, query.Token())
	if err == nil {
		return ResolvePublicOrderQueryResponse{Role: kernel.RiderRole, Rider: rider}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ResolvePublicOrderQueryResponse{}, err
	}

	customer, err := h.lookupCustomer(ctx, query.Token())
	if err == nil {
		return ResolvePublicOrderQueryResponse{Role: kernel.CustomerRole, Customer: customer}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ResolvePublicOrderQueryResponse{}, err
	}

	return ResolvePublicOrderQueryResponse{}, errs.NewObjectNotFoundError("token", query.Token())
}

func (h ResolvePublicOrderQueryHandler) lookupRider(ctx context.Context, token string) (*RiderOrderProjection, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			readable_id,
			customer_name,
			customer_phone,
			delivery_address,
			price_total,
			status,
			created_at,
			rider_phone
		FROM orders
		WHERE rider_token = ?
	`, token).Row()

	var projection RiderOrderProjection
	var status string
	var riderPhone sql.NullString

	err := row.Scan(
		&projection.ReadableID,
		&projection.CustomerName,
		&projection.CustomerPhone,
		&projection.DeliveryAddress,
		&projection.PriceTotal,
		&status,
		&projection.CreatedAt,
		&riderPhone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}

	parsedStatus, err := order.StatusFromString(status)
	if err != nil {
		return nil, err
	}
	projection.Status = parsedStatus
	projection.RiderPhone = riderPhone.String

	return &projection, nil
}

func (h ResolvePublicOrderQueryHandler) lookupCustomer(ctx context.Context, token string) (*CustomerOrderProjection, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			readable_id,
			delivery_address,
			status,
			rider_phone
		FROM orders
		WHERE customer_token = ?
	`, token).Row()

	var projection CustomerOrderProjection
	var status string
	var riderPhone sql.NullString

	err := row.Scan(
		&projection.ReadableID,
		&projection.DeliveryAddress,
		&status,
		&riderPhone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}

	parsedStatus, err := order.StatusFromString(status)
	if err != nil {
		return nil, err
	}
	projection.Status = parsedStatus
	projection.RiderPhone = riderPhone.String

	return &projection, nil
}

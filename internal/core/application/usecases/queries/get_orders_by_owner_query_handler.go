package queries

import (
	"context"
	"database/sql"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByOwnerQueryHandler lists a merchant's orders from the database,
// newest first.
type GetOrdersByOwnerQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByOwnerQueryHandler creates a handler for merchant order listings.
func NewGetOrdersByOwnerQueryHandler(db *gorm.DB) GetOrdersByOwnerQueryHandler {
	return GetOrdersByOwnerQueryHandler{db: db}
}

// Handle executes the listing query scoped to the query's owner.
func (h GetOrdersByOwnerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByOwnerQuery,
) ([]GetOrdersByOwnerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByOwnerQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			readable_id,
			customer_name,
			customer_phone,
			delivery_address,
			price_total,
			status,
			rider_phone,
			csat_score,
			csat_comment,
			created_at,
			updated_at
		FROM orders
		WHERE owner_id = ?
		ORDER BY created_at DESC
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersByOwnerQueryResponse
		var id uuid.UUID
		var status string
		var riderPhone, csatComment sql.NullString
		var csatScore sql.NullInt64

		err = rows.Scan(
			&id,
			&resp.ReadableID,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&resp.DeliveryAddress,
			&resp.PriceTotal,
			&status,
			&riderPhone,
			&csatScore,
			&csatComment,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		parsedStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}
		resp.Status = parsedStatus

		resp.RiderPhone = riderPhone.String
		resp.CsatComment = csatComment.String
		if csatScore.Valid {
			score := int(csatScore.Int64)
			resp.CsatScore = &score
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

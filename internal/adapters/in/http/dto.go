package http

import (
	"time"

	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/order"
)

// Error is the response body for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body for POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerName    string  `json:"customer_name" validate:"required"`
	CustomerPhone   string  `json:"customer_phone" validate:"required"`
	DeliveryAddress string  `json:"delivery_address" validate:"required"`
	PriceTotal      float64 `json:"price_total" validate:"required,gt=0"`
}

// UpdateOrderStatusRequest is the body for PATCH /api/v1/orders/:id/status.
// RiderPhone is only meaningful when moving to READY.
type UpdateOrderStatusRequest struct {
	Status     string `json:"status" validate:"required"`
	RiderPhone string `json:"rider_phone"`
}

// SubmitCsatRequest is the body for POST /api/v1/public/orders/:token/csat.
// The score range is checked after the token resolves, so a bad token never
// reveals anything through validation ordering.
type SubmitCsatRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// Order is the merchant's view of one order. Access tokens are never included;
// they travel to the rider and customer through the messaging gateway only.
type Order struct {
	ID              string    `json:"id"`
	ReadableID      string    `json:"readable_id"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	DeliveryAddress string    `json:"delivery_address"`
	PriceTotal      float64   `json:"price_total"`
	Status          string    `json:"status"`
	RiderPhone      string    `json:"rider_phone,omitempty"`
	CsatScore       *int      `json:"csat_score,omitempty"`
	CsatComment     string    `json:"csat_comment,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RiderOrder is the rider's public view of one order.
type RiderOrder struct {
	ReadableID      string    `json:"readable_id"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	DeliveryAddress string    `json:"delivery_address"`
	PriceTotal      float64   `json:"price_total"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	RiderPhone      string    `json:"rider_phone,omitempty"`
}

// CustomerOrder is the customer's public view of one order.
type CustomerOrder struct {
	ReadableID      string `json:"readable_id"`
	DeliveryAddress string `json:"delivery_address"`
	Status          string `json:"status"`
	RiderPhone      string `json:"rider_phone,omitempty"`
}

// PublicOrder wraps the role-specific projection returned by the public
// tracking endpoint. Exactly one of Rider and Customer is set.
type PublicOrder struct {
	Role     string         `json:"role"`
	Rider    *RiderOrder    `json:"rider,omitempty"`
	Customer *CustomerOrder `json:"customer,omitempty"`
}

// CsatReceipt acknowledges a stored rating.
type CsatReceipt struct {
	ReadableID string `json:"readable_id"`
	Score      int    `json:"score"`
	Comment    string `json:"comment,omitempty"`
}

func orderFromDomain(aggregate *order.Order) Order {
	return Order{
		ID:              aggregate.ID().String(),
		ReadableID:      aggregate.ReadableID(),
		CustomerName:    aggregate.CustomerName(),
		CustomerPhone:   aggregate.CustomerPhone(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		PriceTotal:      aggregate.PriceTotal(),
		Status:          aggregate.Status().String(),
		RiderPhone:      aggregate.RiderPhone(),
		CsatScore:       aggregate.CsatScore(),
		CsatComment:     aggregate.CsatComment(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

func orderFromListing(item queries.GetOrdersByOwnerQueryResponse) Order {
	return Order{
		ID:              item.ID.String(),
		ReadableID:      item.ReadableID,
		CustomerName:    item.CustomerName,
		CustomerPhone:   item.CustomerPhone,
		DeliveryAddress: item.DeliveryAddress,
		PriceTotal:      item.PriceTotal,
		Status:          item.Status.String(),
		RiderPhone:      item.RiderPhone,
		CsatScore:       item.CsatScore,
		CsatComment:     item.CsatComment,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func publicOrderFromProjection(resp queries.ResolvePublicOrderQueryResponse) PublicOrder {
	result := PublicOrder{Role: string(resp.Role)}

	if resp.Rider != nil {
		result.Rider = &RiderOrder{
			ReadableID:      resp.Rider.ReadableID,
			CustomerName:    resp.Rider.CustomerName,
			CustomerPhone:   resp.Rider.CustomerPhone,
			DeliveryAddress: resp.Rider.DeliveryAddress,
			PriceTotal:      resp.Rider.PriceTotal,
			Status:          resp.Rider.Status.String(),
			CreatedAt:       resp.Rider.CreatedAt,
			RiderPhone:      resp.Rider.RiderPhone,
		}
	}

	if resp.Customer != nil {
		result.Customer = &CustomerOrder{
			ReadableID:      resp.Customer.ReadableID,
			DeliveryAddress: resp.Customer.DeliveryAddress,
			Status:          resp.Customer.Status.String(),
			RiderPhone:      resp.Customer.RiderPhone,
		}
	}

	return result
}

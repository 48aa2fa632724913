// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The owner index serves the merchant dashboard listing; the unique token
// indexes serve the public resolution path and enforce global token uniqueness.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReadableID       string    `gorm:"not null"`
	OwnerID          uuid.UUID `gorm:"type:uuid;index;not null"`
	CustomerName     string    `gorm:"not null"`
	CustomerPhone    string    `gorm:"not null"`
	DeliveryAddress  string    `gorm:"not null"`
	PriceTotal       float64   `gorm:"not null"`
	Status           string    `gorm:"not null;index"`
	RiderPhone       *string
	RiderToken       *string `gorm:"uniqueIndex"`
	CustomerToken    *string `gorm:"uniqueIndex"`
	CsatScore        *int
	CsatComment      *string
	CsatReminderSent bool `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Unminted tokens and absent optional fields map to NULL so the unique token
// indexes ignore rows that have not reached the minting transition yet.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		ReadableID:       aggregate.ReadableID(),
		OwnerID:          aggregate.OwnerID().Bytes(),
		CustomerName:     aggregate.CustomerName(),
		CustomerPhone:    aggregate.CustomerPhone(),
		DeliveryAddress:  aggregate.DeliveryAddress(),
		PriceTotal:       aggregate.PriceTotal(),
		Status:           aggregate.Status().String(),
		RiderPhone:       optionalString(aggregate.RiderPhone()),
		RiderToken:       optionalToken(aggregate.RiderToken()),
		CustomerToken:    optionalToken(aggregate.CustomerToken()),
		CsatScore:        aggregate.CsatScore(),
		CsatComment:      optionalString(aggregate.CsatComment()),
		CsatReminderSent: aggregate.CsatReminderSent(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including tokens using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var riderToken kernel.AccessToken
	if dto.RiderToken != nil {
		riderToken, err = kernel.RestoreAccessToken(kernel.RiderRole, *dto.RiderToken)
		if err != nil {
			return nil, err
		}
	}

	var customerToken kernel.AccessToken
	if dto.CustomerToken != nil {
		customerToken, err = kernel.RestoreAccessToken(kernel.CustomerRole, *dto.CustomerToken)
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id,
		dto.ReadableID,
		ownerID,
		dto.CustomerName,
		dto.CustomerPhone,
		dto.DeliveryAddress,
		dto.PriceTotal,
		status,
		stringValue(dto.RiderPhone),
		riderToken,
		customerToken,
		dto.CsatScore,
		stringValue(dto.CsatComment),
		dto.CsatReminderSent,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalToken(t kernel.AccessToken) *string {
	if t.IsZero() {
		return nil
	}
	value := t.Value()
	return &value
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

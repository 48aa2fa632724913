package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a merchant's request to register a new delivery
// order. Carries the immutable customer fields set at creation time.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	ownerID         kernel.UUID
	customerName    string
	customerPhone   string
	deliveryAddress string
	priceTotal      float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates that both ids are constructed, the customer fields are non-empty,
// and the price is positive.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	ownerID kernel.UUID,
	customerName string,
	customerPhone string,
	deliveryAddress string,
	priceTotal float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwnerID(ownerID),
		cmd.setCustomerName(customerName),
		cmd.setCustomerPhone(customerPhone),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setPriceTotal(priceTotal),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// OwnerID returns the authenticated merchant creating the order.
func (c CreateOrderCommand) OwnerID() kernel.UUID { return c.ownerID }

// CustomerName returns the recipient's name.
func (c CreateOrderCommand) CustomerName() string { return c.customerName }

// CustomerPhone returns the recipient's phone number.
func (c CreateOrderCommand) CustomerPhone() string { return c.customerPhone }

// DeliveryAddress returns the destination address.
func (c CreateOrderCommand) DeliveryAddress() string { return c.deliveryAddress }

// PriceTotal returns the order total.
func (c CreateOrderCommand) PriceTotal() float64 { return c.priceTotal }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner_id", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setCustomerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customer_phone")
	}
	c.customerPhone = phone
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery_address")
	}
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setPriceTotal(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price_total")
	}
	c.priceTotal = price
	return nil
}

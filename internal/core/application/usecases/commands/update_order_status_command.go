package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a merchant's request to move an order to
// a new lifecycle status. The actor id is the authenticated merchant; it must
// match the order's owner before any change is applied. The rider phone is
// only meaningful for the READY transition and is validated there.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	actorID      kernel.UUID
	targetStatus order.Status
	riderPhone   string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status transition command.
// Validates the ids and that the target is a defined status; whether the edge
// is legal from the order's current status is decided by the domain model.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	targetStatus order.Status,
	riderPhone string,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		riderPhone: riderPhone,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setTargetStatus(targetStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns the authenticated merchant requesting the transition.
func (c UpdateOrderStatusCommand) ActorID() kernel.UUID { return c.actorID }

// TargetStatus returns the requested lifecycle status.
func (c UpdateOrderStatusCommand) TargetStatus() order.Status { return c.targetStatus }

// RiderPhone returns the rider phone payload, empty unless provided.
func (c UpdateOrderStatusCommand) RiderPhone() string { return c.riderPhone }

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor_id", err)
	}
	c.actorID = actorID
	return nil
}

func (c *UpdateOrderStatusCommand) setTargetStatus(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.targetStatus = target
	return nil
}

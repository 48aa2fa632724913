package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies lifecycle transitions to orders.
//
// A transition is applied as a conditional update: the write only lands while
// the persisted status still equals the status read at the start of the
// operation, so exactly one of two racing transitions succeeds and the loser
// gets a conflict without minting tokens or triggering a notification.
//
// Transitions into READY and DISPATCHED mint the rider and customer access
// tokens respectively. A token colliding with the storage unique index is
// retried once with a fresh value before the conflict is surfaced.
//
// After the transaction commits, exactly one notification intent is handed to
// the messaging gateway for READY, DISPATCHED, and COMPLETED. Gateway failures
// are logged and never affect the caller's result: the state change already
// happened.
type UpdateOrderStatusCommandHandler struct {
	uowFactory    OrderUoWFactory
	notifier      ports.Notifier
	publicBaseURL string
	logger        *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
// publicBaseURL is the prefix for tracking and feedback links embedded in
// outbound messages.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	publicBaseURL string,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:    uowFactory,
		notifier:      notifier,
		publicBaseURL: publicBaseURL,
		logger:        logger.With("component", "update_order_status"),
	}
}

// Handle processes the transition command and returns the updated order.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	updated, err := h.apply(ctx, cmd)
	if err != nil && isTokenCollision(err) {
		// The unique index rejected the minted token. One retry with a
		// fresh value; a second collision is surfaced as a conflict.
		updated, err = h.apply(ctx, cmd)
	}
	if err != nil {
		return nil, err
	}

	h.notify(ctx, updated)
	return updated, nil
}

// apply runs one full read-validate-write attempt inside its own transaction.
func (h *UpdateOrderStatusCommandHandler) apply(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !aggregate.IsOwnedBy(cmd.ActorID()) {
		return nil, errs.NewForbiddenError("order owner")
	}

	expectedStatus := aggregate.Status()
	if err = h.transition(aggregate, cmd); err != nil {
		return nil, err
	}

	if err = repo.UpdateWhereStatus(ctx, aggregate, expectedStatus); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// transition dispatches to the domain method for the requested status,
// minting the role-scoped token where the edge requires one.
func (h *UpdateOrderStatusCommandHandler) transition(aggregate *order.Order, cmd UpdateOrderStatusCommand) error {
	now := time.Now().UTC()

	switch cmd.TargetStatus() {
	case order.Processing:
		return aggregate.MarkProcessing(now)
	case order.Ready:
		token, err := kernel.NewAccessToken(kernel.RiderRole)
		if err != nil {
			return err
		}
		return aggregate.MarkReady(cmd.RiderPhone(), token, now)
	case order.Dispatched:
		token, err := kernel.NewAccessToken(kernel.CustomerRole)
		if err != nil {
			return err
		}
		return aggregate.MarkDispatched(token, now)
	case order.Completed:
		return aggregate.MarkCompleted(now)
	case order.Cancelled:
		return aggregate.Cancel(now)
	default:
		return errs.NewValueIsInvalidError("status")
	}
}

// notify emits the single notification intent for the committed transition.
// Failures are terminal at this boundary: logged, never propagated.
func (h *UpdateOrderStatusCommandHandler) notify(ctx context.Context, aggregate *order.Order) {
	var err error

	switch aggregate.Status() {
	case order.Ready:
		details := fmt.Sprintf("Order #%s for %s", aggregate.ReadableID(), aggregate.CustomerName())
		err = h.notifier.SendRiderAssignment(ctx, aggregate.RiderPhone(), details, h.trackingLink(aggregate.RiderToken()))
	case order.Dispatched:
		err = h.notifier.SendCustomerDispatch(ctx, aggregate.CustomerPhone(), aggregate.ReadableID(), h.trackingLink(aggregate.CustomerToken()))
	case order.Completed:
		err = h.notifier.SendDeliveryComplete(ctx, aggregate.CustomerPhone(), h.csatLink(aggregate.CustomerToken()))
	default:
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "notification dispatch failed",
			"order", aggregate.ReadableID(),
			"status", aggregate.Status().String(),
			"error", err,
		)
	}
}

func (h *UpdateOrderStatusCommandHandler) trackingLink(token kernel.AccessToken) string {
	return fmt.Sprintf("%s/track/%s", h.publicBaseURL, token.Value())
}

func (h *UpdateOrderStatusCommandHandler) csatLink(token kernel.AccessToken) string {
	return fmt.Sprintf("%s/csat/%s", h.publicBaseURL, token.Value())
}

// isTokenCollision reports whether the error is a conflict caused by the
// token unique index rather than a lost status race.
func isTokenCollision(err error) bool {
	var conflictErr *errs.ConflictError
	return errors.As(err, &conflictErr) && errors.Is(conflictErr.Cause, errs.ErrTokenCollision)
}

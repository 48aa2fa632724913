package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ordertrack/internal/core/ports"
)

// RemindCsatCommandHandler re-sends the feedback link for delivered orders
// whose customers never rated them. Each order is reminded at most once,
// tracked by a persisted flag, and only after the reminder delay has passed
// since the order last changed.
type RemindCsatCommandHandler struct {
	uowFactory    OrderUoWFactory
	notifier      ports.Notifier
	publicBaseURL string
	reminderDelay time.Duration
	logger        *slog.Logger
}

// NewRemindCsatCommandHandler creates a handler for the reminder sweep.
func NewRemindCsatCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	publicBaseURL string,
	reminderDelay time.Duration,
	logger *slog.Logger,
) RemindCsatCommandHandler {
	return RemindCsatCommandHandler{
		uowFactory:    uowFactory,
		notifier:      notifier,
		publicBaseURL: publicBaseURL,
		reminderDelay: reminderDelay,
		logger:        logger.With("component", "remind_csat"),
	}
}

// Handle sends the reminder for every eligible order. A gateway failure skips
// the flag write for that order so it stays eligible for the next sweep;
// failures never abort the rest of the batch.
func (h *RemindCsatCommandHandler) Handle(ctx context.Context, cmd RemindCsatCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	cutoff := time.Now().UTC().Add(-h.reminderDelay)
	pending, err := repo.GetCompletedAwaitingCsat(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, aggregate := range pending {
		csatLink := fmt.Sprintf("%s/csat/%s", h.publicBaseURL, aggregate.CustomerToken().Value())
		if sendErr := h.notifier.SendDeliveryComplete(ctx, aggregate.CustomerPhone(), csatLink); sendErr != nil {
			h.logger.ErrorContext(ctx, "csat reminder dispatch failed",
				"order", aggregate.ReadableID(),
				"error", sendErr,
			)
			continue
		}

		if markErr := repo.MarkCsatReminderSent(ctx, aggregate.ID(), time.Now().UTC()); markErr != nil {
			return markErr
		}
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"time"

	"ordertrack/internal/core/domain/model/order"
)

// SubmitCsatCommandHandler attaches a post-delivery satisfaction rating.
//
// The token is resolved against customer tokens only: a rider token misses the
// lookup and fails as not-found, indistinguishable from a token that never
// existed. Resubmission overwrites the previous rating (last write wins), and
// the write touches only the rating columns so a concurrent lifecycle
// transition is never clobbered.
type SubmitCsatCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSubmitCsatCommandHandler creates a handler for rating submissions.
func NewSubmitCsatCommandHandler(uowFactory OrderUoWFactory) SubmitCsatCommandHandler {
	return SubmitCsatCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating submission and returns the updated order.
func (h *SubmitCsatCommandHandler) Handle(ctx context.Context, cmd SubmitCsatCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.GetByCustomerToken(ctx, cmd.CustomerToken())
	if err != nil {
		return nil, err
	}

	if err = aggregate.SubmitCsat(cmd.Score(), cmd.Comment(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = repo.SaveCsat(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler drives the fulfillment state machine for shop owners.
//
// Example:
//
//	cmd, _ := NewChangeOrderStatusCommand(actor.ID, orderID, "accepted")
//	change, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrAccessDenied):
//	    // the shop sells nothing in this order
//	case errors.Is(err, order.ErrInvalidTransition):
//	    // not in the transition table
//	case errors.Is(err, errs.ErrConcurrencyConflict):
//	    // lost a race, or stock ran out
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	now        func() time.Time
	logger     *slog.Logger
}

func NewChangeOrderStatusCommandHandler(
	uowFactory FulfillmentUoWFactory,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
		logger:     logger.With("component", "order-status"),
	}
}

func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (order.StatusChange, error) {
	if err := cmd.Validate(); err != nil {
		return order.StatusChange{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.StatusChange{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := loadOrder(ctx, uow, cmd.OrderID())
	if err != nil {
		return order.StatusChange{}, err
	}

	now := h.now()
	change, err := o.Transition(cmd.Actor(), cmd.Status(), now)
	if err != nil {
		return order.StatusChange{}, err
	}

	if err = applyTransition(ctx, uow, o, change, now, h.logger); err != nil {
		return order.StatusChange{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.StatusChange{}, err
	}

	return change, nil
}

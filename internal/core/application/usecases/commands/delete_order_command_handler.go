package commands

import (
	"context"
)

// DeleteOrderCommandHandler hard-deletes a customer's order that is still pending.
// No stock is held by pending orders, so nothing needs restoring.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	o, err := loadOrder(ctx, uow, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.EnsureDeletableBy(cmd.UserID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().DeletePending(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

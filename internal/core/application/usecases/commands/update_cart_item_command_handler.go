package commands

import (
	"context"
)

type UpdateCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewUpdateCartItemCommandHandler(uowFactory CartUoWFactory) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns errs.ErrObjectNotFound when the product is not in the cart.
func (h UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) error {
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

	carts := uow.CartRepository()

	var err error
	if cmd.Removes() {
		err = carts.Remove(ctx, cmd.UserID(), cmd.ProductID())
	} else {
		err = carts.UpdateQuantity(ctx, cmd.UserID(), cmd.ProductID(), cmd.Quantity())
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

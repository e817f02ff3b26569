package commands

import (
	"context"

	"marketplace/internal/core/domain/model/cart"
)

// AddCartItemCommandHandler merges a product into the cart. The line keeps the
// price, title and image the catalog had at the moment of the first add.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns errs.ErrObjectNotFound when the product no longer exists.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
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

	product, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	item, err := cart.NewItem(product.ID, product.OwnerID, product.Title, product.Image, cmd.Quantity(), product.Price)
	if err != nil {
		return err
	}

	if err = uow.CartRepository().AddOrIncrement(ctx, cmd.UserID(), item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

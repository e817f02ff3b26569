package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels a customer's order while it is pending,
// accepted or packed. Moving items to the wishlist happens after the commit
// and never fails the cancellation.
type CancelOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	wishlist   ports.WishlistRepository
	now        func() time.Time
	logger     *slog.Logger
}

func NewCancelOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	wishlist ports.WishlistRepository,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		wishlist:   wishlist,
		now:        time.Now,
		logger:     logger.With("component", "cancel-order"),
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (order.StatusChange, error) {
	if err := cmd.Validate(); err != nil {
		return order.StatusChange{}, err
	}

	cancelled, change, err := h.cancel(ctx, cmd)
	if err != nil {
		return order.StatusChange{}, err
	}

	if cmd.MoveToWishlist() {
		h.moveToWishlist(ctx, cancelled)
	}
	return change, nil
}

func (h CancelOrderCommandHandler) cancel(
	ctx context.Context,
	cmd CancelOrderCommand,
) (*order.Order, order.StatusChange, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, order.StatusChange{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := loadOrder(ctx, uow, cmd.OrderID())
	if err != nil {
		return nil, order.StatusChange{}, err
	}
	if !o.BelongsTo(cmd.Actor().ID) {
		return nil, order.StatusChange{}, errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	now := h.now()
	change, err := o.Transition(cmd.Actor(), order.Cancelled, now)
	if err != nil {
		return nil, order.StatusChange{}, err
	}

	if err = applyTransition(ctx, uow, o, change, now, h.logger); err != nil {
		return nil, order.StatusChange{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, order.StatusChange{}, err
	}

	return o, change, nil
}

func (h CancelOrderCommandHandler) moveToWishlist(ctx context.Context, o *order.Order) {
	for _, item := range o.Items() {
		if err := h.wishlist.AddIfAbsent(ctx, o.UserID(), item.ProductID()); err != nil {
			h.logger.WarnContext(ctx, "failed to move item to wishlist",
				"order_id", o.ID().String(),
				"product_id", item.ProductID().String(),
				"error", err,
			)
		}
	}
}

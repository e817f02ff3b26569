package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// applyTransition persists a status change inside uow: compare-and-swap on the
// status first, so a concurrent transition loses before any stock moves, then
// the stock deltas, then the cancellation notice. Stock returned for a product
// that has left the catalog is dropped with a warning.
func applyTransition(
	ctx context.Context,
	uow FulfillmentUoW,
	o *order.Order,
	change order.StatusChange,
	now time.Time,
	logger *slog.Logger,
) error {
	if err := uow.OrderRepository().UpdateStatus(ctx, o, change.From); err != nil {
		return err
	}

	products := uow.ProductRepository()
	for _, delta := range change.Stock {
		err := products.AdjustStock(ctx, delta.ProductID, delta.Delta)
		if delta.Delta > 0 && errors.Is(err, errs.ErrObjectNotFound) {
			logger.WarnContext(ctx, "skipping stock restore for missing product",
				"order_id", o.ID().String(), "product_id", delta.ProductID.String(), "quantity", delta.Delta)
			continue
		}
		if err != nil {
			return err
		}
	}

	if !change.Cancelled() {
		return nil
	}

	message := notification.CancelledByCustomer(o.Number())
	if change.By.Role == kernel.ShopOwner {
		message = notification.CancelledByShopOwner(o.Number())
	}
	n, err := notification.New(o.UserID(), o.ID(), message, now)
	if err != nil {
		return err
	}
	return uow.NotificationOutbox().Add(ctx, n)
}

// loadOrder maps a missing order to a typed not-found error.
func loadOrder(ctx context.Context, repo OrderRepoFactory, id kernel.UUID) (*order.Order, error) {
	o, err := repo.OrderRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = o.Validate(); err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("order", id.String(), err)
	}
	return o, nil
}

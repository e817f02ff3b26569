// Package commands contains the marketplace operations that modify state.
// Every handler follows the same shape: validate the command, open a unit of
// work, load aggregates, apply domain behaviour, persist, commit.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces give each handler exactly the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	OutboxFactory interface {
		NotificationOutbox() ports.NotificationOutbox
	}

	// CartUoW serves cart mutations, which read the catalog for price snapshots.
	CartUoW interface {
		TxManager
		CartRepoFactory
		ProductRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW inserts the order and clears the cart in one transaction.
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// FulfillmentUoW applies a status change together with its stock adjustments
	// and notification.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   _ = uow.OrderRepository().UpdateStatus(ctx, o, change.From)
	//   _ = uow.ProductRepository().AdjustStock(ctx, productID, delta)
	//   _ = uow.NotificationOutbox().Add(ctx, n)
	//
	//   err = uow.Commit(ctx)
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		OutboxFactory
	}

	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// OrderUoW serves order-only operations such as payment updates and deletion.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OutboxUoW serves the notification relay.
	OutboxUoW interface {
		TxManager
		OutboxFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)

package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository persists Order aggregates.
type OrderRepository interface {
	// Add inserts a new order with its items.
	// Returns errs.ErrObjectAlreadyExists when the order number is taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ErrObjectNotFound for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByGatewayOrderID looks an order up by the payment gateway's reference.
	GetByGatewayOrderID(ctx context.Context, reference string) (*order.Order, error)

	// UpdateStatus stores status, stock ownership and cancellation time only if the
	// stored status still equals expected. Returns errs.ErrConcurrencyConflict otherwise.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// UpdatePayment stores payment status, paid amount and gateway reference.
	// Returns errs.ErrConcurrencyConflict when another gateway reference is already stored.
	UpdatePayment(ctx context.Context, aggregate *order.Order) error

	// DeletePending removes the order if it is still pending.
	// Returns errs.ErrConcurrencyConflict when it no longer is.
	DeletePending(ctx context.Context, id kernel.UUID) error

	// CountDelivered counts the user's orders in the delivered state.
	CountDelivered(ctx context.Context, userID kernel.UUID) (int64, error)
}

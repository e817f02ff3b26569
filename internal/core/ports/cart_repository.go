package ports

import (
	"context"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
)

// CartRepository persists cart lines keyed by (user, product).
type CartRepository interface {
	// Get returns the user's cart in insertion order. A user without lines gets an empty cart.
	Get(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// GetForCheckout is Get under a per-user lock held until the transaction ends.
	// Concurrent checkouts of the same user run one after the other.
	GetForCheckout(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// AddOrIncrement inserts the line or, if the product is already in the cart,
	// adds item.Quantity() to the stored quantity in a single statement. The stored
	// price/title/image snapshot is kept.
	AddOrIncrement(ctx context.Context, userID kernel.UUID, item cart.Item) error

	// UpdateQuantity overwrites the quantity of an existing line.
	// Returns errs.ErrObjectNotFound when the line does not exist.
	UpdateQuantity(ctx context.Context, userID, productID kernel.UUID, quantity int) error

	// Remove deletes one line. Returns errs.ErrObjectNotFound when the line does not exist.
	Remove(ctx context.Context, userID, productID kernel.UUID) error

	// Clear deletes every line of the user's cart.
	Clear(ctx context.Context, userID kernel.UUID) error

	// RemoveLines deletes the lines of the given products and keeps the rest.
	RemoveLines(ctx context.Context, userID kernel.UUID, productIDs []kernel.UUID) error
}

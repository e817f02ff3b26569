package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

type WishlistRepository interface {
	// AddIfAbsent inserts (user, product) unless it is already wishlisted.
	AddIfAbsent(ctx context.Context, userID, productID kernel.UUID) error
}

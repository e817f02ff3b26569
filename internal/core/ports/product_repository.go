package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Product is the catalog data the core reads. Catalog management lives elsewhere.
type Product struct {
	ID      kernel.UUID
	OwnerID kernel.UUID
	Title   string
	Image   string
	Price   decimal.Decimal
	Stock   int
}

// ProductRepository reads the catalog and owns the stock ledger.
type ProductRepository interface {
	// Get returns errs.ErrObjectNotFound for unknown products.
	Get(ctx context.Context, id kernel.UUID) (Product, error)

	// AdjustStock adds delta to the product's stock atomically. The update is
	// refused, with errs.ErrConcurrencyConflict, when it would make stock negative.
	// Returns errs.ErrObjectNotFound for unknown products.
	AdjustStock(ctx context.Context, productID kernel.UUID, delta int) error
}

package cart

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyCart rejects checkout of a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrItemNotFound is returned when removing a product that is not in the cart.
	ErrItemNotFound = errors.New("item not found in cart")
)

// Cart is the ordered set of lines for one user.
type Cart struct {
	userID kernel.UUID
	items  []Item
}

// NewCart assembles a cart from stored lines. Lines must belong to distinct products.
func NewCart(userID kernel.UUID, items []Item) (*Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[item.ProductID()]; dup {
			return nil, errs.NewObjectAlreadyExistsError("product_id", item.ProductID().String())
		}
		seen[item.ProductID()] = struct{}{}
	}

	return &Cart{userID: userID, items: append([]Item(nil), items...)}, nil
}

func (c *Cart) UserID() kernel.UUID {
	return c.userID
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []Item {
	return append([]Item(nil), c.items...)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Subtotal is Σ(price × quantity) over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// RepresentativeOwner returns the shop owner used for delivery pricing: the owner
// of the first line. Multi-shop carts are priced against that single shop.
func (c *Cart) RepresentativeOwner() (kernel.UUID, error) {
	if c.IsEmpty() {
		return kernel.UUID{}, errs.NewBusinessRuleViolationError(ErrEmptyCart, "")
	}
	return c.items[0].OwnerID(), nil
}

// EnsureNotEmpty returns a business rule violation for an empty cart.
func (c *Cart) EnsureNotEmpty() error {
	if c.IsEmpty() {
		return errs.NewBusinessRuleViolationError(ErrEmptyCart, "add items before checking out")
	}
	return nil
}

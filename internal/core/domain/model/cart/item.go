package cart

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one (user, product) line of a cart.
type Item struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	ownerID   kernel.UUID
	title     string
	image     string
	quantity  int
	price     decimal.Decimal

	guard guard.ConstructorGuard
}

// NewItem builds a cart line from a catalog snapshot.
func NewItem(
	productID kernel.UUID,
	ownerID kernel.UUID,
	title string,
	image string,
	quantity int,
	price decimal.Decimal,
) (Item, error) {
	item := Item{
		title: title,
		image: image,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setOwnerID(ownerID),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// OwnerID is the shop owner selling the product.
func (i Item) OwnerID() kernel.UUID {
	return i.ownerID
}

func (i Item) Title() string {
	return i.title
}

func (i Item) Image() string {
	return i.image
}

func (i Item) Quantity() int {
	return i.quantity
}

// Price is the unit price captured when the product was added.
func (i Item) Price() decimal.Decimal {
	return i.price
}

// LineTotal is price × quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("product_id", err)
	}
	i.productID = id
	return nil
}

func (i *Item) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner_id", err)
	}
	i.ownerID = id
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	i.price = price
	return nil
}

package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("order Item must be created via NewItem constructor")

// Item is an immutable snapshot of a cart line at order-creation time.
type Item struct {
	productID kernel.UUID
	ownerID   kernel.UUID
	title     string
	image     string
	quantity  int
	price     decimal.Decimal

	guard guard.ConstructorGuard
}

func NewItem(
	productID kernel.UUID,
	ownerID kernel.UUID,
	title string,
	image string,
	quantity int,
	price decimal.Decimal,
) (Item, error) {
	var problems []error
	if err := productID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("product_id", err))
	}
	if err := ownerID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("owner_id", err))
	}
	if quantity <= 0 {
		problems = append(problems,
			errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if price.IsNegative() {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price)))
	}
	if err := errors.Join(problems...); err != nil {
		return Item{}, err
	}

	return Item{
		productID: productID,
		ownerID:   ownerID,
		title:     title,
		image:     image,
		quantity:  quantity,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ItemFromCart snapshots a cart line.
func ItemFromCart(line cart.Item) (Item, error) {
	if err := line.Validate(); err != nil {
		return Item{}, err
	}
	return NewItem(line.ProductID(), line.OwnerID(), line.Title(), line.Image(), line.Quantity(), line.Price())
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ProductID() kernel.UUID { return i.productID }
func (i Item) OwnerID() kernel.UUID { return i.ownerID }
func (i Item) Title() string { return i.title }
func (i Item) Image() string { return i.image }
func (i Item) Quantity() int { return i.quantity }
func (i Item) Price() decimal.Decimal { return i.price }

func (i Item) LineTotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand sets the quantity of a cart line. A quantity of zero or
// less removes the line.
type UpdateCartItemCommand struct {
	userID    kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

func NewUpdateCartItemCommand(userID, productID kernel.UUID, quantity int) (UpdateCartItemCommand, error) {
	var problems []error
	if err := userID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("user_id", err))
	}
	if err := productID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("product_id", err))
	}
	if err := errors.Join(problems...); err != nil {
		return UpdateCartItemCommand{}, err
	}

	return UpdateCartItemCommand{
		userID:    userID,
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

func (c UpdateCartItemCommand) UserID() kernel.UUID {
	return c.userID
}

func (c UpdateCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c UpdateCartItemCommand) Quantity() int {
	return c.quantity
}

// Removes reports whether the command deletes the line.
func (c UpdateCartItemCommand) Removes() bool {
	return c.quantity <= 0
}

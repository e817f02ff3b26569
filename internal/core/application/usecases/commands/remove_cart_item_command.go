package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

type RemoveCartItemCommand struct {
	userID    kernel.UUID
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveCartItemCommand(userID, productID kernel.UUID) (RemoveCartItemCommand, error) {
	var problems []error
	if err := userID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("user_id", err))
	}
	if err := productID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("product_id", err))
	}
	if err := errors.Join(problems...); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return RemoveCartItemCommand{userID: userID, productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

func (c RemoveCartItemCommand) UserID() kernel.UUID {
	return c.userID
}

func (c RemoveCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

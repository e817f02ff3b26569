package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

type DeleteOrderCommand struct {
	userID  kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(userID, orderID kernel.UUID) (DeleteOrderCommand, error) {
	var problems []error
	if err := userID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("user_id", err))
	}
	if err := orderID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("order_id", err))
	}
	if err := errors.Join(problems...); err != nil {
		return DeleteOrderCommand{}, err
	}
	return DeleteOrderCommand{userID: userID, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) UserID() kernel.UUID {
	return c.userID
}

func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

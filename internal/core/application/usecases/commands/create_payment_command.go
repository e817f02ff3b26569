package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreatePaymentCommandIsNotConstructed = errors.New(
	"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
)

// CreatePaymentCommand starts an online payment for an order.
type CreatePaymentCommand struct {
	userID  kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreatePaymentCommand(userID, orderID kernel.UUID) (CreatePaymentCommand, error) {
	var problems []error
	if err := userID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("user_id", err))
	}
	if err := orderID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("order_id", err))
	}
	if err := errors.Join(problems...); err != nil {
		return CreatePaymentCommand{}, err
	}
	return CreatePaymentCommand{userID: userID, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

func (c CreatePaymentCommand) UserID() kernel.UUID {
	return c.userID
}

func (c CreatePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

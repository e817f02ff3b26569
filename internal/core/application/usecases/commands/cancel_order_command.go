package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand is a customer cancelling their own order, optionally moving
// its items to the wishlist.
type CancelOrderCommand struct {
	userID         kernel.UUID
	orderID        kernel.UUID
	moveToWishlist bool

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(userID, orderID kernel.UUID, moveToWishlist bool) (CancelOrderCommand, error) {
	var problems []error
	if err := userID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("user_id", err))
	}
	if err := orderID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("order_id", err))
	}
	if err := errors.Join(problems...); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		userID:         userID,
		orderID:        orderID,
		moveToWishlist: moveToWishlist,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) Actor() kernel.Actor {
	return kernel.Actor{ID: c.userID, Role: kernel.Customer}
}

func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CancelOrderCommand) MoveToWishlist() bool {
	return c.moveToWishlist
}

package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetUserOrderQueryIsNotConstructed = errors.New(
	"GetUserOrderQuery must be created via NewGetUserOrderQuery constructor",
)

type GetUserOrderQuery struct {
	userID  kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetUserOrderQuery(userID, orderID kernel.UUID) (GetUserOrderQuery, error) {
	var problems []error
	if err := userID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("user_id", err))
	}
	if err := orderID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("order_id", err))
	}
	if err := errors.Join(problems...); err != nil {
		return GetUserOrderQuery{}, err
	}
	return GetUserOrderQuery{userID: userID, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrderQueryIsNotConstructed)
}

func (q GetUserOrderQuery) UserID() kernel.UUID {
	return q.userID
}

func (q GetUserOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

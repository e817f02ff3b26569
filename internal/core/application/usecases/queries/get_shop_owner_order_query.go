package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetShopOwnerOrderQueryIsNotConstructed = errors.New(
	"GetShopOwnerOrderQuery must be created via NewGetShopOwnerOrderQuery constructor",
)

type GetShopOwnerOrderQuery struct {
	ownerID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetShopOwnerOrderQuery(ownerID, orderID kernel.UUID) (GetShopOwnerOrderQuery, error) {
	var problems []error
	if err := ownerID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("owner_id", err))
	}
	if err := orderID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("order_id", err))
	}
	if err := errors.Join(problems...); err != nil {
		return GetShopOwnerOrderQuery{}, err
	}
	return GetShopOwnerOrderQuery{ownerID: ownerID, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShopOwnerOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetShopOwnerOrderQueryIsNotConstructed)
}

func (q GetShopOwnerOrderQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

func (q GetShopOwnerOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

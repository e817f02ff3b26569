package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrListShopOwnerOrdersQueryIsNotConstructed = errors.New(
	"ListShopOwnerOrdersQuery must be created via NewListShopOwnerOrdersQuery constructor",
)

// ListShopOwnerOrdersQuery lists every order containing the owner's products,
// cancelled ones included.
type ListShopOwnerOrdersQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListShopOwnerOrdersQuery(ownerID kernel.UUID) (ListShopOwnerOrdersQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return ListShopOwnerOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("owner_id", err)
	}
	return ListShopOwnerOrdersQuery{ownerID: ownerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListShopOwnerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListShopOwnerOrdersQueryIsNotConstructed)
}

func (q ListShopOwnerOrdersQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

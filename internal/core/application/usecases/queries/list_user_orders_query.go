package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrListUserOrdersQueryIsNotConstructed = errors.New(
	"ListUserOrdersQuery must be created via NewListUserOrdersQuery constructor",
)

// ListUserOrdersQuery is the customer's order history. Cancelled orders are
// left out; they stay reachable through GetUserOrderQuery.
type ListUserOrdersQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListUserOrdersQuery(userID kernel.UUID) (ListUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListUserOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("user_id", err)
	}
	return ListUserOrdersQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListUserOrdersQueryIsNotConstructed)
}

func (q ListUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetCheckoutSummaryQueryIsNotConstructed = errors.New(
	"GetCheckoutSummaryQuery must be created via NewGetCheckoutSummaryQuery constructor",
)

// GetCheckoutSummaryQuery previews the price of checking out the caller's cart.
// Without an explicit destination the coordinates saved in the profile are used.
type GetCheckoutSummaryQuery struct {
	userID       kernel.UUID
	destination  *kernel.GeoPoint
	claimNewUser bool

	guard guard.ConstructorGuard
}

func NewGetCheckoutSummaryQuery(
	userID kernel.UUID,
	destination *kernel.GeoPoint,
	claimNewUser bool,
) (GetCheckoutSummaryQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetCheckoutSummaryQuery{}, errs.NewValueIsRequiredErrorWithCause("user_id", err)
	}
	if destination != nil {
		if err := destination.Validate(); err != nil {
			return GetCheckoutSummaryQuery{}, err
		}
		point := *destination
		destination = &point
	}

	return GetCheckoutSummaryQuery{
		userID:       userID,
		destination:  destination,
		claimNewUser: claimNewUser,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetCheckoutSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetCheckoutSummaryQueryIsNotConstructed)
}

func (q GetCheckoutSummaryQuery) UserID() kernel.UUID {
	return q.userID
}

// Destination is nil when the profile location should be used.
func (q GetCheckoutSummaryQuery) Destination() *kernel.GeoPoint {
	return q.destination
}

func (q GetCheckoutSummaryQuery) ClaimNewUser() bool {
	return q.claimNewUser
}

type GetCheckoutSummaryQueryResponse struct {
	Items   []CartLine
	Pricing order.Pricing
}

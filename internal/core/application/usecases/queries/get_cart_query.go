package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCartQueryIsNotConstructed = errors.New("GetCartQuery must be created via NewGetCartQuery constructor")

// GetCartQuery reads the caller's cart.
type GetCartQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCartQuery(userID kernel.UUID) (GetCartQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetCartQuery{}, errs.NewValueIsRequiredErrorWithCause("user_id", err)
	}
	return GetCartQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) UserID() kernel.UUID {
	return q.userID
}

// CartLine is one cart row with its line total.
type CartLine struct {
	ProductID kernel.UUID
	OwnerID   kernel.UUID
	Title     string
	Image     string
	Price     decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
}

type GetCartQueryResponse struct {
	Items     []CartLine
	ItemCount int
	Subtotal  decimal.Decimal
}

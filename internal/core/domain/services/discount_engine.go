package services

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

const (
	OfferNewUser = "NEWUSER150"
	OfferBigSave = "BIGSAVE10"
	OfferFlat100 = "FLAT100"
)

var (
	NewUserDiscount    = decimal.NewFromInt(150)
	NewUserMinSubtotal = decimal.NewFromInt(250)

	BigSaveMinSubtotal = decimal.NewFromInt(1499)
	BigSaveRate        = decimal.RequireFromString("0.10")
	BigSaveCap         = decimal.NewFromInt(300)

	FlatMinSubtotal = decimal.NewFromInt(999)
	FlatDiscount    = decimal.NewFromInt(100)
)

// OrderHistory answers how many of a user's orders reached delivered.
type OrderHistory interface {
	CountDelivered(ctx context.Context, userID kernel.UUID) (int64, error)
}

// DiscountEngine picks at most one offer for a checkout. The first-order offer
// is granted only when persisted history confirms the user has no delivered order;
// the client's claim flag merely asks for it.
type DiscountEngine struct {
	history OrderHistory
}

func NewDiscountEngine(history OrderHistory) (*DiscountEngine, error) {
	if history == nil {
		return nil, fmt.Errorf("order history is required")
	}
	return &DiscountEngine{history: history}, nil
}

func (e *DiscountEngine) Calculate(
	ctx context.Context,
	userID kernel.UUID,
	subtotal decimal.Decimal,
	claimNewUser bool,
) (order.Discount, error) {
	result := order.Discount{Amount: decimal.Zero}

	if claimNewUser {
		delivered, err := e.history.CountDelivered(ctx, userID)
		if err != nil {
			return order.Discount{}, fmt.Errorf("count delivered orders: %w", err)
		}

		switch {
		case delivered > 0:
			result.Message = "New User offer is not applicable (You have previous orders)."
		case subtotal.LessThan(NewUserMinSubtotal):
			result.Message = fmt.Sprintf("New User offer requires a minimum order of ₹%s.", NewUserMinSubtotal)
		default:
			result.Amount = NewUserDiscount
			result.OfferCode = OfferNewUser
			result.Message = fmt.Sprintf("Top Deal! Flat ₹%s OFF on first order.", NewUserDiscount)
		}
	}

	if result.OfferCode == "" {
		if subtotal.GreaterThanOrEqual(BigSaveMinSubtotal) {
			potential := decimal.Min(subtotal.Mul(BigSaveRate), BigSaveCap)
			if potential.GreaterThan(result.Amount) {
				result.Amount = potential
				result.OfferCode = OfferBigSave
				result.Message = fmt.Sprintf("10%% OFF applied (Max ₹%s)", BigSaveCap)
			}
		}

		if subtotal.GreaterThanOrEqual(FlatMinSubtotal) && result.Amount.IsZero() {
			result.Amount = FlatDiscount
			result.OfferCode = OfferFlat100
			result.Message = fmt.Sprintf("Flat ₹%s OFF applied", FlatDiscount)
		}
	}

	if result.Amount.GreaterThan(subtotal) {
		result.Amount = subtotal
	}
	result.Amount = order.RoundMoney(result.Amount)
	return result, nil
}

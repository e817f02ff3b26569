package services

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

var (
	// ErrShopLocationMissing is broken when the pricing shop has no coordinates.
	ErrShopLocationMissing = errors.New("shop location missing")

	// ErrProfileMissing is broken when the customer never saved a profile.
	ErrProfileMissing = errors.New("profile missing")
)

// CheckoutPricer is the single place pricing is derived, for both the summary
// preview and order creation.
type CheckoutPricer struct {
	fees      DeliveryFeeCalculator
	discounts *DiscountEngine
}

func NewCheckoutPricer(fees DeliveryFeeCalculator, discounts *DiscountEngine) *CheckoutPricer {
	return &CheckoutPricer{fees: fees, discounts: discounts}
}

// Price measures shop→destination distance, applies the fee and offer rules and
// returns the combined pricing. Errors from either rule set are returned as is.
func (p *CheckoutPricer) Price(
	ctx context.Context,
	userID kernel.UUID,
	subtotal decimal.Decimal,
	shop kernel.GeoPoint,
	destination kernel.GeoPoint,
	claimNewUser bool,
) (order.Pricing, error) {
	distance, err := shop.DistanceKm(destination)
	if err != nil {
		return order.Pricing{}, err
	}

	delivery, err := p.fees.Calculate(distance, subtotal)
	if err != nil {
		return order.Pricing{}, err
	}

	discount, err := p.discounts.Calculate(ctx, userID, subtotal, claimNewUser)
	if err != nil {
		return order.Pricing{}, err
	}

	return order.NewPricing(subtotal, delivery, discount)
}

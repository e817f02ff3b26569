package services

import (
	"errors"
	"fmt"
	"math"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOutOfServiceArea is broken when the customer is farther than MaxDistanceKm from the shop.
var ErrOutOfServiceArea = errors.New("delivery address is out of service area")

const (
	MaxDistanceKm      = 20.0
	FreeDistanceKm     = 3.0
	DiscountDistanceKm = 5.0
)

var (
	BaseFee               = decimal.NewFromInt(30)
	PerKmRate             = decimal.NewFromInt(8)
	FreeDeliveryThreshold = decimal.NewFromInt(799)
	NearDistanceDiscount  = decimal.NewFromInt(30)
)

// DeliveryFeeCalculator turns distance and subtotal into a delivery fee.
//
// Rules, first match wins:
//  1. distance > 20km: ErrOutOfServiceArea
//  2. subtotal > 799: free
//  3. distance ≤ 3km: free
//  4. distance ≤ 5km: 30 + 8/km, minus 30
//  5. otherwise 30 + 8/km
type DeliveryFeeCalculator struct{}

func NewDeliveryFeeCalculator() DeliveryFeeCalculator {
	return DeliveryFeeCalculator{}
}

// Calculate is pure and deterministic; fees are rounded to two places and never negative.
func (DeliveryFeeCalculator) Calculate(distanceKm float64, subtotal decimal.Decimal) (order.DeliveryQuote, error) {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return order.DeliveryQuote{}, errs.NewValueIsOutOfRangeError("distance_km", distanceKm, 0, MaxDistanceKm)
	}
	if subtotal.IsNegative() {
		return order.DeliveryQuote{}, errs.NewValueIsOutOfRangeError("subtotal", subtotal, 0, "∞")
	}

	if distanceKm > MaxDistanceKm {
		return order.DeliveryQuote{}, errs.NewBusinessRuleViolationError(
			ErrOutOfServiceArea,
			fmt.Sprintf("We currently do not deliver beyond %gkm. Your distance: %.1fkm", MaxDistanceKm, distanceKm),
		)
	}

	if subtotal.GreaterThan(FreeDeliveryThreshold) {
		return order.DeliveryQuote{
			Fee:        decimal.Zero,
			IsFree:     true,
			Breakdown:  fmt.Sprintf("Free Delivery (Order > ₹%s)", FreeDeliveryThreshold),
			DistanceKm: distanceKm,
		}, nil
	}

	if distanceKm <= FreeDistanceKm {
		return order.DeliveryQuote{
			Fee:        decimal.Zero,
			IsFree:     true,
			Breakdown:  fmt.Sprintf("Free Delivery (Within %gkm)", FreeDistanceKm),
			DistanceKm: distanceKm,
		}, nil
	}

	rawFee := order.RoundMoney(BaseFee.Add(decimal.NewFromFloat(distanceKm).Mul(PerKmRate)))

	if distanceKm <= DiscountDistanceKm {
		fee := rawFee.Sub(NearDistanceDiscount)
		if fee.IsNegative() {
			fee = decimal.Zero
		}
		return order.DeliveryQuote{
			Fee:        fee,
			Breakdown:  fmt.Sprintf("₹%s - ₹%s (Near Distance Offer)", rawFee, NearDistanceDiscount),
			DistanceKm: distanceKm,
		}, nil
	}

	return order.DeliveryQuote{
		Fee:        rawFee,
		Breakdown:  fmt.Sprintf("Base ₹%s + (₹%s × %.1fkm)", BaseFee, PerKmRate, distanceKm),
		DistanceKm: distanceKm,
	}, nil
}

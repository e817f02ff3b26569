package services_test

import (
	"math"
	"testing"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryFeeCalculator_Calculate(t *testing.T) {
	calc := services.NewDeliveryFeeCalculator()

	tests := []struct {
		name      string
		distance  float64
		subtotal  string
		fee       string
		free      bool
		breakdown string
	}{
		{"order value wins regardless of distance", 2, "850", "0", true, "Free Delivery (Order > ₹799)"},
		{"order value wins at long distance", 19.5, "800", "0", true, "Free Delivery (Order > ₹799)"},
		{"exactly 799 is not free by value", 10, "799", "110", false, "Base ₹30 + (₹8 × 10.0km)"},
		{"short distance is free", 3, "100", "0", true, "Free Delivery (Within 3km)"},
		{"near distance offer", 4, "500", "32", false, "₹62 - ₹30 (Near Distance Offer)"},
		{"near distance boundary", 5, "500", "40", false, "₹70 - ₹30 (Near Distance Offer)"},
		{"standard fee", 7.25, "100", "88", false, "Base ₹30 + (₹8 × 7.2km)"},
		{"max distance is still served", 20, "100", "190", false, "Base ₹30 + (₹8 × 20.0km)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := calc.Calculate(tt.distance, decimal.RequireFromString(tt.subtotal))

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.fee).Equal(quote.Fee), "fee %s", quote.Fee)
			assert.Equal(t, tt.free, quote.IsFree)
			assert.Equal(t, tt.breakdown, quote.Breakdown)
			assert.InDelta(t, tt.distance, quote.DistanceKm, 1e-9)
		})
	}

	t.Run("beyond max distance fails", func(t *testing.T) {
		for _, d := range []float64{20.01, 25, 1000} {
			_, err := calc.Calculate(d, decimal.NewFromInt(5000))

			require.ErrorIs(t, err, services.ErrOutOfServiceArea)
			require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
			assert.Contains(t, err.Error(), "We currently do not deliver beyond 20km")
		}
	})

	t.Run("fee is deterministic and never negative", func(t *testing.T) {
		for d := 0.0; d <= 20; d += 0.37 {
			for _, s := range []int64{0, 100, 799, 800, 5000} {
				a, err := calc.Calculate(d, decimal.NewFromInt(s))
				require.NoError(t, err)
				b, err := calc.Calculate(d, decimal.NewFromInt(s))
				require.NoError(t, err)

				assert.False(t, a.Fee.IsNegative())
				assert.Equal(t, a, b)
			}
		}
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		_, err := calc.Calculate(-1, decimal.Zero)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = calc.Calculate(math.NaN(), decimal.Zero)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = calc.Calculate(1, decimal.NewFromInt(-5))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

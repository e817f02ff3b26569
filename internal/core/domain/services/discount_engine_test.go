package services_test

import (
	"context"
	"errors"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOrderHistory struct {
	mock.Mock
}

func (m *mockOrderHistory) CountDelivered(ctx context.Context, userID kernel.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func TestDiscountEngine_Calculate(t *testing.T) {
	userID := kernel.NewUUID()

	t.Run("new user claim beats the tiered offers", func(t *testing.T) {
		history := &mockOrderHistory{}
		history.On("CountDelivered", mock.Anything, userID).Return(int64(0), nil).Once()
		engine, err := services.NewDiscountEngine(history)
		require.NoError(t, err)

		d, err := engine.Calculate(t.Context(), userID, decimal.NewFromInt(1600), true)

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(150).Equal(d.Amount))
		assert.Equal(t, services.OfferNewUser, d.OfferCode)
		assert.Equal(t, "Top Deal! Flat ₹150 OFF on first order.", d.Message)
		history.AssertExpectations(t)
	})

	t.Run("new user below minimum gets no first-order discount", func(t *testing.T) {
		history := &mockOrderHistory{}
		history.On("CountDelivered", mock.Anything, userID).Return(int64(0), nil).Once()
		engine, _ := services.NewDiscountEngine(history)

		d, err := engine.Calculate(t.Context(), userID, decimal.NewFromInt(200), true)

		require.NoError(t, err)
		assert.True(t, d.Amount.IsZero())
		assert.Empty(t, d.OfferCode)
		assert.Equal(t, "New User offer requires a minimum order of ₹250.", d.Message)
	})

	t.Run("returning user claim is ignored and tiers apply", func(t *testing.T) {
		history := &mockOrderHistory{}
		history.On("CountDelivered", mock.Anything, userID).Return(int64(3), nil).Once()
		engine, _ := services.NewDiscountEngine(history)

		d, err := engine.Calculate(t.Context(), userID, decimal.NewFromInt(1000), true)

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(100).Equal(d.Amount))
		assert.Equal(t, services.OfferFlat100, d.OfferCode)
	})

	t.Run("returning user without tier keeps the explanation", func(t *testing.T) {
		history := &mockOrderHistory{}
		history.On("CountDelivered", mock.Anything, userID).Return(int64(1), nil).Once()
		engine, _ := services.NewDiscountEngine(history)

		d, err := engine.Calculate(t.Context(), userID, decimal.NewFromInt(300), true)

		require.NoError(t, err)
		assert.True(t, d.Amount.IsZero())
		assert.Equal(t, "New User offer is not applicable (You have previous orders).", d.Message)
	})

	t.Run("history is not consulted without a claim", func(t *testing.T) {
		history := &mockOrderHistory{}
		engine, _ := services.NewDiscountEngine(history)

		d, err := engine.Calculate(t.Context(), userID, decimal.NewFromInt(2000), false)

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(200).Equal(d.Amount))
		assert.Equal(t, services.OfferBigSave, d.OfferCode)
		assert.Equal(t, "10% OFF applied (Max ₹300)", d.Message)
		history.AssertNotCalled(t, "CountDelivered", mock.Anything, mock.Anything)
	})

	t.Run("tiers", func(t *testing.T) {
		engine, _ := services.NewDiscountEngine(&mockOrderHistory{})

		tests := []struct {
			subtotal string
			amount   string
			code     string
		}{
			{"998.99", "0", ""},
			{"999", "100", services.OfferFlat100},
			{"1498", "100", services.OfferFlat100},
			{"1499", "149.9", services.OfferBigSave},
			{"3000", "300", services.OfferBigSave},
			{"10000", "300", services.OfferBigSave},
		}
		for _, tt := range tests {
			d, err := engine.Calculate(t.Context(), userID, decimal.RequireFromString(tt.subtotal), false)

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.amount).Equal(d.Amount), "%s: %s", tt.subtotal, d.Amount)
			assert.Equal(t, tt.code, d.OfferCode, tt.subtotal)
			assert.False(t, d.Amount.GreaterThan(decimal.RequireFromString(tt.subtotal)))
		}
	})

	t.Run("history failure is returned", func(t *testing.T) {
		history := &mockOrderHistory{}
		history.On("CountDelivered", mock.Anything, userID).Return(int64(0), errors.New("db down")).Once()
		engine, _ := services.NewDiscountEngine(history)

		_, err := engine.Calculate(t.Context(), userID, decimal.NewFromInt(500), true)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
	})

	t.Run("requires history", func(t *testing.T) {
		_, err := services.NewDiscountEngine(nil)
		require.Error(t, err)
	})
}

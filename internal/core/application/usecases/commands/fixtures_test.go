package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func geo(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func testAddress(t *testing.T) order.Address {
	t.Helper()
	a, err := order.NewAddress("Asha", "9999999999", "12 MG Road", "Bengaluru", "560001", "KA", geo(t, 12.99, 77.59))
	require.NoError(t, err)
	return a
}

func testCart(t *testing.T, userID, ownerID kernel.UUID) *cart.Cart {
	t.Helper()
	a, err := cart.NewItem(kernel.NewUUID(), ownerID, "Rice", "rice.png", 2, decimal.NewFromInt(200))
	require.NoError(t, err)
	b, err := cart.NewItem(kernel.NewUUID(), ownerID, "Dal", "dal.png", 1, decimal.NewFromInt(100))
	require.NoError(t, err)
	c, err := cart.NewCart(userID, []cart.Item{a, b})
	require.NoError(t, err)
	return c
}

// testOrder builds a pending order for userID with two items of ownerID.
func testOrder(t *testing.T, userID, ownerID kernel.UUID, method order.PaymentMethod) *order.Order {
	t.Helper()
	a, err := order.NewItem(kernel.NewUUID(), ownerID, "Rice", "", 2, decimal.NewFromInt(200))
	require.NoError(t, err)
	b, err := order.NewItem(kernel.NewUUID(), ownerID, "Dal", "", 1, decimal.NewFromInt(100))
	require.NoError(t, err)
	pricing, err := order.NewPricing(decimal.NewFromInt(500), order.DeliveryQuote{Fee: decimal.Zero}, order.Discount{Amount: decimal.Zero})
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), "ORD202501010000001000", userID, []order.Item{a, b},
		order.ProfileSnapshot{Name: "Asha"}, testAddress(t), "", method, pricing, time.Now(),
	)
	require.NoError(t, err)
	return o
}

package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/cartrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/adapters/out/postgres/profilerepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type discardTracker struct{}

func (discardTracker) TrackAggregate(kernel.UUID, any) {}

type QueryHandlersTestSuite struct {
	pgtest.Suite
	orders *orderrepo.GormOrderRepository
	carts  *cartrepo.GormCartRepository
	pricer *services.CheckoutPricer
}

func TestQueryHandlers(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}

func (s *QueryHandlersTestSuite) SetupTest() {
	s.Suite.SetupTest()
	s.orders = orderrepo.NewGormOrderRepository(s.DB, discardTracker{})
	s.carts = cartrepo.NewGormCartRepository(s.DB)

	discounts, err := services.NewDiscountEngine(s.orders)
	s.Require().NoError(err)
	s.pricer = services.NewCheckoutPricer(services.NewDeliveryFeeCalculator(), discounts)
}

func (s *QueryHandlersTestSuite) point(lat, lng float64) kernel.GeoPoint {
	p, err := kernel.NewGeoPoint(lat, lng)
	s.Require().NoError(err)
	return p
}

func (s *QueryHandlersTestSuite) addToCart(userID, ownerID kernel.UUID, quantity int, price int64) kernel.UUID {
	productID := s.SeedProduct(ownerID, "Rice", price, 50)
	item, err := cart.NewItem(productID, ownerID, "Rice", "Rice.png", quantity, decimal.NewFromInt(price))
	s.Require().NoError(err)
	s.Require().NoError(s.carts.AddOrIncrement(context.Background(), userID, item))
	return productID
}

// placeOrder stores a pending order of userID with one item per owner.
func (s *QueryHandlersTestSuite) placeOrder(userID kernel.UUID, number string, createdAt time.Time, owners ...kernel.UUID) *order.Order {
	address, err := order.NewAddress("Asha", "9999999999", "12 MG Road", "Bengaluru", "560001", "KA", s.point(12.99, 77.59))
	s.Require().NoError(err)

	items := make([]order.Item, 0, len(owners))
	subtotal := decimal.Zero
	for _, owner := range owners {
		item, err := order.NewItem(kernel.NewUUID(), owner, "Item", "", 2, decimal.NewFromInt(100))
		s.Require().NoError(err)
		items = append(items, item)
		subtotal = subtotal.Add(item.LineTotal())
	}
	pricing, err := order.NewPricing(subtotal, order.DeliveryQuote{Fee: decimal.Zero, IsFree: true}, order.Discount{Amount: decimal.Zero})
	s.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), number, userID, items, order.ProfileSnapshot{Name: "Asha"},
		address, "", order.CashOnDelivery, pricing, createdAt)
	s.Require().NoError(err)
	s.Require().NoError(s.orders.Add(context.Background(), o))
	return o
}

func (s *QueryHandlersTestSuite) move(o *order.Order, actor kernel.Actor, next order.Status) {
	change, err := o.Transition(actor, next, time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.orders.UpdateStatus(context.Background(), o, change.From))
}

func (s *QueryHandlersTestSuite) TestGetCart() {
	ctx := context.Background()
	userID, ownerID := kernel.NewUUID(), kernel.NewUUID()
	s.addToCart(userID, ownerID, 2, 200)
	s.addToCart(userID, ownerID, 1, 100)

	query, err := queries.NewGetCartQuery(userID)
	s.Require().NoError(err)
	response, err := queries.NewGetCartQueryHandler(s.DB).Handle(ctx, query)

	s.Require().NoError(err)
	s.Len(response.Items, 2)
	s.Equal(3, response.ItemCount)
	s.True(decimal.NewFromInt(500).Equal(response.Subtotal), response.Subtotal.String())
	s.True(decimal.NewFromInt(400).Equal(response.Items[0].LineTotal))
}

func (s *QueryHandlersTestSuite) TestGetCartEmpty() {
	query, err := queries.NewGetCartQuery(kernel.NewUUID())
	s.Require().NoError(err)

	response, err := queries.NewGetCartQueryHandler(s.DB).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Empty(response.Items)
	s.True(response.Subtotal.IsZero())
}

func (s *QueryHandlersTestSuite) summaryHandler() queries.GetCheckoutSummaryQueryHandler {
	return queries.NewGetCheckoutSummaryQueryHandler(
		s.DB, profilerepo.NewGormProfileRepository(s.DB), profilerepo.NewGormShopRepository(s.DB), s.pricer,
	)
}

func (s *QueryHandlersTestSuite) TestCheckoutSummaryMatchesPricer() {
	ctx := context.Background()
	userID, ownerID := kernel.NewUUID(), kernel.NewUUID()
	s.SeedShop(ownerID, 12.9716, 77.5946)
	s.addToCart(userID, ownerID, 2, 200)
	destination := s.point(13.0100, 77.5946)

	query, err := queries.NewGetCheckoutSummaryQuery(userID, &destination, true)
	s.Require().NoError(err)
	response, err := s.summaryHandler().Handle(ctx, query)
	s.Require().NoError(err)

	expected, err := s.pricer.Price(ctx, userID, decimal.NewFromInt(400), s.point(12.9716, 77.5946), destination, true)
	s.Require().NoError(err)

	s.Len(response.Items, 1)
	s.True(expected.Total().Equal(response.Pricing.Total()))
	s.Equal(expected.Delivery().Breakdown, response.Pricing.Delivery().Breakdown)
	s.Equal("NEWUSER150", response.Pricing.Discount().OfferCode)
}

func (s *QueryHandlersTestSuite) TestCheckoutSummaryUsesProfileLocation() {
	ctx := context.Background()
	userID, ownerID := kernel.NewUUID(), kernel.NewUUID()
	s.SeedShop(ownerID, 12.9716, 77.5946)
	lat, lng := 12.9720, 77.5950
	s.SeedProfile(userID, "Asha", &lat, &lng)
	s.addToCart(userID, ownerID, 1, 100)

	query, err := queries.NewGetCheckoutSummaryQuery(userID, nil, false)
	s.Require().NoError(err)
	response, err := s.summaryHandler().Handle(ctx, query)

	s.Require().NoError(err)
	s.True(response.Pricing.Delivery().IsFree)
	s.Less(response.Pricing.Delivery().DistanceKm, 1.0)
}

func (s *QueryHandlersTestSuite) TestCheckoutSummaryErrors() {
	ctx := context.Background()

	s.Run("empty cart", func() {
		query, err := queries.NewGetCheckoutSummaryQuery(kernel.NewUUID(), nil, false)
		s.Require().NoError(err)
		_, err = s.summaryHandler().Handle(ctx, query)
		s.ErrorIs(err, cart.ErrEmptyCart)
	})

	s.Run("shop without location", func() {
		userID := kernel.NewUUID()
		s.addToCart(userID, kernel.NewUUID(), 1, 100)
		query, err := queries.NewGetCheckoutSummaryQuery(userID, nil, false)
		s.Require().NoError(err)
		_, err = s.summaryHandler().Handle(ctx, query)
		s.ErrorIs(err, services.ErrShopLocationMissing)
	})

	s.Run("no profile and no destination", func() {
		userID, ownerID := kernel.NewUUID(), kernel.NewUUID()
		s.SeedShop(ownerID, 12.9716, 77.5946)
		s.addToCart(userID, ownerID, 1, 100)
		query, err := queries.NewGetCheckoutSummaryQuery(userID, nil, false)
		s.Require().NoError(err)
		_, err = s.summaryHandler().Handle(ctx, query)
		s.ErrorIs(err, services.ErrProfileMissing)
	})

	s.Run("profile without coordinates", func() {
		userID, ownerID := kernel.NewUUID(), kernel.NewUUID()
		s.SeedShop(ownerID, 12.9716, 77.5946)
		s.SeedProfile(userID, "Asha", nil, nil)
		s.addToCart(userID, ownerID, 1, 100)
		query, err := queries.NewGetCheckoutSummaryQuery(userID, nil, false)
		s.Require().NoError(err)
		_, err = s.summaryHandler().Handle(ctx, query)
		s.ErrorIs(err, errs.ErrValueIsRequired)
	})

	s.Run("out of service area", func() {
		userID, ownerID := kernel.NewUUID(), kernel.NewUUID()
		s.SeedShop(ownerID, 12.9716, 77.5946)
		s.addToCart(userID, ownerID, 1, 100)
		far := s.point(13.5, 77.5946)
		query, err := queries.NewGetCheckoutSummaryQuery(userID, &far, false)
		s.Require().NoError(err)
		_, err = s.summaryHandler().Handle(ctx, query)
		s.ErrorIs(err, services.ErrOutOfServiceArea)
	})
}

func (s *QueryHandlersTestSuite) TestUserOrders() {
	ctx := context.Background()
	userID, ownerID := kernel.NewUUID(), kernel.NewUUID()
	now := time.Now()

	older := s.placeOrder(userID, "ORD202501011200001000", now.Add(-time.Hour), ownerID)
	newer := s.placeOrder(userID, "ORD202501011300001000", now, ownerID)
	cancelled := s.placeOrder(userID, "ORD202501011400001000", now.Add(time.Minute), ownerID)
	s.placeOrder(kernel.NewUUID(), "ORD202501011500001000", now, ownerID)

	customer, err := kernel.NewActor(userID, kernel.Customer)
	s.Require().NoError(err)
	s.move(cancelled, customer, order.Cancelled)

	owner, err := kernel.NewActor(ownerID, kernel.ShopOwner)
	s.Require().NoError(err)
	s.move(older, owner, order.Accepted)
	s.move(older, owner, order.Packed)
	s.move(older, owner, order.Shipped)

	list, err := queries.NewListUserOrdersQuery(userID)
	s.Require().NoError(err)
	views, err := queries.NewListUserOrdersQueryHandler(s.DB).Handle(ctx, list)
	s.Require().NoError(err)

	s.Require().Len(views, 2)
	s.Equal(newer.ID(), views[0].ID)
	s.Equal(older.ID(), views[1].ID)
	s.Equal([]order.Status{order.Cancelled}, views[0].NextStatuses)
	s.Empty(views[1].NextStatuses)
	s.Len(views[0].Items, 1)
	s.Equal([]kernel.UUID{ownerID}, views[0].ShopOwnerIDs)

	s.Run("cancelled order is still reachable by id", func() {
		get, err := queries.NewGetUserOrderQuery(userID, cancelled.ID())
		s.Require().NoError(err)
		view, err := queries.NewGetUserOrderQueryHandler(s.DB).Handle(ctx, get)
		s.Require().NoError(err)
		s.Equal(order.Cancelled, view.Status)
		s.NotNil(view.CancelledAt)
	})

	s.Run("another user's order is not found", func() {
		get, err := queries.NewGetUserOrderQuery(kernel.NewUUID(), newer.ID())
		s.Require().NoError(err)
		_, err = queries.NewGetUserOrderQueryHandler(s.DB).Handle(ctx, get)
		s.ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (s *QueryHandlersTestSuite) TestShopOwnerOrders() {
	ctx := context.Background()
	ownerA, ownerB := kernel.NewUUID(), kernel.NewUUID()
	now := time.Now()

	shared := s.placeOrder(kernel.NewUUID(), "ORD202501011200001000", now, ownerA, ownerB)
	onlyB := s.placeOrder(kernel.NewUUID(), "ORD202501011300001000", now.Add(time.Minute), ownerB)
	cancelled := s.placeOrder(kernel.NewUUID(), "ORD202501011100001000", now.Add(-time.Hour), ownerA)

	actorA, err := kernel.NewActor(ownerA, kernel.ShopOwner)
	s.Require().NoError(err)
	s.move(cancelled, actorA, order.Cancelled)

	list, err := queries.NewListShopOwnerOrdersQuery(ownerA)
	s.Require().NoError(err)
	views, err := queries.NewListShopOwnerOrdersQueryHandler(s.DB).Handle(ctx, list)
	s.Require().NoError(err)

	s.Require().Len(views, 2)
	s.Equal(shared.ID(), views[0].ID)
	s.Equal(cancelled.ID(), views[1].ID)
	s.Require().Len(views[0].Items, 1)
	s.Equal(ownerA, views[0].Items[0].OwnerID)
	s.Equal([]order.Status{order.Accepted, order.Cancelled}, views[0].NextStatuses)
	s.Empty(views[1].NextStatuses)

	s.Run("single order shows own items", func() {
		get, err := queries.NewGetShopOwnerOrderQuery(ownerB, shared.ID())
		s.Require().NoError(err)
		view, err := queries.NewGetShopOwnerOrderQueryHandler(s.DB).Handle(ctx, get)
		s.Require().NoError(err)
		s.Require().Len(view.Items, 1)
		s.Equal(ownerB, view.Items[0].OwnerID)
	})

	s.Run("foreign order is denied", func() {
		get, err := queries.NewGetShopOwnerOrderQuery(ownerA, onlyB.ID())
		s.Require().NoError(err)
		_, err = queries.NewGetShopOwnerOrderQueryHandler(s.DB).Handle(ctx, get)
		s.ErrorIs(err, errs.ErrAccessDenied)
	})

	s.Run("unknown order", func() {
		get, err := queries.NewGetShopOwnerOrderQuery(ownerA, kernel.NewUUID())
		s.Require().NoError(err)
		_, err = queries.NewGetShopOwnerOrderQueryHandler(s.DB).Handle(ctx, get)
		s.ErrorIs(err, errs.ErrObjectNotFound)
	})
}

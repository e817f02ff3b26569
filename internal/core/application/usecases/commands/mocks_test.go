package commands_test

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var discardLogger = slog.New(slog.DiscardHandler)

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Get(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) GetForCheckout(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) AddOrIncrement(ctx context.Context, userID kernel.UUID, item cart.Item) error {
	return m.Called(ctx, userID, item).Error(0)
}

func (m *MockCartRepository) UpdateQuantity(ctx context.Context, userID, productID kernel.UUID, quantity int) error {
	return m.Called(ctx, userID, productID, quantity).Error(0)
}

func (m *MockCartRepository) Remove(ctx context.Context, userID, productID kernel.UUID) error {
	return m.Called(ctx, userID, productID).Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, userID kernel.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockCartRepository) RemoveLines(ctx context.Context, userID kernel.UUID, productIDs []kernel.UUID) error {
	return m.Called(ctx, userID, productIDs).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByGatewayOrderID(ctx context.Context, reference string) (*order.Order, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	return m.Called(ctx, o, expected).Error(0)
}

func (m *MockOrderRepository) UpdatePayment(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) DeletePending(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) CountDelivered(ctx context.Context, userID kernel.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (ports.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Product), args.Error(1)
}

func (m *MockProductRepository) AdjustStock(ctx context.Context, productID kernel.UUID, delta int) error {
	return m.Called(ctx, productID, delta).Error(0)
}

type MockOutbox struct{ mock.Mock }

func (m *MockOutbox) Add(ctx context.Context, n notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockOutbox) Pending(ctx context.Context, limit int) ([]notification.Notification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]notification.Notification), args.Error(1)
}

func (m *MockOutbox) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	return m.Called(ctx, ids, at).Error(0)
}

// MockUoW satisfies every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) CartRepository() ports.CartRepository {
	return m.Called().Get(0).(ports.CartRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockUoW) NotificationOutbox() ports.NotificationOutbox {
	return m.Called().Get(0).(ports.NotificationOutbox)
}

// uowFactory hands out its MockUoWs round-robin, one per Create call.
type uowFactory struct {
	uows    []*MockUoW
	created int
}

func newUoWFactory(uows ...*MockUoW) *uowFactory {
	return &uowFactory{uows: uows}
}

func (f *uowFactory) next() *MockUoW {
	uow := f.uows[f.created%len(f.uows)]
	f.created++
	return uow
}

type cartFactory struct{ *uowFactory }

func (f cartFactory) Create() commands.CartUoW { return f.next() }

type checkoutFactory struct{ *uowFactory }

func (f checkoutFactory) Create() commands.CheckoutUoW { return f.next() }

type fulfillmentFactory struct{ *uowFactory }

func (f fulfillmentFactory) Create() commands.FulfillmentUoW { return f.next() }

type orderFactory struct{ *uowFactory }

func (f orderFactory) Create() commands.OrderUoW { return f.next() }

type outboxFactory struct{ *uowFactory }

func (f outboxFactory) Create() commands.OutboxUoW { return f.next() }

// expectTx registers the begin/rollback pair every handler performs and,
// when commit is true, a successful commit.
func expectTx(uow *MockUoW, commit bool) {
	uow.On("Begin", mock.Anything).Return(nil).Once()
	if commit {
		uow.On("Commit", mock.Anything).Return(nil).Once()
	}
	uow.On("Rollback", mock.Anything).Return(nil).Maybe()
}

type MockProfiles struct{ mock.Mock }

func (m *MockProfiles) Get(ctx context.Context, userID kernel.UUID) (ports.UserProfile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(ports.UserProfile), args.Error(1)
}

type MockShops struct{ mock.Mock }

func (m *MockShops) Location(ctx context.Context, ownerID kernel.UUID) (kernel.GeoPoint, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(kernel.GeoPoint), args.Error(1)
}

type MockPricer struct{ mock.Mock }

func (m *MockPricer) Price(
	ctx context.Context,
	userID kernel.UUID,
	subtotal decimal.Decimal,
	shop kernel.GeoPoint,
	destination kernel.GeoPoint,
	claimNewUser bool,
) (order.Pricing, error) {
	args := m.Called(ctx, userID, subtotal, shop, destination, claimNewUser)
	return args.Get(0).(order.Pricing), args.Error(1)
}

type MockNumbers struct{ mock.Mock }

func (m *MockNumbers) Next() string {
	return m.Called().String(0)
}

type MockWishlist struct{ mock.Mock }

func (m *MockWishlist) AddIfAbsent(ctx context.Context, userID, productID kernel.UUID) error {
	return m.Called(ctx, userID, productID).Error(0)
}

type MockIdempotency struct{ mock.Mock }

func (m *MockIdempotency) Claim(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotency) Release(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockGateway struct{ mock.Mock }

func (m *MockGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (ports.GatewayOrder, error) {
	args := m.Called(ctx, amount, currency, receipt)
	return args.Get(0).(ports.GatewayOrder), args.Error(1)
}

func (m *MockGateway) KeyID() string {
	return m.Called().String(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, notifications ...notification.Notification) error {
	return m.Called(ctx, notifications).Error(0)
}

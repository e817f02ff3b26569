package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/paymentgateway"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/profilerepo"
	"marketplace/internal/adapters/out/postgres/wishlistrepo"
	"marketplace/internal/adapters/out/redis"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	profiles *profilerepo.GormProfileRepository
	shops    *profilerepo.GormShopRepository
	wishlist *wishlistrepo.GormWishlistRepository

	pricer      *services.CheckoutPricer
	verifier    *payment.SignatureVerifier
	idempotency *redis.IdempotencyStore
	publisher   *kafka.Publisher
	gateway     *paymentgateway.Client

	relaySchedule string
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, redisClient goredis.UniversalClient, logger *slog.Logger) (*CompositionRoot, error) {
	// Order history is read outside any unit of work, so no aggregate tracker is needed.
	discounts, err := services.NewDiscountEngine(orderrepo.NewGormOrderRepository(gormDB, nil))
	if err != nil {
		return nil, fmt.Errorf("create discount engine: %w", err)
	}

	verifier, err := payment.NewSignatureVerifier(cfg.PaymentWebhookSecret)
	if err != nil {
		return nil, fmt.Errorf("create webhook verifier: %w", err)
	}

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		logger:     logger,

		profiles: profilerepo.NewGormProfileRepository(gormDB),
		shops:    profilerepo.NewGormShopRepository(gormDB),
		wishlist: wishlistrepo.NewGormWishlistRepository(gormDB),

		pricer:      services.NewCheckoutPricer(services.NewDeliveryFeeCalculator(), discounts),
		verifier:    verifier,
		idempotency: redis.NewIdempotencyStore(redisClient, redis.DefaultTTL),
		publisher:   kafka.NewPublisher(cfg.KafkaNotificationsTopic, brokers(cfg.KafkaHost)...),
		gateway: paymentgateway.NewClient(
			cfg.PaymentGatewayURL, cfg.PaymentGatewayKeyID, cfg.PaymentGatewaySecret, nil,
		),

		relaySchedule: cfg.OutboxRelaySchedule,
	}, nil
}

// Close releases the Kafka writer.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) CreateHTTPServer() (*httpin.Server, error) {
	return httpin.NewServer(httpin.Handlers{
		GetCart:        c.CreateGetCartQueryHandler(),
		AddCartItem:    c.CreateAddCartItemCommandHandler(),
		UpdateCartItem: c.CreateUpdateCartItemCommandHandler(),
		RemoveCartItem: c.CreateRemoveCartItemCommandHandler(),
		ClearCart:      c.CreateClearCartCommandHandler(),

		GetCheckoutSummary: c.CreateGetCheckoutSummaryQueryHandler(),
		Checkout:           c.CreateCheckoutCommandHandler(),

		ListOrders:    c.CreateListUserOrdersQueryHandler(),
		GetOrder:      c.CreateGetUserOrderQueryHandler(),
		CancelOrder:   c.CreateCancelOrderCommandHandler(),
		DeleteOrder:   c.CreateDeleteOrderCommandHandler(),
		CreatePayment: c.CreateCreatePaymentCommandHandler(),

		ListShopOwnerOrders: c.CreateListShopOwnerOrdersQueryHandler(),
		GetShopOwnerOrder:   c.CreateGetShopOwnerOrderQueryHandler(),
		ChangeOrderStatus:   c.CreateChangeOrderStatusCommandHandler(),

		ReconcilePayment: c.CreateReconcilePaymentCommandHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	relay := jobs.NewNotificationRelayJob(
		c.CreateRelayNotificationsCommandHandler(), c.relaySchedule, jobs.DefaultRelayBatchSize, c.logger,
	)
	return jobs.NewJobManager(relay, c.logger)
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCartItemCommandHandler() commands.UpdateCartItemCommandHandler {
	return commands.NewUpdateCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(
		f, c.profiles, c.shops, c.pricer, services.NewOrderNumberGenerator(), c.logger,
	)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.wishlist, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePaymentCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateReconcilePaymentCommandHandler() commands.ReconcilePaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcilePaymentCommandHandler(f, c.verifier, c.idempotency, c.logger)
}

func (c *CompositionRoot) CreateRelayNotificationsCommandHandler() commands.RelayNotificationsCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayNotificationsCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCheckoutSummaryQueryHandler() queries.GetCheckoutSummaryQueryHandler {
	return queries.NewGetCheckoutSummaryQueryHandler(c.gormDB, c.profiles, c.shops, c.pricer)
}

func (c *CompositionRoot) CreateListUserOrdersQueryHandler() queries.ListUserOrdersQueryHandler {
	return queries.NewListUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrderQueryHandler() queries.GetUserOrderQueryHandler {
	return queries.NewGetUserOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShopOwnerOrdersQueryHandler() queries.ListShopOwnerOrdersQueryHandler {
	return queries.NewListShopOwnerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShopOwnerOrderQueryHandler() queries.GetShopOwnerOrderQueryHandler {
	return queries.NewGetShopOwnerOrderQueryHandler(c.gormDB)
}

func brokers(hosts string) []string {
	var out []string
	for _, h := range strings.Split(hosts, ",") {
		if h = strings.TrimSpace(h); h != "" {
			out = append(out, h)
		}
	}
	return out
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

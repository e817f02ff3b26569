package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// maxCheckoutAttempts bounds retries after an order number collision.
const maxCheckoutAttempts = 3

// Pricer derives the authoritative price of a checkout.
type Pricer interface {
	Price(
		ctx context.Context,
		userID kernel.UUID,
		subtotal decimal.Decimal,
		shop kernel.GeoPoint,
		destination kernel.GeoPoint,
		claimNewUser bool,
	) (order.Pricing, error)
}

// OrderNumberer issues order numbers.
type OrderNumberer interface {
	Next() string
}

// CheckoutCommandHandler creates an order from the cart.
//
// The order insert and the cart clear share one transaction: a failed insert
// leaves the cart untouched and the request can be retried. An order number
// collision is retried with a fresh number.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	profiles   ports.ProfileRepository
	shops      ports.ShopRepository
	pricer     Pricer
	numbers    OrderNumberer
	now        func() time.Time
	logger     *slog.Logger
}

func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	profiles ports.ProfileRepository,
	shops ports.ShopRepository,
	pricer Pricer,
	numbers OrderNumberer,
	logger *slog.Logger,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		profiles:   profiles,
		shops:      shops,
		pricer:     pricer,
		numbers:    numbers,
		now:        time.Now,
		logger:     logger.With("component", "checkout"),
	}
}

func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var err error
	for attempt := 1; attempt <= maxCheckoutAttempts; attempt++ {
		var created *order.Order
		created, err = h.checkout(ctx, cmd)
		if !errors.Is(err, errs.ErrObjectAlreadyExists) {
			return created, err
		}
		h.logger.WarnContext(ctx, "order number collision, retrying",
			"user_id", cmd.UserID().String(), "attempt", attempt, "error", err)
	}
	return nil, err
}

func (h CheckoutCommandHandler) checkout(ctx context.Context, cmd CheckoutCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	carts := uow.CartRepository()

	userCart, err := carts.GetForCheckout(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}
	if err = userCart.EnsureNotEmpty(); err != nil {
		return nil, err
	}

	shopID, err := userCart.RepresentativeOwner()
	if err != nil {
		return nil, err
	}
	shopLocation, err := h.shops.Location(ctx, shopID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewBusinessRuleViolationError(services.ErrShopLocationMissing, "shop "+shopID.String())
	}
	if err != nil {
		return nil, err
	}

	pricing, err := h.pricer.Price(
		ctx, cmd.UserID(), userCart.Subtotal(), shopLocation, cmd.Address().Location(), cmd.ClaimNewUser(),
	)
	if err != nil {
		return nil, err
	}

	profile, err := h.profiles.Get(ctx, cmd.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewBusinessRuleViolationError(services.ErrProfileMissing, "save a profile before ordering")
	}
	if err != nil {
		return nil, err
	}

	lines := userCart.Items()
	items := make([]order.Item, 0, len(lines))
	ordered := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		item, err := order.ItemFromCart(line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		ordered = append(ordered, line.ProductID())
	}

	created, err := order.NewOrder(
		kernel.NewUUID(),
		h.numbers.Next(),
		cmd.UserID(),
		items,
		profile.Snapshot,
		cmd.Address(),
		cmd.Note(),
		cmd.PaymentMethod(),
		pricing,
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = carts.RemoveLines(ctx, cmd.UserID(), ordered); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

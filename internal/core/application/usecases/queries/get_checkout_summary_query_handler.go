package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Pricer derives checkout pricing. services.CheckoutPricer implements it.
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

// GetCheckoutSummaryQueryHandler runs the same pricing as order creation
// without writing anything.
type GetCheckoutSummaryQueryHandler struct {
	db       *gorm.DB
	profiles ports.ProfileRepository
	shops    ports.ShopRepository
	pricer   Pricer
}

func NewGetCheckoutSummaryQueryHandler(
	db *gorm.DB,
	profiles ports.ProfileRepository,
	shops ports.ShopRepository,
	pricer Pricer,
) GetCheckoutSummaryQueryHandler {
	return GetCheckoutSummaryQueryHandler{db: db, profiles: profiles, shops: shops, pricer: pricer}
}

func (h GetCheckoutSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetCheckoutSummaryQuery,
) (GetCheckoutSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCheckoutSummaryQueryResponse{}, err
	}

	lines, err := loadCartLines(ctx, h.db, query.UserID())
	if err != nil {
		return GetCheckoutSummaryQueryResponse{}, err
	}
	if len(lines) == 0 {
		return GetCheckoutSummaryQueryResponse{}, errs.NewBusinessRuleViolationError(cart.ErrEmptyCart, "add items before checking out")
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal)
	}

	shopID := lines[0].OwnerID
	shopLocation, err := h.shops.Location(ctx, shopID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return GetCheckoutSummaryQueryResponse{}, errs.NewBusinessRuleViolationError(
			services.ErrShopLocationMissing, "shop "+shopID.String(),
		)
	}
	if err != nil {
		return GetCheckoutSummaryQueryResponse{}, err
	}

	destination, err := h.destination(ctx, query)
	if err != nil {
		return GetCheckoutSummaryQueryResponse{}, err
	}

	pricing, err := h.pricer.Price(ctx, query.UserID(), subtotal, shopLocation, destination, query.ClaimNewUser())
	if err != nil {
		return GetCheckoutSummaryQueryResponse{}, err
	}

	return GetCheckoutSummaryQueryResponse{Items: lines, Pricing: pricing}, nil
}

func (h GetCheckoutSummaryQueryHandler) destination(ctx context.Context, query GetCheckoutSummaryQuery) (kernel.GeoPoint, error) {
	if query.Destination() != nil {
		return *query.Destination(), nil
	}

	profile, err := h.profiles.Get(ctx, query.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.GeoPoint{}, errs.NewBusinessRuleViolationError(services.ErrProfileMissing, "save a profile before ordering")
	}
	if err != nil {
		return kernel.GeoPoint{}, err
	}
	if profile.Location == nil {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("lat,lng")
	}
	return *profile.Location, nil
}

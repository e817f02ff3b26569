package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const maxWebhookBody = 1 << 20

// CommandHandler runs a command that produces no result.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// Handler runs a command or query that produces a result.
type Handler[Req, Resp any] interface {
	Handle(ctx context.Context, req Req) (Resp, error)
}

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	GetCart        Handler[queries.GetCartQuery, queries.GetCartQueryResponse]
	AddCartItem    CommandHandler[commands.AddCartItemCommand]
	UpdateCartItem CommandHandler[commands.UpdateCartItemCommand]
	RemoveCartItem CommandHandler[commands.RemoveCartItemCommand]
	ClearCart      CommandHandler[commands.ClearCartCommand]

	GetCheckoutSummary Handler[queries.GetCheckoutSummaryQuery, queries.GetCheckoutSummaryQueryResponse]
	Checkout           Handler[commands.CheckoutCommand, *order.Order]

	ListOrders    Handler[queries.ListUserOrdersQuery, []queries.OrderView]
	GetOrder      Handler[queries.GetUserOrderQuery, queries.OrderView]
	CancelOrder   Handler[commands.CancelOrderCommand, order.StatusChange]
	DeleteOrder   CommandHandler[commands.DeleteOrderCommand]
	CreatePayment Handler[commands.CreatePaymentCommand, commands.PaymentSession]

	ListShopOwnerOrders Handler[queries.ListShopOwnerOrdersQuery, []queries.OrderView]
	GetShopOwnerOrder   Handler[queries.GetShopOwnerOrderQuery, queries.OrderView]
	ChangeOrderStatus   Handler[commands.ChangeOrderStatusCommand, order.StatusChange]

	ReconcilePayment Handler[commands.ReconcilePaymentCommand, commands.ReconcileOutcome]
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *slog.Logger) (*Server, error) {
	if h.GetCart == nil || h.AddCartItem == nil || h.UpdateCartItem == nil || h.RemoveCartItem == nil ||
		h.ClearCart == nil || h.GetCheckoutSummary == nil || h.Checkout == nil || h.ListOrders == nil ||
		h.GetOrder == nil || h.CancelOrder == nil || h.DeleteOrder == nil || h.CreatePayment == nil ||
		h.ListShopOwnerOrders == nil || h.GetShopOwnerOrder == nil || h.ChangeOrderStatus == nil ||
		h.ReconcilePayment == nil {
		return nil, errs.NewValueIsRequiredError("handlers")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	return &Server{h: h, logger: logger.With("component", "http")}, nil
}

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	actor, err := requireRole(ctx, kernel.Customer)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCartQuery(actor.ID)
	if err != nil {
		return err
	}

	response, err := s.h.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Cart{
		Items:     toCartItems(response.Items),
		ItemCount: response.ItemCount,
		Subtotal:  response.Subtotal.InexactFloat64(),
	})
}

// AddCartItem handles POST /api/v1/cart/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	actor, err := requireRole(ctx, kernel.Customer)
	if err != nil {
		return err
	}

	var body servers.AddCartItemJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	productID, err := toKernelID("product_id", body.ProductId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddCartItemCommand(actor.ID, productID, body.Quantity)
	if err != nil {
		return err
	}

	if err = s.h.AddCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCartItem handles PUT /api/v1/cart/items/{product_id}.
func (s *Server) UpdateCartItem(ctx echo.Context, productId servers.ProductId) error {
	actor, err := requireRole(ctx, kernel.Customer)
	if err != nil {
		return err
	}

	var body servers.UpdateCartItemJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	productID, err := toKernelID("product_id", productId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCartItemCommand(actor.ID, productID, body.Quantity)
	if err != nil {
		return err
	}

	if err = s.h.UpdateCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/{product_id}.
func (s *Server) RemoveCartItem(ctx echo.Context, productId servers.ProductId) error {
	actor, err := requireRole(ctx, kernel.Customer)
	if err != nil {
		return err
	}

	productID, err := toKernelID("product_id", productId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveCartItemCommand(actor.ID, productID)
	if err != nil {
		return err
	}

	if err = s.h.RemoveCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	actor, err := requireRole(ctx, kernel.Customer)
	if err != nil {
		return err
	}

	cmd, err := commands.NewClearCartCommand(actor.ID)
	if err != nil {
		return err
	}

	if err = s.h.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCheckoutSummary handles GET /api/v1/checkout/summary.
func (s *Server) GetCheckoutSummary(ctx echo.Context, params servers.GetCheckoutSummaryParams) error {
	actor, err := requireRole(ctx, kernel.Customer)
	if err != nil {
		return err
	}

	var destination *kernel.GeoPoint
	switch {
	case params.Lat != nil && params.Lng != nil:
		point, pointErr := kernel.NewGeoPoint(*params.Lat, *params.Lng)
		if pointErr != nil {
			return pointErr
		}
		destination = &point
	case params.Lat != nil || params.Lng != nil:
		return errs.NewValueIsRequiredError("lat,lng")
	}

	query, err := queries.NewGetCheckoutSummaryQuery(actor.ID, destination, deref(params.ClaimNewUser))
	if err != nil {
		return err
	}

	response, err := s.h.GetCheckoutSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.CheckoutSummary{
		Items:   toCartItems(response.Items),
		Pricing: toPricing(response.Pricing),
	})
}

// CreateOrder handles POST /api/v1/checkout/create-order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := requireRole(ctx, kernel.Customer)
	if err != nil {
		return err
	}

	var body servers.CreateOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	address, err := toAddress(body.DeliveryAddress)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCheckoutCommand(
		actor.ID,
		string(body.PaymentMethod),
		address,
		deref(body.Note),
		deref(body.ClaimNewUser),
	)
	if err != nil {
		return err
	}

	created, err := s.h.Checkout.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, fromOrder(created, actor))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	actor, err := requireRole(ctx, kernel.Customer)
	if err != nil {
		return err
	}

	query, err := queries.NewListUserOrdersQuery(actor.ID)
	if err != nil {
		return err
	}

	views, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrders(views))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id servers.OrderId) error {
	actor, err := requireRole(ctx, kernel.Customer)
	if err != nil {
		return err
	}

	orderID, err := toKernelID("order_id", id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetUserOrderQuery(actor.ID, orderID)
	if err != nil {
		return err
	}

	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// CancelOrder handles PUT /api/v1/orders/{id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, id servers.OrderId) error {
	actor, err := requireRole(ctx, kernel.Customer)
	if err != nil {
		return err
	}

	var body servers.CancelOrderJSONRequestBody
	if ctx.Request().ContentLength != 0 {
		if err = ctx.Bind(&body); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
		}
	}

	orderID, err := toKernelID("order_id", id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(actor.ID, orderID, deref(body.MoveToWishlist))
	if err != nil {
		return err
	}

	change, err := s.h.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toStatusChange(id, change))
}

// DeleteOrder handles DELETE /api/v1/orders/{id}.
func (s *Server) DeleteOrder(ctx echo.Context, id servers.OrderId) error {
	actor, err := requireRole(ctx, kernel.Customer)
	if err != nil {
		return err
	}

	orderID, err := toKernelID("order_id", id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(actor.ID, orderID)
	if err != nil {
		return err
	}

	if err = s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreatePayment handles POST /api/v1/pay/create/{id}.
func (s *Server) CreatePayment(ctx echo.Context, id servers.OrderId) error {
	actor, err := requireRole(ctx, kernel.Customer)
	if err != nil {
		return err
	}

	orderID, err := toKernelID("order_id", id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreatePaymentCommand(actor.ID, orderID)
	if err != nil {
		return err
	}

	session, err := s.h.CreatePayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.PaymentSession{
		OrderId:        session.OrderID.Bytes(),
		Amount:         session.Amount.Shift(2).IntPart(),
		Currency:       session.Currency,
		GatewayOrderId: session.GatewayOrderID,
		KeyId:          session.KeyID,
	})
}

// ListShopOwnerOrders handles GET /api/v1/shop-owner/orders.
func (s *Server) ListShopOwnerOrders(ctx echo.Context) error {
	actor, err := requireRole(ctx, kernel.ShopOwner)
	if err != nil {
		return err
	}

	query, err := queries.NewListShopOwnerOrdersQuery(actor.ID)
	if err != nil {
		return err
	}

	views, err := s.h.ListShopOwnerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrders(views))
}

// GetShopOwnerOrder handles GET /api/v1/shop-owner/orders/{id}.
func (s *Server) GetShopOwnerOrder(ctx echo.Context, id servers.OrderId) error {
	actor, err := requireRole(ctx, kernel.ShopOwner)
	if err != nil {
		return err
	}

	orderID, err := toKernelID("order_id", id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetShopOwnerOrderQuery(actor.ID, orderID)
	if err != nil {
		return err
	}

	view, err := s.h.GetShopOwnerOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// UpdateOrderStatus handles PUT /api/v1/shop-owner/orders/{id}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id servers.OrderId) error {
	actor, err := requireRole(ctx, kernel.ShopOwner)
	if err != nil {
		return err
	}

	var body servers.UpdateOrderStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := toKernelID("order_id", id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(actor.ID, orderID, string(body.Status))
	if err != nil {
		return err
	}

	change, err := s.h.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toStatusChange(id, change))
}

// PaymentWebhook handles POST /webhook/payment-gateway. The raw body is read
// before anything else because the signature covers its exact bytes.
func (s *Server) PaymentWebhook(ctx echo.Context, params servers.PaymentWebhookParams) error {
	body, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxWebhookBody))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewReconcilePaymentCommand(body, deref(params.XSignature), deref(params.XEventId))
	if err != nil {
		return err
	}

	outcome, err := s.h.ReconcilePayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidSignature) {
			s.logger.Warn("webhook signature rejected", "remote_ip", ctx.RealIP())
		}
		return err
	}

	return ctx.JSON(http.StatusOK, servers.WebhookAck{Status: outcome.String()})
}

func toKernelID(param string, id openapi_types.UUID) (kernel.UUID, error) {
	kid, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return kid, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

package servers

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Get the caller's cart
	// (GET /api/v1/cart)
	GetCart(ctx echo.Context) error
	// Remove every line from the caller's cart
	// (DELETE /api/v1/cart)
	ClearCart(ctx echo.Context) error
	// Add a product to the cart or increase its quantity
	// (POST /api/v1/cart/items)
	AddCartItem(ctx echo.Context) error
	// Remove a cart line
	// (DELETE /api/v1/cart/items/{product_id})
	RemoveCartItem(ctx echo.Context, productId ProductId) error
	// Set the quantity of a cart line; zero removes it
	// (PUT /api/v1/cart/items/{product_id})
	UpdateCartItem(ctx echo.Context, productId ProductId) error
	// Turn the cart into an order
	// (POST /api/v1/checkout/create-order)
	CreateOrder(ctx echo.Context) error
	// Price the current cart
	// (GET /api/v1/checkout/summary)
	GetCheckoutSummary(ctx echo.Context, params GetCheckoutSummaryParams) error
	// List the caller's orders, newest first
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context) error
	// Delete a pending order
	// (DELETE /api/v1/orders/{id})
	DeleteOrder(ctx echo.Context, id OrderId) error
	// Get one of the caller's orders
	// (GET /api/v1/orders/{id})
	GetOrder(ctx echo.Context, id OrderId) error
	// Cancel one of the caller's orders
	// (PUT /api/v1/orders/{id}/cancel)
	CancelOrder(ctx echo.Context, id OrderId) error
	// Open a payment gateway order for an order
	// (POST /api/v1/pay/create/{id})
	CreatePayment(ctx echo.Context, id OrderId) error
	// List orders containing the caller's products
	// (GET /api/v1/shop-owner/orders)
	ListShopOwnerOrders(ctx echo.Context) error
	// Get an order containing the caller's products
	// (GET /api/v1/shop-owner/orders/{id})
	GetShopOwnerOrder(ctx echo.Context, id OrderId) error
	// Move an order to its next fulfillment status
	// (PUT /api/v1/shop-owner/orders/{id}/status)
	UpdateOrderStatus(ctx echo.Context, id OrderId) error
	// Payment gateway webhook
	// (POST /webhook/payment-gateway)
	PaymentWebhook(ctx echo.Context, params PaymentWebhookParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetCart converts echo context to params.
func (w *ServerInterfaceWrapper) GetCart(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.GetCart(ctx)
}

// ClearCart converts echo context to params.
func (w *ServerInterfaceWrapper) ClearCart(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.ClearCart(ctx)
}

// AddCartItem converts echo context to params.
func (w *ServerInterfaceWrapper) AddCartItem(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.AddCartItem(ctx)
}

// RemoveCartItem converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveCartItem(ctx echo.Context) error {
	var productId ProductId

	err := runtime.BindStyledParameterWithOptions("simple", "product_id", ctx.Param("product_id"), &productId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter product_id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.RemoveCartItem(ctx, productId)
}

// UpdateCartItem converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateCartItem(ctx echo.Context) error {
	var productId ProductId

	err := runtime.BindStyledParameterWithOptions("simple", "product_id", ctx.Param("product_id"), &productId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter product_id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.UpdateCartItem(ctx, productId)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.CreateOrder(ctx)
}

// GetCheckoutSummary converts echo context to params.
func (w *ServerInterfaceWrapper) GetCheckoutSummary(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	var params GetCheckoutSummaryParams

	err = runtime.BindQueryParameter("form", true, false, "claim_new_user", ctx.QueryParams(), &params.ClaimNewUser)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter claim_new_user: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "lat", ctx.QueryParams(), &params.Lat)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lat: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "lng", ctx.QueryParams(), &params.Lng)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lng: %s", err))
	}

	return w.Handler.GetCheckoutSummary(ctx, params)
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.ListOrders(ctx)
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.DeleteOrder(ctx, id)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.GetOrder(ctx, id)
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.CancelOrder(ctx, id)
}

// CreatePayment converts echo context to params.
func (w *ServerInterfaceWrapper) CreatePayment(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.CreatePayment(ctx, id)
}

// ListShopOwnerOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListShopOwnerOrders(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.ListShopOwnerOrders(ctx)
}

// GetShopOwnerOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetShopOwnerOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.GetShopOwnerOrder(ctx, id)
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.UpdateOrderStatus(ctx, id)
}

// PaymentWebhook converts echo context to params.
func (w *ServerInterfaceWrapper) PaymentWebhook(ctx echo.Context) error {
	var err error

	var params PaymentWebhookParams

	headers := ctx.Request().Header
	if valueList, found := headers[http.CanonicalHeaderKey("X-Signature")]; found {
		var XSignature string
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-Signature, got %d", n))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "X-Signature", valueList[0], &XSignature,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-Signature: %s", err))
		}

		params.XSignature = &XSignature
	}

	if valueList, found := headers[http.CanonicalHeaderKey("X-Event-Id")]; found {
		var XEventId string
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-Event-Id, got %d", n))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "X-Event-Id", valueList[0], &XEventId,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-Event-Id: %s", err))
		}

		params.XEventId = &XEventId
	}

	return w.Handler.PaymentWebhook(ctx, params)
}

func bindOrderID(ctx echo.Context) (OrderId, error) {
	var id OrderId

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is an interface that wraps the methods of echo.Echo so that
// handlers can also be registered on an echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/cart", wrapper.GetCart)
	router.DELETE(baseURL+"/api/v1/cart", wrapper.ClearCart)
	router.POST(baseURL+"/api/v1/cart/items", wrapper.AddCartItem)
	router.DELETE(baseURL+"/api/v1/cart/items/:product_id", wrapper.RemoveCartItem)
	router.PUT(baseURL+"/api/v1/cart/items/:product_id", wrapper.UpdateCartItem)
	router.POST(baseURL+"/api/v1/checkout/create-order", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/checkout/summary", wrapper.GetCheckoutSummary)
	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.DELETE(baseURL+"/api/v1/orders/:id", wrapper.DeleteOrder)
	router.GET(baseURL+"/api/v1/orders/:id", wrapper.GetOrder)
	router.PUT(baseURL+"/api/v1/orders/:id/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/api/v1/pay/create/:id", wrapper.CreatePayment)
	router.GET(baseURL+"/api/v1/shop-owner/orders", wrapper.ListShopOwnerOrders)
	router.GET(baseURL+"/api/v1/shop-owner/orders/:id", wrapper.GetShopOwnerOrder)
	router.PUT(baseURL+"/api/v1/shop-owner/orders/:id/status", wrapper.UpdateOrderStatus)
	router.POST(baseURL+"/webhook/payment-gateway", wrapper.PaymentWebhook)
}

//go:embed openapi.yaml
var swaggerSpec []byte

// RawSpec returns the OpenAPI document the server was generated from.
func RawSpec() []byte {
	return swaggerSpec
}

// GetSwagger returns the Swagger specification corresponding to the generated code
// in this file. External references are not resolved.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(swaggerSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}

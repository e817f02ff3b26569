// Package servers provides primitives to interact with the openapi HTTP API.
//
// Code generated by github.com/oapi-codegen/oapi-codegen/v2 from openapi.yaml.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for CreateOrderRequestPaymentMethod.
const (
	Cod    CreateOrderRequestPaymentMethod = "cod"
	Online CreateOrderRequestPaymentMethod = "online"
)

// Defines values for UpdateOrderStatusRequestStatus.
const (
	Accepted  UpdateOrderStatusRequestStatus = "accepted"
	Cancelled UpdateOrderStatusRequestStatus = "cancelled"
	Delivered UpdateOrderStatusRequestStatus = "delivered"
	Packed    UpdateOrderStatusRequestStatus = "packed"
	Pending   UpdateOrderStatusRequestStatus = "pending"
	Shipped   UpdateOrderStatusRequestStatus = "shipped"
)

// AddCartItemRequest defines model for AddCartItemRequest.
type AddCartItemRequest struct {
	ProductId openapi_types.UUID `json:"product_id"`
	Quantity  int                `json:"quantity"`
}

// CancelOrderRequest defines model for CancelOrderRequest.
type CancelOrderRequest struct {
	MoveToWishlist *bool `json:"move_to_wishlist,omitempty"`
}

// Cart defines model for Cart.
type Cart struct {
	ItemCount int        `json:"item_count"`
	Items     []CartItem `json:"items"`
	Subtotal  float64    `json:"subtotal"`
}

// CartItem defines model for CartItem.
type CartItem struct {
	Image     *string            `json:"image,omitempty"`
	LineTotal float64            `json:"line_total"`
	OwnerId   openapi_types.UUID `json:"owner_id"`
	Price     float64            `json:"price"`
	ProductId openapi_types.UUID `json:"product_id"`
	Quantity  int                `json:"quantity"`
	Title     string             `json:"title"`
}

// CheckoutSummary defines model for CheckoutSummary.
type CheckoutSummary struct {
	Items   []CartItem `json:"items"`
	Pricing Pricing    `json:"pricing"`
}

// CreateOrderRequest defines model for CreateOrderRequest.
type CreateOrderRequest struct {
	ClaimNewUser    *bool                           `json:"claim_new_user,omitempty"`
	DeliveryAddress DeliveryAddress                 `json:"delivery_address"`
	Note            *string                         `json:"note,omitempty"`
	PaymentMethod   CreateOrderRequestPaymentMethod `json:"payment_method"`
}

// CreateOrderRequestPaymentMethod defines model for CreateOrderRequest.PaymentMethod.
type CreateOrderRequestPaymentMethod string

// CustomerProfile defines model for CustomerProfile.
type CustomerProfile struct {
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Pincode *string `json:"pincode,omitempty"`
	State   *string `json:"state,omitempty"`
}

// DeliveryAddress defines model for DeliveryAddress.
type DeliveryAddress struct {
	Address string  `json:"address"`
	City    string  `json:"city"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Pincode string  `json:"pincode"`
	State   *string `json:"state,omitempty"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Order defines model for Order.
type Order struct {
	CancelledAt     *time.Time            `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	DeliveryAddress DeliveryAddress       `json:"delivery_address"`
	GatewayOrderId  *string               `json:"gateway_order_id,omitempty"`
	Id              openapi_types.UUID    `json:"id"`
	Items           []OrderItem           `json:"items"`
	NextStatuses    []string              `json:"next_statuses"`
	Note            *string               `json:"note,omitempty"`
	OrderNumber     string                `json:"order_number"`
	PaidAmount      *float64              `json:"paid_amount,omitempty"`
	PaymentMethod   string                `json:"payment_method"`
	PaymentStatus   string                `json:"payment_status"`
	Pricing         Pricing               `json:"pricing"`
	ShopOwnerIds    *[]openapi_types.UUID `json:"shop_owner_ids,omitempty"`
	Status          string                `json:"status"`
	UserId          openapi_types.UUID    `json:"user_id"`
	UserProfile     *CustomerProfile      `json:"user_profile,omitempty"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	Image     *string            `json:"image,omitempty"`
	OwnerId   openapi_types.UUID `json:"owner_id"`
	Price     float64            `json:"price"`
	ProductId openapi_types.UUID `json:"product_id"`
	Quantity  int                `json:"quantity"`
	Title     string             `json:"title"`
}

// PaymentSession defines model for PaymentSession.
type PaymentSession struct {
	// Amount Amount in the smallest currency unit.
	Amount         int64              `json:"amount"`
	Currency       string             `json:"currency"`
	GatewayOrderId string             `json:"gateway_order_id"`
	KeyId          string             `json:"key_id"`
	OrderId        openapi_types.UUID `json:"order_id"`
}

// Pricing defines model for Pricing.
type Pricing struct {
	DeliveryBreakdown string  `json:"delivery_breakdown"`
	DeliveryFee       float64 `json:"delivery_fee"`
	Discount          float64 `json:"discount"`
	DiscountMessage   *string `json:"discount_message,omitempty"`
	DistanceKm        float64 `json:"distance_km"`
	IsFreeDelivery    bool    `json:"is_free_delivery"`
	OfferCode         *string `json:"offer_code,omitempty"`
	Subtotal          float64 `json:"subtotal"`
	Total             float64 `json:"total"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	From          string             `json:"from"`
	OrderId       openapi_types.UUID `json:"order_id"`
	StockReduced  *bool              `json:"stock_reduced,omitempty"`
	StockRestored *bool              `json:"stock_restored,omitempty"`
	To            string             `json:"to"`
}

// UpdateCartItemRequest defines model for UpdateCartItemRequest.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateOrderStatusRequest defines model for UpdateOrderStatusRequest.
type UpdateOrderStatusRequest struct {
	Status UpdateOrderStatusRequestStatus `json:"status"`
}

// UpdateOrderStatusRequestStatus defines model for UpdateOrderStatusRequest.Status.
type UpdateOrderStatusRequestStatus string

// WebhookAck defines model for WebhookAck.
type WebhookAck struct {
	Status string `json:"status"`
}

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// ProductId defines model for ProductId.
type ProductId = openapi_types.UUID

// GetCheckoutSummaryParams defines parameters for GetCheckoutSummary.
type GetCheckoutSummaryParams struct {
	ClaimNewUser *bool    `form:"claim_new_user,omitempty" json:"claim_new_user,omitempty"`
	Lat          *float64 `form:"lat,omitempty" json:"lat,omitempty"`
	Lng          *float64 `form:"lng,omitempty" json:"lng,omitempty"`
}

// PaymentWebhookParams defines parameters for PaymentWebhook.
type PaymentWebhookParams struct {
	XSignature *string `json:"X-Signature,omitempty"`
	XEventId   *string `json:"X-Event-Id,omitempty"`
}

// AddCartItemJSONRequestBody defines body for AddCartItem for application/json ContentType.
type AddCartItemJSONRequestBody = AddCartItemRequest

// UpdateCartItemJSONRequestBody defines body for UpdateCartItem for application/json ContentType.
type UpdateCartItemJSONRequestBody = UpdateCartItemRequest

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = CreateOrderRequest

// CancelOrderJSONRequestBody defines body for CancelOrder for application/json ContentType.
type CancelOrderJSONRequestBody = CancelOrderRequest

// UpdateOrderStatusJSONRequestBody defines body for UpdateOrderStatus for application/json ContentType.
type UpdateOrderStatusJSONRequestBody = UpdateOrderStatusRequest

package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItemView is one line of an order.
type OrderItemView struct {
	ProductID kernel.UUID
	OwnerID   kernel.UUID
	Title     string
	Image     string
	Price     decimal.Decimal
	Quantity  int
}

// AddressView is the delivery address of an order.
type AddressView struct {
	Name    string
	Phone   string
	Line    string
	City    string
	Pincode string
	State   string
	Lat     float64
	Lng     float64
}

// OrderView is the read model shared by the customer and shop-owner order queries.
type OrderView struct {
	ID                kernel.UUID
	Number            string
	UserID            kernel.UUID
	ShopOwnerIDs      []kernel.UUID
	Items             []OrderItemView
	Profile           order.ProfileSnapshot
	Delivery          AddressView
	Note              string
	Subtotal          decimal.Decimal
	DeliveryFee       decimal.Decimal
	DeliveryIsFree    bool
	DeliveryBreakdown string
	DistanceKm        float64
	Discount          decimal.Decimal
	OfferCode         string
	DiscountMessage   string
	Total             decimal.Decimal
	PaymentMethod     order.PaymentMethod
	PaymentStatus     order.PaymentStatus
	PaidAmount        decimal.Decimal
	GatewayOrderID    string
	Status            order.Status
	CreatedAt         time.Time
	CancelledAt       *time.Time

	// NextStatuses lists the transitions the caller may request.
	NextStatuses []order.Status
}

func (v OrderView) hasShopOwner(ownerID kernel.UUID) bool {
	for _, id := range v.ShopOwnerIDs {
		if id == ownerID {
			return true
		}
	}
	return false
}

// itemsOwnedBy narrows the view to one shop's lines.
func (v OrderView) itemsOwnedBy(ownerID kernel.UUID) []OrderItemView {
	items := make([]OrderItemView, 0, len(v.Items))
	for _, item := range v.Items {
		if item.OwnerID == ownerID {
			items = append(items, item)
		}
	}
	return items
}

type orderRow struct {
	ID                 uuid.UUID
	OrderNumber        string
	UserID             uuid.UUID
	ShopOwnerIDs       pq.StringArray
	ProfileName        string
	ProfilePhone       string
	ProfileAddress     string
	ProfileCity        string
	ProfilePincode     string
	ProfileState       string
	DeliveryName       string
	DeliveryPhone      string
	DeliveryLine       string
	DeliveryCity       string
	DeliveryPincode    string
	DeliveryState      string
	DeliveryLat        float64
	DeliveryLng        float64
	Note               string
	Subtotal           decimal.Decimal
	DeliveryFee        decimal.Decimal
	DeliveryIsFree     bool
	DeliveryBreakdown  string
	DeliveryDistanceKm float64
	Discount           decimal.Decimal
	OfferCode          string
	DiscountMessage    string
	Total              decimal.Decimal
	PaymentMethod      string
	PaymentStatus      string
	PaidAmount         decimal.Decimal
	GatewayOrderID     *string
	Status             string
	CreatedAt          time.Time
	CancelledAt        *time.Time
}

type orderItemRow struct {
	OrderID   uuid.UUID
	ProductID uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	Image     string
	Price     decimal.Decimal
	Quantity  int
}

const orderColumns = `
	id, order_number, user_id, shop_owner_ids,
	profile_name, profile_phone, profile_address, profile_city, profile_pincode, profile_state,
	delivery_name, delivery_phone, delivery_line, delivery_city, delivery_pincode, delivery_state,
	delivery_lat, delivery_lng, note,
	subtotal, delivery_fee, delivery_is_free, delivery_breakdown, delivery_distance_km,
	discount, offer_code, discount_message, total,
	payment_method, payment_status, paid_amount, gateway_order_id,
	status, created_at, cancelled_at`

// loadOrderViews selects orders matching the WHERE clause, keeps their order
// and attaches the items of each.
func loadOrderViews(ctx context.Context, db *gorm.DB, where string, args ...any) ([]OrderView, error) {
	rows, err := db.WithContext(ctx).Raw("SELECT "+orderColumns+" FROM orders WHERE "+where, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var row orderRow
		if err = db.ScanRows(rows, &row); err != nil {
			return nil, err
		}
		view, viewErr := row.toView()
		if viewErr != nil {
			return nil, viewErr
		}
		views = append(views, view)
		ids = append(ids, row.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return views, nil
	}

	items, err := loadOrderItems(ctx, db, ids)
	if err != nil {
		return nil, err
	}
	for i := range views {
		views[i].Items = items[views[i].ID]
	}
	return views, nil
}

func loadOrderItems(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[kernel.UUID][]OrderItemView, error) {
	var rows []orderItemRow
	err := db.WithContext(ctx).Raw(`
		SELECT order_id, product_id, owner_id, title, image, price, quantity
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, orderIDs).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make(map[kernel.UUID][]OrderItemView, len(orderIDs))
	for _, row := range rows {
		orderID, err := kernel.UUIDFromBytes(row.OrderID[:])
		if err != nil {
			return nil, err
		}
		productID, err := kernel.UUIDFromBytes(row.ProductID[:])
		if err != nil {
			return nil, err
		}
		ownerID, err := kernel.UUIDFromBytes(row.OwnerID[:])
		if err != nil {
			return nil, err
		}
		items[orderID] = append(items[orderID], OrderItemView{
			ProductID: productID,
			OwnerID:   ownerID,
			Title:     row.Title,
			Image:     row.Image,
			Price:     row.Price,
			Quantity:  row.Quantity,
		})
	}
	return items, nil
}

func (r orderRow) toView() (OrderView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderView{}, err
	}
	userID, err := kernel.UUIDFromBytes(r.UserID[:])
	if err != nil {
		return OrderView{}, err
	}

	owners := make([]kernel.UUID, 0, len(r.ShopOwnerIDs))
	for _, raw := range r.ShopOwnerIDs {
		owner, err := kernel.UUIDFromString(raw)
		if err != nil {
			return OrderView{}, err
		}
		owners = append(owners, owner)
	}

	method, err := order.ParsePaymentMethod(r.PaymentMethod)
	if err != nil {
		return OrderView{}, err
	}
	paymentStatus, err := order.ParsePaymentStatus(r.PaymentStatus)
	if err != nil {
		return OrderView{}, err
	}
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return OrderView{}, err
	}

	view := OrderView{
		ID:           id,
		Number:       r.OrderNumber,
		UserID:       userID,
		ShopOwnerIDs: owners,
		Profile: order.ProfileSnapshot{
			Name:    r.ProfileName,
			Phone:   r.ProfilePhone,
			Address: r.ProfileAddress,
			City:    r.ProfileCity,
			Pincode: r.ProfilePincode,
			State:   r.ProfileState,
		},
		Delivery: AddressView{
			Name:    r.DeliveryName,
			Phone:   r.DeliveryPhone,
			Line:    r.DeliveryLine,
			City:    r.DeliveryCity,
			Pincode: r.DeliveryPincode,
			State:   r.DeliveryState,
			Lat:     r.DeliveryLat,
			Lng:     r.DeliveryLng,
		},
		Note:              r.Note,
		Subtotal:          r.Subtotal,
		DeliveryFee:       r.DeliveryFee,
		DeliveryIsFree:    r.DeliveryIsFree,
		DeliveryBreakdown: r.DeliveryBreakdown,
		DistanceKm:        r.DeliveryDistanceKm,
		Discount:          r.Discount,
		OfferCode:         r.OfferCode,
		DiscountMessage:   r.DiscountMessage,
		Total:             r.Total,
		PaymentMethod:     method,
		PaymentStatus:     paymentStatus,
		PaidAmount:        r.PaidAmount,
		Status:            status,
		CreatedAt:         r.CreatedAt.UTC(),
		CancelledAt:       r.CancelledAt,
		Items:             []OrderItemView{},
	}
	if r.GatewayOrderID != nil {
		view.GatewayOrderID = *r.GatewayOrderID
	}
	return view, nil
}

// customerNextStatuses is what the order's customer may request: cancellation only.
func customerNextStatuses(status order.Status) []order.Status {
	if status.CanTransitionTo(order.Cancelled) {
		return []order.Status{order.Cancelled}
	}
	return []order.Status{}
}

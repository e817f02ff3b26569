// Package orderrepo maps the Order aggregate to the orders and order_items tables.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of orders. Items live in order_items.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber        string          `gorm:"uniqueIndex"`
	UserID             uuid.UUID       `gorm:"type:uuid;index"`
	ShopOwnerIDs       pq.StringArray  `gorm:"type:text[]"`
	Profile            ProfileDTO      `gorm:"embedded;embeddedPrefix:profile_"`
	Delivery           AddressDTO      `gorm:"embedded;embeddedPrefix:delivery_"`
	Note               string
	Subtotal           decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryFee        decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryIsFree     bool
	DeliveryBreakdown  string
	DeliveryDistanceKm float64
	Discount           decimal.Decimal `gorm:"type:numeric(12,2)"`
	OfferCode          string
	DiscountMessage    string
	Total              decimal.Decimal `gorm:"type:numeric(12,2)"`
	PaymentMethod      string
	PaymentStatus      string
	PaidAmount         decimal.Decimal `gorm:"type:numeric(12,2)"`
	GatewayOrderID     *string         `gorm:"uniqueIndex"`
	Status             string
	StockReducedBy     *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt          time.Time
	CancelledAt        *time.Time
	Items              []OrderItemDTO  `gorm:"foreignKey:OrderID;references:ID"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ProfileDTO is the customer profile snapshot taken at checkout.
type ProfileDTO struct {
	Name    string
	Phone   string
	Address string
	City    string
	Pincode string
	State   string
}

// AddressDTO is the delivery address of the order.
type AddressDTO struct {
	Name    string
	Phone   string
	Line    string
	City    string
	Pincode string
	State   string
	Lat     float64
	Lng     float64
}

// OrderItemDTO is one row of order_items.
type OrderItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int
	OwnerID   uuid.UUID       `gorm:"type:uuid"`
	Title     string
	Image     string
	Price     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity  int
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	pricing := o.Pricing()
	delivery := pricing.Delivery()
	discount := pricing.Discount()
	profile := o.Profile()
	address := o.Address()

	owners := o.ShopOwnerIDs()
	shopOwnerIDs := make(pq.StringArray, 0, len(owners))
	for _, owner := range owners {
		shopOwnerIDs = append(shopOwnerIDs, owner.String())
	}

	items := o.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:   o.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Position:  i,
			OwnerID:   item.OwnerID().Bytes(),
			Title:     item.Title(),
			Image:     item.Image(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
		})
	}

	dto := OrderDTO{
		ID:           o.ID().Bytes(),
		OrderNumber:  o.Number(),
		UserID:       o.UserID().Bytes(),
		ShopOwnerIDs: shopOwnerIDs,
		Profile: ProfileDTO{
			Name:    profile.Name,
			Phone:   profile.Phone,
			Address: profile.Address,
			City:    profile.City,
			Pincode: profile.Pincode,
			State:   profile.State,
		},
		Delivery: AddressDTO{
			Name:    address.Name(),
			Phone:   address.Phone(),
			Line:    address.Line(),
			City:    address.City(),
			Pincode: address.Pincode(),
			State:   address.State(),
			Lat:     address.Location().Lat(),
			Lng:     address.Location().Lng(),
		},
		Note:               o.Note(),
		Subtotal:           pricing.Subtotal(),
		DeliveryFee:        delivery.Fee,
		DeliveryIsFree:     delivery.IsFree,
		DeliveryBreakdown:  delivery.Breakdown,
		DeliveryDistanceKm: delivery.DistanceKm,
		Discount:           discount.Amount,
		OfferCode:          discount.OfferCode,
		DiscountMessage:    discount.Message,
		Total:              pricing.Total(),
		PaymentMethod:      o.PaymentMethod().String(),
		PaymentStatus:      o.PaymentStatus().String(),
		PaidAmount:         o.PaidAmount(),
		Status:             o.Status().String(),
		CreatedAt:          o.CreatedAt(),
		CancelledAt:        o.CancelledAt(),
		Items:              itemDTOs,
	}

	if ref := o.GatewayOrderID(); ref != "" {
		dto.GatewayOrderID = &ref
	}
	if by := o.StockReducedBy(); by != nil {
		raw := by.Bytes()
		dto.StockReducedBy = &raw
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	location, err := kernel.NewGeoPoint(dto.Delivery.Lat, dto.Delivery.Lng)
	if err != nil {
		return nil, err
	}
	address, err := order.NewAddress(
		dto.Delivery.Name, dto.Delivery.Phone, dto.Delivery.Line,
		dto.Delivery.City, dto.Delivery.Pincode, dto.Delivery.State, location,
	)
	if err != nil {
		return nil, err
	}

	pricing, err := order.NewPricing(
		dto.Subtotal,
		order.DeliveryQuote{
			Fee:        dto.DeliveryFee,
			IsFree:     dto.DeliveryIsFree,
			Breakdown:  dto.DeliveryBreakdown,
			DistanceKm: dto.DeliveryDistanceKm,
		},
		order.Discount{
			Amount:    dto.Discount,
			OfferCode: dto.OfferCode,
			Message:   dto.DiscountMessage,
		},
	)
	if err != nil {
		return nil, err
	}

	method, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var stockReducedBy *kernel.UUID
	if dto.StockReducedBy != nil {
		by, byErr := kernel.UUIDFromBytes(dto.StockReducedBy[:])
		if byErr != nil {
			return nil, byErr
		}
		stockReducedBy = &by
	}

	var gatewayOrderID string
	if dto.GatewayOrderID != nil {
		gatewayOrderID = *dto.GatewayOrderID
	}

	return order.RestoreOrder(order.Snapshot{
		ID:     id,
		Number: dto.OrderNumber,
		UserID: userID,
		Items:  items,
		Profile: order.ProfileSnapshot{
			Name:    dto.Profile.Name,
			Phone:   dto.Profile.Phone,
			Address: dto.Profile.Address,
			City:    dto.Profile.City,
			Pincode: dto.Profile.Pincode,
			State:   dto.Profile.State,
		},
		Address:        address,
		Note:           dto.Note,
		Pricing:        pricing,
		PaymentMethod:  method,
		PaymentStatus:  paymentStatus,
		PaidAmount:     dto.PaidAmount,
		GatewayOrderID: gatewayOrderID,
		Status:         status,
		StockReducedBy: stockReducedBy,
		CreatedAt:      dto.CreatedAt,
		CancelledAt:    dto.CancelledAt,
	})
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return order.Item{}, err
	}
	return order.NewItem(productID, ownerID, dto.Title, dto.Image, dto.Quantity, dto.Price)
}

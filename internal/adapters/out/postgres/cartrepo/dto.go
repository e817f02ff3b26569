// Package cartrepo persists cart lines in the cart_items table.
package cartrepo

import (
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItemDTO is one row of cart_items, keyed by (user_id, product_id).
type CartItemDTO struct {
	UserID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID       `gorm:"type:uuid"`
	Title     string
	Image     string
	Price     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity  int
	AddedAt   time.Time       `gorm:"autoCreateTime"`
}

func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(userID kernel.UUID, item cart.Item) CartItemDTO {
	return CartItemDTO{
		UserID:    userID.Bytes(),
		ProductID: item.ProductID().Bytes(),
		OwnerID:   item.OwnerID().Bytes(),
		Title:     item.Title(),
		Image:     item.Image(),
		Price:     item.Price(),
		Quantity:  item.Quantity(),
	}
}

func toDomain(dto CartItemDTO) (cart.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return cart.Item{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return cart.Item{}, err
	}
	return cart.NewItem(productID, ownerID, dto.Title, dto.Image, dto.Quantity, dto.Price)
}

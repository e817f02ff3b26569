// Package wishlistrepo keeps the products a customer saved for later.
package wishlistrepo

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WishlistItemDTO struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	AddedAt   time.Time `gorm:"autoCreateTime"`
}

func (WishlistItemDTO) TableName() string {
	return "wishlist_items"
}

// GormWishlistRepository implements ports.WishlistRepository.
type GormWishlistRepository struct {
	db *gorm.DB
}

func NewGormWishlistRepository(db *gorm.DB) *GormWishlistRepository {
	return &GormWishlistRepository{db: db}
}

func (r *GormWishlistRepository) AddIfAbsent(ctx context.Context, userID, productID kernel.UUID) error {
	dto := WishlistItemDTO{
		UserID:    userID.Bytes(),
		ProductID: productID.Bytes(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

// Contains reports whether the product is on the user's wishlist.
func (r *GormWishlistRepository) Contains(ctx context.Context, userID, productID kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&WishlistItemDTO{}).
		Where("user_id = ? AND product_id = ?", userID.Bytes(), productID.Bytes()).
		Count(&count).Error
	return count > 0, err
}

package cartrepo

import (
	"context"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements ports.CartRepository.
type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Get loads the user's lines oldest first.
func (r *GormCartRepository) Get(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	return r.load(r.db.WithContext(ctx), userID)
}

// GetForCheckout serializes checkouts of the same user. The advisory lock is
// held until the surrounding transaction ends, so a second checkout waits here
// and then reads whatever the first one left behind.
func (r *GormCartRepository) GetForCheckout(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if err := db.Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", checkoutLockKey(userID)).Error; err != nil {
		return nil, err
	}
	return r.load(db.Clauses(clause.Locking{Strength: "UPDATE"}), userID)
}

func (r *GormCartRepository) load(db *gorm.DB, userID kernel.UUID) (*cart.Cart, error) {
	var dtos []CartItemDTO
	err := db.
		Where("user_id = ?", userID.Bytes()).
		Order("added_at, product_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return cart.NewCart(userID, items)
}

func checkoutLockKey(userID kernel.UUID) string {
	return "cart:" + userID.String()
}

// AddOrIncrement upserts the line in one statement, so concurrent adds of the
// same product sum up instead of overwriting each other.
func (r *GormCartRepository) AddOrIncrement(ctx context.Context, userID kernel.UUID, item cart.Item) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(userID, item)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
			}),
		}).
		Create(&dto).Error
}

func (r *GormCartRepository) UpdateQuantity(ctx context.Context, userID, productID kernel.UUID, quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "∞")
	}

	result := r.db.WithContext(ctx).
		Model(&CartItemDTO{}).
		Where("user_id = ? AND product_id = ?", userID.Bytes(), productID.Bytes()).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("cart item", productID.String(), cart.ErrItemNotFound)
	}
	return nil
}

func (r *GormCartRepository) Remove(ctx context.Context, userID, productID kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID.Bytes(), productID.Bytes()).
		Delete(&CartItemDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("cart item", productID.String(), cart.ErrItemNotFound)
	}
	return nil
}

func (r *GormCartRepository) Clear(ctx context.Context, userID kernel.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID.Bytes()).
		Delete(&CartItemDTO{}).Error
}

// RemoveLines deletes only the listed products, leaving lines added since the
// cart was read.
func (r *GormCartRepository) RemoveLines(ctx context.Context, userID kernel.UUID, productIDs []kernel.UUID) error {
	if len(productIDs) == 0 {
		return nil
	}

	ids := make([]any, 0, len(productIDs))
	for _, id := range productIDs {
		ids = append(ids, id.Bytes())
	}
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id IN ?", userID.Bytes(), ids).
		Delete(&CartItemDTO{}).Error
}

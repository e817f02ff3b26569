// Package productrepo reads catalog products and keeps their stock.
package productrepo

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrInsufficientStock is the cause attached when a deduction would drive stock negative.
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductDTO maps the products table. Rows are written by the catalog; this
// service only changes stock.
type ProductDTO struct {
	ID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID       `gorm:"type:uuid;index"`
	Title   string
	Image   string
	Price   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Stock   int
}

func (ProductDTO) TableName() string {
	return "products"
}

// GormProductRepository implements ports.ProductRepository.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (ports.Product, error) {
	if err := id.Validate(); err != nil {
		return ports.Product{}, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Product{}, errs.NewObjectNotFoundError("product", id.String())
		}
		return ports.Product{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return ports.Product{}, err
	}

	return ports.Product{
		ID:      id,
		OwnerID: ownerID,
		Title:   dto.Title,
		Image:   dto.Image,
		Price:   dto.Price,
		Stock:   dto.Stock,
	}, nil
}

// AdjustStock applies delta with a guarded UPDATE, so two deductions racing for
// the last units cannot both succeed.
func (r *GormProductRepository) AdjustStock(ctx context.Context, productID kernel.UUID, delta int) error {
	if delta == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ? AND stock + ? >= 0", productID.Bytes(), delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", productID.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("product", productID.String())
	}
	return errs.NewConcurrencyConflictErrorWithCause(
		"product", productID.String(), fmt.Errorf("%w: cannot apply %d", ErrInsufficientStock, delta),
	)
}

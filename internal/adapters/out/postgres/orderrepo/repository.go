package orderrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order row and its items in one statement batch.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("order_number", aggregate.Number())
		}
		return err
	}

	r.track(aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "order", id.String(), "id = ?", id.Bytes())
}

func (r *GormOrderRepository) GetByGatewayOrderID(ctx context.Context, reference string) (*order.Order, error) {
	if reference == "" {
		return nil, errs.NewValueIsRequiredError("gateway_order_id")
	}
	return r.first(ctx, "gateway order", reference, "gateway_order_id = ?", reference)
}

func (r *GormOrderRepository) first(ctx context.Context, param, key string, query string, args ...any) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where(query, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, key)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus is a compare-and-swap on the stored status. Two shop owners
// accepting the same order concurrently cannot both succeed.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var stockReducedBy *uuid.UUID
	if by := aggregate.StockReducedBy(); by != nil {
		raw := by.Bytes()
		stockReducedBy = &raw
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), expected.String()).
		Updates(map[string]any{
			"status":           aggregate.Status().String(),
			"stock_reduced_by": stockReducedBy,
			"cancelled_at":     aggregate.CancelledAt(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("order", aggregate.ID().String())
	}

	r.track(aggregate)
	return nil
}

// UpdatePayment refuses to overwrite a different stored gateway reference and
// reports that as a concurrency conflict.
func (r *GormOrderRepository) UpdatePayment(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var gatewayOrderID *string
	if ref := aggregate.GatewayOrderID(); ref != "" {
		gatewayOrderID = &ref
	}

	query := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes())
	if gatewayOrderID != nil {
		// A concurrent payment start must not replace a reference webhooks already use.
		query = query.Where("(gateway_order_id IS NULL OR gateway_order_id = ?)", *gatewayOrderID)
	}

	result := query.
		Updates(map[string]any{
			"payment_status":   aggregate.PaymentStatus().String(),
			"paid_amount":      aggregate.PaidAmount(),
			"gateway_order_id": gatewayOrderID,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("gateway_order_id", aggregate.GatewayOrderID())
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		if gatewayOrderID != nil {
			return errs.NewConcurrencyConflictError("order", aggregate.ID().String())
		}
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.track(aggregate)
	return nil
}

// DeletePending removes the order only while it is pending; order_items cascade.
func (r *GormOrderRepository) DeletePending(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id.Bytes(), order.Pending.String()).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("order", id.String())
	}
	return nil
}

func (r *GormOrderRepository) track(aggregate *order.Order) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}

func (r *GormOrderRepository) CountDelivered(ctx context.Context, userID kernel.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("user_id = ? AND status = ?", userID.Bytes(), order.Delivered.String()).
		Count(&count).Error
	return count, err
}

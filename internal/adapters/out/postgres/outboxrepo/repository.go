// Package outboxrepo stores cancellation notifications until the relay job publishes them.
package outboxrepo

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid"`
	OrderID     uuid.UUID `gorm:"type:uuid"`
	Message     string
	CreatedAt   time.Time
	PublishedAt *time.Time
}

func (NotificationDTO) TableName() string {
	return "notification_outbox"
}

// GormNotificationOutbox implements ports.NotificationOutbox.
type GormNotificationOutbox struct {
	db *gorm.DB
}

func NewGormNotificationOutbox(db *gorm.DB) *GormNotificationOutbox {
	return &GormNotificationOutbox{db: db}
}

func (o *GormNotificationOutbox) Add(ctx context.Context, n notification.Notification) error {
	dto := NotificationDTO{
		ID:        n.ID.Bytes(),
		UserID:    n.UserID.Bytes(),
		OrderID:   n.OrderID.Bytes(),
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	}
	return o.db.WithContext(ctx).Create(&dto).Error
}

// Pending locks the returned rows with SKIP LOCKED, so two relays running at
// once pick disjoint batches. Call it inside a transaction.
func (o *GormNotificationOutbox) Pending(ctx context.Context, limit int) ([]notification.Notification, error) {
	var dtos []NotificationDTO
	err := o.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	result := make([]notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}

func (o *GormNotificationOutbox) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	return o.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id IN ?", raw).
		Update("published_at", at.UTC()).Error
}

func toDomain(dto NotificationDTO) (notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return notification.Notification{}, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return notification.Notification{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return notification.Notification{}, err
	}

	return notification.Notification{
		ID:        id,
		UserID:    userID,
		OrderID:   orderID,
		Message:   dto.Message,
		CreatedAt: dto.CreatedAt.UTC(),
	}, nil
}

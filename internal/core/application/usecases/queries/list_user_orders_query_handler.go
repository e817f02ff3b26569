package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type ListUserOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListUserOrdersQueryHandler(db *gorm.DB) ListUserOrdersQueryHandler {
	return ListUserOrdersQueryHandler{db: db}
}

// Handle returns the newest orders first.
func (h ListUserOrdersQueryHandler) Handle(ctx context.Context, query ListUserOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views, err := loadOrderViews(ctx, h.db,
		"user_id = ? AND status <> ? ORDER BY created_at DESC, id",
		query.UserID().Bytes(), order.Cancelled.String(),
	)
	if err != nil {
		return nil, err
	}

	for i := range views {
		views[i].NextStatuses = customerNextStatuses(views[i].Status)
	}
	return views, nil
}

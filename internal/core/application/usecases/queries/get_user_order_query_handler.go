package queries

import (
	"context"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetUserOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetUserOrderQueryHandler(db *gorm.DB) GetUserOrderQueryHandler {
	return GetUserOrderQueryHandler{db: db}
}

// Handle reports another user's order as not found.
func (h GetUserOrderQueryHandler) Handle(ctx context.Context, query GetUserOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	views, err := loadOrderViews(ctx, h.db, "id = ? AND user_id = ?", query.OrderID().Bytes(), query.UserID().Bytes())
	if err != nil {
		return OrderView{}, err
	}
	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	view := views[0]
	view.NextStatuses = customerNextStatuses(view.Status)
	return view, nil
}

package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetShopOwnerOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetShopOwnerOrderQueryHandler(db *gorm.DB) GetShopOwnerOrderQueryHandler {
	return GetShopOwnerOrderQueryHandler{db: db}
}

// Handle denies access when the order contains none of the owner's products.
func (h GetShopOwnerOrderQueryHandler) Handle(ctx context.Context, query GetShopOwnerOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	views, err := loadOrderViews(ctx, h.db, "id = ?", query.OrderID().Bytes())
	if err != nil {
		return OrderView{}, err
	}
	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	view := views[0]
	if !view.hasShopOwner(query.OwnerID()) {
		actor := kernel.Actor{ID: query.OwnerID(), Role: kernel.ShopOwner}
		return OrderView{}, errs.NewAccessDeniedError(actor.String(), "order "+view.ID.String())
	}

	view.Items = view.itemsOwnedBy(query.OwnerID())
	view.NextStatuses = view.Status.NextStatuses()
	return view, nil
}

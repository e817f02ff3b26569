package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListShopOwnerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListShopOwnerOrdersQueryHandler(db *gorm.DB) ListShopOwnerOrdersQueryHandler {
	return ListShopOwnerOrdersQueryHandler{db: db}
}

// Handle returns the newest orders first. Each view carries only the owner's
// items and the statuses the owner may move the order to.
func (h ListShopOwnerOrdersQueryHandler) Handle(ctx context.Context, query ListShopOwnerOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ownerID := query.OwnerID()
	views, err := loadOrderViews(ctx, h.db,
		"? = ANY(shop_owner_ids) ORDER BY created_at DESC, id",
		ownerID.String(),
	)
	if err != nil {
		return nil, err
	}

	for i := range views {
		views[i].Items = views[i].itemsOwnedBy(ownerID)
		views[i].NextStatuses = views[i].Status.NextStatuses()
	}
	return views, nil
}

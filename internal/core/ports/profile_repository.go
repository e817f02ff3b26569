package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// UserProfile is the customer's saved profile. Location is nil when the customer
// never shared coordinates.
type UserProfile struct {
	Snapshot order.ProfileSnapshot
	Location *kernel.GeoPoint
}

// ProfileRepository reads customer profiles. Returns errs.ErrObjectNotFound when none exists.
type ProfileRepository interface {
	Get(ctx context.Context, userID kernel.UUID) (UserProfile, error)
}

// ShopRepository reads shop locations. Returns errs.ErrObjectNotFound when the shop
// has no registered coordinates.
type ShopRepository interface {
	Location(ctx context.Context, ownerID kernel.UUID) (kernel.GeoPoint, error)
}

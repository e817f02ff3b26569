// Package profilerepo reads customer profiles and shop locations. Both tables
// are maintained by the profile service; this module never writes them.
package profilerepo

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserProfileDTO struct {
	UserID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Phone   string
	Address string
	City    string
	Pincode string
	State   string
	Lat     sql.NullFloat64
	Lng     sql.NullFloat64
}

func (UserProfileDTO) TableName() string {
	return "user_profiles"
}

type ShopProfileDTO struct {
	OwnerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Lat     float64
	Lng     float64
}

func (ShopProfileDTO) TableName() string {
	return "shop_profiles"
}

// GormProfileRepository implements ports.ProfileRepository.
type GormProfileRepository struct {
	db *gorm.DB
}

func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// Get returns the profile. Location stays nil unless both coordinates are stored.
func (r *GormProfileRepository) Get(ctx context.Context, userID kernel.UUID) (ports.UserProfile, error) {
	if err := userID.Validate(); err != nil {
		return ports.UserProfile{}, err
	}

	var dto UserProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.UserProfile{}, errs.NewObjectNotFoundError("profile", userID.String())
		}
		return ports.UserProfile{}, err
	}

	profile := ports.UserProfile{
		Snapshot: order.ProfileSnapshot{
			Name:    dto.Name,
			Phone:   dto.Phone,
			Address: dto.Address,
			City:    dto.City,
			Pincode: dto.Pincode,
			State:   dto.State,
		},
	}
	if dto.Lat.Valid && dto.Lng.Valid {
		location, err := kernel.NewGeoPoint(dto.Lat.Float64, dto.Lng.Float64)
		if err != nil {
			return ports.UserProfile{}, err
		}
		profile.Location = &location
	}
	return profile, nil
}

// GormShopRepository implements ports.ShopRepository.
type GormShopRepository struct {
	db *gorm.DB
}

func NewGormShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

func (r *GormShopRepository) Location(ctx context.Context, ownerID kernel.UUID) (kernel.GeoPoint, error) {
	if err := ownerID.Validate(); err != nil {
		return kernel.GeoPoint{}, err
	}

	var dto ShopProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "owner_id = ?", ownerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.GeoPoint{}, errs.NewObjectNotFoundError("shop location", ownerID.String())
		}
		return kernel.GeoPoint{}, err
	}

	return kernel.NewGeoPoint(dto.Lat, dto.Lng)
}

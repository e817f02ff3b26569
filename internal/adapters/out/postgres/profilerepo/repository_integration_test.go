package profilerepo_test

import (
	"context"
	"testing"

	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/adapters/out/postgres/profilerepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type ProfileRepositoryTestSuite struct {
	pgtest.Suite
}

func TestProfileRepository(t *testing.T) {
	suite.Run(t, new(ProfileRepositoryTestSuite))
}

func (s *ProfileRepositoryTestSuite) TestProfileWithLocation() {
	userID := kernel.NewUUID()
	lat, lng := 12.97, 77.59
	s.SeedProfile(userID, "Asha", &lat, &lng)

	profile, err := profilerepo.NewGormProfileRepository(s.DB).Get(context.Background(), userID)

	s.Require().NoError(err)
	s.Equal("Asha", profile.Snapshot.Name)
	s.Equal("560001", profile.Snapshot.Pincode)
	s.Require().NotNil(profile.Location)
	s.InDelta(lat, profile.Location.Lat(), 1e-9)
}

func (s *ProfileRepositoryTestSuite) TestProfileWithoutLocation() {
	userID := kernel.NewUUID()
	s.SeedProfile(userID, "Asha", nil, nil)

	profile, err := profilerepo.NewGormProfileRepository(s.DB).Get(context.Background(), userID)

	s.Require().NoError(err)
	s.Nil(profile.Location)
}

func (s *ProfileRepositoryTestSuite) TestMissingProfile() {
	_, err := profilerepo.NewGormProfileRepository(s.DB).Get(context.Background(), kernel.NewUUID())
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *ProfileRepositoryTestSuite) TestShopLocation() {
	ctx := context.Background()
	owner := kernel.NewUUID()
	s.SeedShop(owner, 12.95, 77.6)
	shops := profilerepo.NewGormShopRepository(s.DB)

	location, err := shops.Location(ctx, owner)
	s.Require().NoError(err)
	s.InDelta(12.95, location.Lat(), 1e-9)
	s.InDelta(77.6, location.Lng(), 1e-9)

	_, err = shops.Location(ctx, kernel.NewUUID())
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

package wishlistrepo_test

import (
	"context"
	"testing"

	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/adapters/out/postgres/wishlistrepo"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
)

type WishlistRepositoryTestSuite struct {
	pgtest.Suite
}

func TestWishlistRepository(t *testing.T) {
	suite.Run(t, new(WishlistRepositoryTestSuite))
}

func (s *WishlistRepositoryTestSuite) TestAddIfAbsentIsIdempotent() {
	ctx := context.Background()
	repo := wishlistrepo.NewGormWishlistRepository(s.DB)
	userID, productID := kernel.NewUUID(), kernel.NewUUID()

	s.Require().NoError(repo.AddIfAbsent(ctx, userID, productID))
	s.Require().NoError(repo.AddIfAbsent(ctx, userID, productID))

	ok, err := repo.Contains(ctx, userID, productID)
	s.Require().NoError(err)
	s.True(ok)

	var count int64
	s.Require().NoError(s.DB.Model(&wishlistrepo.WishlistItemDTO{}).Where("user_id = ?", userID.Bytes()).Count(&count).Error)
	s.Equal(int64(1), count)

	ok, err = repo.Contains(ctx, kernel.NewUUID(), productID)
	s.Require().NoError(err)
	s.False(ok)
}

package cartrepo_test

import (
	"context"
	"sync"
	"testing"

	"marketplace/internal/adapters/out/postgres/cartrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CartRepositoryTestSuite struct {
	pgtest.Suite
	repo *cartrepo.GormCartRepository
}

func TestCartRepository(t *testing.T) {
	suite.Run(t, new(CartRepositoryTestSuite))
}

func (s *CartRepositoryTestSuite) SetupTest() {
	s.Suite.SetupTest()
	s.repo = cartrepo.NewGormCartRepository(s.DB)
}

func (s *CartRepositoryTestSuite) item(productID, ownerID kernel.UUID, quantity int, price string) cart.Item {
	item, err := cart.NewItem(productID, ownerID, "Rice", "rice.png", quantity, decimal.RequireFromString(price))
	s.Require().NoError(err)
	return item
}

func (s *CartRepositoryTestSuite) TestEmptyCart() {
	userID := kernel.NewUUID()

	c, err := s.repo.Get(context.Background(), userID)

	s.Require().NoError(err)
	s.True(c.IsEmpty())
	s.Equal(userID, c.UserID())
}

func (s *CartRepositoryTestSuite) TestAddOrIncrementKeepsSnapshot() {
	ctx := context.Background()
	userID, productID, ownerID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	s.Require().NoError(s.repo.AddOrIncrement(ctx, userID, s.item(productID, ownerID, 2, "99.50")))
	s.Require().NoError(s.repo.AddOrIncrement(ctx, userID, s.item(productID, ownerID, 3, "120.00")))

	c, err := s.repo.Get(ctx, userID)
	s.Require().NoError(err)
	s.Require().Len(c.Items(), 1)
	s.Equal(5, c.Items()[0].Quantity())
	s.True(decimal.RequireFromString("99.50").Equal(c.Items()[0].Price()))
}

func (s *CartRepositoryTestSuite) TestConcurrentIncrementsSum() {
	ctx := context.Background()
	userID, productID, ownerID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	var wg sync.WaitGroup
	errCh := make(chan error, 10)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- s.repo.AddOrIncrement(ctx, userID, s.item(productID, ownerID, 1, "10"))
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		s.Require().NoError(err)
	}

	c, err := s.repo.Get(ctx, userID)
	s.Require().NoError(err)
	s.Require().Len(c.Items(), 1)
	s.Equal(10, c.Items()[0].Quantity())
}

func (s *CartRepositoryTestSuite) TestUpdateQuantity() {
	ctx := context.Background()
	userID, productID := kernel.NewUUID(), kernel.NewUUID()
	s.Require().NoError(s.repo.AddOrIncrement(ctx, userID, s.item(productID, kernel.NewUUID(), 1, "10")))

	s.Require().NoError(s.repo.UpdateQuantity(ctx, userID, productID, 7))
	c, err := s.repo.Get(ctx, userID)
	s.Require().NoError(err)
	s.Equal(7, c.Items()[0].Quantity())

	err = s.repo.UpdateQuantity(ctx, userID, kernel.NewUUID(), 2)
	s.ErrorIs(err, errs.ErrObjectNotFound)

	err = s.repo.UpdateQuantity(ctx, userID, productID, 0)
	s.ErrorIs(err, errs.ErrValueIsOutOfRange)
}

func (s *CartRepositoryTestSuite) TestRemoveAndClear() {
	ctx := context.Background()
	userID, first, second := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	owner := kernel.NewUUID()
	s.Require().NoError(s.repo.AddOrIncrement(ctx, userID, s.item(first, owner, 1, "10")))
	s.Require().NoError(s.repo.AddOrIncrement(ctx, userID, s.item(second, owner, 1, "20")))

	s.Require().NoError(s.repo.Remove(ctx, userID, first))
	s.ErrorIs(s.repo.Remove(ctx, userID, first), errs.ErrObjectNotFound)

	c, err := s.repo.Get(ctx, userID)
	s.Require().NoError(err)
	s.Require().Len(c.Items(), 1)
	s.Equal(second, c.Items()[0].ProductID())

	s.Require().NoError(s.repo.Clear(ctx, userID))
	c, err = s.repo.Get(ctx, userID)
	s.Require().NoError(err)
	s.True(c.IsEmpty())
}

func (s *CartRepositoryTestSuite) TestCartsAreIsolated() {
	ctx := context.Background()
	alice, bob, productID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	s.Require().NoError(s.repo.AddOrIncrement(ctx, alice, s.item(productID, kernel.NewUUID(), 1, "10")))

	c, err := s.repo.Get(ctx, bob)
	s.Require().NoError(err)
	s.True(c.IsEmpty())
}

func (s *CartRepositoryTestSuite) TestRemoveLinesKeepsOthers() {
	ctx := context.Background()
	userID, ownerID := kernel.NewUUID(), kernel.NewUUID()
	rice, dal, oil := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	s.Require().NoError(s.repo.AddOrIncrement(ctx, userID, s.item(rice, ownerID, 1, "10")))
	s.Require().NoError(s.repo.AddOrIncrement(ctx, userID, s.item(dal, ownerID, 1, "10")))
	s.Require().NoError(s.repo.AddOrIncrement(ctx, userID, s.item(oil, ownerID, 1, "10")))

	s.Require().NoError(s.repo.RemoveLines(ctx, userID, []kernel.UUID{rice, oil}))
	s.Require().NoError(s.repo.RemoveLines(ctx, userID, nil))

	c, err := s.repo.Get(ctx, userID)
	s.Require().NoError(err)
	s.Require().Len(c.Items(), 1)
	s.Equal(dal, c.Items()[0].ProductID())
}

func (s *CartRepositoryTestSuite) TestGetForCheckoutInsideTransaction() {
	ctx := context.Background()
	userID, productID, ownerID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	s.Require().NoError(s.repo.AddOrIncrement(ctx, userID, s.item(productID, ownerID, 2, "10")))

	tx := s.DB.Begin()
	defer tx.Rollback()

	c, err := cartrepo.NewGormCartRepository(tx).GetForCheckout(ctx, userID)
	s.Require().NoError(err)
	s.Require().Len(c.Items(), 1)
	s.Equal(2, c.Items()[0].Quantity())

	_, err = s.repo.GetForCheckout(ctx, kernel.UUID{})
	s.Require().Error(err)
}

// Package pgtest starts a throwaway PostgreSQL for repository integration suites.
package pgtest

import (
	"context"
	"strings"
	"time"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/migrations"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// AllTables lists every table of the schema, children first.
var AllTables = []string{
	"notification_outbox",
	"wishlist_items",
	"order_items",
	"orders",
	"cart_items",
	"shop_profiles",
	"user_profiles",
	"products",
}

// Suite runs the migrated schema in a postgres:15-alpine container. Embed it in
// a testify suite; every test starts from empty tables.
type Suite struct {
	suite.Suite
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
}

func (s *Suite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.Container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Require().NoError(migrations.Up(dsn))

	db, err := postgres.Open(dsn)
	s.Require().NoError(err)
	s.DB = db
}

func (s *Suite) SetupTest() {
	err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(AllTables, ", ") + " CASCADE").Error
	s.Require().NoError(err)
}

func (s *Suite) TearDownSuite() {
	if s.Container != nil {
		s.Require().NoError(s.Container.Terminate(context.Background()))
	}
}

//go:build integration

package testutils

import (
	"context"
	"time"

	"github.com/amirasaad/bankcore/infra"
	"github.com/amirasaad/bankcore/infra/migrations"
	infrarepo "github.com/amirasaad/bankcore/infra/repository"
	"github.com/amirasaad/bankcore/internal/fixtures/seed"
	"github.com/amirasaad/bankcore/pkg/app"
	"github.com/amirasaad/bankcore/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// E2ETestSuite provides a test suite with a real Postgres database using Testcontainers
type E2ETestSuite struct {
	suite.Suite
	pgContainer *tcpostgres.PostgresContainer
	DB          *gorm.DB
	App         *fiber.App
	Deps        *app.App
	Cfg         *config.App
	Seed        *seed.Data
}

// startPostgresContainer starts a Postgres container using Testcontainers
func (s *E2ETestSuite) startPostgresContainer(ctx context.Context) (*tcpostgres.PostgresContainer, error) {
	return tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
}

// SetupSuite starts postgres, applies the embedded migrations and wires the app.
func (s *E2ETestSuite) SetupSuite() {
	ctx := context.Background()

	pg, err := s.startPostgresContainer(ctx)
	s.Require().NoError(err)
	s.pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Cfg = TestConfig()
	s.Cfg.DB = &config.DB{
		Driver:          config.DriverPostgres,
		Url:             dsn,
		MaxOpenConns:    10,
		MaxIdleConns:    10,
		ConnMaxLifetime: time.Minute,
		Migrate:         true,
	}

	s.DB, err = infra.NewDBConnection(s.Cfg.DB, s.Cfg.Env)
	s.Require().NoError(err)
	sqlDB, err := s.DB.DB()
	s.Require().NoError(err)
	s.Require().NoError(migrations.Up(sqlDB))

	s.App, s.Deps = NewTestApp(infrarepo.NewUoW(s.DB), s.Cfg)
}

// SetupTest empties the tables and reloads the seed rows.
func (s *E2ETestSuite) SetupTest() {
	s.Require().NoError(s.DB.Exec("TRUNCATE accounts, banks").Error)
	s.Seed = SeedStore(s.T(), s.Deps.Deps.Uow)
}

// TearDownSuite cleans up the test suite resources
func (s *E2ETestSuite) TearDownSuite() {
	ctx := context.Background()
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(ctx)
	}
}

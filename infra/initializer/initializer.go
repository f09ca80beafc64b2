package initializer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/bankcore/infra"
	"github.com/amirasaad/bankcore/infra/memory"
	"github.com/amirasaad/bankcore/infra/migrations"
	infra_repository "github.com/amirasaad/bankcore/infra/repository"
	"github.com/amirasaad/bankcore/internal/fixtures/seed"
	"github.com/amirasaad/bankcore/pkg/app"
	"github.com/amirasaad/bankcore/pkg/config"
	"github.com/amirasaad/bankcore/pkg/repository"
)

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	deps.Uow, err = newUnitOfWork(cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.Seed != nil && cfg.Seed.Enabled {
		if err = loadSeed(context.Background(), deps.Uow, logger); err != nil {
			return nil, fmt.Errorf("failed to load seed data: %w", err)
		}
	} else {
		logger.Info("Seed data disabled")
	}
	return deps, nil
}

func newUnitOfWork(cfg *config.App, logger *slog.Logger) (repository.UnitOfWork, error) {
	switch cfg.DB.Driver {
	case config.DriverMemory, "":
		logger.Info("Using in-memory store")
		return memory.NewUoW(memory.NewStore()), nil
	case config.DriverPostgres:
		db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
		if err != nil {
			logger.Error("Failed to initialize database", "error", err)
			return nil, err
		}
		if cfg.DB.Migrate {
			sqlDB, err := db.DB()
			if err != nil {
				return nil, err
			}
			if err = migrations.Up(sqlDB); err != nil {
				logger.Error("Failed to run migrations", "error", err)
				return nil, fmt.Errorf("failed to migrate database: %w", err)
			}
			logger.Info("Database migrations applied")
		}
		return infra_repository.NewUoW(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
}

// loadSeed inserts the embedded demo data when the store holds neither
// accounts nor banks.
func loadSeed(ctx context.Context, uow repository.UnitOfWork, logger *slog.Logger) error {
	data, err := seed.Load("")
	if err != nil {
		return err
	}
	return uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		banks, err := uow.BankRepository()
		if err != nil {
			return err
		}

		existingAccounts, err := accounts.List(ctx)
		if err != nil {
			return err
		}
		existingBanks, err := banks.List(ctx)
		if err != nil {
			return err
		}
		if len(existingAccounts) > 0 || len(existingBanks) > 0 {
			logger.Info("Skipping seed data; store not empty",
				"accounts", len(existingAccounts),
				"banks", len(existingBanks))
			return nil
		}

		for _, a := range data.Accounts {
			if err = accounts.Create(ctx, a); err != nil {
				logger.Error("Failed to seed account", "owner", a.OwnerName, "error", err)
				return err
			}
		}
		for _, b := range data.Banks {
			if err = banks.Create(ctx, b); err != nil {
				logger.Error("Failed to seed bank", "name", b.Name, "error", err)
				return err
			}
		}
		logger.Info("Seed data loaded",
			"accounts", len(data.Accounts),
			"banks", len(data.Banks))
		return nil
	})
}

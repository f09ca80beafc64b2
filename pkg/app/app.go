package app

import (
	"log/slog"

	"github.com/amirasaad/bankcore/pkg/config"
	"github.com/amirasaad/bankcore/pkg/repository"
	"github.com/amirasaad/bankcore/pkg/service/account"
	"github.com/amirasaad/bankcore/pkg/service/bank"
	"github.com/amirasaad/bankcore/pkg/service/transfer"
)

// Deps contains the infrastructure the services are built from.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
}

type App struct {
	Deps            *Deps
	Config          *config.App
	AccountService  *account.Service
	BankService     *bank.Service
	TransferService *transfer.Service
}

func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:            deps,
		Config:          cfg,
		AccountService:  account.New(deps.Uow, deps.Logger.With("service", "account")),
		BankService:     bank.New(deps.Uow, deps.Logger.With("service", "bank")),
		TransferService: transfer.New(deps.Uow, deps.Logger.With("service", "transfer")),
	}
}

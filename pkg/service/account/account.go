// Package account provides business logic for opening, looking up and
// removing accounts. Every operation runs inside its own unit of work.
package account

import (
	"context"
	"log/slog"

	"github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/amirasaad/bankcore/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service provides account operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with the provided dependencies.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// OpenAccount creates an account for owner with the given starting balance.
func (s *Service) OpenAccount(
	ctx context.Context,
	owner string,
	initialBalance decimal.Decimal,
) (acct *account.Account, err error) {
	logger := s.logger.With("owner", owner, "initialBalance", initialBalance.String())
	logger.Info("OpenAccount started")
	acct, err = account.New(owner, initialBalance)
	if err != nil {
		logger.Error("OpenAccount failed: domain error", "error", err)
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			logger.Error("OpenAccount failed: AccountRepository error", "error", err)
			return err
		}
		if err = repo.Create(ctx, acct); err != nil {
			logger.Error("OpenAccount failed: repo create error", "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info("OpenAccount successful", "accountID", acct.ID)
	return acct, nil
}

// Save inserts acct when it has no ID yet and updates it otherwise, and
// returns the stored account. acct itself is left untouched; the returned
// account carries the assigned ID only once the unit has committed.
func (s *Service) Save(ctx context.Context, acct *account.Account) (*account.Account, error) {
	logger := s.logger.With("accountID", acct.ID)
	stored := acct.Clone()
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if stored.ID == uuid.Nil {
			return repo.Create(ctx, stored)
		}
		return repo.Update(ctx, stored)
	})
	if err != nil {
		logger.Error("Save failed", "error", err)
		return nil, err
	}
	return stored, nil
}

// GetAccount returns the account with id.
func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (acct *account.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acct, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		s.logger.Debug("GetAccount failed", "accountID", id, "error", err)
		return nil, err
	}
	return acct, nil
}

// ListAccounts returns every account in creation order.
func (s *Service) ListAccounts(ctx context.Context) (accounts []*account.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		accounts, err = repo.List(ctx)
		return err
	})
	if err != nil {
		s.logger.Error("ListAccounts failed", "error", err)
		return nil, err
	}
	return accounts, nil
}

// FindByOwnerName returns the oldest account owned by name.
func (s *Service) FindByOwnerName(ctx context.Context, name string) (acct *account.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acct, err = repo.GetByOwnerName(ctx, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return acct, nil
}

// DeleteAccount removes the account with id. Banks are unaffected.
func (s *Service) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	logger := s.logger.With("accountID", id)
	logger.Info("DeleteAccount started")
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		logger.Error("DeleteAccount failed", "error", err)
		return err
	}
	logger.Info("DeleteAccount successful")
	return nil
}

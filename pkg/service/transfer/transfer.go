// Package transfer moves money between two accounts through a bank.
//
// A transfer debits the origin, credits the destination and bumps the
// bank's transfer counter inside one unit of work. Any failure rolls back
// all three; a failed transfer never reports success.
package transfer

import (
	"context"
	"log/slog"

	"github.com/amirasaad/bankcore/pkg/domain/transfer"
	"github.com/amirasaad/bankcore/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service provides the transfer operation and its companion reads.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new transfer Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Transfer executes req atomically.
//
// The origin is loaded and debited before the destination is even looked
// up, so an InsufficientFunds failure is reported ahead of a missing
// destination. Errors are returned as produced by the domain or store:
// *account.NotFoundError, *bank.NotFoundError,
// *account.InsufficientFundsError or *domain.PersistenceError.
func (s *Service) Transfer(ctx context.Context, req transfer.Request) error {
	logger := s.logger.With(
		"origin", req.OriginAccountID,
		"destination", req.DestinationAccountID,
		"bank", req.BankID,
		"amount", req.Amount.String(),
	)
	logger.Info("Transfer started")

	if err := req.Validate(); err != nil {
		logger.Error("Transfer failed: invalid request", "error", err)
		return err
	}

	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			logger.Error("Transfer failed: AccountRepository error", "error", err)
			return err
		}
		banks, err := uow.BankRepository()
		if err != nil {
			logger.Error("Transfer failed: BankRepository error", "error", err)
			return err
		}

		if err = accounts.Lock(ctx, req.OriginAccountID, req.DestinationAccountID); err != nil {
			logger.Error("Transfer failed: lock accounts", "error", err)
			return err
		}
		if err = banks.Lock(ctx, req.BankID); err != nil {
			logger.Error("Transfer failed: lock bank", "error", err)
			return err
		}

		origin, err := accounts.Get(ctx, req.OriginAccountID)
		if err != nil {
			logger.Error("Transfer failed: origin lookup", "error", err)
			return err
		}
		if err = origin.Debit(req.Amount); err != nil {
			logger.Warn("Transfer failed: debit rejected", "error", err)
			return err
		}
		if err = accounts.Update(ctx, origin); err != nil {
			logger.Error("Transfer failed: origin update", "error", err)
			return err
		}

		destination, err := accounts.Get(ctx, req.DestinationAccountID)
		if err != nil {
			logger.Error("Transfer failed: destination lookup", "error", err)
			return err
		}
		if err = destination.Credit(req.Amount); err != nil {
			logger.Error("Transfer failed: credit rejected", "error", err)
			return err
		}
		if err = accounts.Update(ctx, destination); err != nil {
			logger.Error("Transfer failed: destination update", "error", err)
			return err
		}

		b, err := banks.Get(ctx, req.BankID)
		if err != nil {
			logger.Error("Transfer failed: bank lookup", "error", err)
			return err
		}
		b.RecordTransfer()
		if err = banks.Update(ctx, b); err != nil {
			logger.Error("Transfer failed: bank update", "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("Transfer successful")
	return nil
}

// BalanceOf returns the current balance of accountID.
func (s *Service) BalanceOf(ctx context.Context, accountID uuid.UUID) (balance decimal.Decimal, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err := repo.Get(ctx, accountID)
		if err != nil {
			return err
		}
		balance = a.Balance
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// TransferCountOf returns how many transfers bankID has completed.
func (s *Service) TransferCountOf(ctx context.Context, bankID uuid.UUID) (count int64, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.BankRepository()
		if err != nil {
			return err
		}
		b, err := repo.Get(ctx, bankID)
		if err != nil {
			return err
		}
		count = b.TransferCount
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

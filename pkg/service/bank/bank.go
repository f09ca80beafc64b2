package bank

import (
	"context"
	"log/slog"

	"github.com/amirasaad/bankcore/pkg/domain/bank"
	"github.com/amirasaad/bankcore/pkg/repository"
	"github.com/google/uuid"
)

// Service provides bank operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// CreateBank registers a bank with a zero transfer count.
func (s *Service) CreateBank(ctx context.Context, name string) (b *bank.Bank, err error) {
	logger := s.logger.With("name", name)
	logger.Info("CreateBank started")
	b, err = bank.New(name)
	if err != nil {
		logger.Error("CreateBank failed: domain error", "error", err)
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.BankRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, b)
	})
	if err != nil {
		logger.Error("CreateBank failed: repo create error", "error", err)
		return nil, err
	}
	logger.Info("CreateBank successful", "bankID", b.ID)
	return b, nil
}

func (s *Service) GetBank(ctx context.Context, id uuid.UUID) (b *bank.Bank, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.BankRepository()
		if err != nil {
			return err
		}
		b, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) ListBanks(ctx context.Context) (banks []*bank.Bank, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.BankRepository()
		if err != nil {
			return err
		}
		banks, err = repo.List(ctx)
		return err
	})
	if err != nil {
		s.logger.Error("ListBanks failed", "error", err)
		return nil, err
	}
	return banks, nil
}

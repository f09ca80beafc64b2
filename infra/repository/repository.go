package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirasaad/bankcore/pkg/domain"
	"github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/amirasaad/bankcore/pkg/domain/bank"
	"github.com/amirasaad/bankcore/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	_ repository.AccountRepository = (*accountRepository)(nil)
	_ repository.BankRepository    = (*bankRepository)(nil)
)

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	var m Account
	err := WrapError("get account", func() error {
		return r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, account.NewNotFoundError(id)
	}
	if err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *accountRepository) GetByOwnerName(ctx context.Context, name string) (*account.Account, error) {
	var m Account
	err := WrapError("get account by owner", func() error {
		return r.db.WithContext(ctx).
			Where("owner_name = ?", name).
			Order("created_at, id").
			First(&m).Error
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("account owned by %q: %w", name, account.ErrAccountNotFound)
	}
	if err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *accountRepository) List(ctx context.Context) ([]*account.Account, error) {
	var models []Account
	err := WrapError("list accounts", func() error {
		return r.db.WithContext(ctx).Order("created_at, id").Find(&models).Error
	})
	if err != nil {
		return nil, err
	}
	accounts := make([]*account.Account, 0, len(models))
	for i := range models {
		accounts = append(accounts, models[i].toDomain())
	}
	return accounts, nil
}

func (r *accountRepository) Create(ctx context.Context, a *account.Account) error {
	m := accountFromDomain(a)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := WrapError("create account", func() error {
		return r.db.WithContext(ctx).Create(&m).Error
	}); err != nil {
		return err
	}
	a.ID, a.CreatedAt, a.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *accountRepository) Update(ctx context.Context, a *account.Account) error {
	now := time.Now().UTC()
	var affected int64
	err := WrapError("update account", func() error {
		res := r.db.WithContext(ctx).
			Model(&Account{}).
			Where("id = ?", a.ID).
			Updates(map[string]any{
				"owner_name": a.OwnerName,
				"balance":    a.Balance,
				"updated_at": now,
			})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return account.NewNotFoundError(a.ID)
	}
	a.UpdatedAt = now
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var affected int64
	err := WrapError("delete account", func() error {
		res := r.db.WithContext(ctx).Delete(&Account{}, "id = ?", id)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return account.NewNotFoundError(id)
	}
	return nil
}

// Lock issues SELECT ... FOR UPDATE ordered by id so that two transfers
// touching the same pair of accounts always lock them in the same order.
func (r *accountRepository) Lock(ctx context.Context, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	var locked []Account
	return WrapError("lock accounts", func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id IN ?", ids).
			Order("id").
			Find(&locked).Error
	})
}

type bankRepository struct {
	db *gorm.DB
}

func NewBankRepository(db *gorm.DB) repository.BankRepository {
	return &bankRepository{db: db}
}

func (r *bankRepository) Get(ctx context.Context, id uuid.UUID) (*bank.Bank, error) {
	var m Bank
	err := WrapError("get bank", func() error {
		return r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, bank.NewNotFoundError(id)
	}
	if err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *bankRepository) List(ctx context.Context) ([]*bank.Bank, error) {
	var models []Bank
	err := WrapError("list banks", func() error {
		return r.db.WithContext(ctx).Order("created_at, id").Find(&models).Error
	})
	if err != nil {
		return nil, err
	}
	banks := make([]*bank.Bank, 0, len(models))
	for i := range models {
		banks = append(banks, models[i].toDomain())
	}
	return banks, nil
}

func (r *bankRepository) Create(ctx context.Context, b *bank.Bank) error {
	m := bankFromDomain(b)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := WrapError("create bank", func() error {
		return r.db.WithContext(ctx).Create(&m).Error
	}); err != nil {
		return err
	}
	b.ID, b.CreatedAt, b.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *bankRepository) Update(ctx context.Context, b *bank.Bank) error {
	now := time.Now().UTC()
	var affected int64
	err := WrapError("update bank", func() error {
		res := r.db.WithContext(ctx).
			Model(&Bank{}).
			Where("id = ?", b.ID).
			Updates(map[string]any{
				"name":           b.Name,
				"transfer_count": b.TransferCount,
				"updated_at":     now,
			})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return bank.NewNotFoundError(b.ID)
	}
	b.UpdatedAt = now
	return nil
}

func (r *bankRepository) Lock(ctx context.Context, id uuid.UUID) error {
	var locked []Bank
	return WrapError("lock bank", func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", id).
			Find(&locked).Error
	})
}

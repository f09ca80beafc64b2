package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/amirasaad/bankcore/pkg/domain"
	"github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/amirasaad/bankcore/pkg/domain/bank"
	"github.com/amirasaad/bankcore/pkg/repository"
	"github.com/google/uuid"
)

var (
	_ repository.AccountRepository = (*accountRepository)(nil)
	_ repository.BankRepository    = (*bankRepository)(nil)
)

type accountRepository struct {
	run runner
}

func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (a *account.Account, err error) {
	err = r.run(ctx, func(t *txn) error {
		got, ok := t.account(id)
		if !ok {
			return account.NewNotFoundError(id)
		}
		a = &got
		return nil
	})
	return a, err
}

func (r *accountRepository) GetByOwnerName(ctx context.Context, name string) (a *account.Account, err error) {
	err = r.run(ctx, func(t *txn) error {
		for _, id := range t.accountIDs() {
			got, ok := t.account(id)
			if ok && got.OwnerName == name {
				a = &got
				return nil
			}
		}
		return fmt.Errorf("account owned by %q: %w", name, account.ErrAccountNotFound)
	})
	return a, err
}

func (r *accountRepository) List(ctx context.Context) (accounts []*account.Account, err error) {
	err = r.run(ctx, func(t *txn) error {
		ids := t.accountIDs()
		accounts = make([]*account.Account, 0, len(ids))
		for _, id := range ids {
			if got, ok := t.account(id); ok {
				accounts = append(accounts, &got)
			}
		}
		return nil
	})
	return accounts, err
}

func (r *accountRepository) Create(ctx context.Context, a *account.Account) error {
	return r.run(ctx, func(t *txn) error {
		stored := *a
		if stored.ID == uuid.Nil {
			stored.ID = uuid.New()
		} else if _, exists := t.account(stored.ID); exists {
			return fmt.Errorf("account %s: %w", stored.ID, domain.ErrAlreadyExists)
		}
		now := time.Now().UTC()
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = now
		}
		stored.UpdatedAt = now
		t.putAccount(stored, true)
		a.ID, a.CreatedAt, a.UpdatedAt = stored.ID, stored.CreatedAt, stored.UpdatedAt
		return nil
	})
}

func (r *accountRepository) Update(ctx context.Context, a *account.Account) error {
	return r.run(ctx, func(t *txn) error {
		existing, ok := t.account(a.ID)
		if !ok {
			return account.NewNotFoundError(a.ID)
		}
		a.CreatedAt = existing.CreatedAt
		a.UpdatedAt = time.Now().UTC()
		t.putAccount(*a, false)
		return nil
	})
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.run(ctx, func(t *txn) error {
		if _, ok := t.account(id); !ok {
			return account.NewNotFoundError(id)
		}
		t.deleteAccount(id)
		return nil
	})
}

// Lock is a no-op: the enclosing unit already holds the store lock.
func (r *accountRepository) Lock(ctx context.Context, _ ...uuid.UUID) error {
	return ctx.Err()
}

type bankRepository struct {
	run runner
}

func (r *bankRepository) Get(ctx context.Context, id uuid.UUID) (b *bank.Bank, err error) {
	err = r.run(ctx, func(t *txn) error {
		got, ok := t.bank(id)
		if !ok {
			return bank.NewNotFoundError(id)
		}
		b = &got
		return nil
	})
	return b, err
}

func (r *bankRepository) List(ctx context.Context) (banks []*bank.Bank, err error) {
	err = r.run(ctx, func(t *txn) error {
		ids := t.bankIDs()
		banks = make([]*bank.Bank, 0, len(ids))
		for _, id := range ids {
			if got, ok := t.bank(id); ok {
				banks = append(banks, &got)
			}
		}
		return nil
	})
	return banks, err
}

func (r *bankRepository) Create(ctx context.Context, b *bank.Bank) error {
	return r.run(ctx, func(t *txn) error {
		stored := *b
		if stored.ID == uuid.Nil {
			stored.ID = uuid.New()
		} else if _, exists := t.bank(stored.ID); exists {
			return fmt.Errorf("bank %s: %w", stored.ID, domain.ErrAlreadyExists)
		}
		now := time.Now().UTC()
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = now
		}
		stored.UpdatedAt = now
		t.putBank(stored, true)
		b.ID, b.CreatedAt, b.UpdatedAt = stored.ID, stored.CreatedAt, stored.UpdatedAt
		return nil
	})
}

func (r *bankRepository) Update(ctx context.Context, b *bank.Bank) error {
	return r.run(ctx, func(t *txn) error {
		existing, ok := t.bank(b.ID)
		if !ok {
			return bank.NewNotFoundError(b.ID)
		}
		b.CreatedAt = existing.CreatedAt
		b.UpdatedAt = time.Now().UTC()
		t.putBank(*b, false)
		return nil
	})
}

func (r *bankRepository) Lock(ctx context.Context, _ uuid.UUID) error {
	return ctx.Err()
}

package memory

import (
	"context"

	"github.com/amirasaad/bankcore/pkg/repository"
)

var _ repository.UnitOfWork = (*UoW)(nil)

// UoW is the in-memory repository.UnitOfWork.
type UoW struct {
	store *Store
	tx    *txn
}

// NewUoW creates a UoW over store.
func NewUoW(store *Store) *UoW {
	return &UoW{store: store}
}

// Do runs fn while holding the store lock. Writes made through the
// repositories fn receives are applied only when fn returns nil.
// Calling Do on a UoW that is already inside a unit joins that unit.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	return u.store.run(ctx, func(t *txn) error {
		return fn(&UoW{store: u.store, tx: t})
	})
}

// AccountRepository returns an account repository. Outside Do every call
// runs as its own unit.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	return &accountRepository{run: u.runner()}, nil
}

// BankRepository returns a bank repository. Outside Do every call runs as
// its own unit.
func (u *UoW) BankRepository() (repository.BankRepository, error) {
	return &bankRepository{run: u.runner()}, nil
}

type runner func(ctx context.Context, fn func(t *txn) error) error

func (u *UoW) runner() runner {
	if u.tx != nil {
		t := u.tx
		return func(ctx context.Context, fn func(t *txn) error) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(t)
		}
	}
	return u.store.run
}

func (s *Store) run(ctx context.Context, fn func(t *txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t := newTxn(s)
	if err := fn(t); err != nil {
		return err
	}
	t.commit()
	return nil
}

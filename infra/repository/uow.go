package repository

import (
	"context"

	"github.com/amirasaad/bankcore/pkg/domain"
	"github.com/amirasaad/bankcore/pkg/repository"
	"gorm.io/gorm"
)

var _ repository.UnitOfWork = (*UoW)(nil)

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories handed out inside Do are bound to that transaction's session.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs the given function in a transaction boundary, providing a UoW with repository access.
// Calling Do on a UoW that is already inside a transaction opens a savepoint.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	var fnErr error
	err := u.session().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&UoW{db: u.db, tx: tx})
		return fnErr
	})
	if err != nil && err != fnErr {
		// begin or commit failed
		return domain.NewPersistenceError("transaction", err)
	}
	return err
}

// AccountRepository returns an account repository bound to the current session.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	return NewAccountRepository(u.session()), nil
}

// BankRepository returns a bank repository bound to the current session.
func (u *UoW) BankRepository() (repository.BankRepository, error) {
	return NewBankRepository(u.session()), nil
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

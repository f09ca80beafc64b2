package repository

import (
	"context"
)

// UnitOfWork defines the contract for transactional work and repository access.
//
// Repositories obtained from the UnitOfWork passed into Do share one
// transaction: either every write made through them is kept, or none is.
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary.
	// If the function returns an error, the transaction is rolled back
	// and that error is returned unchanged.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	AccountRepository() (AccountRepository, error)
	BankRepository() (BankRepository, error)
}

package repository

import (
	"context"

	"github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/amirasaad/bankcore/pkg/domain/bank"
	"github.com/google/uuid"
)

// AccountRepository defines the interface for account data access operations.
//
// Every load returns a fresh copy; mutating it has no effect until Update.
type AccountRepository interface {
	// Get fails with *account.NotFoundError when id is unknown.
	Get(ctx context.Context, id uuid.UUID) (*account.Account, error)
	// GetByOwnerName returns the first account, in creation order, owned by name.
	GetByOwnerName(ctx context.Context, name string) (*account.Account, error)
	List(ctx context.Context) ([]*account.Account, error)
	// Create stores a new account, assigning an ID when it is uuid.Nil.
	// a is only written back once the insert succeeds; the ID is durable
	// only after the enclosing unit of work commits.
	Create(ctx context.Context, a *account.Account) error
	// Update overwrites an existing account in place.
	Update(ctx context.Context, a *account.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Lock takes write locks on the given accounts, in ascending id order,
	// for the rest of the enclosing unit of work. Unknown ids are ignored.
	Lock(ctx context.Context, ids ...uuid.UUID) error
}

// BankRepository defines the interface for bank data access operations.
type BankRepository interface {
	// Get fails with *bank.NotFoundError when id is unknown.
	Get(ctx context.Context, id uuid.UUID) (*bank.Bank, error)
	List(ctx context.Context) ([]*bank.Bank, error)
	// Create follows the same ID rules as AccountRepository.Create.
	Create(ctx context.Context, b *bank.Bank) error
	Update(ctx context.Context, b *bank.Bank) error
	Lock(ctx context.Context, id uuid.UUID) error
}

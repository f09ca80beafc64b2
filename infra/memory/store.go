// Package memory is an in-process store for accounts and banks.
//
// A Store admits one writer at a time: a unit of work holds the store lock
// from start to finish, stages its writes, and applies them only if it
// returns nil. Loads hand out copies, so callers never share state.
package memory

import (
	"sync"

	"github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/amirasaad/bankcore/pkg/domain/bank"
	"github.com/google/uuid"
)

// Store holds committed state.
type Store struct {
	mu sync.Mutex

	accounts     map[uuid.UUID]account.Account
	accountOrder []uuid.UUID
	banks        map[uuid.UUID]bank.Bank
	bankOrder    []uuid.UUID
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[uuid.UUID]account.Account),
		banks:    make(map[uuid.UUID]bank.Bank),
	}
}

// txn stages writes against a locked Store.
type txn struct {
	store *Store

	accounts        map[uuid.UUID]account.Account
	deletedAccounts map[uuid.UUID]struct{}
	newAccounts     []uuid.UUID
	banks           map[uuid.UUID]bank.Bank
	newBanks        []uuid.UUID
}

func newTxn(s *Store) *txn {
	return &txn{
		store:           s,
		accounts:        make(map[uuid.UUID]account.Account),
		deletedAccounts: make(map[uuid.UUID]struct{}),
		banks:           make(map[uuid.UUID]bank.Bank),
	}
}

func (t *txn) account(id uuid.UUID) (account.Account, bool) {
	if _, gone := t.deletedAccounts[id]; gone {
		return account.Account{}, false
	}
	if a, ok := t.accounts[id]; ok {
		return a, true
	}
	a, ok := t.store.accounts[id]
	return a, ok
}

func (t *txn) accountIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(t.store.accountOrder)+len(t.newAccounts))
	ids = append(ids, t.store.accountOrder...)
	return append(ids, t.newAccounts...)
}

func (t *txn) putAccount(a account.Account, isNew bool) {
	if _, committed := t.store.accounts[a.ID]; isNew && !committed {
		t.newAccounts = append(t.newAccounts, a.ID)
	}
	delete(t.deletedAccounts, a.ID)
	t.accounts[a.ID] = a
}

func (t *txn) deleteAccount(id uuid.UUID) {
	delete(t.accounts, id)
	t.deletedAccounts[id] = struct{}{}
}

func (t *txn) bank(id uuid.UUID) (bank.Bank, bool) {
	if b, ok := t.banks[id]; ok {
		return b, true
	}
	b, ok := t.store.banks[id]
	return b, ok
}

func (t *txn) bankIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(t.store.bankOrder)+len(t.newBanks))
	ids = append(ids, t.store.bankOrder...)
	return append(ids, t.newBanks...)
}

func (t *txn) putBank(b bank.Bank, isNew bool) {
	if isNew {
		t.newBanks = append(t.newBanks, b.ID)
	}
	t.banks[b.ID] = b
}

// commit applies staged writes. The caller must hold the store lock.
func (t *txn) commit() {
	s := t.store
	for id, a := range t.accounts {
		s.accounts[id] = a
	}
	s.accountOrder = append(s.accountOrder, t.newAccounts...)
	if len(t.deletedAccounts) > 0 {
		for id := range t.deletedAccounts {
			delete(s.accounts, id)
		}
		kept := s.accountOrder[:0]
		for _, id := range s.accountOrder {
			if _, gone := t.deletedAccounts[id]; !gone {
				kept = append(kept, id)
			}
		}
		s.accountOrder = kept
	}
	for id, b := range t.banks {
		s.banks[id] = b
	}
	s.bankOrder = append(s.bankOrder, t.newBanks...)
}

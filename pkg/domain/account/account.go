// Package account holds the account aggregate and the ledger rules that
// govern how its balance may change.
package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/bankcore/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrInsufficientFunds is returned when a debit exceeds the available balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = fmt.Errorf("%w: account not found", domain.ErrNotFound)

	// ErrNegativeAmount is returned when a debit or credit is given a negative amount.
	ErrNegativeAmount = fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)

	// ErrNegativeInitialBalance is returned when an account is opened with a negative balance.
	ErrNegativeInitialBalance = fmt.Errorf("%w: initial balance must not be negative", domain.ErrValidation)

	// ErrOwnerNameRequired is returned when an account is opened without an owner.
	ErrOwnerNameRequired = fmt.Errorf("%w: owner name is required", domain.ErrValidation)
)

// Account is a single holder's balance.
//
// Invariants:
//   - ID never changes once assigned.
//   - Balance only moves through Debit and Credit.
//   - Balance never drops below zero through Debit.
type Account struct {
	ID        uuid.UUID
	OwnerName string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New opens an account for owner with the given starting balance.
// The ID is left as uuid.Nil; the store assigns it on creation.
func New(owner string, initial decimal.Decimal) (*Account, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, ErrOwnerNameRequired
	}
	if initial.IsNegative() {
		return nil, ErrNegativeInitialBalance
	}
	now := time.Now().UTC()
	return &Account{
		OwnerName: owner,
		Balance:   initial,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Debit withdraws amount from the balance. A debit equal to the balance
// succeeds and leaves it at zero; anything larger fails with an
// *InsufficientFundsError and leaves the balance untouched.
func (a *Account) Debit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	if amount.GreaterThan(a.Balance) {
		return &InsufficientFundsError{
			AccountID: a.ID,
			Requested: amount,
			Available: a.Balance,
		}
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Credit deposits amount into the balance.
func (a *Account) Credit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	a.Balance = a.Balance.Add(amount)
	return nil
}

// Clone returns an independent copy of the account.
func (a *Account) Clone() *Account {
	c := *a
	return &c
}

// InsufficientFundsError carries the figures of a rejected debit.
type InsufficientFundsError struct {
	AccountID uuid.UUID
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf(
		"insufficient funds in account %s: requested %s, available %s",
		e.AccountID, e.Requested, e.Available,
	)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// NotFoundError reports a missing account by id.
type NotFoundError struct {
	ID uuid.UUID
}

// NewNotFoundError returns a *NotFoundError for id.
func NewNotFoundError(id uuid.UUID) error {
	return &NotFoundError{ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("account %s not found", e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrAccountNotFound
}

// Package bank holds the bank entity that counts completed transfers.
package bank

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/bankcore/pkg/domain"
	"github.com/google/uuid"
)

var (
	// ErrBankNotFound is returned when a bank cannot be found.
	ErrBankNotFound = fmt.Errorf("%w: bank not found", domain.ErrNotFound)

	// ErrNameRequired is returned when a bank is created without a name.
	ErrNameRequired = fmt.Errorf("%w: bank name is required", domain.ErrValidation)
)

// Bank routes transfers and keeps a running count of the ones that completed.
type Bank struct {
	ID            uuid.UUID
	Name          string
	TransferCount int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// New returns a bank with a zero transfer count.
func New(name string) (*Bank, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	now := time.Now().UTC()
	return &Bank{Name: name, CreatedAt: now, UpdatedAt: now}, nil
}

// RecordTransfer counts one completed transfer.
func (b *Bank) RecordTransfer() {
	b.TransferCount++
}

// Clone returns an independent copy of the bank.
func (b *Bank) Clone() *Bank {
	c := *b
	return &c
}

// NotFoundError reports a missing bank by id.
type NotFoundError struct {
	ID uuid.UUID
}

// NewNotFoundError returns a *NotFoundError for id.
func NewNotFoundError(id uuid.UUID) error {
	return &NotFoundError{ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("bank %s not found", e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrBankNotFound
}

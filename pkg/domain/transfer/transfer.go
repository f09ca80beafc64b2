// Package transfer describes a request to move money between two accounts
// through a bank.
package transfer

import (
	"fmt"

	"github.com/amirasaad/bankcore/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrAmountMustBePositive is returned when a transfer amount is zero or negative.
	ErrAmountMustBePositive = fmt.Errorf("%w: transfer amount must be positive", domain.ErrValidation)

	// ErrSameAccount is returned when origin and destination are the same account.
	ErrSameAccount = fmt.Errorf("%w: cannot transfer to same account", domain.ErrValidation)

	// ErrMissingID is returned when any of the three ids is unset.
	ErrMissingID = fmt.Errorf("%w: origin, destination and bank ids are required", domain.ErrValidation)
)

// Request is a transient transfer instruction; it is never persisted.
type Request struct {
	OriginAccountID      uuid.UUID
	DestinationAccountID uuid.UUID
	BankID               uuid.UUID
	Amount               decimal.Decimal
}

// Validate rejects requests that could never succeed, before any store is touched.
func (r Request) Validate() error {
	if r.OriginAccountID == uuid.Nil || r.DestinationAccountID == uuid.Nil || r.BankID == uuid.Nil {
		return ErrMissingID
	}
	if !r.Amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	if r.OriginAccountID == r.DestinationAccountID {
		return ErrSameAccount
	}
	return nil
}

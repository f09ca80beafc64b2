package bank

import (
	"time"

	"github.com/amirasaad/bankcore/pkg/domain/bank"
)

// CreateBankRequest represents the request body for registering a bank.
type CreateBankRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// BankDTO is the API representation of a bank.
type BankDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TransferCount int64     `json:"transfer_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// TransferCountDTO is the response body of the transfers endpoint.
type TransferCountDTO struct {
	BankID        string `json:"bank_id"`
	TransferCount int64  `json:"transfer_count"`
}

func ToBankDTO(b *bank.Bank) *BankDTO {
	if b == nil {
		return nil
	}
	return &BankDTO{
		ID:            b.ID.String(),
		Name:          b.Name,
		TransferCount: b.TransferCount,
		CreatedAt:     b.CreatedAt,
	}
}

package account

import (
	"time"

	"github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest represents the request body for opening an account.
// InitialBalance accepts a JSON number or a decimal string.
type CreateAccountRequest struct {
	OwnerName      string          `json:"owner_name" validate:"required,max=255"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// TransferRequest represents the request body for moving money between
// two accounts through a bank.
type TransferRequest struct {
	BankID               string          `json:"bank_id" validate:"required,uuid"`
	OriginAccountID      string          `json:"origin_account_id" validate:"required,uuid"`
	DestinationAccountID string          `json:"destination_account_id" validate:"required,uuid"`
	Amount               decimal.Decimal `json:"amount"`
}

// AccountDTO is the API representation of an account.
type AccountDTO struct {
	ID        string    `json:"id"`
	OwnerName string    `json:"owner_name"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BalanceDTO is the response body of the balance endpoint.
type BalanceDTO struct {
	AccountID string `json:"account_id"`
	Balance   string `json:"balance"`
}

// TransferResponse echoes an accepted transfer.
type TransferResponse struct {
	Date        time.Time       `json:"date"`
	Status      string          `json:"status"`
	Message     string          `json:"message"`
	Transaction TransferRequest `json:"transaction"`
}

// ToAccountDTO maps a domain account to its API representation.
func ToAccountDTO(a *account.Account) *AccountDTO {
	if a == nil {
		return nil
	}
	return &AccountDTO{
		ID:        a.ID.String(),
		OwnerName: a.OwnerName,
		Balance:   a.Balance.String(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toAccountDTOs(accounts []*account.Account) []*AccountDTO {
	out := make([]*AccountDTO, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, ToAccountDTO(a))
	}
	return out
}

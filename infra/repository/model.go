package repository

import (
	"time"

	"github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/amirasaad/bankcore/pkg/domain/bank"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents an account record in the database.
type Account struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerName string          `gorm:"size:255;not null;index"`
	Balance   decimal.Decimal `gorm:"type:numeric;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

// Bank represents a bank record in the database.
type Bank struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"size:255;not null"`
	TransferCount int64     `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for the Bank model.
func (Bank) TableName() string {
	return "banks"
}

func accountFromDomain(a *account.Account) Account {
	return Account{
		ID:        a.ID,
		OwnerName: a.OwnerName,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (m *Account) toDomain() *account.Account {
	return &account.Account{
		ID:        m.ID,
		OwnerName: m.OwnerName,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func bankFromDomain(b *bank.Bank) Bank {
	return Bank{
		ID:            b.ID,
		Name:          b.Name,
		TransferCount: b.TransferCount,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (m *Bank) toDomain() *bank.Bank {
	return &bank.Bank{
		ID:            m.ID,
		Name:          m.Name,
		TransferCount: m.TransferCount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

package transfer_test

import (
	"testing"

	"github.com/amirasaad/bankcore/pkg/domain"
	"github.com/amirasaad/bankcore/pkg/domain/transfer"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	origin, destination, bankID := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name    string
		req     transfer.Request
		wantErr error
	}{
		{
			name: "valid",
			req:  transfer.Request{OriginAccountID: origin, DestinationAccountID: destination, BankID: bankID, Amount: decimal.NewFromInt(100)},
		},
		{
			name:    "zero amount",
			req:     transfer.Request{OriginAccountID: origin, DestinationAccountID: destination, BankID: bankID, Amount: decimal.Zero},
			wantErr: transfer.ErrAmountMustBePositive,
		},
		{
			name:    "negative amount",
			req:     transfer.Request{OriginAccountID: origin, DestinationAccountID: destination, BankID: bankID, Amount: decimal.NewFromInt(-1)},
			wantErr: transfer.ErrAmountMustBePositive,
		},
		{
			name:    "same account",
			req:     transfer.Request{OriginAccountID: origin, DestinationAccountID: origin, BankID: bankID, Amount: decimal.NewFromInt(1)},
			wantErr: transfer.ErrSameAccount,
		},
		{
			name:    "missing bank",
			req:     transfer.Request{OriginAccountID: origin, DestinationAccountID: destination, Amount: decimal.NewFromInt(1)},
			wantErr: transfer.ErrMissingID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

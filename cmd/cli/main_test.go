package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/bankcore/infra/memory"
	"github.com/amirasaad/bankcore/internal/fixtures/seed"
	"github.com/amirasaad/bankcore/pkg/app"
	"github.com/amirasaad/bankcore/pkg/config"
	"github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededApp(t *testing.T) (*app.App, *seed.Data) {
	t.Helper()
	color.NoColor = true
	ctx := context.Background()
	uow := memory.NewUoW(memory.NewStore())
	data, err := seed.Load("")
	require.NoError(t, err)
	accounts, _ := uow.AccountRepository()
	banks, _ := uow.BankRepository()
	for _, a := range data.Accounts {
		require.NoError(t, accounts.Create(ctx, a.Clone()))
	}
	for _, b := range data.Banks {
		require.NoError(t, banks.Create(ctx, b.Clone()))
	}
	deps := &app.Deps{Uow: uow, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	return app.New(deps, &config.App{Env: "test"}), data
}

func TestRun_ListAndBanks(t *testing.T) {
	a, _ := newSeededApp(t)
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), a, []string{"list"}, &out))
	assert.Contains(t, out.String(), "Andrés")
	assert.Contains(t, out.String(), "2000")

	out.Reset()
	require.NoError(t, run(context.Background(), a, []string{"banks"}, &out))
	assert.Contains(t, out.String(), "BANCO FINANCIERO")
}

func TestRun_TransferAndBalance(t *testing.T) {
	a, data := newSeededApp(t)
	ctx := context.Background()
	var out bytes.Buffer
	origin, destination := data.Accounts[0].ID.String(), data.Accounts[1].ID.String()

	err := run(ctx, a, []string{"transfer", data.Banks[0].ID.String(), origin, destination, "100"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Transferred 100")

	out.Reset()
	require.NoError(t, run(ctx, a, []string{"balance", origin}, &out))
	assert.Contains(t, out.String(), "balance: 900")

	err = run(ctx, a, []string{"transfer", data.Banks[0].ID.String(), origin, destination, "5000"}, &out)
	assert.ErrorIs(t, err, account.ErrInsufficientFunds)
}

func TestRun_Errors(t *testing.T) {
	a, _ := newSeededApp(t)
	ctx := context.Background()
	tests := []struct {
		name    string
		args    []string
		usage   bool
		message string
	}{
		{"unknown command", []string{"deposit"}, true, "unknown command"},
		{"balance without id", []string{"balance"}, true, "balance <account_id>"},
		{"balance bad id", []string{"balance", "nope"}, false, "invalid account id"},
		{"transfer too few args", []string{"transfer", "a"}, true, "transfer <bank_id>"},
		{"transfer bad amount", []string{"transfer",
			"6f1e2d3c-4b5a-4978-8a6b-1c2d3e4f5a01",
			"0b7c4a3e-1f5d-4c2a-9e8b-5a1d2c3e4f01",
			"0b7c4a3e-1f5d-4c2a-9e8b-5a1d2c3e4f02", "ten"}, false, "invalid amount"},
		{"transfer bad origin", []string{"transfer",
			"6f1e2d3c-4b5a-4978-8a6b-1c2d3e4f5a01", "x",
			"0b7c4a3e-1f5d-4c2a-9e8b-5a1d2c3e4f02", "1"}, false, "invalid origin id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(ctx, a, tt.args, io.Discard)
			require.Error(t, err)
			assert.Equal(t, tt.usage, errorsIsUsage(err))
			assert.ErrorContains(t, err, tt.message)
		})
	}
}

func errorsIsUsage(err error) bool {
	return errors.Is(err, errUsage)
}

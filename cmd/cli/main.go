package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amirasaad/bankcore/infra/initializer"
	"github.com/amirasaad/bankcore/pkg/app"
	"github.com/amirasaad/bankcore/pkg/config"
	"github.com/amirasaad/bankcore/pkg/domain/transfer"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  list                                      list accounts
  banks                                     list banks and their transfer counts
  balance  <account_id>                     show an account balance
  transfer <bank_id> <from> <to> <amount>   move money between two accounts`

var errUsage = errors.New("invalid usage")

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed, color.Bold)
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return
	}
	cfg, err := config.Load(".env")
	if err != nil {
		errorColor.Println("Failed to load configuration:", err)
		os.Exit(1)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		errorColor.Println("Failed to initialize dependencies:", err)
		os.Exit(1)
	}
	if err = run(context.Background(), app.New(deps, cfg), os.Args[1:], os.Stdout); err != nil {
		errorColor.Println(err)
		if errors.Is(err, errUsage) {
			fmt.Println(usage)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	switch args[0] {
	case "list":
		accounts, err := a.AccountService.ListAccounts(ctx)
		if err != nil {
			return err
		}
		headerColor.Fprintf(out, "%-36s  %-20s  %s\n", "ID", "OWNER", "BALANCE")
		for _, acc := range accounts {
			fmt.Fprintf(out, "%-36s  %-20s  %s\n", acc.ID, acc.OwnerName, acc.Balance)
		}
	case "banks":
		banks, err := a.BankService.ListBanks(ctx)
		if err != nil {
			return err
		}
		headerColor.Fprintf(out, "%-36s  %-20s  %s\n", "ID", "NAME", "TRANSFERS")
		for _, b := range banks {
			fmt.Fprintf(out, "%-36s  %-20s  %d\n", b.ID, b.Name, b.TransferCount)
		}
	case "balance":
		if len(args) < 2 {
			return fmt.Errorf("%w: balance <account_id>", errUsage)
		}
		id, err := uuid.Parse(args[1])
		if err != nil {
			return fmt.Errorf("invalid account id: %w", err)
		}
		balance, err := a.TransferService.BalanceOf(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Account %s balance: %s\n", id, balance)
	case "transfer":
		if len(args) < 5 {
			return fmt.Errorf("%w: transfer <bank_id> <from> <to> <amount>", errUsage)
		}
		req, err := parseTransfer(args[1:5])
		if err != nil {
			return err
		}
		if err = a.TransferService.Transfer(ctx, req); err != nil {
			return err
		}
		successColor.Fprintf(out, "Transferred %s from %s to %s\n",
			req.Amount, req.OriginAccountID, req.DestinationAccountID)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	return nil
}

func parseTransfer(args []string) (transfer.Request, error) {
	var ids [3]uuid.UUID
	for i, name := range []string{"bank", "origin", "destination"} {
		id, err := uuid.Parse(args[i])
		if err != nil {
			return transfer.Request{}, fmt.Errorf("invalid %s id: %w", name, err)
		}
		ids[i] = id
	}
	amount, err := decimal.NewFromString(args[3])
	if err != nil {
		return transfer.Request{}, fmt.Errorf("invalid amount: %w", err)
	}
	return transfer.Request{
		BankID:               ids[0],
		OriginAccountID:      ids[1],
		DestinationAccountID: ids[2],
		Amount:               amount,
	}, nil
}

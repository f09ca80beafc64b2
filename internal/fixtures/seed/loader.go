// Package seed holds the demo accounts and bank loaded into an empty store.
package seed

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/amirasaad/bankcore/pkg/domain/bank"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:embed seed.csv
var seedCSV string

const columns = 4

// Data is the parsed content of a seed file.
type Data struct {
	Accounts []*account.Account
	Banks    []*bank.Bank
}

// Load reads seed rows from path, or from the embedded seed.csv when path
// is empty.
func Load(path string) (*Data, error) {
	var r io.Reader

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		r = f
	} else {
		r = strings.NewReader(seedCSV)
	}

	return parse(r)
}

func parse(r io.Reader) (*Data, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}

	data := &Data{}
	for i, rec := range records {
		if i == 0 {
			if len(rec) < columns {
				return nil, fmt.Errorf(
					"invalid CSV format: expected at least %d columns, got %d",
					columns,
					len(rec),
				)
			}
			continue // header
		}
		if len(rec) < columns {
			continue
		}

		id, err := uuid.Parse(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid id: %w", i+1, err)
		}
		name := strings.TrimSpace(rec[2])

		switch strings.ToLower(strings.TrimSpace(rec[0])) {
		case "account":
			balance, err := decimal.NewFromString(strings.TrimSpace(rec[3]))
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid balance: %w", i+1, err)
			}
			a, err := account.New(name, balance)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			a.ID = id
			data.Accounts = append(data.Accounts, a)
		case "bank":
			b, err := bank.New(name)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			b.ID = id
			data.Banks = append(data.Banks, b)
		default:
			return nil, fmt.Errorf("row %d: unknown kind %q", i+1, rec[0])
		}
	}
	return data, nil
}

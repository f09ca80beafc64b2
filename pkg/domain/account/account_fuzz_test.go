package account_test

import (
	"testing"

	domainaccount "github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/shopspring/decimal"
)

// FuzzAccountDebit checks that a debit either succeeds exactly or leaves the balance untouched.
func FuzzAccountDebit(f *testing.F) {
	f.Add(int64(1000), int64(100))
	f.Add(int64(1000), int64(1000))
	f.Add(int64(1000), int64(1200))
	f.Add(int64(0), int64(-5))
	f.Fuzz(func(t *testing.T, balance, amount int64) {
		if balance < 0 {
			t.Skip()
		}
		acc, err := domainaccount.New("fuzz", decimal.NewFromInt(balance).Shift(-2))
		if err != nil {
			t.Skip()
		}
		before := acc.Balance
		amt := decimal.NewFromInt(amount).Shift(-2)

		err = acc.Debit(amt)
		if err != nil {
			if !acc.Balance.Equal(before) {
				t.Errorf("balance changed on failed debit: before=%s after=%s", before, acc.Balance)
			}
			return
		}
		if !acc.Balance.Equal(before.Sub(amt)) {
			t.Errorf("debit not exact: %s - %s != %s", before, amt, acc.Balance)
		}
		if acc.Balance.IsNegative() {
			t.Errorf("balance went negative: %s", acc.Balance)
		}
	})
}

package bank

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCheckLimits(t *testing.T) {
	perTx := decimal.RequireFromString("5000")
	daily := decimal.RequireFromString("10000")

	cases := []struct {
		name        string
		amount      string
		alreadySent string
		want        error
	}{
		{"zero amount", "0", "0", ErrInvalidAmount},
		{"negative amount", "-1", "0", ErrInvalidAmount},
		{"within both limits", "5000", "0", nil},
		{"one cent over per-transaction", "5000.01", "0", ErrPerTransactionLimit},
		{"exactly reaches daily", "2000", "8000", nil},
		{"one cent over daily", "2000.01", "8000", ErrDailyLimit},
		{"daily already exhausted", "0.01", "10000", ErrDailyLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckLimits(
				decimal.RequireFromString(tc.amount),
				perTx, daily,
				decimal.RequireFromString(tc.alreadySent),
			)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

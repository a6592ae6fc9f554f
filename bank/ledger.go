package bank

import "github.com/shopspring/decimal"

// Ledger is the session's money state: the two deposit balances, the
// rolling daily-sent accumulator, and the transfer limits. It is mutated
// only by the engine, always under the session lock.
type Ledger struct {
	Checking            decimal.Decimal
	Savings             decimal.Decimal
	DailySent           decimal.Decimal
	PerTransactionLimit decimal.Decimal
	DailyLimit          decimal.Decimal
}

// Seed values for a fresh session.
var (
	seedChecking   = decimal.RequireFromString("2345890.50")
	seedSavings    = decimal.RequireFromString("124500.00")
	seedPerTxLimit = decimal.RequireFromString("5000")
	seedDailyLimit = decimal.RequireFromString("10000")
)

// NewLedger returns the seed ledger every session starts from.
func NewLedger() Ledger {
	return Ledger{
		Checking:            seedChecking,
		Savings:             seedSavings,
		DailySent:           decimal.Zero,
		PerTransactionLimit: seedPerTxLimit,
		DailyLimit:          seedDailyLimit,
	}
}

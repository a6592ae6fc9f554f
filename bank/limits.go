package bank

import "github.com/shopspring/decimal"

// CheckLimits validates a proposed amount against the per-transaction cap
// and the rolling daily cap. Pure predicate: it never mutates anything; on
// acceptance the committing caller is responsible for advancing the
// daily-sent accumulator (and only for non-internal movements).
func CheckLimits(amount, perTx, daily, alreadySent decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(perTx) {
		return ErrPerTransactionLimit
	}
	if amount.Add(alreadySent).GreaterThan(daily) {
		return ErrDailyLimit
	}
	return nil
}

package models

import "github.com/shopspring/decimal"

// Product is an account product the customer can apply for.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	APY         string          `json:"apy,omitempty"`
	MinDeposit  decimal.Decimal `json:"min_deposit"`
}

// Limits is the current transfer-limit configuration plus the rolling
// daily-sent accumulator.
type Limits struct {
	PerTransaction decimal.Decimal `json:"per_transaction"`
	Daily          decimal.Decimal `json:"daily"`
	DailySent      decimal.Decimal `json:"daily_sent"`
}

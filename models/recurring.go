package models

import "github.com/shopspring/decimal"

// RecurringPayment is a stored intent to repeat a payment. It is a schedule
// of record only: nothing in this system executes it when NextDate arrives.
// It exists from the moment a recurring transfer is confirmed until the
// customer cancels it.
type RecurringPayment struct {
	ID            string          `json:"id"`
	Recipient     string          `json:"recipient"`
	Amount        decimal.Decimal `json:"amount"`
	Frequency     Frequency       `json:"frequency"`
	NextDate      string          `json:"next_date"`
	Category      string          `json:"category"`
	RecipientBank string          `json:"recipient_bank"`
}

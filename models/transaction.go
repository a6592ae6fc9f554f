package models

import "github.com/shopspring/decimal"

// TransactionType marks which side of the ledger a transaction lands on.
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// Transaction is a single immutable entry in the session's transaction log.
// Dates are YYYY-MM-DD strings, matching the statement granularity of the UI.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	AccountID   string          `json:"account_id"`
}

// TransactionFilter narrows a transaction listing. Zero values mean "no
// filter"; Limit <= 0 means unlimited.
type TransactionFilter struct {
	Type      string
	Category  string
	AccountID string
	From      string
	To        string
	Search    string
	Limit     int
}

package store

import (
	"time"

	"github.com/shopspring/decimal"

	"demobank/models"
)

// Seed account IDs shared with the engine's derived accounts.
const (
	CheckingAccountID = "acct-checking"
	SavingsAccountID  = "acct-savings"
)

func daysAgo(days int) string {
	return time.Now().AddDate(0, 0, -days).Format("2006-01-02")
}

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// seedTransactions returns the fixed demo statement, newest first. The
// recent entries float relative to today so the dashboard always looks
// current; the older ones are fixed history.
func seedTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: "tx-001", Date: daysAgo(0), Description: "Vroon Offshore Company Limited", Amount: amt("2300000.00"), Type: models.TransactionCredit, Category: "Wire Transfer", AccountID: CheckingAccountID},
		{ID: "tx-002", Date: daysAgo(2), Description: "Whole Foods Market", Amount: amt("245.89"), Type: models.TransactionDebit, Category: "Groceries", AccountID: CheckingAccountID},
		{ID: "tx-003", Date: daysAgo(5), Description: "Netflix Subscription", Amount: amt("19.99"), Type: models.TransactionDebit, Category: "Entertainment", AccountID: "card-2"},
		{ID: "tx-004", Date: daysAgo(12), Description: "Shell Gas Station", Amount: amt("54.20"), Type: models.TransactionDebit, Category: "Transport", AccountID: "card-3"},
		{ID: "tx-005", Date: daysAgo(15), Description: "Monthly Dividend Payout", Amount: amt("4500.00"), Type: models.TransactionCredit, Category: "Investment", AccountID: SavingsAccountID},
		{ID: "tx-006", Date: "2023-12-20", Description: "Apple Store 5th Ave", Amount: amt("1299.00"), Type: models.TransactionDebit, Category: "Electronics", AccountID: "card-2"},
		{ID: "tx-007", Date: "2023-11-15", Description: "Delta Airlines", Amount: amt("850.00"), Type: models.TransactionDebit, Category: "Travel", AccountID: "card-2"},
		{ID: "tx-008", Date: "2023-10-01", Description: "Consulting Fee - Q3", Amount: amt("15000.00"), Type: models.TransactionCredit, Category: "Business", AccountID: CheckingAccountID},
		{ID: "tx-009", Date: "2023-08-14", Description: "Ritz Carlton Hotel", Amount: amt("2400.00"), Type: models.TransactionDebit, Category: "Travel", AccountID: "card-2"},
		{ID: "tx-010", Date: "2023-05-22", Description: "Vanguard Fund Transfer", Amount: amt("50000.00"), Type: models.TransactionDebit, Category: "Investment", AccountID: CheckingAccountID},
	}
}

func seedRecurring() []models.RecurringPayment {
	return []models.RecurringPayment{
		{ID: "rp-1", Recipient: "Netflix Subscription", Amount: amt("19.99"), Frequency: models.Monthly, NextDate: "2024-06-15", Category: "Entertainment", RecipientBank: "Citibank NA"},
		{ID: "rp-2", Recipient: "Luxury Apartments LLC", Amount: amt("4200.00"), Frequency: models.Monthly, NextDate: "2024-06-01", Category: "Rent", RecipientBank: "Wells Fargo"},
	}
}

// Seed loads the fixed demo records. Transactions are inserted oldest first
// so insertion order matches recency and newly written records always sort
// on top.
func (s *Store) Seed() error {
	txns := seedTransactions()
	for i := len(txns) - 1; i >= 0; i-- {
		if err := s.InsertTransaction(txns[i]); err != nil {
			return err
		}
	}
	for _, p := range seedRecurring() {
		if err := s.InsertRecurring(p); err != nil {
			return err
		}
	}
	return nil
}

package store

import "fmt"

// Migrate runs all table creation statements. Safe to call multiple times
// due to IF NOT EXISTS clauses. Amounts are stored as exact decimal strings;
// all arithmetic happens in the engine, never in SQL.
func (s *Store) Migrate() error {
	for _, stmt := range migrations {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w\nstatement: %s", err, stmt)
		}
	}
	return nil
}

var migrations = []string{
	// Transaction log, newest first by (date, insertion order)
	`CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		description TEXT NOT NULL,
		amount TEXT NOT NULL,
		type TEXT NOT NULL CHECK(type IN ('credit', 'debit')),
		category TEXT NOT NULL,
		account_id TEXT NOT NULL DEFAULT ''
	)`,

	// Recurring payments: schedule of record, never self-executing
	`CREATE TABLE IF NOT EXISTS recurring_payments (
		id TEXT PRIMARY KEY,
		recipient TEXT NOT NULL,
		amount TEXT NOT NULL,
		frequency TEXT NOT NULL CHECK(frequency IN ('Weekly', 'Monthly', 'Yearly')),
		next_date TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		recipient_bank TEXT NOT NULL DEFAULT ''
	)`,

	// Indexes for common filters
	`CREATE INDEX IF NOT EXISTS idx_transactions_account ON transactions(account_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_type ON transactions(type)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category)`,
}

package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"demobank/models"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

const txnSelectQuery = `SELECT id, date, description, amount, type, category, account_id
	FROM transactions`

func scanTransaction(scanner interface{ Scan(...any) error }) (models.Transaction, error) {
	var t models.Transaction
	var amount string
	if err := scanner.Scan(&t.ID, &t.Date, &t.Description, &amount, &t.Type, &t.Category, &t.AccountID); err != nil {
		return t, err
	}
	var err error
	t.Amount, err = decimal.NewFromString(amount)
	return t, err
}

// InsertTransaction appends one record to the log. Records are immutable
// once written; there is no update path.
func (s *Store) InsertTransaction(t models.Transaction) error {
	_, err := s.db.Exec(`INSERT INTO transactions (id, date, description, amount, type, category, account_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Date, t.Description, t.Amount.String(), t.Type, t.Category, t.AccountID)
	return err
}

// ListTransactions returns matching records newest first: date descending,
// insertion order descending within a date.
func (s *Store) ListTransactions(f models.TransactionFilter) ([]models.Transaction, error) {
	query := txnSelectQuery
	var conditions []string
	var args []any

	if f.Type != "" {
		conditions = append(conditions, "type = ?")
		args = append(args, f.Type)
	}
	if f.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, f.Category)
	}
	if f.AccountID != "" {
		conditions = append(conditions, "account_id = ?")
		args = append(args, f.AccountID)
	}
	if f.From != "" {
		conditions = append(conditions, "date >= ?")
		args = append(args, f.From)
	}
	if f.To != "" {
		conditions = append(conditions, "date <= ?")
		args = append(args, f.To)
	}
	if f.Search != "" {
		conditions = append(conditions, "description LIKE ?")
		args = append(args, "%"+f.Search+"%")
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date DESC, rowid DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	if txns == nil {
		txns = []models.Transaction{}
	}
	return txns, rows.Err()
}

// GetTransaction retrieves one record by ID.
func (s *Store) GetTransaction(id string) (models.Transaction, error) {
	t, err := scanTransaction(s.db.QueryRow(txnSelectQuery+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return t, ErrNotFound
	}
	return t, err
}

// CountTransactions returns the size of the log.
func (s *Store) CountTransactions() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&n)
	return n, err
}

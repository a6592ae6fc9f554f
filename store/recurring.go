package store

import (
	"github.com/shopspring/decimal"

	"demobank/models"
)

// InsertRecurring stores a schedule entry.
func (s *Store) InsertRecurring(p models.RecurringPayment) error {
	_, err := s.db.Exec(`INSERT INTO recurring_payments (id, recipient, amount, frequency, next_date, category, recipient_bank)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Recipient, p.Amount.String(), p.Frequency, p.NextDate, p.Category, p.RecipientBank)
	return err
}

// ListRecurring returns all schedule entries in insertion order.
func (s *Store) ListRecurring() ([]models.RecurringPayment, error) {
	rows, err := s.db.Query(`SELECT id, recipient, amount, frequency, next_date, category, recipient_bank
		FROM recurring_payments ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.RecurringPayment
	for rows.Next() {
		var p models.RecurringPayment
		var amount string
		if err := rows.Scan(&p.ID, &p.Recipient, &amount, &p.Frequency, &p.NextDate, &p.Category, &p.RecipientBank); err != nil {
			return nil, err
		}
		if p.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	if payments == nil {
		payments = []models.RecurringPayment{}
	}
	return payments, rows.Err()
}

// DeleteRecurring removes exactly one schedule entry. Returns ErrNotFound
// if no entry has that ID.
func (s *Store) DeleteRecurring(id string) error {
	res, err := s.db.Exec("DELETE FROM recurring_payments WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

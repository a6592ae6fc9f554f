package store

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"demobank/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := s.Seed(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s
}

func TestListTransactionsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	txns, err := s.ListTransactions(models.TransactionFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(txns) != 10 {
		t.Fatalf("len = %d, want 10", len(txns))
	}
	if txns[0].ID != "tx-001" {
		t.Fatalf("first = %s, want tx-001", txns[0].ID)
	}
	for i := 1; i < len(txns); i++ {
		if txns[i].Date > txns[i-1].Date {
			t.Fatalf("out of order at %d: %s after %s", i, txns[i].Date, txns[i-1].Date)
		}
	}

	// A record written today sorts above every seed entry.
	fresh := models.Transaction{
		ID: "tx-new", Date: time.Now().Format("2006-01-02"),
		Description: "Transfer to Jane Doe", Amount: decimal.RequireFromString("100"),
		Type: models.TransactionDebit, Category: "Wire Transfer", AccountID: CheckingAccountID,
	}
	if err := s.InsertTransaction(fresh); err != nil {
		t.Fatal(err)
	}
	txns, err = s.ListTransactions(models.TransactionFilter{Limit: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(txns) != 1 || txns[0].ID != "tx-new" {
		t.Fatalf("top of log = %+v, want tx-new", txns)
	}
}

func TestListTransactionsFilters(t *testing.T) {
	s := newTestStore(t)

	cases := []struct {
		name   string
		filter models.TransactionFilter
		want   int
	}{
		{"by type", models.TransactionFilter{Type: "credit"}, 3},
		{"by category", models.TransactionFilter{Category: "Travel"}, 2},
		{"by account", models.TransactionFilter{AccountID: "card-2"}, 4},
		{"by search", models.TransactionFilter{Search: "Vroon"}, 1},
		{"by date range", models.TransactionFilter{From: "2023-10-01", To: "2023-12-31"}, 3},
		{"combined", models.TransactionFilter{Type: "debit", AccountID: "card-2"}, 4},
		{"no match", models.TransactionFilter{Category: "Nonexistent"}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			txns, err := s.ListTransactions(tc.filter)
			if err != nil {
				t.Fatal(err)
			}
			if len(txns) != tc.want {
				t.Fatalf("len = %d, want %d", len(txns), tc.want)
			}
		})
	}
}

func TestGetTransaction(t *testing.T) {
	s := newTestStore(t)

	txn, err := s.GetTransaction("tx-003")
	if err != nil {
		t.Fatal(err)
	}
	if txn.Description != "Netflix Subscription" {
		t.Fatalf("description = %q", txn.Description)
	}
	if !txn.Amount.Equal(decimal.RequireFromString("19.99")) {
		t.Fatalf("amount = %s", txn.Amount)
	}

	if _, err := s.GetTransaction("tx-999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCountTransactions(t *testing.T) {
	s := newTestStore(t)
	n, err := s.CountTransactions()
	if err != nil {
		t.Fatal(err)
	}
	if n != 10 {
		t.Fatalf("count = %d, want 10", n)
	}
}

func TestRecurringLifecycle(t *testing.T) {
	s := newTestStore(t)

	payments, err := s.ListRecurring()
	if err != nil {
		t.Fatal(err)
	}
	if len(payments) != 2 {
		t.Fatalf("len = %d, want 2", len(payments))
	}
	// Insertion order is preserved.
	if payments[0].ID != "rp-1" || payments[1].ID != "rp-2" {
		t.Fatalf("order = %s, %s", payments[0].ID, payments[1].ID)
	}

	entry := models.RecurringPayment{
		ID: "rp-3", Recipient: "City Utilities",
		Amount: decimal.RequireFromString("85.00"), Frequency: models.Monthly,
		NextDate: "2026-09-15", Category: "Bill Payment", RecipientBank: "Meridian Bank",
	}
	if err := s.InsertRecurring(entry); err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteRecurring("rp-1"); err != nil {
		t.Fatal(err)
	}
	payments, err = s.ListRecurring()
	if err != nil {
		t.Fatal(err)
	}
	if len(payments) != 2 {
		t.Fatalf("len after delete = %d, want 2", len(payments))
	}
	for _, p := range payments {
		if p.ID == "rp-1" {
			t.Fatal("rp-1 should be gone")
		}
	}

	if err := s.DeleteRecurring("rp-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

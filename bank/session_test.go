package bank

import (
	"errors"
	"testing"

	"demobank/models"
)

func TestUpdateLimits(t *testing.T) {
	s := newTestSession(t)

	limits, err := s.UpdateLimits(d(t, "2000"), d(t, "6000"))
	if err != nil {
		t.Fatal(err)
	}
	wantBalance(t, "per-transaction", limits.PerTransaction, d(t, "2000"))
	wantBalance(t, "daily", limits.Daily, d(t, "6000"))

	// Per-transaction above daily is rejected and neither value changes.
	if _, err := s.UpdateLimits(d(t, "7000"), d(t, "6000")); !errors.Is(err, ErrLimitConfig) {
		t.Fatalf("err = %v, want ErrLimitConfig", err)
	}
	limits = s.Limits()
	wantBalance(t, "per-transaction", limits.PerTransaction, d(t, "2000"))
	wantBalance(t, "daily", limits.Daily, d(t, "6000"))

	if _, err := s.UpdateLimits(d(t, "0"), d(t, "6000")); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("err = %v, want ErrInvalidAmount", err)
	}
}

func TestAccountsUnion(t *testing.T) {
	s := newTestSession(t)

	accounts := s.Accounts()
	// 2 deposit accounts + 3 cards + 2 loans.
	if len(accounts) != 7 {
		t.Fatalf("len = %d, want 7", len(accounts))
	}
	if accounts[0].Kind != models.KindChecking || accounts[1].Kind != models.KindSavings {
		t.Fatalf("deposit accounts must come first, got %s %s", accounts[0].Kind, accounts[1].Kind)
	}
	wantBalance(t, "checking view", accounts[0].Balance(), d(t, "2345890.50"))

	a, err := s.Account("card-2")
	if err != nil {
		t.Fatal(err)
	}
	if a.Kind != models.KindCard || a.Label() != "Summit Reserve" {
		t.Fatalf("got %s %q", a.Kind, a.Label())
	}

	if _, err := s.Account("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestToggleCardLock(t *testing.T) {
	s := newTestSession(t)

	card, err := s.ToggleCardLock("card-1")
	if err != nil {
		t.Fatal(err)
	}
	if card.Status != models.CardFrozen {
		t.Fatalf("status = %s, want Frozen", card.Status)
	}
	card, err = s.ToggleCardLock("card-1")
	if err != nil {
		t.Fatal(err)
	}
	if card.Status != models.CardActive {
		t.Fatalf("status = %s, want Active", card.Status)
	}
	if _, err := s.ToggleCardLock("card-99"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDepositRejectsBadAmount(t *testing.T) {
	s := newTestSession(t)
	before := s.Ledger()

	_, err := s.Deposit(models.DepositInput{Amount: d(t, "-10"), FrontCaptured: true, BackCaptured: true})
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("err = %v, want ErrInvalidAmount", err)
	}
	wantBalance(t, "checking", s.Ledger().Checking, before.Checking)
}

func TestDepositIsExemptFromLimits(t *testing.T) {
	s := newTestSession(t)
	before := s.Ledger()

	// Far above both transfer limits; deposits do not consult them.
	txn, err := s.Deposit(models.DepositInput{
		Amount: d(t, "50000"), CheckNumber: "2001",
		FrontCaptured: true, BackCaptured: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if txn.Type != models.TransactionCredit || txn.Category != "Mobile Deposit" {
		t.Fatalf("got %s %q", txn.Type, txn.Category)
	}
	if txn.Description != "Mobile Deposit (Check #2001)" {
		t.Fatalf("description = %q", txn.Description)
	}
	wantBalance(t, "checking", s.Ledger().Checking, before.Checking.Add(d(t, "50000")))
	wantBalance(t, "dailySent", s.Ledger().DailySent, before.DailySent)
}

func TestOpenAccount(t *testing.T) {
	s := newTestSession(t)
	before := s.Ledger()

	// Unknown product.
	if _, err := s.OpenAccount(models.OpenAccountInput{Product: "Crypto Vault", InitialDeposit: d(t, "100")}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	// Below the product minimum.
	_, err := s.OpenAccount(models.OpenAccountInput{Product: "Certificate of Deposit (CD)", InitialDeposit: d(t, "500")})
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("err = %v, want ErrInvalidAmount", err)
	}
	wantBalance(t, "checking", s.Ledger().Checking, before.Checking)

	// Zero deposit records nothing.
	txn, err := s.OpenAccount(models.OpenAccountInput{Product: "Roth IRA"})
	if err != nil {
		t.Fatal(err)
	}
	if txn != nil {
		t.Fatalf("expected no transaction, got %+v", txn)
	}

	// Funded opening debits checking.
	txn, err = s.OpenAccount(models.OpenAccountInput{Product: "Certificate of Deposit (CD)", InitialDeposit: d(t, "1000")})
	if err != nil {
		t.Fatal(err)
	}
	if txn.Description != "Opening Deposit - Certificate of Deposit (CD)" {
		t.Fatalf("description = %q", txn.Description)
	}
	wantBalance(t, "checking", s.Ledger().Checking, before.Checking.Sub(d(t, "1000")))
}

func TestRecordPurchase(t *testing.T) {
	s := newTestSession(t)
	before := s.Ledger()

	// First active card is the debit card: checking pays.
	txn, err := s.RecordPurchase("Starbucks", "Food & Drink", d(t, "12.50"))
	if err != nil {
		t.Fatal(err)
	}
	if txn.AccountID != "card-1" {
		t.Fatalf("account = %q, want card-1", txn.AccountID)
	}
	wantBalance(t, "checking", s.Ledger().Checking, before.Checking.Sub(d(t, "12.50")))

	// Freeze the debit card: the next active card is credit, so its carried
	// balance grows instead.
	if _, err := s.ToggleCardLock("card-1"); err != nil {
		t.Fatal(err)
	}
	checkingBefore := s.Ledger().Checking
	txn, err = s.RecordPurchase("Uber Technologies", "Transport", d(t, "25.00"))
	if err != nil {
		t.Fatal(err)
	}
	if txn.AccountID != "card-2" {
		t.Fatalf("account = %q, want card-2", txn.AccountID)
	}
	wantBalance(t, "checking", s.Ledger().Checking, checkingBefore)
	card, _ := s.Account("card-2")
	wantBalance(t, "card balance", card.Balance(), d(t, "4265.50"))

	// Every card frozen: the purchase is silently skipped.
	for _, id := range []string{"card-2", "card-3"} {
		if _, err := s.ToggleCardLock(id); err != nil {
			t.Fatal(err)
		}
	}
	txn, err = s.RecordPurchase("Amazon Marketplace", "Shopping", d(t, "85.00"))
	if err != nil {
		t.Fatal(err)
	}
	if txn != nil {
		t.Fatalf("expected nil transaction with all cards frozen, got %+v", txn)
	}
}

package bank

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"demobank/models"
	"demobank/store"
)

// Session is one signed-in customer's entire world: ledger, cards, loans,
// and the backing store for the transaction log and schedules. A single
// mutex serializes every mutation, so each operation is atomic and the UI's
// one-logical-operation-at-a-time model holds even over HTTP.
//
// There is no partial teardown: sign-out closes the store and drops the
// session, and the next sign-in builds a fresh one from seed configuration.
type Session struct {
	Token string
	Name  string

	mu     sync.Mutex
	ledger Ledger
	cards  []models.Card
	loans  []models.Loan
	st     *store.Store

	delay time.Duration
	now   func() time.Time
}

// NewSession builds a session from seed configuration on top of an already
// migrated and seeded store. delay is the simulated processing time applied
// between transfer confirmation and commit.
func NewSession(st *store.Store, token, name string, delay time.Duration) *Session {
	return &Session{
		Token:  token,
		Name:   name,
		ledger: NewLedger(),
		cards:  seedCards(),
		loans:  seedLoans(),
		st:     st,
		delay:  delay,
		now:    time.Now,
	}
}

func (s *Session) today() string {
	return s.now().Format("2006-01-02")
}

func newTransactionID() string {
	return "tx-" + uuid.NewString()
}

// Ledger returns a snapshot of the money state.
func (s *Session) Ledger() Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger
}

// Limits returns the current limit configuration and today's sent total.
func (s *Session) Limits() models.Limits {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Limits{
		PerTransaction: s.ledger.PerTransactionLimit,
		Daily:          s.ledger.DailyLimit,
		DailySent:      s.ledger.DailySent,
	}
}

// UpdateLimits replaces both transfer limits. A per-transaction limit above
// the daily limit is rejected and neither value changes. Setting a daily
// limit below what was already sent today is allowed; further transfers
// simply fail the daily check.
func (s *Session) UpdateLimits(perTx, daily decimal.Decimal) (models.Limits, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !perTx.IsPositive() || !daily.IsPositive() {
		return models.Limits{}, ErrInvalidAmount
	}
	if perTx.GreaterThan(daily) {
		return models.Limits{}, ErrLimitConfig
	}
	s.ledger.PerTransactionLimit = perTx
	s.ledger.DailyLimit = daily
	return models.Limits{
		PerTransaction: s.ledger.PerTransactionLimit,
		Daily:          s.ledger.DailyLimit,
		DailySent:      s.ledger.DailySent,
	}, nil
}

// checkingAccount and savingsAccount derive the deposit-account views from
// the ledger. Callers must hold the lock.
func (s *Session) checkingAccount() models.BankAccount {
	return models.BankAccount{
		ID:      store.CheckingAccountID,
		Name:    checkingName,
		Balance: s.ledger.Checking,
		Mask:    checkingMask,
	}
}

func (s *Session) savingsAccount() models.BankAccount {
	return models.BankAccount{
		ID:      store.SavingsAccountID,
		Name:    savingsName,
		Balance: s.ledger.Savings,
		Mask:    savingsMask,
		APY:     savingsAPY,
	}
}

// Accounts returns every account as a tagged union: checking, savings,
// cards, loans. All values are copies.
func (s *Session) Accounts() []models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Account, 0, 2+len(s.cards)+len(s.loans))
	checking := s.checkingAccount()
	savings := s.savingsAccount()
	out = append(out,
		models.Account{Kind: models.KindChecking, Bank: &checking},
		models.Account{Kind: models.KindSavings, Bank: &savings},
	)
	for i := range s.cards {
		card := s.cards[i]
		out = append(out, models.Account{Kind: models.KindCard, Card: &card})
	}
	for i := range s.loans {
		loan := s.loans[i]
		out = append(out, models.Account{Kind: models.KindLoan, Loan: &loan})
	}
	return out
}

// Account returns one account by ID.
func (s *Session) Account(id string) (models.Account, error) {
	for _, a := range s.Accounts() {
		if a.ID() == id {
			return a, nil
		}
	}
	return models.Account{}, ErrNotFound
}

// Cards returns copies of the card list.
func (s *Session) Cards() []models.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// Loans returns copies of the loan list.
func (s *Session) Loans() []models.Loan {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Loan, len(s.loans))
	copy(out, s.loans)
	return out
}

// ToggleCardLock flips a card between Active and Frozen and returns the
// updated card.
func (s *Session) ToggleCardLock(id string) (models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cards {
		if s.cards[i].ID == id {
			if s.cards[i].Status == models.CardActive {
				s.cards[i].Status = models.CardFrozen
			} else {
				s.cards[i].Status = models.CardActive
			}
			return s.cards[i], nil
		}
	}
	return models.Card{}, ErrNotFound
}

// Deposit credits checking and records the credit transaction. Deposits are
// exempt from transfer limits.
func (s *Session) Deposit(in models.DepositInput) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !in.Amount.IsPositive() {
		return models.Transaction{}, ErrInvalidAmount
	}
	txn := models.Transaction{
		ID:          newTransactionID(),
		Date:        s.today(),
		Description: fmt.Sprintf("Mobile Deposit (Check #%s)", in.CheckNumber),
		Amount:      in.Amount,
		Type:        models.TransactionCredit,
		Category:    "Mobile Deposit",
		AccountID:   store.CheckingAccountID,
	}
	if err := s.st.InsertTransaction(txn); err != nil {
		return models.Transaction{}, err
	}
	s.ledger.Checking = s.ledger.Checking.Add(in.Amount)
	return txn, nil
}

// OpenAccount processes a new-account application. A positive initial
// deposit must meet the product minimum and is funded from checking with an
// account-funding transaction; a zero deposit records nothing. The checking
// balance is not floored, matching the permissive source behavior.
func (s *Session) OpenAccount(in models.OpenAccountInput) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := productByName(in.Product)
	if !ok {
		return nil, ErrNotFound
	}
	if in.InitialDeposit.LessThan(product.MinDeposit) {
		return nil, fmt.Errorf("%w: %s requires a minimum deposit of %s",
			ErrInvalidAmount, product.Name, product.MinDeposit.StringFixed(2))
	}
	if !in.InitialDeposit.IsPositive() {
		return nil, nil
	}

	txn := models.Transaction{
		ID:          newTransactionID(),
		Date:        s.today(),
		Description: "Opening Deposit - " + product.Name,
		Amount:      in.InitialDeposit,
		Type:        models.TransactionDebit,
		Category:    "Account Funding",
		AccountID:   store.CheckingAccountID,
	}
	if err := s.st.InsertTransaction(txn); err != nil {
		return nil, err
	}
	s.ledger.Checking = s.ledger.Checking.Sub(in.InitialDeposit)
	return &txn, nil
}

// RecordPurchase applies one simulated card purchase: the first Active card
// pays. A debit card draws down checking; a credit card grows its carried
// balance. Returns nil with no error when every card is frozen. Simulated
// purchases deliberately ignore transfer limits and the balance floor.
func (s *Session) RecordPurchase(description, category string, amount decimal.Decimal) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var card *models.Card
	for i := range s.cards {
		if s.cards[i].Status == models.CardActive {
			card = &s.cards[i]
			break
		}
	}
	if card == nil {
		return nil, nil
	}

	txn := models.Transaction{
		ID:          newTransactionID(),
		Date:        s.today(),
		Description: description,
		Amount:      amount,
		Type:        models.TransactionDebit,
		Category:    category,
		AccountID:   card.ID,
	}
	if err := s.st.InsertTransaction(txn); err != nil {
		return nil, err
	}
	if card.Type == models.CardDebit {
		s.ledger.Checking = s.ledger.Checking.Sub(amount)
	} else {
		card.Balance = card.Balance.Add(amount)
	}
	return &txn, nil
}

// Transactions lists the transaction log, newest first.
func (s *Session) Transactions(f models.TransactionFilter) ([]models.Transaction, error) {
	return s.st.ListTransactions(f)
}

// CountTransactions returns the size of the transaction log.
func (s *Session) CountTransactions() (int, error) {
	return s.st.CountTransactions()
}

// Transaction returns one log entry.
func (s *Session) Transaction(id string) (models.Transaction, error) {
	t, err := s.st.GetTransaction(id)
	if errors.Is(err, store.ErrNotFound) {
		return t, ErrNotFound
	}
	return t, err
}

// RecurringPayments lists the schedule of record in insertion order.
func (s *Session) RecurringPayments() ([]models.RecurringPayment, error) {
	return s.st.ListRecurring()
}

// CancelRecurring removes exactly one schedule entry.
func (s *Session) CancelRecurring(id string) error {
	err := s.st.DeleteRecurring(id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

package models

import "github.com/shopspring/decimal"

// AccountKind discriminates the account union. Every account the customer
// sees is exactly one of these.
type AccountKind string

const (
	KindChecking AccountKind = "checking"
	KindSavings  AccountKind = "savings"
	KindCard     AccountKind = "card"
	KindLoan     AccountKind = "loan"
)

// BankAccount is a deposit account (checking or savings).
type BankAccount struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	Mask    string          `json:"mask"`
	APY     float64         `json:"apy,omitempty"`
}

// CardType distinguishes the debit card from credit cards.
type CardType string

const (
	CardDebit  CardType = "Debit"
	CardCredit CardType = "Credit"
)

// CardStatus is the lock toggle state.
type CardStatus string

const (
	CardActive CardStatus = "Active"
	CardFrozen CardStatus = "Frozen"
)

// Card is a payment card. Balance and Limit are meaningful for credit cards
// only; Balance is the carried (owed) amount.
type Card struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Last4      string          `json:"last4"`
	FullNumber string          `json:"full_number"`
	CVV        string          `json:"cvv"`
	Type       CardType        `json:"type"`
	Balance    decimal.Decimal `json:"balance"`
	Limit      decimal.Decimal `json:"limit"`
	Status     CardStatus      `json:"status"`
	Expiry     string          `json:"expiry"`
	DueDate    string          `json:"due_date,omitempty"`
	MinPayment decimal.Decimal `json:"min_payment"`
}

// LoanType is the loan product family.
type LoanType string

const (
	LoanAuto     LoanType = "Auto"
	LoanMortgage LoanType = "Mortgage"
)

// Loan is an amortizing loan account.
type Loan struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	AccountNumber     string          `json:"account_number"`
	Balance           decimal.Decimal `json:"balance"`
	NextPaymentDate   string          `json:"next_payment_date"`
	NextPaymentAmount decimal.Decimal `json:"next_payment_amount"`
	InterestRate      float64         `json:"interest_rate"`
	Type              LoanType        `json:"type"`
}

// Account is the tagged union over every account kind. Exactly one of the
// three pointers is set, selected by Kind. The UI previously distinguished
// these by probing for field presence; the tag makes dispatch total.
type Account struct {
	Kind AccountKind  `json:"kind"`
	Bank *BankAccount `json:"bank_account,omitempty"`
	Card *Card        `json:"card,omitempty"`
	Loan *Loan        `json:"loan,omitempty"`
}

// ID returns the account's identifier regardless of kind.
func (a Account) ID() string {
	switch a.Kind {
	case KindChecking, KindSavings:
		return a.Bank.ID
	case KindCard:
		return a.Card.ID
	case KindLoan:
		return a.Loan.ID
	}
	return ""
}

// Label returns the display name regardless of kind.
func (a Account) Label() string {
	switch a.Kind {
	case KindChecking, KindSavings:
		return a.Bank.Name
	case KindCard:
		return a.Card.Name
	case KindLoan:
		return a.Loan.Name
	}
	return ""
}

// Mask returns the short identifier shown next to the label.
func (a Account) Mask() string {
	switch a.Kind {
	case KindChecking, KindSavings:
		return a.Bank.Mask
	case KindCard:
		return a.Card.Last4
	case KindLoan:
		return a.Loan.AccountNumber
	}
	return ""
}

// Balance returns the headline figure for the account: available funds for
// deposit accounts, carried balance for cards, outstanding principal for
// loans.
func (a Account) Balance() decimal.Decimal {
	switch a.Kind {
	case KindChecking, KindSavings:
		return a.Bank.Balance
	case KindCard:
		return a.Card.Balance
	case KindLoan:
		return a.Loan.Balance
	}
	return decimal.Zero
}

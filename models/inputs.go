package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LoginInput is the sign-in form. Authentication here is a stage prop:
// any plausible email and an 8+ character password are accepted.
type LoginInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (l *LoginInput) Validate() string {
	if !strings.Contains(l.Email, "@") || !strings.Contains(l.Email, ".") {
		return "please enter a valid email address"
	}
	if len(l.Password) < 8 {
		return "password must be at least 8 characters long"
	}
	return ""
}

// DepositInput is a mobile check deposit. The capture flags travel with the
// request because the image-capture gate belongs to the submitting screen,
// not to the ledger.
type DepositInput struct {
	Amount        decimal.Decimal `json:"amount"`
	CheckNumber   string          `json:"check_number"`
	FrontCaptured bool            `json:"front_captured"`
	BackCaptured  bool            `json:"back_captured"`
}

func (d *DepositInput) Validate() string {
	if !d.Amount.IsPositive() {
		return "please enter a valid deposit amount"
	}
	if !d.FrontCaptured || !d.BackCaptured {
		return "both sides of the check must be captured"
	}
	if strings.TrimSpace(d.CheckNumber) == "" {
		d.CheckNumber = "N/A"
	}
	return ""
}

// LimitsInput updates the transfer limits.
type LimitsInput struct {
	PerTransaction decimal.Decimal `json:"per_transaction"`
	Daily          decimal.Decimal `json:"daily"`
}

func (l *LimitsInput) Validate() string {
	if l.PerTransaction.IsNegative() || l.Daily.IsNegative() {
		return "limits must be positive numbers"
	}
	return ""
}

// OpenAccountInput is a new-account application. A positive initial deposit
// is funded from checking.
type OpenAccountInput struct {
	Product        string          `json:"product"`
	InitialDeposit decimal.Decimal `json:"initial_deposit"`
}

func (o *OpenAccountInput) Validate() string {
	if strings.TrimSpace(o.Product) == "" {
		return "product is required"
	}
	if o.InitialDeposit.IsNegative() {
		return "initial deposit must not be negative"
	}
	return ""
}

// AdviceInput is a free-text question for the financial assistant.
type AdviceInput struct {
	Query string `json:"query"`
}

func (a *AdviceInput) Validate() string {
	if strings.TrimSpace(a.Query) == "" {
		return "query is required"
	}
	return ""
}

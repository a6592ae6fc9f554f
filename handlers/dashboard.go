package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"demobank/models"
)

type dashboardData struct {
	Name string `json:"name"`

	CheckingBalance decimal.Decimal `json:"checking_balance"`
	SavingsBalance  decimal.Decimal `json:"savings_balance"`
	TotalCash       decimal.Decimal `json:"total_cash"`
	CreditCardDebt  decimal.Decimal `json:"credit_card_debt"`
	LoanDebt        decimal.Decimal `json:"loan_debt"`

	Limits models.Limits `json:"limits"`

	TotalTransactions int `json:"total_transactions"`
	RecurringCount    int `json:"recurring_count"`

	RecentTransactions []models.Transaction `json:"recent_transactions"`
}

// GetDashboard retrieves dashboard summary figures
// @Summary      Get dashboard
// @Description  Get headline balances, outstanding debt, transfer limits, and the five most recent transactions.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  Response{data=dashboardData}
// @Router       /dashboard [get]
// @Security     BearerAuth
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	s := session(r)
	var d dashboardData
	d.Name = s.Name

	ledger := s.Ledger()
	d.CheckingBalance = ledger.Checking
	d.SavingsBalance = ledger.Savings
	d.TotalCash = ledger.Checking.Add(ledger.Savings)
	d.Limits = s.Limits()

	for _, c := range s.Cards() {
		if c.Type == models.CardCredit {
			d.CreditCardDebt = d.CreditCardDebt.Add(c.Balance)
		}
	}
	for _, l := range s.Loans() {
		d.LoanDebt = d.LoanDebt.Add(l.Balance)
	}

	if n, err := s.CountTransactions(); err == nil {
		d.TotalTransactions = n
	}
	if payments, err := s.RecurringPayments(); err == nil {
		d.RecurringCount = len(payments)
	}

	recent, err := s.Transactions(models.TransactionFilter{Limit: 5})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	d.RecentTransactions = recent

	writeJSON(w, http.StatusOK, d)
}

package bank

import (
	"github.com/shopspring/decimal"

	"demobank/models"
)

// Display constants for the two deposit accounts. The savings label with
// its mask is also what an internal transfer resolves its recipient to.
const (
	checkingName = "Everyday Checking"
	checkingMask = "8842"
	savingsName  = "Premier Savings"
	savingsMask  = "9921"
	savingsAPY   = 2.45

	// SavingsRecipient is the fixed destination label for internal transfers.
	SavingsRecipient = "Premier Savings (...9921)"
)

func seedCards() []models.Card {
	return []models.Card{
		{
			ID:         "card-1",
			Name:       "Everyday Debit",
			Last4:      "8842",
			FullNumber: "4400 8842 1234 5678",
			CVV:        "123",
			Type:       models.CardDebit,
			Status:     models.CardActive,
			Expiry:     "12/28",
		},
		{
			ID:         "card-2",
			Name:       "Summit Reserve",
			Last4:      "4091",
			FullNumber: "4147 4091 2837 9910",
			CVV:        "884",
			Type:       models.CardCredit,
			Balance:    decimal.RequireFromString("4240.50"),
			Limit:      decimal.RequireFromString("50000"),
			Status:     models.CardActive,
			Expiry:     "09/27",
			DueDate:    "2024-06-25",
			MinPayment: decimal.RequireFromString("125.00"),
		},
		{
			ID:         "card-3",
			Name:       "Horizon Unlimited",
			Last4:      "1123",
			FullNumber: "5521 1123 4455 6677",
			CVV:        "456",
			Type:       models.CardCredit,
			Balance:    decimal.RequireFromString("850.00"),
			Limit:      decimal.RequireFromString("15000"),
			Status:     models.CardActive,
			Expiry:     "05/26",
			DueDate:    "2024-06-20",
			MinPayment: decimal.RequireFromString("35.00"),
		},
	}
}

func seedLoans() []models.Loan {
	return []models.Loan{
		{
			ID:                "loan-1",
			Name:              "Auto Loan",
			AccountNumber:     "3321",
			Balance:           decimal.RequireFromString("15400.00"),
			NextPaymentDate:   "2024-06-28",
			NextPaymentAmount: decimal.RequireFromString("350.00"),
			InterestRate:      4.5,
			Type:              models.LoanAuto,
		},
		{
			ID:                "loan-2",
			Name:              "Home Mortgage",
			AccountNumber:     "0012",
			Balance:           decimal.RequireFromString("320000.00"),
			NextPaymentDate:   "2024-06-01",
			NextPaymentAmount: decimal.RequireFromString("1800.00"),
			InterestRate:      6.2,
			Type:              models.LoanMortgage,
		},
	}
}

// Products is the fixed new-account catalog.
var Products = []models.Product{
	{
		ID:          "cd-1",
		Name:        "Certificate of Deposit (CD)",
		Description: "Fixed rate for a fixed term. Guaranteed returns.",
		APY:         "4.50%",
		MinDeposit:  decimal.RequireFromString("1000"),
	},
	{
		ID:          "ira-1",
		Name:        "Roth IRA",
		Description: "Tax-advantaged savings for your retirement goals.",
		APY:         "Market",
		MinDeposit:  decimal.Zero,
	},
	{
		ID:          "sav-1",
		Name:        "High-Yield Savings",
		Description: "Grow your savings faster with our competitive rates.",
		APY:         "3.50%",
		MinDeposit:  decimal.Zero,
	},
	{
		ID:          "chk-1",
		Name:        "Everyday Checking",
		Description: "Everyday banking with easy access to your funds.",
		MinDeposit:  decimal.Zero,
	},
}

func productByName(name string) (models.Product, bool) {
	for _, p := range Products {
		if p.Name == name {
			return p, true
		}
	}
	return models.Product{}, false
}

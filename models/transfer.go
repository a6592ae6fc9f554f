package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferKind is one of the mutually exclusive transfer variants.
type TransferKind string

const (
	TransferInternal      TransferKind = "internal"
	TransferDomestic      TransferKind = "domestic"
	TransferInternational TransferKind = "international"
	TransferBillPay       TransferKind = "bill"
)

// Frequency is how often a recurring payment repeats.
type Frequency string

const (
	Weekly  Frequency = "Weekly"
	Monthly Frequency = "Monthly"
	Yearly  Frequency = "Yearly"
)

// TransferInput is a raw transfer or bill-pay submission. Which recipient
// fields are required depends on Kind; those checks live in the engine so
// they run in the same order the review screen applied them.
type TransferInput struct {
	Kind          TransferKind    `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Recipient     string          `json:"recipient"`
	RoutingNumber string          `json:"routing_number"`
	AccountNumber string          `json:"account_number"`
	SwiftCode     string          `json:"swift_code"`
	IBAN          string          `json:"iban"`
	Country       string          `json:"country"`
	Recurring     bool            `json:"recurring"`
	Frequency     Frequency       `json:"frequency"`
	StartDate     string          `json:"start_date"`
}

// Validate checks the structural shape of the request: a known variant and,
// for recurring submissions, a valid schedule. Amount, balance, limit, and
// recipient-field checks are the engine's job.
func (t *TransferInput) Validate() string {
	switch t.Kind {
	case TransferInternal, TransferDomestic, TransferInternational, TransferBillPay:
	default:
		return "kind must be one of: internal, domestic, international, bill"
	}
	if t.Recurring {
		switch t.Frequency {
		case Weekly, Monthly, Yearly:
		case "":
			t.Frequency = Monthly
		default:
			return "frequency must be one of: Weekly, Monthly, Yearly"
		}
		if t.StartDate == "" {
			t.StartDate = time.Now().Format("2006-01-02")
		} else if _, err := time.Parse("2006-01-02", t.StartDate); err != nil {
			return "start_date must be a YYYY-MM-DD date"
		}
	}
	return ""
}

// TransferPreview is the review-step summary shown before confirmation.
// Fee and arrival are display values only; no fee is ever charged.
type TransferPreview struct {
	Recipient string          `json:"recipient"`
	Amount    decimal.Decimal `json:"amount"`
	Arrival   string          `json:"arrival"`
	Fee       decimal.Decimal `json:"fee"`
	Recurring bool            `json:"recurring"`
	Frequency Frequency       `json:"frequency,omitempty"`
	StartDate string          `json:"start_date,omitempty"`
}

// TransferResult is the outcome of a committed submission: a ledger
// transaction for immediate transfers, or a schedule entry for recurring
// ones. Exactly one field is set.
type TransferResult struct {
	Transaction *Transaction      `json:"transaction,omitempty"`
	Scheduled   *RecurringPayment `json:"scheduled,omitempty"`
}

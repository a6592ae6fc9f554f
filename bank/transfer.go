package bank

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"demobank/models"
	"demobank/store"
)

var internationalFee = decimal.RequireFromString("15.00")

// validateTransfer runs every pre-commit check in the order the review
// screen applies them: amount, balance sufficiency, per-transaction limit,
// daily limit, then variant-specific required fields. No state is touched.
// The daily-limit check applies to every variant; only non-internal commits
// advance the accumulator.
func (s *Session) validateTransfer(in *models.TransferInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateTransferLocked(in)
}

func (s *Session) validateTransferLocked(in *models.TransferInput) error {
	if !in.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if in.Amount.GreaterThan(s.ledger.Checking) {
		return ErrInsufficientFunds
	}
	if err := CheckLimits(in.Amount, s.ledger.PerTransactionLimit, s.ledger.DailyLimit, s.ledger.DailySent); err != nil {
		return err
	}
	return requiredFields(in)
}

// requiredFields enforces the variant-specific field checks. Internal
// transfers have a fixed destination and need none.
func requiredFields(in *models.TransferInput) error {
	missing := func(msg string) error {
		return fmt.Errorf("%w: %s", ErrMissingField, msg)
	}
	switch in.Kind {
	case models.TransferInternal:
		return nil
	case models.TransferBillPay:
		if strings.TrimSpace(in.Recipient) == "" {
			return missing("biller name is required")
		}
	case models.TransferDomestic:
		if strings.TrimSpace(in.Recipient) == "" {
			return missing("recipient name is required")
		}
		if len(strings.TrimSpace(in.RoutingNumber)) < 9 {
			return missing("a valid routing number is required")
		}
		if strings.TrimSpace(in.AccountNumber) == "" {
			return missing("account number is required")
		}
	case models.TransferInternational:
		if strings.TrimSpace(in.Recipient) == "" {
			return missing("recipient name is required")
		}
		if strings.TrimSpace(in.SwiftCode) == "" {
			return missing("SWIFT/BIC code is required")
		}
		if strings.TrimSpace(in.IBAN) == "" {
			return missing("IBAN is required")
		}
		if strings.TrimSpace(in.Country) == "" {
			return missing("country is required")
		}
	}
	return nil
}

func recipientDisplay(in *models.TransferInput) string {
	if in.Kind == models.TransferInternal {
		return SavingsRecipient
	}
	return in.Recipient
}

func estimatedArrival(kind models.TransferKind) string {
	switch kind {
	case models.TransferInternal:
		return "Instant"
	case models.TransferDomestic:
		return "1-2 Business Days"
	case models.TransferInternational:
		return "3-5 Business Days"
	}
	return "1-3 Business Days"
}

func transferFee(kind models.TransferKind) decimal.Decimal {
	if kind == models.TransferInternational {
		return internationalFee
	}
	return decimal.Zero
}

// PreviewTransfer is the review step: full validation with zero side
// effects, plus the summary the confirmation screen shows. The fee is a
// display value only and is never charged.
func (s *Session) PreviewTransfer(in models.TransferInput) (models.TransferPreview, error) {
	if err := s.validateTransfer(&in); err != nil {
		return models.TransferPreview{}, err
	}
	p := models.TransferPreview{
		Recipient: recipientDisplay(&in),
		Amount:    in.Amount,
		Arrival:   estimatedArrival(in.Kind),
		Fee:       transferFee(in.Kind),
		Recurring: in.Recurring,
	}
	if in.Recurring {
		p.Frequency = in.Frequency
		p.StartDate = in.StartDate
	}
	return p, nil
}

// ExecuteTransfer is the confirm step. It validates, suspends for the
// configured processing delay (cancellation via ctx aborts with no
// effects; there is no retry), then revalidates and commits atomically
// under the session lock. Either the whole movement happens or none of it.
func (s *Session) ExecuteTransfer(ctx context.Context, in models.TransferInput) (models.TransferResult, error) {
	if err := s.validateTransfer(&in); err != nil {
		return models.TransferResult{}, err
	}
	if err := s.processingWait(ctx); err != nil {
		return models.TransferResult{}, err
	}
	return s.commitTransfer(&in)
}

// processingWait stands in for the upstream payment network. It always
// succeeds unless the caller gives up first.
func (s *Session) processingWait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Session) commitTransfer(in *models.TransferInput) (models.TransferResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// State may have moved during the processing wait.
	if err := s.validateTransferLocked(in); err != nil {
		return models.TransferResult{}, err
	}

	if in.Recurring {
		p := models.RecurringPayment{
			ID:            "rp-" + uuid.NewString(),
			Recipient:     recipientDisplay(in),
			Amount:        in.Amount,
			Frequency:     in.Frequency,
			NextDate:      in.StartDate,
			Category:      recurringCategory(in.Kind),
			RecipientBank: "Meridian Bank",
		}
		if err := s.st.InsertRecurring(p); err != nil {
			return models.TransferResult{}, err
		}
		// A recurring submission is a schedule of record: no ledger
		// mutation and no transaction until some future execution that
		// this system intentionally does not perform.
		return models.TransferResult{Scheduled: &p}, nil
	}

	txn := models.Transaction{
		ID:          newTransactionID(),
		Date:        s.today(),
		Description: transferDescription(in),
		Amount:      in.Amount,
		Type:        models.TransactionDebit,
		Category:    transferCategory(in.Kind),
		AccountID:   store.CheckingAccountID,
	}
	if err := s.st.InsertTransaction(txn); err != nil {
		return models.TransferResult{}, err
	}

	s.ledger.Checking = s.ledger.Checking.Sub(in.Amount)
	if in.Kind == models.TransferInternal {
		s.ledger.Savings = s.ledger.Savings.Add(in.Amount)
	} else {
		s.ledger.DailySent = s.ledger.DailySent.Add(in.Amount)
	}
	return models.TransferResult{Transaction: &txn}, nil
}

func transferDescription(in *models.TransferInput) string {
	switch in.Kind {
	case models.TransferBillPay:
		return "Bill Pay to " + in.Recipient
	case models.TransferInternal:
		return "Transfer to Savings"
	}
	return "Transfer to " + in.Recipient
}

func transferCategory(kind models.TransferKind) string {
	switch kind {
	case models.TransferBillPay:
		return "Bill Payment"
	case models.TransferInternal:
		return "Internal Transfer"
	}
	return "Wire Transfer"
}

func recurringCategory(kind models.TransferKind) string {
	if kind == models.TransferBillPay {
		return "Bill Payment"
	}
	return "Recurring " + string(kind)
}

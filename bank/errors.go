// Package bank implements the funds-movement engine: the per-session
// ledger, transfer validation and limits, deposits, recurring schedules,
// and the session manager that owns them. Every check runs before any
// state mutation; the first failure aborts the whole operation.
package bank

import "errors"

// Domain errors. Handlers translate these into HTTP statuses; the message
// is the single user-facing string for the failure.
var (
	// ErrInvalidAmount covers non-positive (and unparseable) amounts.
	ErrInvalidAmount = errors.New("please enter a valid positive amount")

	// ErrInsufficientFunds means the amount exceeds the checking balance.
	// Checking funds every transfer variant.
	ErrInsufficientFunds = errors.New("insufficient funds in checking")

	// ErrPerTransactionLimit means the amount exceeds the per-transaction cap.
	ErrPerTransactionLimit = errors.New("amount exceeds your per-transaction limit")

	// ErrDailyLimit means the amount would push today's sent total past the
	// daily cap.
	ErrDailyLimit = errors.New("amount exceeds your remaining daily limit")

	// ErrMissingField is wrapped with the specific field message, e.g.
	// "missing required field: IBAN is required".
	ErrMissingField = errors.New("missing required field")

	// ErrLimitConfig rejects a per-transaction limit above the daily limit.
	ErrLimitConfig = errors.New("per-transaction limit cannot exceed daily limit")

	// ErrNotFound covers unknown accounts, cards, transactions, schedule
	// entries, and products.
	ErrNotFound = errors.New("not found")

	// ErrSessionNotFound means the bearer token does not resolve to a live
	// session.
	ErrSessionNotFound = errors.New("session not found")
)

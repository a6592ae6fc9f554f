// Package sim fabricates card activity so a signed-in demo session looks
// alive. It is a demo fixture: the purchases it generates deliberately
// bypass transfer limits and any balance floor.
package sim

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"demobank/models"
)

// Spender is the slice of the session the simulator needs.
type Spender interface {
	RecordPurchase(description, category string, amount decimal.Decimal) (*models.Transaction, error)
}

type merchant struct {
	name      string
	category  string
	avgAmount decimal.Decimal
}

var merchants = []merchant{
	{"Starbucks", "Food & Drink", decimal.RequireFromString("12.50")},
	{"Uber Technologies", "Transport", decimal.RequireFromString("25.00")},
	{"Amazon Marketplace", "Shopping", decimal.RequireFromString("85.00")},
	{"Shell Station", "Gas", decimal.RequireFromString("45.00")},
	{"Spotify Premium", "Entertainment", decimal.RequireFromString("11.99")},
	{"Whole Foods", "Groceries", decimal.RequireFromString("120.00")},
}

// Simulator drives one session's background purchases.
type Simulator struct {
	Interval time.Duration
	Rand     *rand.Rand // nil means the shared global source
	Log      *slog.Logger
}

func (s *Simulator) log() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.Default()
}

func (s *Simulator) float64() float64 {
	if s.Rand != nil {
		return s.Rand.Float64()
	}
	return rand.Float64()
}

func (s *Simulator) intN(n int) int {
	if s.Rand != nil {
		return s.Rand.IntN(n)
	}
	return rand.IntN(n)
}

// Run ticks until ctx is cancelled. Each tick has an independent 50%
// chance of producing one purchase.
func (s *Simulator) Run(ctx context.Context, spender Spender) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.float64() > 0.5 {
				s.Tick(spender)
			}
		}
	}
}

// Tick synthesizes and applies one purchase: a random merchant, its average
// amount jittered by up to ±10, charged to the session's first active card.
func (s *Simulator) Tick(spender Spender) {
	m := merchants[s.intN(len(merchants))]
	jitter := decimal.NewFromFloat(s.float64()*20 - 10).Round(2)
	amount := m.avgAmount.Add(jitter)

	txn, err := spender.RecordPurchase(m.name, m.category, amount)
	if err != nil {
		s.log().Error("simulated purchase failed", "merchant", m.name, "error", err)
		return
	}
	if txn == nil {
		// every card frozen
		return
	}
	s.log().Debug("simulated purchase", "merchant", m.name, "amount", amount, "card", txn.AccountID)
}

package bank

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"demobank/sim"
	"demobank/store"
)

// DefaultName is the display name used when sign-in provides none.
const DefaultName = "Marcelo Grant"

// Manager owns every live session, keyed by opaque bearer token. Sign-in
// builds a complete fresh world (ledger, cards, loans, seeded store) and
// sign-out discards it; there is no reset-in-place path.
type Manager struct {
	TransferDelay time.Duration
	SimInterval   time.Duration // 0 disables the purchase simulator

	mu       sync.Mutex
	sessions map[string]*Session
	cancels  map[string]context.CancelFunc
}

// NewManager returns an empty session manager.
func NewManager(transferDelay, simInterval time.Duration) *Manager {
	return &Manager{
		TransferDelay: transferDelay,
		SimInterval:   simInterval,
		sessions:      make(map[string]*Session),
		cancels:       make(map[string]context.CancelFunc),
	}
}

// Login creates a session from seed configuration and starts its purchase
// simulator. The returned session carries the bearer token.
func (m *Manager) Login(name string) (*Session, error) {
	st, err := store.Open()
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(); err != nil {
		st.Close()
		return nil, err
	}
	if err := st.Seed(); err != nil {
		st.Close()
		return nil, err
	}

	if name == "" {
		name = DefaultName
	}
	s := NewSession(st, uuid.NewString(), name, m.TransferDelay)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.Token] = s
	if m.SimInterval > 0 {
		ctx, cancel := context.WithCancel(context.Background())
		m.cancels[s.Token] = cancel
		simulator := &sim.Simulator{Interval: m.SimInterval}
		go simulator.Run(ctx, s)
	}
	slog.Info("session created", "name", name)
	return s, nil
}

// Session resolves a bearer token.
func (m *Manager) Session(token string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Logout stops the simulator, closes the session's store, and forgets the
// token. Everything the session accumulated is gone.
func (m *Manager) Logout(token string) error {
	m.mu.Lock()
	s, ok := m.sessions[token]
	if ok {
		delete(m.sessions, token)
		if cancel, exists := m.cancels[token]; exists {
			cancel()
			delete(m.cancels, token)
		}
	}
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	if err := s.st.Close(); err != nil {
		return err
	}
	slog.Info("session ended", "name", s.Name)
	return nil
}

// Close tears down every live session; used at shutdown.
func (m *Manager) Close() {
	m.mu.Lock()
	tokens := make([]string, 0, len(m.sessions))
	for token := range m.sessions {
		tokens = append(tokens, token)
	}
	m.mu.Unlock()
	for _, token := range tokens {
		_ = m.Logout(token)
	}
}

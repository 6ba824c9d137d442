// Package treasury provides the host-owned gold ledger the diplomacy
// core pays dowries into and draws gift gold from.
package treasury

import (
	"errors"
	"log/slog"
	"sync"
)

// ErrInsufficientGold is returned when a debit exceeds the balance.
var ErrInsufficientGold = errors.New("insufficient gold")

// Ledger is a thread-safe gold balance.
type Ledger struct {
	mu   sync.Mutex
	gold int
}

// NewLedger creates a ledger with a starting balance.
func NewLedger(startingGold int) *Ledger {
	return &Ledger{gold: startingGold}
}

// CreditGold adds gold to the balance. Non-positive amounts are ignored.
func (l *Ledger) CreditGold(amount int) {
	if amount <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gold += amount
	slog.Debug("treasury credited", "amount", amount, "balance", l.gold)
}

// DebitGold removes gold from the balance, failing if it would go negative.
func (l *Ledger) DebitGold(amount int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if amount > l.gold {
		return ErrInsufficientGold
	}
	l.gold -= amount
	slog.Debug("treasury debited", "amount", amount, "balance", l.gold)
	return nil
}

// Balance returns the current gold balance.
func (l *Ledger) Balance() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gold
}

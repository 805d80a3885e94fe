package economy

import (
	"context"
	"fmt"
	"sync"
)

// MemoryLedger is an in-memory Ledger used in development and tests
type MemoryLedger struct {
	mu       sync.RWMutex
	balances map[string]int
}

// NewMemoryLedger creates an empty in-memory ledger
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		balances: make(map[string]int),
	}
}

// SetBalance sets a user's balance directly (test seeding)
func (l *MemoryLedger) SetBalance(userID string, amount int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[userID] = amount
}

// CanAfford implements [Ledger]
func (l *MemoryLedger) CanAfford(ctx context.Context, userID string, amount int) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[userID] >= amount, nil
}

// Debit implements [Ledger]. The balance may go negative: affordability
// checks are the caller's responsibility, matching the persistent store.
func (l *MemoryLedger) Debit(ctx context.Context, userID string, amount int) error {
	if amount < 0 {
		return fmt.Errorf(ErrMsgNegativeAmount, amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[userID] -= amount
	return nil
}

// Credit implements [Ledger]
func (l *MemoryLedger) Credit(ctx context.Context, userID string, amount int) error {
	if amount < 0 {
		return fmt.Errorf(ErrMsgNegativeAmount, amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[userID] += amount
	return nil
}

// Balance implements [Ledger]
func (l *MemoryLedger) Balance(ctx context.Context, userID string) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[userID], nil
}

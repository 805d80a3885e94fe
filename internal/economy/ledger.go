package economy

import "context"

// Ledger is the points store contract consumed by the mini-games.
//
// Debit and Credit are each atomic and durable before they return, but
// there is no combined debit-if-affordable primitive: callers must check
// CanAfford immediately before mutating and serialize the pair themselves
// when the window matters.
type Ledger interface {
	// CanAfford reports whether the user's balance covers amount
	CanAfford(ctx context.Context, userID string, amount int) (bool, error)

	// Debit subtracts amount from the user's balance
	Debit(ctx context.Context, userID string, amount int) error

	// Credit adds amount to the user's balance
	Credit(ctx context.Context, userID string, amount int) error

	// Balance returns the user's current balance
	Balance(ctx context.Context, userID string) (int, error)
}

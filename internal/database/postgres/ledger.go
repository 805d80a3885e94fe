package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DuelArena_Go/internal/economy"
)

// PointsLedger implements the points ledger for PostgreSQL
type PointsLedger struct {
	pool *pgxpool.Pool
}

// NewPointsLedger creates a new PointsLedger
func NewPointsLedger(pool *pgxpool.Pool) economy.Ledger {
	return &PointsLedger{pool: pool}
}

// CanAfford reports whether the user's balance covers amount
func (l *PointsLedger) CanAfford(ctx context.Context, userID string, amount int) (bool, error) {
	balance, err := l.Balance(ctx, userID)
	if err != nil {
		return false, err
	}
	return balance >= amount, nil
}

// Debit subtracts amount from the user's balance.
// The single UPDATE makes the mutation atomic and durable on return.
func (l *PointsLedger) Debit(ctx context.Context, userID string, amount int) error {
	if _, err := l.pool.Exec(ctx, SQLAdjustBalance, userID, -amount); err != nil {
		return fmt.Errorf(ErrMsgAdjustBalanceFailed, err)
	}
	return nil
}

// Credit adds amount to the user's balance
func (l *PointsLedger) Credit(ctx context.Context, userID string, amount int) error {
	if _, err := l.pool.Exec(ctx, SQLAdjustBalance, userID, amount); err != nil {
		return fmt.Errorf(ErrMsgAdjustBalanceFailed, err)
	}
	return nil
}

// Balance returns the user's current balance, zero for unknown users
func (l *PointsLedger) Balance(ctx context.Context, userID string) (int, error) {
	var balance int64
	if err := l.pool.QueryRow(ctx, SQLSelectBalance, userID).Scan(&balance); err != nil {
		return 0, fmt.Errorf(ErrMsgSelectBalanceFailed, err)
	}
	return int(balance), nil
}

package stats

import (
	"context"

	"github.com/osse101/DuelArena_Go/internal/domain"
)

// Repository defines persistence for per-user duel aggregates
type Repository interface {
	// RecordWin adds a won duel worth amount points to the user's aggregate
	RecordWin(ctx context.Context, userID string, amount int) error
	// RecordLoss adds a lost duel costing amount points to the user's aggregate
	RecordLoss(ctx context.Context, userID string, amount int) error
	// GetDuelStats returns the user's aggregate, nil when the user has no recorded duels
	GetDuelStats(ctx context.Context, userID string) (*domain.DuelStats, error)
}

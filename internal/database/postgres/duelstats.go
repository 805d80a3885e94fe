package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DuelArena_Go/internal/domain"
	"github.com/osse101/DuelArena_Go/internal/stats"
)

// DuelStatsRepository implements the duel stats repository for PostgreSQL
type DuelStatsRepository struct {
	pool *pgxpool.Pool
}

// NewDuelStatsRepository creates a new DuelStatsRepository
func NewDuelStatsRepository(pool *pgxpool.Pool) stats.Repository {
	return &DuelStatsRepository{pool: pool}
}

// RecordWin adds a won duel to the user's aggregate
func (r *DuelStatsRepository) RecordWin(ctx context.Context, userID string, amount int) error {
	if _, err := r.pool.Exec(ctx, SQLRecordDuelWin, userID, amount); err != nil {
		return fmt.Errorf(ErrMsgRecordWinFailed, err)
	}
	return nil
}

// RecordLoss adds a lost duel to the user's aggregate
func (r *DuelStatsRepository) RecordLoss(ctx context.Context, userID string, amount int) error {
	if _, err := r.pool.Exec(ctx, SQLRecordDuelLoss, userID, amount); err != nil {
		return fmt.Errorf(ErrMsgRecordLossFailed, err)
	}
	return nil
}

// GetDuelStats retrieves the user's aggregate, nil when the user has no recorded duels
func (r *DuelStatsRepository) GetDuelStats(ctx context.Context, userID string) (*domain.DuelStats, error) {
	s := domain.DuelStats{UserID: userID}
	err := r.pool.QueryRow(ctx, SQLSelectDuelStats, userID).Scan(
		&s.DuelsTotal,
		&s.DuelsWon,
		&s.CurrentStreak,
		&s.LongestStreak,
		&s.PointsWon,
		&s.PointsLost,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSelectStatsFailed, err)
	}
	return &s, nil
}

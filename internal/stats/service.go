package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/DuelArena_Go/internal/domain"
	"github.com/osse101/DuelArena_Go/internal/logger"
)

// Service defines the interface for duel stats operations
type Service interface {
	// RecordOutcome records a resolved duel for both participants. The
	// winner's aggregate is credited with the full pot, the loser's with
	// the stake they forfeited.
	RecordOutcome(ctx context.Context, result domain.DuelResult) error
	// GetDuelStats returns a user's lifetime duel aggregate. A user who
	// has never duelled gets a zero-valued aggregate rather than an error.
	GetDuelStats(ctx context.Context, userID string) (*domain.DuelStats, error)
}

// service implements the Service interface
type service struct {
	repo Repository
}

// NewService creates a new stats service
func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

// RecordOutcome records a resolved duel for winner and loser
func (s *service) RecordOutcome(ctx context.Context, result domain.DuelResult) error {
	log := logger.FromContext(ctx)

	if result.Winner == "" || result.Loser == "" {
		return errors.New(ErrMsgUserIDRequired)
	}

	if err := s.repo.RecordWin(ctx, result.Winner, result.TotalPot); err != nil {
		log.Error(LogMsgFailedToRecordWin, "error", err, "user_id", result.Winner)
		return fmt.Errorf(ErrMsgRecordWinFailed, err)
	}

	if err := s.repo.RecordLoss(ctx, result.Loser, result.Stake); err != nil {
		log.Error(LogMsgFailedToRecordLoss, "error", err, "user_id", result.Loser)
		return fmt.Errorf(ErrMsgRecordLossFailed, err)
	}

	log.Debug(LogMsgOutcomeRecorded,
		"winner", result.Winner,
		"loser", result.Loser,
		"total_pot", result.TotalPot)

	return nil
}

// GetDuelStats returns a user's lifetime duel aggregate
func (s *service) GetDuelStats(ctx context.Context, userID string) (*domain.DuelStats, error) {
	if userID == "" {
		return nil, errors.New(ErrMsgUserIDRequired)
	}

	duelStats, err := s.repo.GetDuelStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetStatsFailed, err)
	}
	if duelStats == nil {
		return &domain.DuelStats{UserID: userID}, nil
	}
	return duelStats, nil
}

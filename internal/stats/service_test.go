package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DuelArena_Go/internal/domain"
)

func TestRecordOutcome(t *testing.T) {
	ctx := context.Background()

	t.Run("records win and loss", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("RecordWin", mock.Anything, "alice", 600).Return(nil)
		repo.On("RecordLoss", mock.Anything, "bob", 300).Return(nil)

		svc := NewService(repo)
		err := svc.RecordOutcome(ctx, domain.DuelResult{
			Winner:   "alice",
			Loser:    "bob",
			Stake:    300,
			TotalPot: 600,
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects missing participants", func(t *testing.T) {
		svc := NewService(new(mockRepository))
		err := svc.RecordOutcome(ctx, domain.DuelResult{Winner: "alice"})
		assert.EqualError(t, err, ErrMsgUserIDRequired)
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		repoErr := errors.New("connection reset")
		repo := new(mockRepository)
		repo.On("RecordWin", mock.Anything, "alice", 600).Return(repoErr)

		svc := NewService(repo)
		err := svc.RecordOutcome(ctx, domain.DuelResult{
			Winner:   "alice",
			Loser:    "bob",
			Stake:    300,
			TotalPot: 600,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, repoErr)
		repo.AssertNotCalled(t, "RecordLoss", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetDuelStats(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored aggregate", func(t *testing.T) {
		stored := &domain.DuelStats{
			UserID:     "alice",
			DuelsTotal: 4,
			DuelsWon:   3,
			PointsWon:  1800,
			PointsLost: 300,
		}
		repo := new(mockRepository)
		repo.On("GetDuelStats", mock.Anything, "alice").Return(stored, nil)

		svc := NewService(repo)
		s, err := svc.GetDuelStats(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, stored, s)
		assert.InDelta(t, 75.0, s.WinRate(), 0.001)
		assert.Equal(t, int64(1500), s.Profit())
	})

	t.Run("zero aggregate for unknown user", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetDuelStats", mock.Anything, "nobody").Return(nil, nil)

		svc := NewService(repo)
		s, err := svc.GetDuelStats(ctx, "nobody")

		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, "nobody", s.UserID)
		assert.Zero(t, s.DuelsTotal)
	})

	t.Run("rejects empty user ID", func(t *testing.T) {
		svc := NewService(new(mockRepository))
		_, err := svc.GetDuelStats(ctx, "")
		assert.EqualError(t, err, ErrMsgUserIDRequired)
	})
}

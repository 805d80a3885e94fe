package stats

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/DuelArena_Go/internal/domain"
)

// mockRepository is a testify mock for the Repository interface
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) RecordWin(ctx context.Context, userID string, amount int) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *mockRepository) RecordLoss(ctx context.Context, userID string, amount int) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *mockRepository) GetDuelStats(ctx context.Context, userID string) (*domain.DuelStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DuelStats), args.Error(1)
}

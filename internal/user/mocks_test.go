package user

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/DuelArena_Go/internal/domain"
)

// mockRepository is a testify mock for the Repository interface
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockRepository) Upsert(ctx context.Context, username, displayName, platform string) (string, error) {
	args := m.Called(ctx, username, displayName, platform)
	return args.String(0), args.Error(1)
}

package handler

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/DuelArena_Go/internal/domain"
)

// mockDuelService is a testify mock for the duel service
type mockDuelService struct {
	mock.Mock
}

func (m *mockDuelService) Initiate(ctx context.Context, requestor, targetName, stakeInput string) error {
	args := m.Called(ctx, requestor, targetName, stakeInput)
	return args.Error(0)
}

func (m *mockDuelService) Cancel(ctx context.Context, requestor string) error {
	args := m.Called(ctx, requestor)
	return args.Error(0)
}

func (m *mockDuelService) Accept(ctx context.Context, target string) (*domain.DuelResult, error) {
	args := m.Called(ctx, target)
	if result := args.Get(0); result != nil {
		return result.(*domain.DuelResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDuelService) Decline(ctx context.Context, target string) error {
	args := m.Called(ctx, target)
	return args.Error(0)
}

func (m *mockDuelService) Status(ctx context.Context, username string) (*domain.DuelStatus, error) {
	args := m.Called(ctx, username)
	if status := args.Get(0); status != nil {
		return status.(*domain.DuelStatus), args.Error(1)
	}
	return nil, args.Error(1)
}

// mockStatsService is a testify mock for the stats service
type mockStatsService struct {
	mock.Mock
}

func (m *mockStatsService) RecordOutcome(ctx context.Context, result domain.DuelResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *mockStatsService) GetDuelStats(ctx context.Context, userID string) (*domain.DuelStats, error) {
	args := m.Called(ctx, userID)
	if stats := args.Get(0); stats != nil {
		return stats.(*domain.DuelStats), args.Error(1)
	}
	return nil, args.Error(1)
}

// mockUserService is a testify mock for the user service
type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Resolve(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) Register(ctx context.Context, username, displayName, platform string) (*domain.User, error) {
	args := m.Called(ctx, username, displayName, platform)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// mockSubAlertService is a testify mock for the subscription alert service
type mockSubAlertService struct {
	mock.Mock
}

func (m *mockSubAlertService) HandleSubscription(ctx context.Context, username string, tier, months int, giftedBy string) error {
	args := m.Called(ctx, username, tier, months, giftedBy)
	return args.Error(0)
}

// mockDonationService is a testify mock for the donation service
type mockDonationService struct {
	mock.Mock
}

func (m *mockDonationService) HandleDonation(ctx context.Context, username string, amountUSD float64) error {
	args := m.Called(ctx, username, amountUSD)
	return args.Error(0)
}

// fakeMessenger records outbound messages for assertions
type fakeMessenger struct {
	mu       sync.Mutex
	said     []string
	whispers map[string][]string
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{whispers: make(map[string][]string)}
}

func (m *fakeMessenger) Say(_ context.Context, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.said = append(m.said, message)
	return nil
}

func (m *fakeMessenger) Whisper(_ context.Context, username, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.whispers[username] = append(m.whispers[username], message)
	return nil
}

func (m *fakeMessenger) publicMessages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.said...)
}

func (m *fakeMessenger) whispersTo(username string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.whispers[username]...)
}

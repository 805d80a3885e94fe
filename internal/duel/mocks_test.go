package duel

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/DuelArena_Go/internal/domain"
	"github.com/osse101/DuelArena_Go/internal/scheduler"
	"github.com/osse101/DuelArena_Go/internal/user"
	"github.com/osse101/DuelArena_Go/internal/worker"
)

// fakeResolver resolves usernames from a fixed set of known users
type fakeResolver struct {
	users map[string]*domain.User
}

func newFakeResolver(usernames ...string) *fakeResolver {
	users := make(map[string]*domain.User, len(usernames))
	for _, name := range usernames {
		users[name] = &domain.User{ID: "id-" + name, Username: name, DisplayName: name, Platform: "twitch"}
	}
	return &fakeResolver{users: users}
}

func (r *fakeResolver) Resolve(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[user.Canonicalize(username)]; ok {
		return u, nil
	}
	return nil, domain.ErrUnknownUser
}

// fakeActivity marks every user active unless listed as idle
type fakeActivity struct {
	mu   sync.Mutex
	idle map[string]bool
}

func newFakeActivity() *fakeActivity {
	return &fakeActivity{idle: make(map[string]bool)}
}

func (a *fakeActivity) setIdle(username string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.idle[username] = true
}

func (a *fakeActivity) IsActive(username string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return !a.idle[username]
}

// fakeMessenger records public and private messages
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

// fakeScheduler captures scheduled jobs so tests can fire them on demand
type fakeScheduler struct {
	mu   sync.Mutex
	jobs []worker.Job
}

func (s *fakeScheduler) ScheduleOnce(_ time.Duration, job worker.Job) scheduler.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
	return scheduler.Handle{}
}

func (s *fakeScheduler) runAll(ctx context.Context) {
	s.mu.Lock()
	jobs := append([]worker.Job(nil), s.jobs...)
	s.jobs = nil
	s.mu.Unlock()
	for _, job := range jobs {
		_ = job.Process(ctx)
	}
}

func (s *fakeScheduler) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// mockStats is a testify mock for the stats service
type mockStats struct {
	mock.Mock
}

func (m *mockStats) RecordOutcome(ctx context.Context, result domain.DuelResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *mockStats) GetDuelStats(ctx context.Context, userID string) (*domain.DuelStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DuelStats), args.Error(1)
}

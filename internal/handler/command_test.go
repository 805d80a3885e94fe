package handler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DuelArena_Go/internal/cooldown"
	"github.com/osse101/DuelArena_Go/internal/domain"
)

type routerFixture struct {
	duelSvc   *mockDuelService
	statsSvc  *mockStatsService
	messenger *fakeMessenger
	router    *CommandRouter
}

// newRouterFixture builds a router with cooldowns bypassed so tests can
// issue commands back to back.
func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	duelSvc := &mockDuelService{}
	statsSvc := &mockStatsService{}
	messenger := newFakeMessenger()
	cooldowns := cooldown.NewService(cooldown.Config{DevMode: true})

	return &routerFixture{
		duelSvc:   duelSvc,
		statsSvc:  statsSvc,
		messenger: messenger,
		router:    NewCommandRouter(duelSvc, statsSvc, cooldowns, messenger, 300),
	}
}

func TestCommandRouter_Dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("ignores plain chat", func(t *testing.T) {
		f := newRouterFixture(t)

		handled, err := f.router.Dispatch(ctx, "alice", "hello everyone")
		require.NoError(t, err)
		assert.False(t, handled)
	})

	t.Run("ignores unknown command", func(t *testing.T) {
		f := newRouterFixture(t)

		handled, err := f.router.Dispatch(ctx, "alice", "!slots 100")
		require.NoError(t, err)
		assert.False(t, handled)
	})

	t.Run("duel forwards target and stake", func(t *testing.T) {
		f := newRouterFixture(t)
		f.duelSvc.On("Initiate", mock.Anything, "alice", "bob", "500").Return(nil)

		handled, err := f.router.Dispatch(ctx, "Alice", "!duel bob 500")
		require.NoError(t, err)
		assert.True(t, handled)
		f.duelSvc.AssertExpectations(t)
	})

	t.Run("duel without stake passes empty string", func(t *testing.T) {
		f := newRouterFixture(t)
		f.duelSvc.On("Initiate", mock.Anything, "alice", "bob", "").Return(nil)

		handled, err := f.router.Dispatch(ctx, "alice", "!duel bob")
		require.NoError(t, err)
		assert.True(t, handled)
		f.duelSvc.AssertExpectations(t)
	})

	t.Run("duel without target whispers usage", func(t *testing.T) {
		f := newRouterFixture(t)

		handled, err := f.router.Dispatch(ctx, "alice", "!duel")
		require.NoError(t, err)
		assert.True(t, handled)
		assert.Contains(t, f.messenger.whispersTo("alice"), "Usage: !duel <username> [stake]")
		f.duelSvc.AssertNotCalled(t, "Initiate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("commands are case insensitive", func(t *testing.T) {
		f := newRouterFixture(t)
		f.duelSvc.On("Initiate", mock.Anything, "alice", "bob", "").Return(nil)

		handled, err := f.router.Dispatch(ctx, "alice", "!DUEL bob")
		require.NoError(t, err)
		assert.True(t, handled)
	})

	t.Run("cancelduel calls cancel", func(t *testing.T) {
		f := newRouterFixture(t)
		f.duelSvc.On("Cancel", mock.Anything, "alice").Return(nil)

		handled, err := f.router.Dispatch(ctx, "alice", "!cancelduel")
		require.NoError(t, err)
		assert.True(t, handled)
		f.duelSvc.AssertExpectations(t)
	})

	t.Run("accept calls accept", func(t *testing.T) {
		f := newRouterFixture(t)
		f.duelSvc.On("Accept", mock.Anything, "bob").
			Return(&domain.DuelResult{Winner: "bob", Loser: "alice", Stake: 500, TotalPot: 1000}, nil)

		handled, err := f.router.Dispatch(ctx, "bob", "!accept")
		require.NoError(t, err)
		assert.True(t, handled)
		f.duelSvc.AssertExpectations(t)
	})

	t.Run("decline and deny are aliases", func(t *testing.T) {
		f := newRouterFixture(t)
		f.duelSvc.On("Decline", mock.Anything, "bob").Return(nil).Twice()

		for _, cmd := range []string{"!decline", "!deny"} {
			handled, err := f.router.Dispatch(ctx, "bob", cmd)
			require.NoError(t, err)
			assert.True(t, handled)
		}
		f.duelSvc.AssertExpectations(t)
	})
}

func TestCommandRouter_ErrorReplies(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name        string
		err         error
		wantPhrase  string
	}{
		{"stake too low", domain.ErrStakeTooLow, "minimum duel stake is 300"},
		{"already challenging", domain.ErrAlreadyChallenging, "already have an outstanding duel challenge"},
		{"target busy", domain.ErrTargetBusy, "bob already has a pending duel challenge"},
		{"target inactive", domain.ErrTargetInactive, "bob hasn't been active in chat recently"},
		{"cannot afford", domain.ErrInsufficientFunds, "can't afford that stake"},
		{"unknown user", domain.ErrUnknownUser, "I don't know who bob is"},
		{"invalid stake", domain.ErrInvalidAmount, "isn't a valid number of points"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newRouterFixture(t)
			f.duelSvc.On("Initiate", mock.Anything, "alice", "bob", "500").Return(tc.err)

			handled, err := f.router.Dispatch(ctx, "alice", "!duel bob 500")
			require.NoError(t, err)
			assert.True(t, handled)

			whispers := f.messenger.whispersTo("alice")
			require.Len(t, whispers, 1)
			assert.Contains(t, whispers[0], tc.wantPhrase)
		})
	}

	t.Run("cancel with no request", func(t *testing.T) {
		f := newRouterFixture(t)
		f.duelSvc.On("Cancel", mock.Anything, "alice").Return(domain.ErrNoActiveRequest)

		handled, err := f.router.Dispatch(ctx, "alice", "!cancelduel")
		require.NoError(t, err)
		assert.True(t, handled)
		assert.Contains(t, f.messenger.whispersTo("alice"), "You have no active duel request.")
	})

	t.Run("accept with no challenge", func(t *testing.T) {
		f := newRouterFixture(t)
		f.duelSvc.On("Accept", mock.Anything, "bob").Return(nil, domain.ErrNotChallenged)

		handled, err := f.router.Dispatch(ctx, "bob", "!accept")
		require.NoError(t, err)
		assert.True(t, handled)
		assert.Contains(t, f.messenger.whispersTo("bob"), "Nobody has challenged you to a duel.")
	})

	t.Run("accept affordability failure is already whispered by the service", func(t *testing.T) {
		f := newRouterFixture(t)
		f.duelSvc.On("Accept", mock.Anything, "bob").Return(nil, domain.ErrInsufficientFunds)

		handled, err := f.router.Dispatch(ctx, "bob", "!accept")
		require.NoError(t, err)
		assert.True(t, handled)
		assert.Empty(t, f.messenger.whispersTo("bob"))
	})

	t.Run("unrecognized error propagates", func(t *testing.T) {
		f := newRouterFixture(t)
		f.duelSvc.On("Cancel", mock.Anything, "alice").Return(assert.AnError)

		handled, err := f.router.Dispatch(ctx, "alice", "!cancelduel")
		assert.True(t, handled)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, f.messenger.whispersTo("alice"))
	})
}

func TestCommandRouter_Status(t *testing.T) {
	ctx := context.Background()

	t.Run("no pending challenges", func(t *testing.T) {
		f := newRouterFixture(t)
		f.duelSvc.On("Status", mock.Anything, "alice").Return(&domain.DuelStatus{}, nil)

		handled, err := f.router.Dispatch(ctx, "alice", "!duelstatus")
		require.NoError(t, err)
		assert.True(t, handled)
		assert.Contains(t, f.messenger.whispersTo("alice"), "You have no pending duel challenges.")
	})

	t.Run("outgoing and incoming both reported", func(t *testing.T) {
		f := newRouterFixture(t)
		f.duelSvc.On("Status", mock.Anything, "alice").Return(&domain.DuelStatus{
			Outgoing: &domain.Challenge{Requestor: "alice", Target: "bob", Stake: 500},
			Incoming: &domain.Challenge{Requestor: "carol", Target: "alice", Stake: 300},
		}, nil)

		handled, err := f.router.Dispatch(ctx, "alice", "!duelstatus")
		require.NoError(t, err)
		assert.True(t, handled)

		whispers := f.messenger.whispersTo("alice")
		require.Len(t, whispers, 2)
		assert.Contains(t, whispers[0], "You have challenged bob to a duel for 500 points.")
		assert.Contains(t, whispers[1], "carol has challenged you to a duel for 300 points.")
	})
}

func TestCommandRouter_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("no duels yet", func(t *testing.T) {
		f := newRouterFixture(t)
		f.statsSvc.On("GetDuelStats", mock.Anything, "alice").
			Return(&domain.DuelStats{UserID: "alice"}, nil)

		handled, err := f.router.Dispatch(ctx, "alice", "!duelstats")
		require.NoError(t, err)
		assert.True(t, handled)

		whispers := f.messenger.whispersTo("alice")
		require.Len(t, whispers, 1)
		assert.Equal(t, "alice hasn't duelled anyone yet.", whispers[0])
		assert.Empty(t, f.messenger.publicMessages())
	})

	t.Run("summary includes rate streak and profit", func(t *testing.T) {
		f := newRouterFixture(t)
		f.statsSvc.On("GetDuelStats", mock.Anything, "alice").Return(&domain.DuelStats{
			UserID:        "alice",
			DuelsTotal:    4,
			DuelsWon:      3,
			CurrentStreak: 2,
			LongestStreak: 3,
			PointsWon:     2000,
			PointsLost:    700,
		}, nil)

		handled, err := f.router.Dispatch(ctx, "alice", "!duelstats")
		require.NoError(t, err)
		assert.True(t, handled)

		whispers := f.messenger.whispersTo("alice")
		require.Len(t, whispers, 1)
		assert.Contains(t, whispers[0], "3/4 duels won")
		assert.Contains(t, whispers[0], "75.0%")
		assert.Contains(t, whispers[0], "streak 2 (best 3)")
		assert.Contains(t, whispers[0], "net profit 1300 points")
		assert.Empty(t, f.messenger.publicMessages())
	})
}

func TestCommandRouter_Cooldowns(t *testing.T) {
	ctx := context.Background()

	t.Run("second status inside the window is dropped silently", func(t *testing.T) {
		duelSvc := &mockDuelService{}
		statsSvc := &mockStatsService{}
		messenger := newFakeMessenger()
		cooldowns := cooldown.NewService(cooldown.Config{
			Cooldowns: map[string]time.Duration{
				cooldown.ActionDuelStatus: time.Minute,
			},
		})
		router := NewCommandRouter(duelSvc, statsSvc, cooldowns, messenger, 300)

		duelSvc.On("Status", mock.Anything, "alice").Return(&domain.DuelStatus{}, nil).Once()

		for i := 0; i < 2; i++ {
			handled, err := router.Dispatch(ctx, "alice", "!duelstatus")
			require.NoError(t, err)
			assert.True(t, handled)
		}

		duelSvc.AssertExpectations(t)
		assert.Len(t, messenger.whispersTo("alice"), 1)
	})

	t.Run("cooldown hit does not consume the challenge", func(t *testing.T) {
		duelSvc := &mockDuelService{}
		statsSvc := &mockStatsService{}
		messenger := newFakeMessenger()
		cooldowns := cooldown.NewService(cooldown.Config{
			Cooldowns: map[string]time.Duration{
				cooldown.ActionDuel: time.Minute,
			},
		})
		router := NewCommandRouter(duelSvc, statsSvc, cooldowns, messenger, 300)

		duelSvc.On("Initiate", mock.Anything, "alice", "bob", "").Return(nil).Once()

		for i := 0; i < 3; i++ {
			handled, err := router.Dispatch(ctx, "alice", "!duel bob")
			require.NoError(t, err)
			assert.True(t, handled)
		}

		duelSvc.AssertExpectations(t)
	})
}

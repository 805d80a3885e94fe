package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DuelArena_Go/internal/domain"
)

func TestCanonicalize(t *testing.T) {
	assert.Equal(t, "karl_kons", Canonicalize("Karl_Kons"))
	assert.Equal(t, "karl_kons", Canonicalize("@Karl_Kons"))
	assert.Equal(t, "karl_kons", Canonicalize("  karl_kons  "))
	assert.Equal(t, "", Canonicalize("   "))
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves and caches", func(t *testing.T) {
		stored := &domain.User{ID: "u1", Username: "alice", DisplayName: "Alice"}
		repo := new(mockRepository)
		repo.On("GetByUsername", mock.Anything, "alice").Return(stored, nil).Once()

		svc := NewService(repo)

		u, err := svc.Resolve(ctx, "@Alice")
		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)

		// Second lookup hits the cache; the mock would fail on a second call.
		u, err = svc.Resolve(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)

		repo.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByUsername", mock.Anything, "ghost").Return(nil, nil)

		svc := NewService(repo)
		_, err := svc.Resolve(ctx, "ghost")

		assert.ErrorIs(t, err, domain.ErrUnknownUser)
	})

	t.Run("empty username", func(t *testing.T) {
		svc := NewService(new(mockRepository))
		_, err := svc.Resolve(ctx, "  ")
		assert.EqualError(t, err, ErrMsgUsernameRequired)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts and primes cache", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Upsert", mock.Anything, "alice", "Alice", "twitch").Return("u1", nil)

		svc := NewService(repo)
		u, err := svc.Register(ctx, "Alice", "Alice", "twitch")
		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)
		assert.Equal(t, "alice", u.Username)

		// Resolve serves the registered user without a repository read.
		resolved, err := svc.Resolve(ctx, "ALICE")
		require.NoError(t, err)
		assert.Equal(t, u, resolved)

		repo.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
	})

	t.Run("defaults display name to username", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Upsert", mock.Anything, "bob", "Bob", "twitch").Return("u2", nil)

		svc := NewService(repo)
		u, err := svc.Register(ctx, "Bob", "", "twitch")
		require.NoError(t, err)
		assert.Equal(t, "Bob", u.DisplayName)
	})
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DuelArena_Go/internal/domain"
	"github.com/osse101/DuelArena_Go/internal/user"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) user.Repository {
	return &UserRepository{pool: pool}
}

// GetByUsername looks a user up by canonical username, nil when unknown
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, SQLSelectUserByUsername, username).Scan(
		&u.ID,
		&u.Username,
		&u.DisplayName,
		&u.Platform,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSelectUserFailed, err)
	}
	return &u, nil
}

// Upsert registers a user or refreshes their display name, returning the user ID
func (r *UserRepository) Upsert(ctx context.Context, username, displayName, platform string) (string, error) {
	var id string
	if err := r.pool.QueryRow(ctx, SQLUpsertUser, username, displayName, platform).Scan(&id); err != nil {
		return "", fmt.Errorf(ErrMsgUpsertUserFailed, err)
	}
	return id, nil
}

package postgres

// SQL Query Constants - points ledger
const (
	// SQLSelectBalance retrieves a user's balance, zero when absent
	SQLSelectBalance = `
		SELECT COALESCE(
			(SELECT balance FROM user_points WHERE user_id = $1), 0
		)
	`

	// SQLAdjustBalance applies a signed delta to a user's balance, creating the row if needed
	SQLAdjustBalance = `
		INSERT INTO user_points (user_id, balance, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET balance = user_points.balance + EXCLUDED.balance,
		    updated_at = NOW()
	`
)

// SQL Query Constants - duel stats
const (
	// SQLRecordDuelWin upserts a win into the per-user aggregate
	SQLRecordDuelWin = `
		INSERT INTO user_duel_stats
			(user_id, duels_total, duels_won, current_streak, longest_streak, points_won, points_lost, updated_at)
		VALUES ($1, 1, 1, 1, 1, $2, 0, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET duels_total = user_duel_stats.duels_total + 1,
		    duels_won = user_duel_stats.duels_won + 1,
		    current_streak = user_duel_stats.current_streak + 1,
		    longest_streak = GREATEST(user_duel_stats.longest_streak, user_duel_stats.current_streak + 1),
		    points_won = user_duel_stats.points_won + $2,
		    updated_at = NOW()
	`

	// SQLRecordDuelLoss upserts a loss into the per-user aggregate
	SQLRecordDuelLoss = `
		INSERT INTO user_duel_stats
			(user_id, duels_total, duels_won, current_streak, longest_streak, points_won, points_lost, updated_at)
		VALUES ($1, 1, 0, 0, 0, 0, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET duels_total = user_duel_stats.duels_total + 1,
		    current_streak = 0,
		    points_lost = user_duel_stats.points_lost + $2,
		    updated_at = NOW()
	`

	// SQLSelectDuelStats retrieves the per-user aggregate
	SQLSelectDuelStats = `
		SELECT duels_total, duels_won, current_streak, longest_streak, points_won, points_lost
		FROM user_duel_stats
		WHERE user_id = $1
	`
)

// SQL Query Constants - users
const (
	// SQLSelectUserByUsername looks up a user by canonical username
	SQLSelectUserByUsername = `
		SELECT user_id, username, display_name, platform
		FROM users
		WHERE username = $1
	`

	// SQLUpsertUser registers a user or refreshes their display name
	SQLUpsertUser = `
		INSERT INTO users (username, display_name, platform, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (username) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    updated_at = NOW()
		RETURNING user_id
	`
)

// Error Message Constants
const (
	ErrMsgSelectBalanceFailed  = "failed to select balance: %w"
	ErrMsgAdjustBalanceFailed  = "failed to adjust balance: %w"
	ErrMsgRecordWinFailed      = "failed to record duel win: %w"
	ErrMsgRecordLossFailed     = "failed to record duel loss: %w"
	ErrMsgSelectStatsFailed    = "failed to select duel stats: %w"
	ErrMsgSelectUserFailed     = "failed to select user: %w"
	ErrMsgUpsertUserFailed     = "failed to upsert user: %w"
)

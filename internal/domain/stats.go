package domain

// DuelStats is the per-user lifetime duel aggregate
type DuelStats struct {
	UserID        string `json:"user_id"`
	DuelsTotal    int    `json:"duels_total"`
	DuelsWon      int    `json:"duels_won"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
	PointsWon     int64  `json:"points_won"`
	PointsLost    int64  `json:"points_lost"`
}

// WinRate returns the win percentage over all recorded duels
func (s DuelStats) WinRate() float64 {
	if s.DuelsTotal == 0 {
		return 0
	}
	return float64(s.DuelsWon) / float64(s.DuelsTotal) * 100
}

// Profit returns net points won minus points lost
func (s DuelStats) Profit() int64 {
	return s.PointsWon - s.PointsLost
}

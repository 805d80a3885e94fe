package domain

import "time"

// Challenge represents one outstanding duel offer.
// At most one Challenge may exist per requestor and at most one per target.
type Challenge struct {
	Requestor string    `json:"requestor"`
	Target    string    `json:"target"`
	Stake     int       `json:"stake"`
	CreatedAt time.Time `json:"created_at"`
}

// DuelStatus reports a user's outgoing and incoming challenges.
// Either pointer may be nil.
type DuelStatus struct {
	Outgoing *Challenge `json:"outgoing,omitempty"`
	Incoming *Challenge `json:"incoming,omitempty"`
}

// DuelResult represents the outcome of a resolved duel
type DuelResult struct {
	Winner   string `json:"winner"`
	Loser    string `json:"loser"`
	Stake    int    `json:"stake"`
	TotalPot int    `json:"total_pot"`
}

// ExtraPoints returns the points the winner gained on top of their returned stake
func (r DuelResult) ExtraPoints() int {
	return r.TotalPot - r.Stake
}

package domain

import "time"

// User represents a chat user known to the bot
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`    // canonical lowercase form
	DisplayName string    `json:"display_name"` // original casing for display
	Platform    string    `json:"platform"`
	LastActive  time.Time `json:"last_active"`
}

// ActiveWithin reports whether the user chatted within the given window of now
func (u *User) ActiveWithin(window time.Duration) bool {
	if u.LastActive.IsZero() {
		return false
	}
	return time.Since(u.LastActive) <= window
}

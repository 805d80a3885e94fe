package chat

import "context"

// Messenger sends outbound chat messages.
// Implementations deliver to the connected chat platform; tests substitute
// an in-memory fake.
type Messenger interface {
	// Say posts a public message to the channel
	Say(ctx context.Context, message string) error
	// Whisper sends a private message to a single user
	Whisper(ctx context.Context, username, message string) error
}

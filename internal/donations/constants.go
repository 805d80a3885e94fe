package donations

import "time"

// Default configuration values
const (
	// DefaultPointsPerUSD is the point award per donated dollar
	DefaultPointsPerUSD = 100

	// DefaultReconnectDelay is how long after a socket failure the next
	// connection attempt is scheduled
	DefaultReconnectDelay = 15 * time.Second

	// ReadBufferSize is the WebSocket read buffer size
	ReadBufferSize = 4096

	// WriteBufferSize is the WebSocket write buffer size
	WriteBufferSize = 4096
)

// MessageTypeDonation identifies donation messages on the feed
const MessageTypeDonation = "donation"

// Log Message Constants
const (
	LogMsgConnecting        = "Connecting to donation feed"
	LogMsgConnected         = "Connected to donation feed"
	LogMsgDisconnected      = "Donation feed disconnected, scheduling reconnect"
	LogMsgListenerStopped   = "Donation listener stopped"
	LogMsgDonationHandled   = "Donation handled"
	LogMsgFailedToCredit    = "Failed to credit donation points"
	LogMsgFailedToWhisper   = "Failed to whisper donor"
	LogMsgUnknownDonor      = "Ignoring donation from unknown user"
	LogMsgHistoricalSkipped = "Ignoring historical donation replay"
	LogMsgUnparsableMessage = "Ignoring unparsable donation feed message"
)

// Error Message Constants
const (
	ErrMsgUsernameRequired = "username is required"
	ErrMsgInvalidAmount    = "donation amount must be positive"
	ErrMsgResolveFailed    = "failed to resolve donor: %w"
	ErrMsgCreditFailed     = "failed to credit points: %w"
	ErrMsgConnectFailed    = "failed to connect to donation feed: %w"
	ErrMsgAuthFailed       = "failed to authenticate with donation feed: %w"
)

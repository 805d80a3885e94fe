package economy

// Error message constants
const (
	// ErrMsgNegativeAmount is returned when a mutation is given a negative amount
	ErrMsgNegativeAmount = "amount must be non-negative, got %d"
)

package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Log message constants
const (
	// LogMsgHandlerErrorFormat is the format string for aggregated handler errors
	LogMsgHandlerErrorFormat = "%d handler(s) failed for event %s: %v"
)

package handler

// Log message constants
const (
	LogMsgCommandOnCooldown = "Command dropped, on cooldown"
	LogMsgWhisperFailed     = "Failed to whisper user"
	LogMsgMessageProcessed  = "Message processed"
	LogMsgCommandFailed     = "Command execution failed"
)

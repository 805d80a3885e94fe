package duel

import "time"

// Default configuration values
const (
	// DefaultMinStake is the minimum (and default) stake for a duel
	DefaultMinStake = 300

	// DefaultExpiry is how long a challenge stays open before expiring
	DefaultExpiry = 60 * time.Second
)

// Log Message Constants
const (
	LogMsgChallengeIssued     = "Duel challenge issued"
	LogMsgChallengeCancelled  = "Duel challenge cancelled"
	LogMsgChallengeDeclined   = "Duel challenge declined"
	LogMsgChallengeExpired    = "Duel challenge expired"
	LogMsgChallengeAborted    = "Duel aborted at acceptance, participant can no longer afford stake"
	LogMsgDuelResolved        = "Duel resolved"
	LogMsgExcludedTarget      = "Duel target is on the exclusion list, dropping challenge"
	LogMsgSelfDuelDropped     = "Self-duel dropped"
	LogMsgWhisperFailed       = "Failed to deliver duel whisper"
	LogMsgAnnounceFailed      = "Failed to announce duel result"
	LogMsgStatsRecordFailed   = "Failed to record duel outcome stats"
	LogMsgEventPublishFailed  = "Failed to publish duel event"
	LogMsgLedgerInconsistency = "LEDGER INCONSISTENCY: stake debited without matching credit"
)

// Error Message Constants
const (
	ErrMsgDebitFailed  = "failed to debit stake: %w"
	ErrMsgCreditFailed = "failed to credit winner: %w"
	ErrMsgAffordCheck  = "failed to check affordability: %w"
)

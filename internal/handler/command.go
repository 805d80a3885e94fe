package handler

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/osse101/DuelArena_Go/internal/chat"
	"github.com/osse101/DuelArena_Go/internal/cooldown"
	"github.com/osse101/DuelArena_Go/internal/domain"
	"github.com/osse101/DuelArena_Go/internal/duel"
	"github.com/osse101/DuelArena_Go/internal/logger"
	"github.com/osse101/DuelArena_Go/internal/phrase"
	"github.com/osse101/DuelArena_Go/internal/stats"
	"github.com/osse101/DuelArena_Go/internal/user"
)

// Chat command names, matched case-insensitively after the prefix.
const (
	CommandPrefix = "!"

	CmdDuel       = "duel"
	CmdCancelDuel = "cancelduel"
	CmdAccept     = "accept"
	CmdDecline    = "decline"
	CmdDeny       = "deny"
	CmdDuelStatus = "duelstatus"
	CmdDuelStats  = "duelstats"
)

// CommandRouter dispatches chat commands to the duel and stats services.
// Service-level errors become whispers to the invoking user rather than
// public chat noise.
type CommandRouter struct {
	duelSvc   duel.Service
	statsSvc  stats.Service
	cooldowns cooldown.Service
	messenger chat.Messenger
	minStake  int
}

// NewCommandRouter creates a command router. minStake is only used to render
// the stake-too-low message; enforcement lives in the duel service.
func NewCommandRouter(duelSvc duel.Service, statsSvc stats.Service, cooldowns cooldown.Service, messenger chat.Messenger, minStake int) *CommandRouter {
	if minStake <= 0 {
		minStake = duel.DefaultMinStake
	}
	return &CommandRouter{
		duelSvc:   duelSvc,
		statsSvc:  statsSvc,
		cooldowns: cooldowns,
		messenger: messenger,
		minStake:  minStake,
	}
}

// Dispatch parses a chat line and runs the matching command.
// Returns false when the line is not a recognized command.
func (cr *CommandRouter) Dispatch(ctx context.Context, username, text string) (bool, error) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, CommandPrefix) {
		return false, nil
	}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false, nil
	}
	cmd := strings.ToLower(strings.TrimPrefix(fields[0], CommandPrefix))
	args := fields[1:]
	username = user.Canonicalize(username)

	switch cmd {
	case CmdDuel:
		return true, cr.handleDuel(ctx, username, args)
	case CmdCancelDuel:
		return true, cr.withCooldown(ctx, username, cooldown.ActionCancelDuel, func() error {
			return cr.replyOnError(ctx, username, cr.duelSvc.Cancel(ctx, username))
		})
	case CmdAccept:
		return true, cr.handleAccept(ctx, username)
	case CmdDecline, CmdDeny:
		return true, cr.replyOnError(ctx, username, cr.duelSvc.Decline(ctx, username))
	case CmdDuelStatus:
		return true, cr.withCooldown(ctx, username, cooldown.ActionDuelStatus, func() error {
			return cr.handleStatus(ctx, username)
		})
	case CmdDuelStats:
		return true, cr.withCooldown(ctx, username, cooldown.ActionDuelStats, func() error {
			return cr.handleStats(ctx, username)
		})
	}

	return false, nil
}

// withCooldown runs fn under the user's cooldown for the action. A cooldown
// hit is dropped silently: rate-limited chat commands get no reply.
func (cr *CommandRouter) withCooldown(ctx context.Context, username, action string, fn func() error) error {
	err := cr.cooldowns.EnforceCooldown(ctx, username, action, fn)
	if errors.Is(err, cooldown.ErrOnCooldown{}) {
		logger.FromContext(ctx).Debug(LogMsgCommandOnCooldown, "username", username, "action", action)
		return nil
	}
	return err
}

func (cr *CommandRouter) handleDuel(ctx context.Context, username string, args []string) error {
	if len(args) == 0 {
		cr.whisper(ctx, username, phrase.DuelUsage)
		return nil
	}

	target := args[0]
	stakeInput := ""
	if len(args) > 1 {
		stakeInput = args[1]
	}

	// The channel-wide cooldown wraps the per-user one. A failed inner
	// check propagates out, so neither cooldown is consumed.
	return cr.withCooldown(ctx, cooldown.GlobalUserID, cooldown.ActionDuelGlobal, func() error {
		return cr.withCooldown(ctx, username, cooldown.ActionDuel, func() error {
			return cr.replyOnError(ctx, username, cr.duelSvc.Initiate(ctx, username, target, stakeInput), "target", target)
		})
	})
}

func (cr *CommandRouter) handleAccept(ctx context.Context, username string) error {
	_, err := cr.duelSvc.Accept(ctx, username)
	// The duel service announces the outcome itself, and already whispers
	// both parties when the affordability re-check fails
	if errors.Is(err, domain.ErrInsufficientFunds) {
		return nil
	}
	return cr.replyOnError(ctx, username, err)
}

func (cr *CommandRouter) handleStatus(ctx context.Context, username string) error {
	status, err := cr.duelSvc.Status(ctx, username)
	if err != nil {
		return cr.replyOnError(ctx, username, err)
	}

	if status.Outgoing == nil && status.Incoming == nil {
		cr.whisper(ctx, username, phrase.DuelStatusNone)
		return nil
	}
	if status.Outgoing != nil {
		cr.whisper(ctx, username, phrase.Render(phrase.DuelStatusOutgoing, map[string]string{
			"target": status.Outgoing.Target,
			"stake":  strconv.Itoa(status.Outgoing.Stake),
		}))
	}
	if status.Incoming != nil {
		cr.whisper(ctx, username, phrase.Render(phrase.DuelStatusIncoming, map[string]string{
			"requestor": status.Incoming.Requestor,
			"stake":     strconv.Itoa(status.Incoming.Stake),
		}))
	}
	return nil
}

func (cr *CommandRouter) handleStats(ctx context.Context, username string) error {
	duelStats, err := cr.statsSvc.GetDuelStats(ctx, username)
	if err != nil {
		return cr.replyOnError(ctx, username, err)
	}

	if duelStats.DuelsTotal == 0 {
		cr.whisper(ctx, username, phrase.Render(phrase.DuelStatsEmpty, map[string]string{
			"username": username,
		}))
		return nil
	}

	cr.whisper(ctx, username, phrase.Render(phrase.DuelStatsSummary, map[string]string{
		"username":       username,
		"duels_total":    strconv.Itoa(duelStats.DuelsTotal),
		"duels_won":      strconv.Itoa(duelStats.DuelsWon),
		"win_rate":       strconv.FormatFloat(duelStats.WinRate(), 'f', 1, 64),
		"current_streak": strconv.Itoa(duelStats.CurrentStreak),
		"longest_streak": strconv.Itoa(duelStats.LongestStreak),
		"profit":         strconv.FormatInt(duelStats.Profit(), 10),
	}))
	return nil
}

// replyOnError translates recognized service errors into whispers to the
// invoking user. Unrecognized errors propagate for the caller to log.
// extra is an optional key-value pair used for message placeholders.
func (cr *CommandRouter) replyOnError(ctx context.Context, username string, err error, extra ...string) error {
	if err == nil {
		return nil
	}

	vars := map[string]string{"min_stake": strconv.Itoa(cr.minStake)}
	for i := 0; i+1 < len(extra); i += 2 {
		vars[extra[i]] = user.Canonicalize(extra[i+1])
	}

	var template string
	switch {
	case errors.Is(err, domain.ErrUnknownUser):
		template = phrase.DuelUnknownUser
	case errors.Is(err, domain.ErrInvalidAmount):
		template = phrase.DuelInvalidStake
	case errors.Is(err, domain.ErrStakeTooLow):
		template = phrase.DuelStakeTooLow
	case errors.Is(err, domain.ErrAlreadyChallenging):
		template = phrase.DuelAlreadyPending
	case errors.Is(err, domain.ErrTargetBusy):
		template = phrase.DuelTargetBusy
	case errors.Is(err, domain.ErrTargetInactive):
		template = phrase.DuelTargetInactive
	case errors.Is(err, domain.ErrInsufficientFunds):
		template = phrase.DuelCannotAfford
	case errors.Is(err, domain.ErrNoActiveRequest):
		template = phrase.DuelNoRequest
	case errors.Is(err, domain.ErrNotChallenged):
		template = phrase.DuelNotChallenged
	default:
		return err
	}

	cr.whisper(ctx, username, phrase.Render(template, vars))
	return nil
}

func (cr *CommandRouter) whisper(ctx context.Context, username, message string) {
	if err := cr.messenger.Whisper(ctx, username, message); err != nil {
		logger.FromContext(ctx).Warn(LogMsgWhisperFailed, "username", username, "error", err)
	}
}

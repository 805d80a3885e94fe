package duel

import (
	"context"
	"fmt"
	"strconv"

	"github.com/osse101/DuelArena_Go/internal/domain"
	"github.com/osse101/DuelArena_Go/internal/event"
	"github.com/osse101/DuelArena_Go/internal/logger"
	"github.com/osse101/DuelArena_Go/internal/phrase"
	"github.com/osse101/DuelArena_Go/internal/user"
)

// Accept resolves the target's incoming challenge
func (s *service) Accept(ctx context.Context, target string) (*domain.DuelResult, error) {
	log := logger.FromContext(ctx)

	target = user.Canonicalize(target)

	// Claim the challenge. Removing it here means a racing expire or
	// cancel becomes a no-op, whichever loses.
	s.mu.Lock()
	requestor, ok := s.incoming[target]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrNotChallenged
	}
	challenge := s.outgoing[requestor]
	s.remove(requestor, target)
	s.mu.Unlock()

	stake := challenge.Stake

	s.resolveMu.Lock()
	defer s.resolveMu.Unlock()

	// Balances may have dropped since initiate; the re-check sits in the
	// same critical section as the debits.
	if err := s.checkBothAfford(ctx, requestor, target, stake); err != nil {
		log.Info(LogMsgChallengeAborted,
			"requestor", requestor,
			"target", target,
			"stake", stake,
			"reason", err)

		s.whisper(ctx, requestor, phrase.Render(phrase.DuelCannotAfford, map[string]string{
			"target": target,
		}))
		s.whisper(ctx, target, phrase.Render(phrase.DuelCannotAfford, map[string]string{
			"target": requestor,
		}))
		return nil, err
	}

	result, err := s.resolve(ctx, requestor, target, stake)
	if err != nil {
		return nil, err
	}

	s.announce(ctx, result)
	s.publish(ctx, event.NewDuelResolvedEvent(result.Winner, result.Loser, result.TotalPot))

	return result, nil
}

// resolve runs the escrow sequence: debit both, pick a winner uniformly at
// random, credit the winner with the pot, and record statistics.
// Caller holds resolveMu.
func (s *service) resolve(ctx context.Context, requestor, target string, stake int) (*domain.DuelResult, error) {
	log := logger.FromContext(ctx)

	if err := s.ledger.Debit(ctx, requestor, stake); err != nil {
		return nil, fmt.Errorf(ErrMsgDebitFailed, err)
	}
	if err := s.ledger.Debit(ctx, target, stake); err != nil {
		// First debit already persisted. Points are in limbo until an
		// operator intervenes, so shout about it.
		log.Error(LogMsgLedgerInconsistency,
			"error", err,
			"debited", requestor,
			"failed_debit", target,
			"stake", stake)
		return nil, fmt.Errorf(ErrMsgDebitFailed, err)
	}

	participants := [2]string{requestor, target}
	winnerIdx := s.randInt(2)
	winner := participants[winnerIdx]
	loser := participants[1-winnerIdx]

	totalPot := 2 * stake
	if err := s.ledger.Credit(ctx, winner, totalPot); err != nil {
		log.Error(LogMsgLedgerInconsistency,
			"error", err,
			"debited", participants,
			"failed_credit", winner,
			"total_pot", totalPot)
		return nil, fmt.Errorf(ErrMsgCreditFailed, err)
	}

	result := &domain.DuelResult{
		Winner:   winner,
		Loser:    loser,
		Stake:    stake,
		TotalPot: totalPot,
	}

	if err := s.stats.RecordOutcome(ctx, *result); err != nil {
		// The duel itself completed; stats are best-effort.
		log.Error(LogMsgStatsRecordFailed, "error", err, "winner", winner, "loser", loser)
	}

	log.Info(LogMsgDuelResolved,
		"winner", winner,
		"loser", loser,
		"stake", stake,
		"total_pot", totalPot)

	return result, nil
}

// announce posts the duel outcome to the public channel
func (s *service) announce(ctx context.Context, result *domain.DuelResult) {
	message := phrase.Render(phrase.DuelWin, map[string]string{
		"winner":       result.Winner,
		"loser":        result.Loser,
		"total_pot":    strconv.Itoa(result.TotalPot),
		"extra_points": strconv.Itoa(result.ExtraPoints()),
	})
	if err := s.messenger.Say(ctx, message); err != nil {
		logger.FromContext(ctx).Warn(LogMsgAnnounceFailed, "error", err)
	}
}

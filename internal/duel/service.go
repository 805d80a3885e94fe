package duel

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/osse101/DuelArena_Go/internal/chat"
	"github.com/osse101/DuelArena_Go/internal/domain"
	"github.com/osse101/DuelArena_Go/internal/economy"
	"github.com/osse101/DuelArena_Go/internal/event"
	"github.com/osse101/DuelArena_Go/internal/logger"
	"github.com/osse101/DuelArena_Go/internal/phrase"
	"github.com/osse101/DuelArena_Go/internal/scheduler"
	"github.com/osse101/DuelArena_Go/internal/stats"
	"github.com/osse101/DuelArena_Go/internal/user"
	"github.com/osse101/DuelArena_Go/internal/worker"
)

// Service defines the interface for duel operations
type Service interface {
	// Initiate issues a challenge from requestor to targetName for the
	// given stake. An empty stakeInput uses the configured minimum.
	Initiate(ctx context.Context, requestor, targetName, stakeInput string) error
	// Cancel withdraws the requestor's outgoing challenge
	Cancel(ctx context.Context, requestor string) error
	// Accept resolves the target's incoming challenge: both stakes go
	// into escrow and a uniformly random winner takes the pot.
	Accept(ctx context.Context, target string) (*domain.DuelResult, error)
	// Decline rejects the target's incoming challenge
	Decline(ctx context.Context, target string) error
	// Status reports the user's outgoing and incoming challenges
	Status(ctx context.Context, username string) (*domain.DuelStatus, error)
}

// UserResolver resolves usernames to known users
type UserResolver interface {
	Resolve(ctx context.Context, username string) (*domain.User, error)
}

// ActivityChecker reports whether a user chatted recently enough to be challenged
type ActivityChecker interface {
	IsActive(username string) bool
}

// Scheduler registers one-shot delayed jobs for challenge expiry
type Scheduler interface {
	ScheduleOnce(delay time.Duration, job worker.Job) scheduler.Handle
}

// Config holds duel service configuration
type Config struct {
	// MinStake is the minimum and default stake
	MinStake int
	// Expiry is how long a challenge stays open
	Expiry time.Duration
	// ExcludedUsers are usernames that silently cannot be challenged
	ExcludedUsers []string
	// RandInt returns a uniform value in [0, n). Defaults to math/rand.
	RandInt func(n int) int
}

// service implements the Service interface
type service struct {
	cfg       Config
	ledger    economy.Ledger
	stats     stats.Service
	users     UserResolver
	activity  ActivityChecker
	messenger chat.Messenger
	sched     Scheduler
	eventBus  event.Bus

	excluded map[string]struct{}
	randInt  func(n int) int

	// mu guards the challenge indices. The two maps form one logical
	// record and must never be observed half-updated.
	mu       sync.Mutex
	outgoing map[string]*domain.Challenge // requestor -> challenge
	incoming map[string]string            // target -> requestor

	// resolveMu serializes escrow resolution so a concurrent duel cannot
	// observe a participant mid-debit.
	resolveMu sync.Mutex
}

// NewService creates a new duel service
func NewService(cfg Config, ledger economy.Ledger, statsSvc stats.Service, users UserResolver, activity ActivityChecker, messenger chat.Messenger, sched Scheduler, eventBus event.Bus) Service {
	if cfg.MinStake <= 0 {
		cfg.MinStake = DefaultMinStake
	}
	if cfg.Expiry <= 0 {
		cfg.Expiry = DefaultExpiry
	}

	excluded := make(map[string]struct{}, len(cfg.ExcludedUsers))
	for _, name := range cfg.ExcludedUsers {
		excluded[user.Canonicalize(name)] = struct{}{}
	}

	randInt := cfg.RandInt
	if randInt == nil {
		randInt = rand.Intn
	}

	return &service{
		cfg:       cfg,
		ledger:    ledger,
		stats:     statsSvc,
		users:     users,
		activity:  activity,
		messenger: messenger,
		sched:     sched,
		eventBus:  eventBus,
		excluded:  excluded,
		randInt:   randInt,
		outgoing:  make(map[string]*domain.Challenge),
		incoming:  make(map[string]string),
	}
}

// Initiate issues a duel challenge
func (s *service) Initiate(ctx context.Context, requestor, targetName, stakeInput string) error {
	log := logger.FromContext(ctx)

	requestor = user.Canonicalize(requestor)

	target, err := s.users.Resolve(ctx, targetName)
	if err != nil {
		return err
	}

	stake, err := s.parseStake(stakeInput)
	if err != nil {
		return err
	}

	// One outgoing challenge per user. The target's busy state is only
	// checked under the lock below, after the cheaper validations, so a
	// caller who would fail those never sees a busy reply.
	s.mu.Lock()
	if _, has := s.outgoing[requestor]; has {
		s.mu.Unlock()
		return domain.ErrAlreadyChallenging
	}
	s.mu.Unlock()

	if target.Username == requestor {
		// Self-duels vanish without feedback.
		log.Debug(LogMsgSelfDuelDropped, "requestor", requestor)
		return nil
	}

	if _, found := s.excluded[target.Username]; found {
		// Exclusion-list targets look like a sent challenge to the caller
		// but nothing is registered.
		log.Debug(LogMsgExcludedTarget, "target", target.Username)
		s.whisper(ctx, requestor, phrase.Render(phrase.DuelChallengeSent, map[string]string{
			"target": target.DisplayName,
			"stake":  strconv.Itoa(stake),
			"expiry": strconv.Itoa(int(s.cfg.Expiry.Seconds())),
		}))
		return nil
	}

	if !s.activity.IsActive(target.Username) {
		return fmt.Errorf("%w: %s", domain.ErrTargetInactive, target.Username)
	}

	if err := s.checkBothAfford(ctx, requestor, target.Username, stake); err != nil {
		return err
	}

	// Register under the lock: another initiate may have raced in while
	// the ledger was consulted, and this is the first busy check for the
	// target.
	s.mu.Lock()
	if _, has := s.outgoing[requestor]; has {
		s.mu.Unlock()
		return domain.ErrAlreadyChallenging
	}
	if _, busy := s.incoming[target.Username]; busy {
		s.mu.Unlock()
		return domain.ErrTargetBusy
	}
	challenge := &domain.Challenge{
		Requestor: requestor,
		Target:    target.Username,
		Stake:     stake,
		CreatedAt: time.Now(),
	}
	s.outgoing[requestor] = challenge
	s.incoming[target.Username] = requestor
	s.mu.Unlock()

	log.Info(LogMsgChallengeIssued,
		"requestor", requestor,
		"target", target.Username,
		"stake", stake)

	s.whisper(ctx, target.Username, phrase.Render(phrase.DuelChallengeTarget, map[string]string{
		"requestor": requestor,
		"stake":     strconv.Itoa(stake),
	}))
	s.whisper(ctx, requestor, phrase.Render(phrase.DuelChallengeSent, map[string]string{
		"target": target.DisplayName,
		"stake":  strconv.Itoa(stake),
		"expiry": strconv.Itoa(int(s.cfg.Expiry.Seconds())),
	}))

	s.publish(ctx, event.NewDuelChallengedEvent(requestor, target.Username, stake))

	// Fire-and-forget expiry. The handle is deliberately unused: expire
	// is idempotent and checks state when it runs.
	targetUsername := target.Username
	s.sched.ScheduleOnce(s.cfg.Expiry, worker.JobFunc(func(jobCtx context.Context) error {
		return s.expire(jobCtx, requestor, targetUsername)
	}))

	return nil
}

// Cancel withdraws an outgoing challenge
func (s *service) Cancel(ctx context.Context, requestor string) error {
	log := logger.FromContext(ctx)

	requestor = user.Canonicalize(requestor)

	s.mu.Lock()
	challenge, ok := s.outgoing[requestor]
	if !ok {
		s.mu.Unlock()
		return domain.ErrNoActiveRequest
	}
	s.remove(requestor, challenge.Target)
	s.mu.Unlock()

	log.Info(LogMsgChallengeCancelled, "requestor", requestor, "target", challenge.Target)

	s.whisper(ctx, requestor, phrase.Render(phrase.DuelCancelled, map[string]string{
		"target": challenge.Target,
	}))
	s.whisper(ctx, challenge.Target, phrase.Render(phrase.DuelCancelledTarget, map[string]string{
		"requestor": requestor,
	}))

	s.publish(ctx, event.NewDuelLifecycleEvent(event.DuelCancelled, requestor, challenge.Target, challenge.Stake))

	return nil
}

// Decline rejects an incoming challenge
func (s *service) Decline(ctx context.Context, target string) error {
	log := logger.FromContext(ctx)

	target = user.Canonicalize(target)

	s.mu.Lock()
	requestor, ok := s.incoming[target]
	if !ok {
		s.mu.Unlock()
		return domain.ErrNotChallenged
	}
	challenge := s.outgoing[requestor]
	s.remove(requestor, target)
	s.mu.Unlock()

	log.Info(LogMsgChallengeDeclined, "requestor", requestor, "target", target)

	s.whisper(ctx, requestor, phrase.Render(phrase.DuelDeclinedSender, map[string]string{
		"target": target,
	}))
	s.whisper(ctx, target, phrase.Render(phrase.DuelDeclinedTarget, map[string]string{
		"requestor": requestor,
	}))

	s.publish(ctx, event.NewDuelLifecycleEvent(event.DuelDeclined, requestor, target, challenge.Stake))

	return nil
}

// Status reports pending challenges for a user
func (s *service) Status(ctx context.Context, username string) (*domain.DuelStatus, error) {
	username = user.Canonicalize(username)

	s.mu.Lock()
	defer s.mu.Unlock()

	status := &domain.DuelStatus{}
	if challenge, ok := s.outgoing[username]; ok {
		copied := *challenge
		status.Outgoing = &copied
	}
	if requestor, ok := s.incoming[username]; ok {
		if challenge, ok := s.outgoing[requestor]; ok {
			copied := *challenge
			status.Incoming = &copied
		}
	}
	return status, nil
}

// expire removes a challenge that was never answered. Idempotent: if the
// challenge was already resolved, cancelled, or replaced, this is a no-op.
func (s *service) expire(ctx context.Context, requestor, target string) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	if s.incoming[target] != requestor {
		s.mu.Unlock()
		return nil
	}
	challenge, ok := s.outgoing[requestor]
	if !ok || challenge.Target != target {
		s.mu.Unlock()
		return nil
	}
	s.remove(requestor, target)
	s.mu.Unlock()

	log.Info(LogMsgChallengeExpired, "requestor", requestor, "target", target)

	s.whisper(ctx, target, phrase.Render(phrase.DuelExpiredTarget, map[string]string{
		"requestor": requestor,
	}))
	s.whisper(ctx, requestor, phrase.Render(phrase.DuelExpiredSender, map[string]string{
		"target": target,
	}))

	s.publish(ctx, event.NewDuelLifecycleEvent(event.DuelExpired, requestor, target, challenge.Stake))

	return nil
}

// remove deletes both index entries for a challenge. Caller holds mu.
func (s *service) remove(requestor, target string) {
	delete(s.outgoing, requestor)
	delete(s.incoming, target)
}

// parseStake parses the optional stake argument
func (s *service) parseStake(stakeInput string) (int, error) {
	if stakeInput == "" {
		return s.cfg.MinStake, nil
	}
	stake, err := strconv.Atoi(stakeInput)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, stakeInput)
	}
	if stake <= 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, stake)
	}
	if stake < s.cfg.MinStake {
		return 0, fmt.Errorf("%w: minimum is %d", domain.ErrStakeTooLow, s.cfg.MinStake)
	}
	return stake, nil
}

// checkBothAfford verifies both parties can cover the stake
func (s *service) checkBothAfford(ctx context.Context, requestor, target string, stake int) error {
	for _, participant := range []string{requestor, target} {
		ok, err := s.ledger.CanAfford(ctx, participant, stake)
		if err != nil {
			return fmt.Errorf(ErrMsgAffordCheck, err)
		}
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrInsufficientFunds, participant)
		}
	}
	return nil
}

// whisper delivers a private message, logging delivery failures
func (s *service) whisper(ctx context.Context, username, message string) {
	if err := s.messenger.Whisper(ctx, username, message); err != nil {
		logger.FromContext(ctx).Warn(LogMsgWhisperFailed, "error", err, "username", username)
	}
}

// publish emits an event, logging publish failures
func (s *service) publish(ctx context.Context, evt event.Event) {
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "error", err, "event_type", evt.Type)
	}
}

package subalert

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/osse101/DuelArena_Go/internal/chat"
	"github.com/osse101/DuelArena_Go/internal/economy"
	"github.com/osse101/DuelArena_Go/internal/event"
	"github.com/osse101/DuelArena_Go/internal/logger"
	"github.com/osse101/DuelArena_Go/internal/phrase"
	"github.com/osse101/DuelArena_Go/internal/scheduler"
	"github.com/osse101/DuelArena_Go/internal/user"
	"github.com/osse101/DuelArena_Go/internal/worker"
)

// Service awards points for subscriptions and thanks the subscriber
type Service interface {
	// HandleSubscription credits the subscriber, announces publicly,
	// schedules a delayed thank-you whisper, and emits a subscription
	// event. A non-empty giftedBy credits the gifter instead.
	HandleSubscription(ctx context.Context, username string, tier, months int, giftedBy string) error
}

// Scheduler registers the delayed thank-you whisper
type Scheduler interface {
	ScheduleOnce(delay time.Duration, job worker.Job) scheduler.Handle
}

// Config holds subalert configuration
type Config struct {
	// BasePoints overrides the tier 1 base award when > 0
	BasePoints int
	// WhisperDelay is the gap between announcement and thank-you whisper
	WhisperDelay time.Duration
}

// service implements the Service interface
type service struct {
	cfg       Config
	ledger    economy.Ledger
	users     user.Service
	messenger chat.Messenger
	sched     Scheduler
	eventBus  event.Bus
}

// NewService creates a new subalert service
func NewService(cfg Config, ledger economy.Ledger, users user.Service, messenger chat.Messenger, sched Scheduler, eventBus event.Bus) Service {
	if cfg.WhisperDelay <= 0 {
		cfg.WhisperDelay = DefaultWhisperDelay
	}
	return &service{
		cfg:       cfg,
		ledger:    ledger,
		users:     users,
		messenger: messenger,
		sched:     sched,
		eventBus:  eventBus,
	}
}

// HandleSubscription credits the subscriber and thanks them
func (s *service) HandleSubscription(ctx context.Context, username string, tier, months int, giftedBy string) error {
	log := logger.FromContext(ctx)

	if username == "" {
		return errors.New(ErrMsgUsernameRequired)
	}

	// Gifted subs reward the gifter, not the recipient.
	creditedName := username
	if giftedBy != "" {
		creditedName = giftedBy
	}

	credited, err := s.users.Register(ctx, creditedName, creditedName, "twitch")
	if err != nil {
		return fmt.Errorf(ErrMsgRegisterFailed, err)
	}

	base := Tier1Points
	if s.cfg.BasePoints > 0 {
		base = s.cfg.BasePoints
	}
	points := Award(base, tier, months)

	if err := s.ledger.Credit(ctx, credited.Username, points); err != nil {
		log.Error(LogMsgFailedToCredit, "error", err, "username", credited.Username, "points", points)
		return fmt.Errorf(ErrMsgCreditFailed, err)
	}

	var announcement string
	switch {
	case giftedBy != "":
		announcement = phrase.Render(phrase.SubGiftAnnounce, map[string]string{
			"gifter":   credited.DisplayName,
			"username": username,
			"points":   strconv.Itoa(points),
		})
	case months > 1:
		announcement = phrase.Render(phrase.SubResubAnnounce, map[string]string{
			"username": credited.DisplayName,
			"points":   strconv.Itoa(points),
			"months":   strconv.Itoa(months),
		})
	default:
		announcement = phrase.Render(phrase.SubPublicAnnounce, map[string]string{
			"username": credited.DisplayName,
			"points":   strconv.Itoa(points),
		})
	}
	if err := s.messenger.Say(ctx, announcement); err != nil {
		log.Warn(LogMsgFailedToAnnounce, "error", err)
	}

	// Thank-you whisper lands a few seconds later so it doesn't get
	// buried under the public alert.
	template := phrase.SubWhisperThanks
	if giftedBy != "" {
		template = phrase.SubGiftWhisperThanks
	}
	thanks := phrase.Render(template, map[string]string{
		"points": strconv.Itoa(points),
	})
	recipient := credited.Username
	s.sched.ScheduleOnce(s.cfg.WhisperDelay, worker.JobFunc(func(jobCtx context.Context) error {
		if err := s.messenger.Whisper(jobCtx, recipient, thanks); err != nil {
			logger.FromContext(jobCtx).Warn(LogMsgFailedToWhisper, "error", err, "username", recipient)
			return err
		}
		return nil
	}))

	if err := s.eventBus.Publish(ctx, event.NewSubscriptionEvent(username, tier, months, giftedBy)); err != nil {
		log.Warn(LogMsgFailedToPublish, "error", err)
	}

	log.Info(LogMsgSubscriptionHandled,
		"username", username,
		"tier", tier,
		"months", months,
		"gifted_by", giftedBy,
		"points", points)

	return nil
}

// Award computes the point award for a subscription. baseTier1 is the
// tier 1 base; tiers 2 and 3 use their fixed bases. Subscriptions past
// the first month earn a 2.5% bonus per month subscribed.
func Award(baseTier1, tier, months int) int {
	base := baseTier1
	switch tier {
	case 2:
		base = Tier2Points
	case 3:
		base = Tier3Points
	}
	if months <= 1 {
		return base
	}
	multiplier := 1 + MonthsMultiplierStep*float64(months)
	return int(float64(base) * multiplier)
}

package donations

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/osse101/DuelArena_Go/internal/chat"
	"github.com/osse101/DuelArena_Go/internal/domain"
	"github.com/osse101/DuelArena_Go/internal/economy"
	"github.com/osse101/DuelArena_Go/internal/event"
	"github.com/osse101/DuelArena_Go/internal/logger"
	"github.com/osse101/DuelArena_Go/internal/phrase"
	"github.com/osse101/DuelArena_Go/internal/user"
)

// Service converts donations into point credits
type Service interface {
	// HandleDonation credits the donor, whispers them a thank-you, and
	// emits a donation event. Donors who are not known users are ignored.
	HandleDonation(ctx context.Context, username string, amountUSD float64) error
}

// Config holds donation service configuration
type Config struct {
	// PointsPerUSD is the conversion rate from dollars to points
	PointsPerUSD int
}

// service implements the Service interface
type service struct {
	cfg       Config
	ledger    economy.Ledger
	users     user.Service
	messenger chat.Messenger
	eventBus  event.Bus
}

// NewService creates a new donation service
func NewService(cfg Config, ledger economy.Ledger, users user.Service, messenger chat.Messenger, eventBus event.Bus) Service {
	if cfg.PointsPerUSD <= 0 {
		cfg.PointsPerUSD = DefaultPointsPerUSD
	}
	return &service{
		cfg:       cfg,
		ledger:    ledger,
		users:     users,
		messenger: messenger,
		eventBus:  eventBus,
	}
}

// HandleDonation credits the donor and thanks them with a whisper
func (s *service) HandleDonation(ctx context.Context, username string, amountUSD float64) error {
	log := logger.FromContext(ctx)

	if username == "" {
		return errors.New(ErrMsgUsernameRequired)
	}
	if amountUSD <= 0 {
		return errors.New(ErrMsgInvalidAmount)
	}

	// Donors who never chatted have no user row and get no points.
	donor, err := s.users.Resolve(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownUser) {
			log.Debug(LogMsgUnknownDonor, "username", username)
			return nil
		}
		return fmt.Errorf(ErrMsgResolveFailed, err)
	}

	points := int(amountUSD * float64(s.cfg.PointsPerUSD))

	if err := s.ledger.Credit(ctx, donor.Username, points); err != nil {
		log.Error(LogMsgFailedToCredit, "error", err, "username", donor.Username, "points", points)
		return fmt.Errorf(ErrMsgCreditFailed, err)
	}

	thanks := phrase.Render(phrase.DonationThanks, map[string]string{
		"amount": strconv.FormatFloat(amountUSD, 'f', 2, 64),
		"points": strconv.Itoa(points),
	})
	if err := s.messenger.Whisper(ctx, donor.Username, thanks); err != nil {
		log.Warn(LogMsgFailedToWhisper, "error", err, "username", donor.Username)
	}

	if err := s.eventBus.Publish(ctx, event.NewDonationEvent(donor.Username, amountUSD)); err != nil {
		log.Warn("Failed to publish donation event", "error", err)
	}

	log.Info(LogMsgDonationHandled,
		"username", donor.Username,
		"amount_usd", amountUSD,
		"points", points)

	return nil
}

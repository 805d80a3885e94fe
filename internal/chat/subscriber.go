package chat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/DuelArena_Go/internal/event"
)

// Subscriber bridges internal events to Streamer.bot DoAction commands
// so overlays and alerts can react to duels, subs, and donations.
type Subscriber struct {
	client *Client
	bus    event.Bus
}

// NewSubscriber creates a new Streamer.bot event subscriber
func NewSubscriber(client *Client, bus event.Bus) *Subscriber {
	return &Subscriber{
		client: client,
		bus:    bus,
	}
}

// Subscribe registers handlers for relevant event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.DuelChallenged, s.handleDuelChallenged)
	s.bus.Subscribe(event.DuelResolved, s.handleDuelResolved)
	s.bus.Subscribe(event.SubscriptionReceived, s.handleSubscription)
	s.bus.Subscribe(event.DonationReceived, s.handleDonation)

	slog.Info("Streamer.bot subscriber registered for event types",
		"types", []string{
			string(event.DuelChallenged),
			string(event.DuelResolved),
			string(event.SubscriptionReceived),
			string(event.DonationReceived),
		})
}

// handleDuelChallenged sends a DoAction when a challenge is issued
func (s *Subscriber) handleDuelChallenged(_ context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.DuelChallengedPayloadV1)
	if !ok {
		slog.Warn("Invalid duel challenged event payload type")
		return nil
	}

	args := map[string]string{
		"requestor": payload.Requestor,
		"target":    payload.Target,
		"stake":     fmt.Sprintf("%d", payload.Stake),
	}

	slog.Debug(LogMsgEventReceived, "event_type", evt.Type, "args", args)

	if err := s.client.DoAction(ActionDuelChallenged, args); err != nil {
		// Debug level - Streamer.bot being unavailable is expected
		slog.Debug("Failed to send duel challenged to Streamer.bot", "error", err)
	}

	return nil
}

// handleDuelResolved sends a DoAction when a duel finishes
func (s *Subscriber) handleDuelResolved(_ context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.DuelResolvedPayloadV1)
	if !ok {
		slog.Warn("Invalid duel resolved event payload type")
		return nil
	}

	args := map[string]string{
		"winner":    payload.Winner,
		"loser":     payload.Loser,
		"total_pot": fmt.Sprintf("%d", payload.TotalPot),
	}

	slog.Debug(LogMsgEventReceived, "event_type", evt.Type, "args", args)

	if err := s.client.DoAction(ActionDuelResolved, args); err != nil {
		slog.Debug("Failed to send duel resolved to Streamer.bot", "error", err)
	}

	return nil
}

// handleSubscription sends a DoAction for subscription alerts
func (s *Subscriber) handleSubscription(_ context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.SubscriptionPayloadV1)
	if !ok {
		slog.Warn("Invalid subscription event payload type")
		return nil
	}

	args := map[string]string{
		"user":   payload.Username,
		"tier":   fmt.Sprintf("%d", payload.Tier),
		"months": fmt.Sprintf("%d", payload.Months),
	}

	slog.Debug(LogMsgEventReceived, "event_type", evt.Type, "args", args)

	if err := s.client.DoAction(ActionSubAlert, args); err != nil {
		slog.Debug("Failed to send subscription alert to Streamer.bot", "error", err)
	}

	return nil
}

// handleDonation sends a DoAction for donation alerts
func (s *Subscriber) handleDonation(_ context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.DonationPayloadV1)
	if !ok {
		slog.Warn("Invalid donation event payload type")
		return nil
	}

	args := map[string]string{
		"user":       payload.Username,
		"amount_usd": fmt.Sprintf("%.2f", payload.AmountUSD),
	}

	slog.Debug(LogMsgEventReceived, "event_type", evt.Type, "args", args)

	if err := s.client.DoAction(ActionDonationAlert, args); err != nil {
		slog.Debug("Failed to send donation alert to Streamer.bot", "error", err)
	}

	return nil
}

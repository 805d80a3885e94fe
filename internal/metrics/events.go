package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/DuelArena_Go/internal/event"
	"github.com/osse101/DuelArena_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.DuelChallenged,
		event.DuelResolved,
		event.DuelExpired,
		event.DuelDeclined,
		event.DuelCancelled,
		event.SubscriptionReceived,
		event.DonationReceived,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.DuelChallenged:
		DuelsChallenged.Inc()

	case event.DuelResolved:
		DuelsResolved.Inc()
		if payload, ok := evt.Payload.(event.DuelResolvedPayloadV1); ok {
			PointsWagered.Add(float64(payload.TotalPot))
		} else {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		}

	case event.DuelExpired:
		DuelsExpired.Inc()

	case event.DuelDeclined:
		DuelsDeclined.Inc()

	case event.DuelCancelled:
		DuelsCancelled.Inc()

	case event.SubscriptionReceived:
		if payload, ok := evt.Payload.(event.SubscriptionPayloadV1); ok {
			SubscriptionsTotal.WithLabelValues(strconv.Itoa(payload.Tier)).Inc()
		} else {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		}

	case event.DonationReceived:
		DonationsTotal.Inc()
		if payload, ok := evt.Payload.(event.DonationPayloadV1); ok {
			DonatedUSD.Add(payload.AmountUSD)
		} else {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		}
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/DuelArena_Go/internal/chat"
	"github.com/osse101/DuelArena_Go/internal/event"
	"github.com/osse101/DuelArena_Go/internal/metrics"
)

// EventHandlerDependencies bundles everything the event wiring needs
type EventHandlerDependencies struct {
	Bus        event.Bus
	ChatClient *chat.Client
}

// RegisterEventHandlers subscribes the cross-cutting event consumers:
// the Prometheus collector and the overlay alert forwarder.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(deps.Bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.ChatClient != nil {
		subscriber := chat.NewSubscriber(deps.ChatClient, deps.Bus)
		subscriber.Subscribe()
	}

	return nil
}

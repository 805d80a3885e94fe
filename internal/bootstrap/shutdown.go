package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/DuelArena_Go/internal/chat"
	"github.com/osse101/DuelArena_Go/internal/donations"
	"github.com/osse101/DuelArena_Go/internal/scheduler"
	"github.com/osse101/DuelArena_Go/internal/server"
	"github.com/osse101/DuelArena_Go/internal/user"
	"github.com/osse101/DuelArena_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server           *server.Server
	ChatClient       *chat.Client
	DonationListener *donations.Listener
	Scheduler        *scheduler.Scheduler
	WorkerPool       *worker.Pool
	Tracker          *user.ActiveChatterTracker
}

// GracefulShutdown stops all application components in order:
// 1. HTTP server (stop accepting new requests)
// 2. Inbound feeds (donation listener)
// 3. Scheduler (cancel pending expiry timers)
// 4. Worker pool (drain queued jobs)
// 5. Chat client and chatter tracker
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DonationListener != nil {
		slog.Info(LogMsgStoppingDonationListener)
		components.DonationListener.Stop()
	}

	if components.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		components.Scheduler.Stop()
	}

	if components.WorkerPool != nil {
		slog.Info(LogMsgStoppingWorkerPool)
		components.WorkerPool.Stop()
	}

	if components.ChatClient != nil {
		slog.Info(LogMsgStoppingChatClient)
		components.ChatClient.Stop()
	}

	if components.Tracker != nil {
		slog.Info(LogMsgStoppingChatterTracker)
		components.Tracker.Stop()
	}

	slog.Info(LogMsgServerStopped)
}

package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/DuelArena_Go/internal/bootstrap"
	"github.com/osse101/DuelArena_Go/internal/chat"
	"github.com/osse101/DuelArena_Go/internal/config"
	"github.com/osse101/DuelArena_Go/internal/cooldown"
	"github.com/osse101/DuelArena_Go/internal/database"
	"github.com/osse101/DuelArena_Go/internal/database/postgres"
	"github.com/osse101/DuelArena_Go/internal/donations"
	"github.com/osse101/DuelArena_Go/internal/duel"
	"github.com/osse101/DuelArena_Go/internal/event"
	"github.com/osse101/DuelArena_Go/internal/handler"
	"github.com/osse101/DuelArena_Go/internal/scheduler"
	"github.com/osse101/DuelArena_Go/internal/server"
	"github.com/osse101/DuelArena_Go/internal/stats"
	"github.com/osse101/DuelArena_Go/internal/subalert"
	"github.com/osse101/DuelArena_Go/internal/user"
	"github.com/osse101/DuelArena_Go/internal/worker"
)

const (
	dbMaxConns   = 10
	dbMaxIdle    = 5 * time.Minute
	dbMaxLife    = 30 * time.Minute
	workerCount  = 4
	workerQueue  = 64
	shutdownWait = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	connString := cfg.GetDBConnString()
	if err := database.Migrate(connString); err != nil {
		slog.Error("Database migration failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(connString, dbMaxConns, dbMaxIdle, dbMaxLife)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Infrastructure
	eventBus := event.NewMemoryBus()

	pool := worker.NewPool(workerCount, workerQueue)
	pool.Start()

	sched := scheduler.New(pool)

	chatClient := chat.NewClient(cfg.ChatSocketURL, cfg.ChatSocketPassword)
	chatClient.Start(ctx)

	tracker := user.NewActiveChatterTracker(cfg.DuelActivityWindow)

	// Repositories and services
	ledger := postgres.NewPointsLedger(dbPool)
	statsSvc := stats.NewService(postgres.NewDuelStatsRepository(dbPool))
	userSvc := user.NewService(postgres.NewUserRepository(dbPool))

	duelSvc := duel.NewService(duel.Config{
		MinStake:      cfg.DuelMinStake,
		Expiry:        cfg.DuelExpiry,
		ExcludedUsers: cfg.DuelExcludedUsers,
	}, ledger, statsSvc, userSvc, tracker, chatClient, sched, eventBus)

	subAlertSvc := subalert.NewService(subalert.Config{
		BasePoints:   cfg.SubPointsBase,
		WhisperDelay: cfg.SubWhisperDelay,
	}, ledger, userSvc, chatClient, sched, eventBus)

	donationSvc := donations.NewService(donations.Config{
		PointsPerUSD: cfg.DonationPointsPerUSD,
	}, ledger, userSvc, chatClient, eventBus)

	var donationListener *donations.Listener
	if cfg.DonationSocketURL != "" {
		donationListener = donations.NewListener(
			cfg.DonationSocketURL,
			cfg.DonationSocketToken,
			donationSvc,
			sched,
			cfg.DonationReconnect,
		)
		donationListener.Start(ctx)
	}

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		Bus:        eventBus,
		ChatClient: chatClient,
	}); err != nil {
		slog.Error("Event handler registration failed", "error", err)
		os.Exit(1)
	}

	// Command surface
	cooldowns := cooldown.NewService(cooldown.Config{
		DevMode: cfg.Environment == "dev",
		Cooldowns: map[string]time.Duration{
			cooldown.ActionDuel:       cfg.DuelUserCooldown,
			cooldown.ActionDuelGlobal: cfg.DuelGlobalCooldown,
			cooldown.ActionCancelDuel: cfg.CancelCooldown,
			cooldown.ActionDuelStatus: cfg.StatusCooldown,
			cooldown.ActionDuelStats:  cfg.StatsCooldown,
		},
	})
	commandRouter := handler.NewCommandRouter(duelSvc, statsSvc, cooldowns, chatClient, cfg.DuelMinStake)

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, server.Deps{
		DBPool:      dbPool,
		UserService: userSvc,
		DuelService: duelSvc,
		StatsSvc:    statsSvc,
		SubAlertSvc: subAlertSvc,
		DonationSvc: donationSvc,
		Tracker:     tracker,
		Router:      commandRouter,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig)
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownWait)
	defer shutdownCancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:           srv,
		ChatClient:       chatClient,
		DonationListener: donationListener,
		Scheduler:        sched,
		WorkerPool:       pool,
		Tracker:          tracker,
	})
}

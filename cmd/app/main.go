package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/Adventure_Go/docs"
	"github.com/osse101/Adventure_Go/internal/bootstrap"
	"github.com/osse101/Adventure_Go/internal/config"
	"github.com/osse101/Adventure_Go/internal/handler"
	"github.com/osse101/Adventure_Go/internal/scheduler"
	"github.com/osse101/Adventure_Go/internal/server"
	"github.com/osse101/Adventure_Go/internal/sse"
	"github.com/osse101/Adventure_Go/internal/worker"
)

const (
	shutdownTimeout = 30 * time.Second
	poolWorkers     = 2
	poolQueueSize   = 16
)

// @title Adventure API
// @version 1.0
// @description Group adventures, characters and trades.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg, handler.Version)
	if err != nil {
		return err
	}
	defer logFile.Close()

	for _, w := range cfg.Warnings() {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := bootstrap.LoadCatalog(cfg.ContentDir)
	if err != nil {
		return err
	}

	repos, err := bootstrap.InitializeRepositories(ctx, cfg, catalog)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		repos.Close()
		return err
	}

	svcs := bootstrap.InitializeServices(cfg, catalog, repos, publisher)

	hub := sse.NewHub()
	hub.Start()

	adventureWorker := worker.NewAdventureWorker(svcs.Sessions)
	if err := bootstrap.RegisterEventHandlers(ctx, bootstrap.EventHandlerDependencies{
		EventBus:        bus,
		Hub:             hub,
		AdventureWorker: adventureWorker,
	}); err != nil {
		hub.Stop()
		repos.Close()
		return err
	}
	adventureWorker.Start()

	pool := worker.NewPool(poolWorkers, poolQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(cfg.SweepInterval, worker.NewSweepJob(svcs.Sessions))

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, server.Dependencies{
		Readiness:  repos.ReadinessChecks(),
		Catalog:    catalog,
		Sessions:   svcs.Sessions,
		Characters: svcs.Characters,
		Trades:     svcs.Trades,
		Hub:        hub,
		Cache:      repos.CacheInspector(),
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		AdventureWorker:    adventureWorker,
		Scheduler:          sched,
		WorkerPool:         pool,
		Hub:                hub,
		ResilientPublisher: publisher,
		Repositories:       repos,
	})

	return err
}

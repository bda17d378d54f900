package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/attager/a2a-threat-center/docs"
	"github.com/attager/a2a-threat-center/internal/api/handlers"
	"github.com/attager/a2a-threat-center/internal/api/router"
	"github.com/attager/a2a-threat-center/internal/config"
	"github.com/attager/a2a-threat-center/internal/pkg/logger"
	"github.com/attager/a2a-threat-center/internal/pkg/validator"
	"github.com/attager/a2a-threat-center/internal/repository/sqlstore"
	"github.com/attager/a2a-threat-center/internal/services"
	"github.com/attager/a2a-threat-center/internal/stream"
	"github.com/attager/a2a-threat-center/internal/worker"
	"github.com/attager/a2a-threat-center/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logger.Init(log)

	if err := run(cfg, log); err != nil {
		log.FatalWithErr(err, "Server exited with error")
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlstore.New(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	migrationsFS, err := migrations.GetFS(cfg.Database.Driver)
	if err != nil {
		return err
	}
	applied, err := sqlstore.RunMigrations(db, cfg.Database.Driver, migrationsFS)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	log.WithFields(map[string]interface{}{
		"driver":  cfg.Database.Driver,
		"applied": applied,
	}).Info("Database ready")

	if cfg.Database.SeedOnStart {
		seeded, err := sqlstore.Seed(ctx, db, cfg.Database.Driver, time.Now())
		if err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
		if seeded {
			log.Info("Seeded demo roster and packet history")
		}
	}

	// Repositories
	agentRepo := sqlstore.NewAgentRepository(db, cfg.Database.Driver)
	alertRepo := sqlstore.NewAlertRepository(db, cfg.Database.Driver)
	packetRepo := sqlstore.NewPacketRepository(db, cfg.Database.Driver)

	// Services
	agentService := services.NewAgentService(agentRepo, log)
	alertService := services.NewAlertService(alertRepo, log)
	packetService := services.NewPacketService(packetRepo, log)
	overviewService := services.NewOverviewService(agentRepo, packetRepo, alertRepo, log)

	queue := stream.NewQueue(cfg.Stream.QueueCapacity, cfg.Stream.PublishTimeout)

	// Background workers
	launcher := worker.NewLauncher()
	if cfg.Generator.Enabled {
		generator := worker.NewEventGenerator(agentRepo, alertService, queue, cfg.Generator, log)
		launcher.StartIfNotRunning(ctx, generator.Run)
	} else {
		log.Warn("Event generator disabled")
	}

	refresher := worker.NewStatsRefresher(agentRepo, alertRepo, packetRepo, cfg.Stats.RefreshSchedule, log)
	if err := refresher.Start(ctx); err != nil {
		return err
	}
	defer refresher.Stop()

	h := &router.Handlers{
		Health:   handlers.NewHealthHandler(db, launcher, log),
		Stream:   handlers.NewStreamHandler(queue, log),
		Agent:    handlers.NewAgentHandler(agentService, log),
		Packet:   handlers.NewPacketHandler(packetService, log, validator.New()),
		Alert:    handlers.NewAlertHandler(alertService, log),
		Overview: handlers.NewOverviewHandler(overviewService, log),
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.New(ctx, cfg, log, h),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		// no WriteTimeout: /stream responses stay open
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(map[string]interface{}{
			"addr":        srv.Addr,
			"environment": cfg.Server.Environment,
		}).Info("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		log.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if cfg.Generator.Enabled {
		select {
		case <-launcher.Done():
		case <-shutdownCtx.Done():
			log.Warn("Event generator did not stop before the shutdown deadline")
		}
	}

	log.Info("Server stopped")
	return nil
}

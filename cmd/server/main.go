package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/iudanet/gophotel/internal/config"
	"github.com/iudanet/gophotel/internal/metrics"
	"github.com/iudanet/gophotel/internal/server"
	"github.com/iudanet/gophotel/internal/server/handlers"
	"github.com/iudanet/gophotel/internal/server/middleware"
	"github.com/iudanet/gophotel/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", os.Getenv("GOPHOTEL_CONFIG"), "Path to YAML config file")
	addr := flag.String("addr", "", "Listen address, overrides config")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Address = *addr
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	clock := clockwork.NewRealClock()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, clock, logger)
	defer limiter.Stop()

	deps := server.Deps{
		Users:       store,
		Tokens:      store,
		Rooms:       store,
		History:     store,
		DB:          store,
		Clock:       clock,
		AuthLimiter: limiter,
		Logger:      logger,
		Version:     Version,
		JWT: handlers.JWTConfig{
			Clock:           clock,
			Secret:          []byte(cfg.Auth.JWTSecret),
			AccessTokenTTL:  cfg.Auth.AccessTokenTTL,
			RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
		},
	}

	if cfg.Metrics.Enabled {
		reg := prom.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		deps.Recorder = metrics.NewHTTPRecorder(reg)
		deps.MetricsHandler = metrics.Handler(reg)
	}

	go server.RunTokenCleanup(ctx, store, clock, cfg.Auth.CleanupInterval, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      server.NewRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("GophHotel server starting",
			slog.String("addr", cfg.Server.Address),
			slog.String("version", Version),
			slog.Bool("metrics", cfg.Metrics.Enabled))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func printVersion() {
	fmt.Printf("GophHotel Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}

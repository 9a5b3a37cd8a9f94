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
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/iudanet/gophotel/internal/client/api"
	"github.com/iudanet/gophotel/internal/client/auth"
	"github.com/iudanet/gophotel/internal/client/cli"
	"github.com/iudanet/gophotel/internal/client/iocli"
	"github.com/iudanet/gophotel/internal/client/storage/boltdb"
	"github.com/iudanet/gophotel/internal/metrics"
	"github.com/iudanet/gophotel/internal/optimistic"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// .env необязателен: переменные окружения могут быть заданы иначе
	_ = godotenv.Load()

	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", envOr("GOPHOTEL_SERVER", "http://localhost:8080"), "Server URL")
	dbPath := flag.String("db", envOr("GOPHOTEL_DB", "gophotel-client.db"), "Path to local database")
	metricsAddr := flag.String("metrics", os.Getenv("GOPHOTEL_METRICS_ADDR"), "Expose board metrics on this address")
	logLevel := flag.String("log-level", envOr("GOPHOTEL_LOG_LEVEL", "warn"), "Log level: debug, info, warn, error")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(*logLevel)}))

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.New(cli.Options{IO: stdio, Logger: logger}).PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	clock := clockwork.NewRealClock()
	apiClient := api.NewClient(*serverURL)
	authService := auth.NewAuthService(apiClient, boltStorage, clock, logger)

	var recorder optimistic.Recorder
	if *metricsAddr != "" {
		recorder = serveMetrics(*metricsAddr, logger)
	}

	c := cli.New(cli.Options{
		IO:          stdio,
		AuthService: authService,
		// Токен берется из сессии перед каждым запросом и обновляется по мере истечения
		Backend:  apiClient.WithTokenSource(authService.AccessToken),
		Cache:    boltStorage,
		Recorder: recorder,
		Clock:    clock,
		Logger:   logger,
	})

	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUnknownCommand) {
			c.PrintUsage()
		}
		stop()
		os.Exit(1)
	}
}

// serveMetrics поднимает /metrics для счетчиков доски
func serveMetrics(addr string, logger *slog.Logger) optimistic.Recorder {
	reg := prom.NewRegistry()
	recorder := metrics.NewMutationRecorder(reg)

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()
	return recorder
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelWarn
	}
	return level
}

func printVersion() {
	fmt.Printf("GophHotel Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}

// The qawave daemon claims queued QA runs and drives them through the
// generation/execution/evaluation pipeline. Journal events stream over
// the event bus as each stage commits.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/qawave/qawave/pkg/ai"
	"github.com/qawave/qawave/pkg/cleanup"
	"github.com/qawave/qawave/pkg/config"
	"github.com/qawave/qawave/pkg/database"
	"github.com/qawave/qawave/pkg/events"
	"github.com/qawave/qawave/pkg/openapi"
	"github.com/qawave/qawave/pkg/pipeline"
	"github.com/qawave/qawave/pkg/queue"
	"github.com/qawave/qawave/pkg/services"
	"github.com/qawave/qawave/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID picks the identity this replica claims runs under:
// POD_ID if set, else HOSTNAME, else "local".
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Directory holding qawave.yaml and .env")
	flag.Parse()

	// Optional .env beside qawave.yaml.
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("No .env file, using process environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Environment file loaded", "path", envPath)
	}

	podID := resolvePodID()

	slog.Info("Starting QAWave",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration (defaults, qawave.yaml, env overrides)
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Configuration load failed", "error", err)
		os.Exit(1)
	}

	// 2. Database client (pool plus embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Database configuration error", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Database close failed", "error", err)
		}
	}()
	slog.Info("Database connected, migrations applied")

	// 3. Event bus: journal writes are mirrored to pg_notify, the listener
	// fans them out to in-process subscribers
	broker := events.NewBroker()
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), broker)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Event listener failed to start", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	broker.SetListener(notifyListener)

	eventPublisher := events.NewEventPublisher(dbClient.DB())
	slog.Info("Event bus initialized")

	// 4. Domain services
	runService := services.NewRunService(dbClient.Client, eventPublisher)
	resultService := services.NewResultService(dbClient.Client)
	slog.Info("Domain services ready")

	// 5. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, runService, podID); err != nil {
		slog.Error("Startup orphan recovery failed", "error", err)
		// non-fatal; the periodic scan retries
	}

	// 6. AI provider client and spec fetcher
	aiClient := ai.NewHTTPClient(ai.HTTPClientConfig{
		BaseURL:        cfg.AI.BaseURL,
		APIKey:         cfg.AI.APIKey(),
		Model:          cfg.AI.Model,
		Path:           cfg.AI.Path,
		Temperature:    cfg.AI.Temperature,
		MaxTokens:      cfg.AI.MaxTokens,
		RequestTimeout: cfg.AI.RequestTimeout,
		ExtraHeaders:   cfg.AI.ExtraHeaders,
	})
	fetcher := openapi.NewFetcher()
	slog.Info("AI provider client initialized", "base_url", cfg.AI.BaseURL, "model", cfg.AI.Model)

	// 7. Pipeline executor and worker pool
	executor := pipeline.NewExecutor(cfg, dbClient.Client, runService, fetcher, aiClient)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, runService, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Worker pool failed to start", "error", err)
		os.Exit(1)
	}

	// 8. Retention loop (purges old terminal runs, scrubs stored bodies)
	cleanupService := cleanup.NewService(cfg.Retention, runService, resultService)
	cleanupService.Start(ctx)

	slog.Info("QAWave started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 9. Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	// 10. Drain, bounded by the shutdown grace period
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer shutdownCancel()

	// Retention loop first; it only issues bounded deletes.
	cleanupService.Stop()

	// The pool drain can outlast the grace window, so cap the wait.
	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool drained")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown grace period exceeded, unfinished runs will be orphan-recovered")
	}

	slog.Info("QAWave stopped")
}

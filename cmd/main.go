package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"adcraft/internal/adapter/genai"
	httpadapter "adcraft/internal/adapter/http"
	"adcraft/internal/adapter/postgres"
	"adcraft/internal/adapter/storage"
	"adcraft/internal/adapter/usecase"
	"adcraft/internal/config"
	"adcraft/internal/core/port"
	"adcraft/internal/db"
)

// main is the entry point of the adcraft service. It loads configuration,
// optionally runs database migrations, initializes the database pool, the
// GenAI clients and the media store, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// A local .env is a convenience for development; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seeding error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	client, err := genaiclient.NewClient(ctx, cfg.GenAI.APIKey)
	if err != nil {
		logger.Error("genai client error", slog.Any("error", err))
		os.Exit(1)
	}

	store, err := storage.NewDiskStore(cfg.Storage.Dir, cfg.Storage.BaseURL)
	if err != nil {
		logger.Error("media store error", slog.Any("error", err))
		os.Exit(1)
	}

	// An empty image model disables the imagery stage entirely.
	var imager port.ImageGenerator
	if cfg.GenAI.ImageModel != "" {
		imager = genaiclient.NewImageGenerator(client, cfg.GenAI.ImageModel, store)
	} else {
		logger.Info("image generation disabled")
	}

	repo := postgres.NewCampaignRepository(pool)
	svc := usecase.NewCreativeService(
		repo,
		genaiclient.NewEmbedder(client, cfg.GenAI.EmbedModel),
		genaiclient.NewTextGenerator(client, cfg.GenAI.TextModel),
		imager,
		logger,
		usecase.Options{
			TopK:            cfg.Images.TopK,
			Temperature:     cfg.GenAI.Temperature,
			ImageBatchSize:  cfg.Images.BatchSize,
			ImageBatchPause: cfg.Images.BatchPause,
		},
	)

	handler := httpadapter.NewHandler(svc, logger, store.Dir())
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	// The signal context is already cancelled here; the drain deadline
	// needs a fresh parent.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

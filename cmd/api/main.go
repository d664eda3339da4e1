package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-service/internal/config"
	"catalog-service/internal/database"
	"catalog-service/internal/handler"
	"catalog-service/internal/metrics"
	"catalog-service/internal/repository"
	"catalog-service/internal/router"
	"catalog-service/internal/seed"
	"catalog-service/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting catalog API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.EnsureSchema {
		if err := database.EnsureSchema(ctx, pool, logger); err != nil {
			return err
		}
	}

	// Repositories
	categoryRepo := repository.NewCategoryRepository(pool, logger)
	productRepo := repository.NewProductRepository(pool, logger)
	reviewRepo := repository.NewReviewRepository(pool, logger)

	// Services
	categoryService := service.NewCategoryService(categoryRepo, logger)
	productService := service.NewProductService(productRepo, categoryRepo, logger)
	reviewService := service.NewReviewService(reviewRepo, productRepo, logger)

	if cfg.Seed.File != "" {
		if err := seedCategories(ctx, cfg, categoryService, logger); err != nil {
			return err
		}
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	mux := router.New(router.Handlers{
		Category: handler.NewCategoryHandler(categoryService, logger),
		Product:  handler.NewProductHandler(productService, logger),
		Review:   handler.NewReviewHandler(reviewService, logger),
		Health:   handler.NewHealthHandler(pool, logger),
	}, m, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Bool("metrics", cfg.Metrics.Enabled).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// seedCategories creates the categories listed in the configured seed file,
// reading it from S3 first when S3 is enabled.
func seedCategories(ctx context.Context, cfg *config.Config, categories seed.CategoryCreator, logger zerolog.Logger) error {
	fileLoader := seed.NewFileLoader(logger)

	var s3Loader seed.Loader
	if cfg.S3.Enabled {
		var err error
		s3Loader, err = seed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			s3Loader = nil
		}
	} else {
		logger.Info().Msg("using local file system for seed file (S3 disabled)")
	}

	loader := seed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, logger)

	created, err := seed.NewSeeder(loader, categories, logger).Run(ctx, cfg.Seed.File)
	if err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	logger.Info().Int("created", created).Str("file", cfg.Seed.File).Msg("categories seeded")
	return nil
}

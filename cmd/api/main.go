package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tcshield-lab/internal/api"
	"tcshield-lab/internal/api/handlers"
	"tcshield-lab/internal/config"
	"tcshield-lab/internal/domain/services"
	"tcshield-lab/internal/infrastructure/cache"
	"tcshield-lab/internal/infrastructure/database"
	"tcshield-lab/internal/infrastructure/database/repository"
	"tcshield-lab/pkg/logger"
)

func main() {
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	var log *logger.Logger
	if cfg.App.Environment == "production" {
		log = logger.NewProduction()
	} else {
		log = logger.NewDevelopment()
	}
	logger.SetGlobal(log)

	log.Info().
		Str("environment", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("starting tcshield API server")

	ctx := context.Background()

	// Redis is required; the whole analysis pipeline caches through it.
	redisCache, err := cache.NewRedis(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer redisCache.Close()

	// Postgres is optional. Without it the server runs with history disabled.
	var repos *repository.Repositories
	db, err := database.NewPostgres(ctx, cfg.Database, log)
	if err != nil {
		log.Warn().Err(err).Msg("database unavailable, analysis history disabled")
	} else {
		defer db.Close()
		repos = repository.NewRepositories(db.Pool())
	}

	settingsService := services.NewSettingsService(redisCache, log)
	pageService := services.NewPageService(redisCache, cfg.Analysis, log)
	analyzer := services.NewAnalyzer(cfg.Analysis, cfg.HuggingFace, settingsService, redisCache, repos, log)

	h := handlers.NewHandlers(handlers.Dependencies{
		Analyzer: analyzer,
		Pages:    pageService,
		Settings: settingsService,
		Cache:    redisCache,
		Repos:    repos,
		Logger:   log,
	})

	router := api.NewRouter(*cfg, h, redisCache, log)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

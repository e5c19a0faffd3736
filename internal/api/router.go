package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"tcshield-lab/internal/api/handlers"
	apimiddleware "tcshield-lab/internal/api/middleware"
	"tcshield-lab/internal/config"
	"tcshield-lab/internal/infrastructure/cache"
	"tcshield-lab/pkg/logger"
)

// Router holds dependencies for the API router
type Router struct {
	config   config.Config
	handlers *handlers.Handlers
	cache    *cache.RedisCache
	logger   *logger.Logger
}

// NewRouter creates a new Router instance
func NewRouter(cfg config.Config, h *handlers.Handlers, c *cache.RedisCache, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		handlers: h,
		cache:    c,
		logger:   log.WithComponent("router"),
	}
}

// Setup sets up the Chi router with all routes and middleware
func (r *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Core middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(apimiddleware.Logger(r.logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.config.CORS.AllowedOrigins,
		AllowedMethods:   r.config.CORS.AllowedMethods,
		AllowedHeaders:   r.config.CORS.AllowedHeaders,
		AllowCredentials: r.config.CORS.AllowCredentials,
		MaxAge:           r.config.CORS.MaxAge,
	}))

	// Rate limiting
	if r.config.RateLimit.Enabled {
		router.Use(apimiddleware.RateLimiter(r.cache, r.config.RateLimit))
	}

	// Public routes
	router.Group(func(pub chi.Router) {
		// Health check
		pub.Get("/health", r.handlers.Health.Check)
		pub.Get("/ready", r.handlers.Health.Ready)

		// Public stats
		pub.Get("/api/v1/stats", r.handlers.Stats.Get)
	})

	// API v1 routes (authenticated)
	router.Route("/api/v1", func(api chi.Router) {
		if r.config.Auth.Enabled {
			api.Use(apimiddleware.APIKeyAuth(r.config.Auth.APIKey))
		}

		// Page snapshots from the extraction client
		api.Route("/pages", func(pages chi.Router) {
			pages.Post("/", r.handlers.Pages.Store)
			pages.Get("/last", r.handlers.Pages.Last)
		})

		// Document analysis
		api.Route("/analyze", func(analyze chi.Router) {
			analyze.Post("/", r.handlers.Analyze.Analyze)
			analyze.Get("/{id}", r.handlers.Analyze.Get)
		})

		// Phrase catalogue
		api.Route("/lexicon", func(lex chi.Router) {
			lex.Get("/", r.handlers.Lexicon.Get)
			lex.Get("/patterns", r.handlers.Lexicon.GetPatterns)
		})

		// Settings and custom keywords
		api.Route("/settings", func(settings chi.Router) {
			settings.Get("/", r.handlers.Settings.Get)
			settings.Put("/", r.handlers.Settings.Update)
			settings.Post("/keywords", r.handlers.Settings.AddKeywords)
			settings.Delete("/keywords/{phrase}", r.handlers.Settings.RemoveKeyword)
		})

		// Analysis history
		api.Route("/reports", func(reports chi.Router) {
			reports.Get("/", r.handlers.Reports.List)
			reports.Get("/{id}", r.handlers.Reports.Get)
		})
	})

	return router
}

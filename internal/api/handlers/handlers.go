package handlers

import (
	"tcshield-lab/internal/domain/services"
	"tcshield-lab/internal/infrastructure/cache"
	"tcshield-lab/internal/infrastructure/database/repository"
	"tcshield-lab/pkg/logger"
)

// Handlers holds all API handlers
type Handlers struct {
	Health   *HealthHandler
	Analyze  *AnalyzeHandler
	Pages    *PagesHandler
	Lexicon  *LexiconHandler
	Settings *SettingsHandler
	Reports  *ReportsHandler
	Stats    *StatsHandler
}

// Dependencies holds dependencies for handlers
type Dependencies struct {
	Analyzer *services.Analyzer
	Pages    *services.PageService
	Settings *services.SettingsService
	Cache    *cache.RedisCache
	Repos    *repository.Repositories
	Logger   *logger.Logger
}

// NewHandlers creates all handlers
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(deps.Cache, deps.Repos, deps.Logger),
		Analyze:  NewAnalyzeHandler(deps.Analyzer, deps.Pages, deps.Logger),
		Pages:    NewPagesHandler(deps.Pages, deps.Logger),
		Lexicon:  NewLexiconHandler(deps.Analyzer, deps.Logger),
		Settings: NewSettingsHandler(deps.Settings, deps.Logger),
		Reports:  NewReportsHandler(deps.Repos, deps.Logger),
		Stats:    NewStatsHandler(deps.Analyzer, deps.Cache, deps.Repos, deps.Logger),
	}
}

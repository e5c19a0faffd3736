package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"tcshield-lab/internal/domain/models"
	"tcshield-lab/internal/domain/services"
	"tcshield-lab/internal/infrastructure/cache"
	"tcshield-lab/internal/infrastructure/database/repository"
	"tcshield-lab/pkg/logger"
)

// StatsHandler serves aggregate service statistics
type StatsHandler struct {
	analyzer *services.Analyzer
	cache    *cache.RedisCache
	repos    *repository.Repositories
	logger   *logger.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(analyzer *services.Analyzer, c *cache.RedisCache, repos *repository.Repositories, log *logger.Logger) *StatsHandler {
	return &StatsHandler{
		analyzer: analyzer,
		cache:    c,
		repos:    repos,
		logger:   log.WithComponent("stats-handler"),
	}
}

// StatsResponse is the aggregate stats payload
type StatsResponse struct {
	AnalysesRun  int64            `json:"analyses_run"`
	ByStatus     map[string]int64 `json:"by_status"`
	AverageScore float64          `json:"average_score,omitempty"`
	LexiconSizes map[string]int   `json:"lexicon_sizes"`
}

// Get handles GET /api/v1/stats
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	lexicon := h.analyzer.Lexicon()
	response := StatsResponse{
		ByStatus: make(map[string]int64),
		LexiconSizes: map[string]int{
			string(models.SeverityHigh):   len(lexicon.High),
			string(models.SeverityMedium): len(lexicon.Medium),
			string(models.SeverityLow):    len(lexicon.Low),
		},
	}

	// Live counters from Redis
	if val, err := h.cache.Get(r.Context(), cache.KeyStatAnalyses); err == nil {
		response.AnalysesRun, _ = strconv.ParseInt(val, 10, 64)
	}
	for _, status := range []models.Status{models.StatusSafe, models.StatusWarning, models.StatusDanger} {
		if val, err := h.cache.Get(r.Context(), cache.KeyStatStatusPrefix+string(status)); err == nil {
			count, _ := strconv.ParseInt(val, 10, 64)
			response.ByStatus[string(status)] = count
		}
	}

	// Durable aggregates from the database when present
	if h.repos != nil {
		if stats, err := h.repos.Analyses.GetStats(r.Context()); err != nil {
			h.logger.Debug().Err(err).Msg("failed to load history stats")
		} else {
			response.AverageScore = stats.AverageScore
			if stats.TotalCount > response.AnalysesRun {
				response.AnalysesRun = stats.TotalCount
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

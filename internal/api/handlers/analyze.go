package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tcshield-lab/internal/domain/services"
	"tcshield-lab/pkg/logger"
)

// AnalyzeHandler handles document analysis endpoints
type AnalyzeHandler struct {
	analyzer *services.Analyzer
	pages    *services.PageService
	logger   *logger.Logger
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(analyzer *services.Analyzer, pages *services.PageService, log *logger.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
		pages:    pages,
		logger:   log.WithComponent("analyze-handler"),
	}
}

// AnalyzeRequest is the request body for document analysis. Text may be
// empty, in which case the last stored page snapshot is analyzed.
type AnalyzeRequest struct {
	Text  string `json:"text,omitempty"`
	URL   string `json:"url,omitempty"`
	Title string `json:"title,omitempty"`
}

// Analyze handles POST /api/v1/analyze
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Text == "" {
		page, err := h.pages.Last(r.Context())
		if err != nil || page == nil {
			http.Error(w, `{"error":"No page data available. Try refreshing the page."}`, http.StatusNotFound)
			return
		}
		req.Text = page.Text
		if req.URL == "" {
			req.URL = page.URL
		}
		if req.Title == "" {
			req.Title = page.Title
		}
	}

	result, err := h.analyzer.Analyze(r.Context(), req.URL, req.Title, req.Text)
	if err != nil {
		h.logger.Error().Err(err).Msg("analysis failed")
		http.Error(w, "Analysis failed", http.StatusInternalServerError)
		return
	}

	h.logger.Info().
		Str("analysis_id", result.ID.String()).
		Int("total_risks", result.TotalRisks).
		Int("risk_score", result.RiskScore).
		Str("status", string(result.Status)).
		Msg("document analyzed")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Get handles GET /api/v1/analyze/{id} - clients poll this to pick up the
// remote augmentation once it lands.
func (h *AnalyzeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid analysis ID", http.StatusBadRequest)
		return
	}

	result, err := h.analyzer.GetResult(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Str("analysis_id", id.String()).Msg("failed to load analysis result")
		http.Error(w, "Failed to load analysis", http.StatusInternalServerError)
		return
	}
	if result == nil {
		http.Error(w, "Analysis not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

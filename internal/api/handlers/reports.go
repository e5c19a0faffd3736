package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tcshield-lab/internal/infrastructure/database/repository"
	"tcshield-lab/pkg/logger"
)

// ReportsHandler serves analysis history from the database
type ReportsHandler struct {
	repos  *repository.Repositories
	logger *logger.Logger
}

// NewReportsHandler creates a new reports handler
func NewReportsHandler(repos *repository.Repositories, log *logger.Logger) *ReportsHandler {
	return &ReportsHandler{
		repos:  repos,
		logger: log.WithComponent("reports-handler"),
	}
}

// List handles GET /api/v1/reports
func (h *ReportsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.repos == nil {
		http.Error(w, "History not available", http.StatusServiceUnavailable)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	analyses, err := h.repos.Analyses.List(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list analyses")
		http.Error(w, "Failed to list reports", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"reports": analyses,
		"count":   len(analyses),
	})
}

// Get handles GET /api/v1/reports/{id}
func (h *ReportsHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.repos == nil {
		http.Error(w, "History not available", http.StatusServiceUnavailable)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid report ID", http.StatusBadRequest)
		return
	}

	analysis, err := h.repos.Analyses.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Str("report_id", id.String()).Msg("failed to load report")
		http.Error(w, "Failed to load report", http.StatusInternalServerError)
		return
	}
	if analysis == nil {
		http.Error(w, "Report not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analysis)
}

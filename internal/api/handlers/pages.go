package handlers

import (
	"encoding/json"
	"net/http"

	"tcshield-lab/internal/domain/models"
	"tcshield-lab/internal/domain/services"
	"tcshield-lab/pkg/logger"
)

// PagesHandler handles page snapshot endpoints
type PagesHandler struct {
	pages  *services.PageService
	logger *logger.Logger
}

// NewPagesHandler creates a new pages handler
func NewPagesHandler(pages *services.PageService, log *logger.Logger) *PagesHandler {
	return &PagesHandler{
		pages:  pages,
		logger: log.WithComponent("pages-handler"),
	}
}

// PageRequest is the request body for posting a page snapshot
type PageRequest struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Store handles POST /api/v1/pages
func (h *PagesHandler) Store(w http.ResponseWriter, r *http.Request) {
	var req PageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Text == "" {
		http.Error(w, "Page text is required", http.StatusBadRequest)
		return
	}

	page := &models.PageSnapshot{
		URL:   req.URL,
		Title: req.Title,
		Text:  req.Text,
	}

	if err := h.pages.Store(r.Context(), page); err != nil {
		h.logger.Error().Err(err).Msg("failed to store page snapshot")
		http.Error(w, "Failed to store page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(page)
}

// Last handles GET /api/v1/pages/last
func (h *PagesHandler) Last(w http.ResponseWriter, r *http.Request) {
	page, err := h.pages.Last(r.Context())
	if err != nil || page == nil {
		http.Error(w, "No page data available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(page)
}

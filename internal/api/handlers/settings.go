package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"tcshield-lab/internal/domain/models"
	"tcshield-lab/internal/domain/services"
	"tcshield-lab/pkg/logger"
)

// SettingsHandler handles settings endpoints
type SettingsHandler struct {
	settings *services.SettingsService
	logger   *logger.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings *services.SettingsService, log *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		settings: settings,
		logger:   log.WithComponent("settings-handler"),
	}
}

// Get handles GET /api/v1/settings. The API key is redacted to its prefix.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load settings")
		http.Error(w, "Failed to load settings", http.StatusInternalServerError)
		return
	}

	if len(settings.HFAPIKey) > 7 {
		settings.HFAPIKey = settings.HFAPIKey[:7] + "..."
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}

// Update handles PUT /api/v1/settings
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.settings.Save(r.Context(), settings); err != nil {
		if errors.Is(err, services.ErrInvalidHFKey) {
			http.Error(w, "Please enter a valid Hugging Face API key", http.StatusBadRequest)
			return
		}
		h.logger.Error().Err(err).Msg("failed to save settings")
		http.Error(w, "Failed to save settings", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// KeywordsRequest is the request body for adding custom keywords
type KeywordsRequest struct {
	Keywords []models.CustomKeyword `json:"keywords"`
}

// AddKeywords handles POST /api/v1/settings/keywords
func (h *SettingsHandler) AddKeywords(w http.ResponseWriter, r *http.Request) {
	var req KeywordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.Keywords) == 0 {
		http.Error(w, "At least one keyword is required", http.StatusBadRequest)
		return
	}

	added, err := h.settings.AddKeywords(r.Context(), req.Keywords)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to add keywords")
		http.Error(w, "Failed to add keywords", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"added": added})
}

// RemoveKeyword handles DELETE /api/v1/settings/keywords/{phrase}
func (h *SettingsHandler) RemoveKeyword(w http.ResponseWriter, r *http.Request) {
	phrase, err := url.PathUnescape(chi.URLParam(r, "phrase"))
	if err != nil || phrase == "" {
		http.Error(w, "Invalid keyword", http.StatusBadRequest)
		return
	}

	removed, err := h.settings.RemoveKeyword(r.Context(), phrase)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to remove keyword")
		http.Error(w, "Failed to remove keyword", http.StatusInternalServerError)
		return
	}
	if !removed {
		http.Error(w, "Keyword not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

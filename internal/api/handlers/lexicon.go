package handlers

import (
	"encoding/json"
	"net/http"

	"tcshield-lab/internal/domain/models"
	"tcshield-lab/internal/domain/services"
	"tcshield-lab/pkg/logger"
)

// patternsVersion bumps when the built-in catalogue changes so clients can
// cache the highlighting patterns.
const patternsVersion = 2

// LexiconHandler serves the phrase catalogue
type LexiconHandler struct {
	analyzer *services.Analyzer
	logger   *logger.Logger
}

// NewLexiconHandler creates a new lexicon handler
func NewLexiconHandler(analyzer *services.Analyzer, log *logger.Logger) *LexiconHandler {
	return &LexiconHandler{
		analyzer: analyzer,
		logger:   log.WithComponent("lexicon-handler"),
	}
}

// Get handles GET /api/v1/lexicon - the full catalogue with tier counts
func (h *LexiconHandler) Get(w http.ResponseWriter, r *http.Request) {
	lexicon := h.analyzer.Lexicon()

	response := struct {
		Lexicon models.Lexicon `json:"lexicon"`
		Counts  map[string]int `json:"counts"`
		Total   int            `json:"total"`
	}{
		Lexicon: lexicon,
		Counts: map[string]int{
			string(models.SeverityHigh):   len(lexicon.High),
			string(models.SeverityMedium): len(lexicon.Medium),
			string(models.SeverityLow):    len(lexicon.Low),
		},
		Total: lexicon.Size(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetPatterns handles GET /api/v1/lexicon/patterns - phrase lists plus page
// indicators, for client-side highlighting.
func (h *LexiconHandler) GetPatterns(w http.ResponseWriter, r *http.Request) {
	lexicon := h.analyzer.Lexicon()

	phrases := func(entries []models.PhraseEntry) []string {
		out := make([]string, len(entries))
		for i, e := range entries {
			out[i] = e.Phrase
		}
		return out
	}

	response := struct {
		Version    int      `json:"version"`
		High       []string `json:"high"`
		Medium     []string `json:"medium"`
		Low        []string `json:"low"`
		Indicators []string `json:"tc_page_indicators"`
	}{
		Version:    patternsVersion,
		High:       phrases(lexicon.High),
		Medium:     phrases(lexicon.Medium),
		Low:        phrases(lexicon.Low),
		Indicators: services.TCPageIndicators(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

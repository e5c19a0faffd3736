package models

import "strings"

// CustomKeyword is a user-defined phrase added to the lexicon at match time.
type CustomKeyword struct {
	Phrase      string   `json:"phrase"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description,omitempty"`
}

// Settings holds the per-deployment analysis preferences.
type Settings struct {
	EnableHighlighting bool            `json:"enable_highlighting"`
	AutoAnalyze        bool            `json:"auto_analyze"`
	SensitivityLevel   string          `json:"sensitivity_level"`
	EnableHF           bool            `json:"enable_hf"`
	HFAPIKey           string          `json:"hf_api_key,omitempty"`
	SaveAnalytics      bool            `json:"save_analytics"`
	CustomKeywords     []CustomKeyword `json:"custom_keywords"`
}

// DefaultSettings returns the settings applied before anything is saved.
func DefaultSettings() Settings {
	return Settings{
		EnableHighlighting: true,
		AutoAnalyze:        true,
		SensitivityLevel:   "medium",
		SaveAnalytics:      true,
	}
}

// ValidHFAPIKey reports whether key looks like a Hugging Face token.
func ValidHFAPIKey(key string) bool {
	return strings.HasPrefix(key, "hf_") && len(key) > 10
}

// RemoteEnabled reports whether remote augmentation may run at all.
func (s Settings) RemoteEnabled() bool {
	return s.EnableHF && ValidHFAPIKey(s.HFAPIKey)
}

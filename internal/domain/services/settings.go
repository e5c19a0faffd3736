package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"tcshield-lab/internal/domain/models"
	"tcshield-lab/internal/infrastructure/cache"
	"tcshield-lab/pkg/logger"
)

// ErrInvalidHFKey is returned when remote augmentation is enabled with a
// key that does not look like a Hugging Face token.
var ErrInvalidHFKey = errors.New("huggingface integration enabled but API key is invalid")

// SettingsService stores analysis preferences in Redis. Settings persist
// without TTL; reads fall back to defaults when nothing has been saved.
type SettingsService struct {
	cache  *cache.RedisCache
	logger *logger.Logger
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(c *cache.RedisCache, log *logger.Logger) *SettingsService {
	return &SettingsService{
		cache:  c,
		logger: log.WithComponent("settings"),
	}
}

// Get returns the stored settings, or defaults when none are stored.
func (s *SettingsService) Get(ctx context.Context) (models.Settings, error) {
	var settings models.Settings
	err := s.cache.GetJSON(ctx, cache.KeySettings, &settings)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.DefaultSettings(), nil
		}
		return models.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// Save validates and stores the settings.
func (s *SettingsService) Save(ctx context.Context, settings models.Settings) error {
	if settings.EnableHF && !models.ValidHFAPIKey(settings.HFAPIKey) {
		return ErrInvalidHFKey
	}
	if settings.SensitivityLevel == "" {
		settings.SensitivityLevel = "medium"
	}
	if err := s.cache.SetJSON(ctx, cache.KeySettings, settings, 0); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	s.logger.Info().
		Bool("hf_enabled", settings.EnableHF).
		Int("custom_keywords", len(settings.CustomKeywords)).
		Msg("settings saved")
	return nil
}

// AddKeywords appends custom keywords, skipping duplicates (case-insensitive
// on phrase) and blank phrases. Returns the number actually added.
func (s *SettingsService) AddKeywords(ctx context.Context, keywords []models.CustomKeyword) (int, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}

	existing := make(map[string]bool, len(settings.CustomKeywords))
	for _, kw := range settings.CustomKeywords {
		existing[strings.ToLower(kw.Phrase)] = true
	}

	added := 0
	for _, kw := range keywords {
		kw.Phrase = strings.TrimSpace(kw.Phrase)
		if kw.Phrase == "" || existing[strings.ToLower(kw.Phrase)] {
			continue
		}
		if !kw.Severity.Valid() {
			kw.Severity = models.SeverityMedium
		}
		settings.CustomKeywords = append(settings.CustomKeywords, kw)
		existing[strings.ToLower(kw.Phrase)] = true
		added++
	}

	if added == 0 {
		return 0, nil
	}
	return added, s.Save(ctx, settings)
}

// RemoveKeyword deletes a custom keyword by phrase (case-insensitive).
// Returns false when no such keyword was stored.
func (s *SettingsService) RemoveKeyword(ctx context.Context, phrase string) (bool, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return false, err
	}

	target := strings.ToLower(strings.TrimSpace(phrase))
	kept := settings.CustomKeywords[:0]
	removed := false
	for _, kw := range settings.CustomKeywords {
		if strings.ToLower(kw.Phrase) == target {
			removed = true
			continue
		}
		kept = append(kept, kw)
	}
	if !removed {
		return false, nil
	}

	settings.CustomKeywords = kept
	return true, s.Save(ctx, settings)
}

package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tcshield-lab/internal/config"
	"tcshield-lab/internal/domain/models"
	"tcshield-lab/internal/infrastructure/cache"
	"tcshield-lab/pkg/logger"
)

// PageService accepts page snapshots from the extraction client and keeps
// the most recent one for text-less analyze requests.
type PageService struct {
	cache  *cache.RedisCache
	cfg    config.AnalysisConfig
	logger *logger.Logger
}

// NewPageService creates a new PageService.
func NewPageService(c *cache.RedisCache, cfg config.AnalysisConfig, log *logger.Logger) *PageService {
	return &PageService{
		cache:  c,
		cfg:    cfg,
		logger: log.WithComponent("pages"),
	}
}

// Store derives wordCount and isTCPage from the snapshot content, stamps it
// and saves it as the last-seen page.
func (s *PageService) Store(ctx context.Context, page *models.PageSnapshot) error {
	page.WordCount = WordCount(page.Text)
	page.IsTCPage = IsTCPage(page.Title, page.Text)
	page.Timestamp = time.Now().UTC()

	if err := s.cache.StoreLastPage(ctx, page, s.cfg.PageTTL); err != nil {
		return fmt.Errorf("failed to store page snapshot: %w", err)
	}

	s.logger.Debug().
		Str("url", page.URL).
		Bool("is_tc_page", page.IsTCPage).
		Int("word_count", page.WordCount).
		Msg("page snapshot stored")
	return nil
}

// Last returns the most recent snapshot, or an error when none is stored.
func (s *PageService) Last(ctx context.Context) (*models.PageSnapshot, error) {
	return s.cache.GetLastPage(ctx)
}

// IsTCPage reports whether the title or body looks like a terms-of-service
// or privacy-policy document.
func IsTCPage(title, text string) bool {
	titleLower := strings.ToLower(title)
	textLower := strings.ToLower(text)
	for _, indicator := range TCPageIndicators() {
		if strings.Contains(titleLower, indicator) || strings.Contains(textLower, indicator) {
			return true
		}
	}
	return false
}

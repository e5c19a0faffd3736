package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"tcshield-lab/internal/config"
	"tcshield-lab/internal/domain/models"
	"tcshield-lab/internal/domain/services/ai"
	"tcshield-lab/internal/infrastructure/cache"
	"tcshield-lab/internal/infrastructure/database/repository"
	"tcshield-lab/pkg/logger"
)

// remoteInputLimit caps the text handed to remote augmentation; it bounds
// both payload size and the number of classification chunks per document.
const remoteInputLimit = 3000

// Analyzer runs the local analysis pipeline and coordinates caching,
// history persistence, and asynchronous remote augmentation.
type Analyzer struct {
	matcher  *Matcher
	scorer   *Scorer
	lexicon  models.Lexicon
	settings *SettingsService
	cache    *cache.RedisCache
	repos    *repository.Repositories
	hfConfig config.HuggingFaceConfig
	cfg      config.AnalysisConfig
	logger   *logger.Logger
}

// NewAnalyzer creates a new Analyzer. repos may be nil; history persistence
// is then disabled and the service runs degraded.
func NewAnalyzer(
	cfg config.AnalysisConfig,
	hfCfg config.HuggingFaceConfig,
	settings *SettingsService,
	c *cache.RedisCache,
	repos *repository.Repositories,
	log *logger.Logger,
) *Analyzer {
	return &Analyzer{
		matcher:  NewMatcher(),
		scorer:   NewScorer(cfg, log),
		lexicon:  DefaultLexicon(),
		settings: settings,
		cache:    c,
		repos:    repos,
		hfConfig: hfCfg,
		cfg:      cfg,
		logger:   log.WithComponent("analyzer"),
	}
}

// Lexicon returns the built-in phrase catalogue.
func (a *Analyzer) Lexicon() models.Lexicon {
	return a.lexicon
}

// Scorer exposes the scorer for handlers that need status mapping.
func (a *Analyzer) Scorer() *Scorer {
	return a.scorer
}

// Analyze runs the local pipeline over text and returns the result. The
// result is cached under its ID, persisted to history when enabled, and
// remote augmentation is started in the background when configured; the
// returned result never waits on the remote call.
func (a *Analyzer) Analyze(ctx context.Context, url, title, text string) (*models.AnalysisResult, error) {
	settings, err := a.settings.Get(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("failed to load settings, using defaults")
		settings = models.DefaultSettings()
	}

	lexicon := a.lexicon.WithCustom(settings.CustomKeywords)
	findings := a.matcher.Match(text, lexicon)
	for i := range findings {
		findings[i].Category = Categorize(findings[i].Phrase, findings[i].Description)
	}
	sortFindings(findings)

	score := a.scorer.Score(findings)
	result := &models.AnalysisResult{
		ID:         uuid.New(),
		URL:        url,
		Title:      title,
		TotalRisks: len(findings),
		Findings:   findings,
		RiskScore:  score,
		WordCount:  WordCount(text),
		Status:     a.scorer.StatusFor(score),
		AnalyzedAt: time.Now().UTC(),
	}

	if err := a.cache.CacheResult(ctx, result, a.cfg.ResultTTL); err != nil {
		return nil, fmt.Errorf("failed to cache analysis result: %w", err)
	}

	if a.cfg.HistoryEnabled && settings.SaveAnalytics && a.repos != nil {
		if err := a.repos.Analyses.Create(ctx, result); err != nil {
			a.logger.Error().Err(err).Str("analysis_id", result.ID.String()).Msg("failed to persist analysis history")
		}
	}

	a.bumpStats(ctx, result.Status)

	if settings.RemoteEnabled() && result.WordCount > a.hfConfig.MinWordCount {
		// The goroutine gets its own copy; the result returned to the caller
		// is being encoded while augmentation runs, so it must never be
		// written again. Clients pick the merge up from the cache.
		go a.augment(*result, settings.HFAPIKey, truncateText(text, remoteInputLimit))
	}

	return result, nil
}

// GetResult returns a previously produced result, preferring the cache so
// clients polling for the late remote merge see it as soon as it lands.
// A cache miss falls through to history; a cache failure is an error.
func (a *Analyzer) GetResult(ctx context.Context, id uuid.UUID) (*models.AnalysisResult, error) {
	result, err := a.cache.GetCachedResult(ctx, id)
	if err == nil {
		return result, nil
	}
	if !cacheMiss(err) {
		return nil, fmt.Errorf("failed to load cached result: %w", err)
	}

	if a.repos != nil {
		return a.repos.Analyses.GetByID(ctx, id)
	}
	return nil, nil
}

// cacheMiss reports whether err means the key is absent rather than the
// cache being unreachable.
func cacheMiss(err error) bool {
	return errors.Is(err, redis.Nil)
}

// augment runs the three remote calls and merges whatever succeeded back
// into the cached result. Each call fails independently; a total failure
// leaves the local result untouched. result is a private copy, so the
// object already returned to the HTTP client is never mutated here.
// Never returns an error.
func (a *Analyzer) augment(result models.AnalysisResult, apiKey, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*a.hfConfig.Timeout)
	defer cancel()

	log := a.logger.WithAnalysisID(result.ID.String())
	client := ai.NewHuggingFaceClient(a.hfConfig, apiKey, a.logger)
	remote := &models.RemoteAnalysis{}
	got := false

	if classification, err := client.Classify(ctx, text); err != nil {
		log.Warn().Err(err).Msg("remote classification failed")
	} else {
		remote.Classification = classification
		got = true
	}

	if summary, err := client.Summarize(ctx, text); err != nil {
		log.Warn().Err(err).Msg("remote summarization failed")
	} else {
		remote.Summary = summary
		got = true
	}

	if risks, err := client.DetectPrivacyRisks(ctx, text); err != nil {
		log.Warn().Err(err).Msg("remote privacy risk detection failed")
	} else {
		remote.PrivacyRisks = risks
		got = true
	}

	if !got {
		log.Warn().Msg("remote augmentation produced no signal")
		return
	}

	remote.CompletedAt = time.Now().UTC()
	a.mergeRemote(&result, remote)

	if err := a.cache.CacheResult(ctx, &result, a.cfg.ResultTTL); err != nil {
		log.Error().Err(err).Msg("failed to re-cache augmented result")
	}

	if a.cfg.HistoryEnabled && a.repos != nil && remote.PrivacyRisks != nil {
		err := a.repos.Analyses.UpdateRemote(ctx, result.ID, remote.PrivacyRisks.OverallRisk, result.RiskScore, result.Status)
		if err != nil {
			log.Error().Err(err).Msg("failed to update analysis history with remote risk")
		}
	}

	log.Info().
		Int("risk_score", result.RiskScore).
		Str("status", string(result.Status)).
		Msg("remote augmentation merged")
}

// mergeRemote attaches the remote analysis to result and folds the
// privacy-risk signal into the score. Classification and summary attach
// as data only; a zero or absent overall risk leaves the score alone.
func (a *Analyzer) mergeRemote(result *models.AnalysisResult, remote *models.RemoteAnalysis) {
	result.Remote = remote

	if remote.PrivacyRisks != nil && remote.PrivacyRisks.OverallRisk > 0 {
		result.RiskScore = a.scorer.ApplyRemoteBonus(result.RiskScore, remote.PrivacyRisks.OverallRisk)
		result.Status = a.scorer.StatusFor(result.RiskScore)
	}
}

func (a *Analyzer) bumpStats(ctx context.Context, status models.Status) {
	if _, err := a.cache.Incr(ctx, cache.KeyStatAnalyses); err != nil {
		a.logger.Debug().Err(err).Msg("failed to bump analysis counter")
		return
	}
	if _, err := a.cache.Incr(ctx, cache.KeyStatStatusPrefix+string(status)); err != nil {
		a.logger.Debug().Err(err).Msg("failed to bump status counter")
	}
}

// sortFindings orders by severity, highest first, keeping catalogue order
// within a tier.
func sortFindings(findings []models.Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Severity.Rank() > findings[j].Severity.Rank()
	})
}

func truncateText(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

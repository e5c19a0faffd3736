package services

import (
	"tcshield-lab/internal/config"
	"tcshield-lab/internal/domain/models"
	"tcshield-lab/pkg/logger"
)

// Scorer turns findings into a bounded risk score and display status.
type Scorer struct {
	config config.AnalysisConfig
	logger *logger.Logger
}

// NewScorer creates a new Scorer.
func NewScorer(cfg config.AnalysisConfig, log *logger.Logger) *Scorer {
	if cfg.Weights.High == 0 && cfg.Weights.Medium == 0 && cfg.Weights.Low == 0 {
		cfg.Weights = config.SeverityWeights{High: 10, Medium: 5, Low: 2}
	}
	if cfg.MaxScore == 0 {
		cfg.MaxScore = 100
	}
	if cfg.DangerAt == 0 {
		cfg.DangerAt = 30
	}
	if cfg.WarningAt == 0 {
		cfg.WarningAt = 15
	}
	return &Scorer{
		config: cfg,
		logger: log.WithComponent("scorer"),
	}
}

// Score sums weight(severity) x count over all findings and clamps the
// total to the configured maximum. No findings scores zero.
func (s *Scorer) Score(findings []models.Finding) int {
	var score int
	for _, f := range findings {
		score += s.weight(f.Severity) * f.Count
	}
	return clampInt(score, 0, s.config.MaxScore)
}

// StatusFor maps a risk score to a display status tier.
func (s *Scorer) StatusFor(score int) models.Status {
	switch {
	case score >= s.config.DangerAt:
		return models.StatusDanger
	case score >= s.config.WarningAt:
		return models.StatusWarning
	default:
		return models.StatusSafe
	}
}

// ApplyRemoteBonus folds the remote overall risk (0-100) into a local score.
// The bonus is 30% of the remote risk capped at 20 points, and the combined
// score stays within the configured maximum.
func (s *Scorer) ApplyRemoteBonus(score, overallRisk int) int {
	bonus := int(float64(overallRisk)*0.3 + 0.5)
	if bonus > 20 {
		bonus = 20
	}
	return clampInt(score+bonus, 0, s.config.MaxScore)
}

func (s *Scorer) weight(sev models.Severity) int {
	switch sev {
	case models.SeverityHigh:
		return s.config.Weights.High
	case models.SeverityMedium:
		return s.config.Weights.Medium
	case models.SeverityLow:
		return s.config.Weights.Low
	default:
		return 0
	}
}

// clampInt clamps a value between min and max
func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

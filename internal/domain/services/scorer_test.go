package services

import (
	"testing"

	"tcshield-lab/internal/config"
	"tcshield-lab/internal/domain/models"
	"tcshield-lab/pkg/logger"
)

func newTestScorer() *Scorer {
	return NewScorer(config.AnalysisConfig{}, logger.NewDefault())
}

func TestScore(t *testing.T) {
	cases := []struct {
		name     string
		findings []models.Finding
		want     int
	}{
		{
			name:     "no findings",
			findings: nil,
			want:     0,
		},
		{
			name: "single high",
			findings: []models.Finding{
				{Severity: models.SeverityHigh, Count: 1},
			},
			want: 10,
		},
		{
			name: "mixed severities",
			findings: []models.Finding{
				{Severity: models.SeverityHigh, Count: 1},
				{Severity: models.SeverityMedium, Count: 2},
				{Severity: models.SeverityLow, Count: 3},
			},
			want: 26,
		},
		{
			name: "count multiplies weight",
			findings: []models.Finding{
				{Severity: models.SeverityMedium, Count: 4},
			},
			want: 20,
		},
		{
			name: "clamped at maximum",
			findings: []models.Finding{
				{Severity: models.SeverityHigh, Count: 50},
			},
			want: 100,
		},
	}

	s := newTestScorer()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Score(tc.findings); got != tc.want {
				t.Errorf("Score() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestScoreMonotonic(t *testing.T) {
	s := newTestScorer()

	findings := []models.Finding{{Severity: models.SeverityLow, Count: 1}}
	prev := s.Score(findings)
	for i := 0; i < 60; i++ {
		findings = append(findings, models.Finding{Severity: models.SeverityLow, Count: 1})
		got := s.Score(findings)
		if got < prev {
			t.Fatalf("score decreased from %d to %d after adding a finding", prev, got)
		}
		prev = got
	}
	if prev != 100 {
		t.Errorf("final score = %d, want clamp at 100", prev)
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		score int
		want  models.Status
	}{
		{0, models.StatusSafe},
		{14, models.StatusSafe},
		{15, models.StatusWarning},
		{29, models.StatusWarning},
		{30, models.StatusDanger},
		{100, models.StatusDanger},
	}

	s := newTestScorer()
	for _, tc := range cases {
		if got := s.StatusFor(tc.score); got != tc.want {
			t.Errorf("StatusFor(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestApplyRemoteBonus(t *testing.T) {
	cases := []struct {
		name    string
		score   int
		remote  int
		want    int
	}{
		{name: "zero remote risk", score: 20, remote: 0, want: 20},
		{name: "small bonus rounds", score: 20, remote: 50, want: 35},
		{name: "bonus capped at 20", score: 20, remote: 100, want: 40},
		{name: "combined clamped at max", score: 95, remote: 100, want: 100},
		{name: "rounding up", score: 0, remote: 5, want: 2},
	}

	s := newTestScorer()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.ApplyRemoteBonus(tc.score, tc.remote); got != tc.want {
				t.Errorf("ApplyRemoteBonus(%d, %d) = %d, want %d", tc.score, tc.remote, got, tc.want)
			}
		})
	}
}

func TestScorerConfigOverrides(t *testing.T) {
	s := NewScorer(config.AnalysisConfig{
		Weights:   config.SeverityWeights{High: 3, Medium: 2, Low: 1},
		MaxScore:  50,
		DangerAt:  40,
		WarningAt: 10,
	}, logger.NewDefault())

	findings := []models.Finding{
		{Severity: models.SeverityHigh, Count: 2},
		{Severity: models.SeverityLow, Count: 5},
	}
	if got := s.Score(findings); got != 11 {
		t.Errorf("Score() with custom weights = %d, want 11", got)
	}
	if got := s.StatusFor(11); got != models.StatusWarning {
		t.Errorf("StatusFor(11) = %s, want warning with custom thresholds", got)
	}
	if got := s.Score([]models.Finding{{Severity: models.SeverityHigh, Count: 100}}); got != 50 {
		t.Errorf("Score() = %d, want clamp at custom max 50", got)
	}
}

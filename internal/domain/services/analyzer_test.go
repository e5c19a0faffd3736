package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/redis/go-redis/v9"

	"tcshield-lab/internal/config"
	"tcshield-lab/internal/domain/models"
	"tcshield-lab/pkg/logger"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(config.AnalysisConfig{}, config.HuggingFaceConfig{}, nil, nil, nil, logger.NewDefault())
}

func TestSortFindings(t *testing.T) {
	findings := []models.Finding{
		{Phrase: "analytics and advertising", Severity: models.SeverityLow},
		{Phrase: "we may disclose", Severity: models.SeverityMedium},
		{Phrase: "we may share your data", Severity: models.SeverityHigh},
		{Phrase: "automatically renew", Severity: models.SeverityMedium},
		{Phrase: "we are not liable", Severity: models.SeverityHigh},
		{Phrase: "non-refundable", Severity: models.SeverityLow},
	}

	sortFindings(findings)

	wantOrder := []string{
		"we may share your data",
		"we are not liable",
		"we may disclose",
		"automatically renew",
		"analytics and advertising",
		"non-refundable",
	}
	for i, want := range wantOrder {
		if findings[i].Phrase != want {
			t.Fatalf("position %d = %q, want %q (full order: %+v)", i, findings[i].Phrase, want, findings)
		}
	}

	for i := 1; i < len(findings); i++ {
		if findings[i].Severity.Rank() > findings[i-1].Severity.Rank() {
			t.Errorf("severity increases at position %d", i)
		}
	}
}

func TestMergeRemote(t *testing.T) {
	a := newTestAnalyzer()

	cases := []struct {
		name       string
		remote     *models.RemoteAnalysis
		wantScore  int
		wantStatus models.Status
	}{
		{
			name:       "privacy risk folds into score",
			remote:     &models.RemoteAnalysis{PrivacyRisks: &models.PrivacyRiskReport{OverallRisk: 50}},
			wantScore:  35,
			wantStatus: models.StatusDanger,
		},
		{
			name:       "zero risk leaves score alone",
			remote:     &models.RemoteAnalysis{PrivacyRisks: &models.PrivacyRiskReport{OverallRisk: 0}},
			wantScore:  20,
			wantStatus: models.StatusWarning,
		},
		{
			name:       "classification only leaves score alone",
			remote:     &models.RemoteAnalysis{Classification: []models.LabelScore{{Label: "FAIR", Score: 0.9}}},
			wantScore:  20,
			wantStatus: models.StatusWarning,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := models.AnalysisResult{RiskScore: 20, Status: models.StatusWarning}

			a.mergeRemote(&result, tc.remote)

			if result.RiskScore != tc.wantScore {
				t.Errorf("risk score = %d, want %d", result.RiskScore, tc.wantScore)
			}
			if result.Status != tc.wantStatus {
				t.Errorf("status = %s, want %s", result.Status, tc.wantStatus)
			}
			if result.Remote != tc.remote {
				t.Error("remote analysis not attached")
			}
		})
	}
}

func TestMergeRemoteLeavesOriginalUntouched(t *testing.T) {
	// The background merge works on a copy of the result that was already
	// handed to the client; the original must never change.
	a := newTestAnalyzer()

	original := models.AnalysisResult{
		RiskScore: 20,
		Status:    models.StatusWarning,
		Findings:  []models.Finding{{Phrase: "we may disclose", Severity: models.SeverityMedium, Count: 4}},
	}

	merged := original
	a.mergeRemote(&merged, &models.RemoteAnalysis{
		PrivacyRisks: &models.PrivacyRiskReport{OverallRisk: 100},
	})

	if original.RiskScore != 20 || original.Status != models.StatusWarning || original.Remote != nil {
		t.Errorf("original result mutated by merge: %+v", original)
	}
	if merged.RiskScore != 40 || merged.Status != models.StatusDanger {
		t.Errorf("merged copy = score %d status %s, want 40/danger", merged.RiskScore, merged.Status)
	}
}

func TestCacheMiss(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "absent key", err: redis.Nil, want: true},
		{name: "wrapped absent key", err: fmt.Errorf("failed to load: %w", redis.Nil), want: true},
		{name: "transport failure", err: errors.New("dial tcp 127.0.0.1:6379: connection refused"), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cacheMiss(tc.err); got != tc.want {
				t.Errorf("cacheMiss(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

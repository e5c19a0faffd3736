package models

import (
	"time"

	"github.com/google/uuid"
)

// Severity classifies how damaging a matched clause is to the user.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank orders severities for sorting, highest first.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// Category groups findings by the kind of clause they flag.
type Category string

const (
	CategorySharing        Category = "sharing"
	CategoryTracking       Category = "tracking"
	CategoryCookies        Category = "cookies"
	CategoryDataCollection Category = "data collection"
	CategoryTermination    Category = "termination"
	CategoryDispute        Category = "dispute"
	CategoryLiability      Category = "liability"
	CategoryLegal          Category = "legal"
	CategorySubscription   Category = "subscription"
	CategoryFees           Category = "fees"
	CategoryPayment        Category = "payment"
	CategoryContent        Category = "content"
	CategoryUsage          Category = "usage"
	CategoryModification   Category = "modification"
)

// Status summarizes an analysis result for display.
type Status string

const (
	StatusSafe    Status = "safe"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
)

// Finding is a single matched clause in the analyzed text.
type Finding struct {
	Phrase      string   `json:"phrase"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Category    Category `json:"category"`
	Count       int      `json:"count"`
}

// AnalysisResult is the outcome of analyzing a document.
type AnalysisResult struct {
	ID         uuid.UUID       `json:"id"`
	URL        string          `json:"url,omitempty"`
	Title      string          `json:"title,omitempty"`
	TotalRisks int             `json:"total_risks"`
	Findings   []Finding       `json:"findings"`
	RiskScore  int             `json:"risk_score"`
	WordCount  int             `json:"word_count"`
	Status     Status          `json:"status"`
	AnalyzedAt time.Time       `json:"analyzed_at"`
	Remote     *RemoteAnalysis `json:"remote,omitempty"`
}

// RemoteAnalysis carries the optional model-backed augmentation attached
// after the local pipeline has produced a result.
type RemoteAnalysis struct {
	Classification []LabelScore       `json:"classification,omitempty"`
	Summary        string             `json:"summary,omitempty"`
	PrivacyRisks   *PrivacyRiskReport `json:"privacy_risks,omitempty"`
	CompletedAt    time.Time          `json:"completed_at"`
}

// LabelScore is one label from a classification response.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// PrivacyRiskReport aggregates per-chunk classification into a 0-100 risk.
type PrivacyRiskReport struct {
	OverallRisk     int           `json:"overall_risk"`
	DetailedResults []ChunkResult `json:"detailed_results"`
	Source          string        `json:"source"`
}

// ChunkResult records the classification of a single text chunk.
type ChunkResult struct {
	Text           string       `json:"text"`
	Classification []LabelScore `json:"classification"`
	RiskScore      float64      `json:"risk_score"`
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"tcshield-lab/internal/domain/models"
)

// AnalysisRepository persists analysis history rows
type AnalysisRepository struct {
	pool *pgxpool.Pool
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(pool *pgxpool.Pool) *AnalysisRepository {
	return &AnalysisRepository{pool: pool}
}

// Create inserts a new analysis history row
func (r *AnalysisRepository) Create(ctx context.Context, a *models.AnalysisResult) error {
	findings, err := json.Marshal(a.Findings)
	if err != nil {
		return fmt.Errorf("failed to marshal findings: %w", err)
	}

	query := `
		INSERT INTO analyses (
			id, url, title, word_count, total_risks, risk_score,
			remote_risk, status, findings, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)`

	var remoteRisk *int
	if a.Remote != nil && a.Remote.PrivacyRisks != nil {
		remoteRisk = &a.Remote.PrivacyRisks.OverallRisk
	}

	createdAt := a.AnalyzedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = r.pool.Exec(ctx, query,
		a.ID, a.URL, a.Title, a.WordCount, a.TotalRisks, a.RiskScore,
		remoteRisk, a.Status, findings, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}

	return nil
}

// GetByID retrieves an analysis history row by ID
func (r *AnalysisRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AnalysisResult, error) {
	query := `
		SELECT id, url, title, word_count, total_risks, risk_score,
			   remote_risk, status, findings, created_at
		FROM analyses
		WHERE id = $1`

	return r.scanAnalysis(r.pool.QueryRow(ctx, query, id))
}

// List retrieves recent analyses, newest first
func (r *AnalysisRepository) List(ctx context.Context, limit, offset int) ([]*models.AnalysisResult, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := `
		SELECT id, url, title, word_count, total_risks, risk_score,
			   remote_risk, status, findings, created_at
		FROM analyses
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []*models.AnalysisResult
	for rows.Next() {
		a, err := r.scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}

	return analyses, nil
}

// UpdateRemote records the remote risk on a row after late augmentation
func (r *AnalysisRepository) UpdateRemote(ctx context.Context, id uuid.UUID, remoteRisk, riskScore int, status models.Status) error {
	query := `
		UPDATE analyses SET
			remote_risk = $2,
			risk_score = $3,
			status = $4
		WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id, remoteRisk, riskScore, status)
	if err != nil {
		return fmt.Errorf("failed to update analysis: %w", err)
	}

	return nil
}

// GetStats returns aggregate analysis statistics
func (r *AnalysisRepository) GetStats(ctx context.Context) (*AnalysisStats, error) {
	stats := &AnalysisStats{}

	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(AVG(risk_score), 0)
		FROM analyses
	`).Scan(&stats.TotalCount, &stats.AverageScore)
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis counts: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT status, COUNT(*)
		FROM analyses
		GROUP BY status
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get status counts: %w", err)
	}
	stats.ByStatus = make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			rows.Close()
			return nil, err
		}
		stats.ByStatus[status] = count
	}
	rows.Close()

	return stats, nil
}

func (r *AnalysisRepository) scanAnalysis(row pgx.Row) (*models.AnalysisResult, error) {
	a := &models.AnalysisResult{}
	var url, title pgtype.Text
	var remoteRisk pgtype.Int4
	var findings []byte

	err := row.Scan(
		&a.ID, &url, &title, &a.WordCount, &a.TotalRisks, &a.RiskScore,
		&remoteRisk, &a.Status, &findings, &a.AnalyzedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan analysis: %w", err)
	}

	if url.Valid {
		a.URL = url.String
	}
	if title.Valid {
		a.Title = title.String
	}
	if remoteRisk.Valid {
		a.Remote = &models.RemoteAnalysis{
			PrivacyRisks: &models.PrivacyRiskReport{
				OverallRisk: int(remoteRisk.Int32),
				Source:      "huggingface",
			},
		}
	}
	if len(findings) > 0 {
		if err := json.Unmarshal(findings, &a.Findings); err != nil {
			return nil, fmt.Errorf("failed to unmarshal findings: %w", err)
		}
	}

	return a, nil
}

// AnalysisStats holds aggregate analysis statistics
type AnalysisStats struct {
	TotalCount   int64            `json:"total_count"`
	AverageScore float64          `json:"average_score"`
	ByStatus     map[string]int64 `json:"by_status"`
}

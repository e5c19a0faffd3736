package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tcshield-lab/internal/config"
	"tcshield-lab/internal/domain/models"
	"tcshield-lab/pkg/logger"
)

const (
	classifyInputLimit  = 5000
	summarizeInputLimit = 3000
	chunkSize           = 1000
	summaryFallback     = "Summary not available"
)

// highRiskLabels mark a classified chunk as risky when any response label
// contains one of them (case-insensitive).
var highRiskLabels = []string{"RISKY", "HIGH_RISK", "UNFAIR", "PROBLEMATIC"}

// HuggingFaceClient calls the Hugging Face inference API for legal-text
// classification, summarization, and chunked privacy-risk detection.
type HuggingFaceClient struct {
	httpClient *http.Client
	logger     *logger.Logger
	config     config.HuggingFaceConfig
	apiKey     string
}

// NewHuggingFaceClient creates a client bound to one API key.
func NewHuggingFaceClient(cfg config.HuggingFaceConfig, apiKey string, log *logger.Logger) *HuggingFaceClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api-inference.huggingface.co/models"
	}
	if cfg.ClassificationModel == "" {
		cfg.ClassificationModel = "mrm8488/legal-bert-tos"
	}
	if cfg.SummarizationModel == "" {
		cfg.SummarizationModel = "doonhammer/legal_tldr"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}

	return &HuggingFaceClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: log.WithComponent("huggingface"),
		config: cfg,
		apiKey: apiKey,
	}
}

// Classify runs legal-text classification over at most the first 5000
// characters of text.
func (c *HuggingFaceClient) Classify(ctx context.Context, text string) ([]models.LabelScore, error) {
	body, err := c.post(ctx, c.config.ClassificationModel, map[string]any{
		"inputs": truncate(text, classifyInputLimit),
	})
	if err != nil {
		return nil, err
	}
	labels, ok := parseClassification(body)
	if !ok {
		return nil, fmt.Errorf("unrecognized classification response")
	}
	return labels, nil
}

// Summarize produces a short summary of at most the first 3000 characters
// of text, falling back to a placeholder when the response has no summary.
func (c *HuggingFaceClient) Summarize(ctx context.Context, text string) (string, error) {
	body, err := c.post(ctx, c.config.SummarizationModel, map[string]any{
		"inputs": truncate(text, summarizeInputLimit),
		"parameters": map[string]any{
			"max_length": 150,
			"min_length": 30,
			"do_sample":  false,
		},
	})
	if err != nil {
		return "", err
	}

	var out []struct {
		SummaryText string `json:"summary_text"`
	}
	if err := json.Unmarshal(body, &out); err != nil || len(out) == 0 || out[0].SummaryText == "" {
		return summaryFallback, nil
	}
	return out[0].SummaryText, nil
}

// DetectPrivacyRisks splits text into 1000-character chunks, classifies each
// and aggregates the per-chunk scores into a 0-100 overall risk.
func (c *HuggingFaceClient) DetectPrivacyRisks(ctx context.Context, text string) (*models.PrivacyRiskReport, error) {
	var results []models.ChunkResult

	for _, chunk := range chunkText(text, chunkSize) {
		body, err := c.post(ctx, c.config.ClassificationModel, map[string]any{
			"inputs": chunk,
		})
		if err != nil {
			return nil, err
		}

		labels, recognized := parseClassification(body)
		results = append(results, models.ChunkResult{
			Text:           truncate(chunk, 100) + "...",
			Classification: labels,
			RiskScore:      chunkRisk(labels, recognized),
		})
	}

	return &models.PrivacyRiskReport{
		OverallRisk:     overallRisk(results),
		DetailedResults: results,
		Source:          "huggingface",
	}, nil
}

func (c *HuggingFaceClient) post(ctx context.Context, model string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", strings.TrimRight(c.config.BaseURL, "/"), model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference API error: status %d", resp.StatusCode)
	}

	return body, nil
}

// parseClassification handles the two response shapes the inference API
// returns for classification models: a flat label array or a nested one.
// The second return value is false when neither shape fits.
func parseClassification(body []byte) ([]models.LabelScore, bool) {
	var flat []models.LabelScore
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 && flat[0].Label != "" {
		return flat, true
	}

	var nested [][]models.LabelScore
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return nested[0], true
	}

	return nil, false
}

// chunkRisk maps one chunk's classification to a risk fraction: 0.8 when any
// label reads as risky, 0.3 otherwise, 0.5 when the shape was unrecognized.
func chunkRisk(labels []models.LabelScore, recognized bool) float64 {
	if !recognized {
		return 0.5
	}
	for _, l := range labels {
		upper := strings.ToUpper(l.Label)
		for _, risky := range highRiskLabels {
			if strings.Contains(upper, risky) {
				return 0.8
			}
		}
	}
	return 0.3
}

// overallRisk averages per-chunk risk fractions and scales to 0-100.
func overallRisk(results []models.ChunkResult) int {
	if len(results) == 0 {
		return 0
	}
	var sum float64
	for _, r := range results {
		sum += r.RiskScore
	}
	return int(sum/float64(len(results))*100 + 0.5)
}

func chunkText(text string, size int) []string {
	var chunks []string
	for i := 0; i < len(text); i += size {
		end := i + size
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[i:end])
	}
	return chunks
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tcshield-lab/internal/config"
	"tcshield-lab/internal/domain/models"
	"tcshield-lab/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HuggingFaceClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewHuggingFaceClient(config.HuggingFaceConfig{
		BaseURL:             srv.URL,
		ClassificationModel: "test-classifier",
		SummarizationModel:  "test-summarizer",
		Timeout:             5 * time.Second,
	}, "hf_test_key_123", logger.NewDefault())

	return client
}

func TestClassifyFlatResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer hf_test_key_123" {
			t.Errorf("Authorization header = %q", got)
		}
		if !strings.HasSuffix(r.URL.Path, "/test-classifier") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`[{"label":"FAIR","score":0.9},{"label":"UNFAIR","score":0.1}]`))
	})

	labels, err := client.Classify(context.Background(), "sample terms text")
	if err != nil {
		t.Fatalf("Classify() error: %v", err)
	}
	if len(labels) != 2 {
		t.Fatalf("got %d labels, want 2", len(labels))
	}
	if labels[0].Label != "FAIR" || labels[0].Score != 0.9 {
		t.Errorf("first label = %+v", labels[0])
	}
}

func TestClassifyNestedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[{"label":"RISKY","score":0.8}]]`))
	})

	labels, err := client.Classify(context.Background(), "sample")
	if err != nil {
		t.Fatalf("Classify() error: %v", err)
	}
	if len(labels) != 1 || labels[0].Label != "RISKY" {
		t.Errorf("labels = %+v, want single RISKY", labels)
	}
}

func TestClassifyUnrecognizedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"model loading"}`))
	})

	if _, err := client.Classify(context.Background(), "sample"); err == nil {
		t.Fatal("expected error for unrecognized response shape")
	}
}

func TestClassifyAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	if _, err := client.Classify(context.Background(), "sample"); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestSummarize(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/test-summarizer") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`[{"summary_text":"Short summary of the document."}]`))
	})

	summary, err := client.Summarize(context.Background(), "long terms and conditions text")
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if summary != "Short summary of the document." {
		t.Errorf("summary = %q", summary)
	}
}

func TestSummarizeFallback(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "empty array", body: `[]`},
		{name: "empty summary", body: `[{"summary_text":""}]`},
		{name: "wrong shape", body: `{"generated_text":"nope"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			})

			summary, err := client.Summarize(context.Background(), "text")
			if err != nil {
				t.Fatalf("Summarize() error: %v", err)
			}
			if summary != "Summary not available" {
				t.Errorf("summary = %q, want fallback", summary)
			}
		})
	}
}

func TestDetectPrivacyRisksAllRisky(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"label":"UNFAIR","score":0.95}]`))
	})

	// 2500 characters split into three chunks.
	text := strings.Repeat("a", 2500)
	report, err := client.DetectPrivacyRisks(context.Background(), text)
	if err != nil {
		t.Fatalf("DetectPrivacyRisks() error: %v", err)
	}
	if len(report.DetailedResults) != 3 {
		t.Fatalf("got %d chunks, want 3", len(report.DetailedResults))
	}
	for i, chunk := range report.DetailedResults {
		if chunk.RiskScore != 0.8 {
			t.Errorf("chunk %d risk = %v, want 0.8", i, chunk.RiskScore)
		}
	}
	if report.OverallRisk != 80 {
		t.Errorf("overall risk = %d, want 80", report.OverallRisk)
	}
	if report.Source != "huggingface" {
		t.Errorf("source = %q", report.Source)
	}
}

func TestDetectPrivacyRisksMixed(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Write([]byte(`[{"label":"RISKY","score":0.9}]`))
			return
		}
		w.Write([]byte(`[{"label":"FAIR","score":0.9}]`))
	})

	text := strings.Repeat("b", 1500)
	report, err := client.DetectPrivacyRisks(context.Background(), text)
	if err != nil {
		t.Fatalf("DetectPrivacyRisks() error: %v", err)
	}
	if len(report.DetailedResults) != 2 {
		t.Fatalf("got %d chunks, want 2", len(report.DetailedResults))
	}
	// (0.8 + 0.3) / 2 = 0.55 -> 55
	if report.OverallRisk != 55 {
		t.Errorf("overall risk = %d, want 55", report.OverallRisk)
	}
}

func TestDetectPrivacyRisksUnrecognizedChunk(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"loading"}`))
	})

	report, err := client.DetectPrivacyRisks(context.Background(), "short text")
	if err != nil {
		t.Fatalf("DetectPrivacyRisks() error: %v", err)
	}
	if len(report.DetailedResults) != 1 {
		t.Fatalf("got %d chunks, want 1", len(report.DetailedResults))
	}
	if report.DetailedResults[0].RiskScore != 0.5 {
		t.Errorf("unrecognized chunk risk = %v, want 0.5", report.DetailedResults[0].RiskScore)
	}
	if report.OverallRisk != 50 {
		t.Errorf("overall risk = %d, want 50", report.OverallRisk)
	}
}

func TestChunkText(t *testing.T) {
	cases := []struct {
		text string
		size int
		want []string
	}{
		{text: "", size: 3, want: nil},
		{text: "ab", size: 3, want: []string{"ab"}},
		{text: "abcdef", size: 3, want: []string{"abc", "def"}},
		{text: "abcdefg", size: 3, want: []string{"abc", "def", "g"}},
	}

	for _, tc := range cases {
		got := chunkText(tc.text, tc.size)
		if len(got) != len(tc.want) {
			t.Errorf("chunkText(%q, %d) = %v, want %v", tc.text, tc.size, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("chunk %d = %q, want %q", i, got[i], tc.want[i])
			}
		}
	}
}

func TestChunkRiskLabelMatching(t *testing.T) {
	cases := []struct {
		label string
		want  float64
	}{
		{"RISKY", 0.8},
		{"potentially_risky", 0.8},
		{"HIGH_RISK", 0.8},
		{"unfair_clause", 0.8},
		{"PROBLEMATIC", 0.8},
		{"FAIR", 0.3},
		{"NEUTRAL", 0.3},
	}

	for _, tc := range cases {
		got := chunkRisk([]models.LabelScore{{Label: tc.label, Score: 0.9}}, true)
		if got != tc.want {
			t.Errorf("chunkRisk(%q) = %v, want %v", tc.label, got, tc.want)
		}
	}

	if got := chunkRisk(nil, false); got != 0.5 {
		t.Errorf("chunkRisk(unrecognized) = %v, want 0.5", got)
	}
}

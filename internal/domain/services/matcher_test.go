package services

import (
	"encoding/json"
	"strings"
	"testing"

	"tcshield-lab/internal/domain/models"
)

func testLexicon() models.Lexicon {
	return models.Lexicon{
		High: []models.PhraseEntry{
			{Phrase: "we may share your data", Description: "shared with third parties"},
			{Phrase: "binding arbitration is mandatory", Description: "no courts"},
		},
		Medium: []models.PhraseEntry{
			{Phrase: "automatically renew", Description: "keeps charging"},
		},
		Low: []models.PhraseEntry{
			{Phrase: "non-refundable", Description: "no refunds"},
		},
	}
}

func TestMatch(t *testing.T) {
	lexicon := testLexicon()

	cases := []struct {
		name string
		text string
		want map[string]int
	}{
		{
			name: "empty text",
			text: "",
			want: map[string]int{},
		},
		{
			name: "no matches",
			text: "this agreement is perfectly reasonable",
			want: map[string]int{},
		},
		{
			name: "single match",
			text: "By using this service, we may share your data with partners.",
			want: map[string]int{"we may share your data": 1},
		},
		{
			name: "case insensitive",
			text: "WE MAY SHARE YOUR DATA. Subscriptions Automatically Renew each month.",
			want: map[string]int{"we may share your data": 1, "automatically renew": 1},
		},
		{
			name: "repeated phrase counted",
			text: "Fees are non-refundable. Deposits are also non-refundable.",
			want: map[string]int{"non-refundable": 2},
		},
		{
			name: "multiple tiers",
			text: "we may share your data, binding arbitration is mandatory, and fees are non-refundable",
			want: map[string]int{
				"we may share your data":           1,
				"binding arbitration is mandatory": 1,
				"non-refundable":                   1,
			},
		},
	}

	m := NewMatcher()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			findings := m.Match(tc.text, lexicon)
			if len(findings) != len(tc.want) {
				t.Fatalf("got %d findings, want %d: %+v", len(findings), len(tc.want), findings)
			}
			for _, f := range findings {
				want, ok := tc.want[f.Phrase]
				if !ok {
					t.Errorf("unexpected finding %q", f.Phrase)
					continue
				}
				if f.Count != want {
					t.Errorf("phrase %q: count = %d, want %d", f.Phrase, f.Count, want)
				}
			}
		})
	}
}

func TestMatchSeverityAssignment(t *testing.T) {
	m := NewMatcher()
	findings := m.Match("binding arbitration is mandatory and non-refundable", testLexicon())

	got := map[string]models.Severity{}
	for _, f := range findings {
		got[f.Phrase] = f.Severity
	}
	if got["binding arbitration is mandatory"] != models.SeverityHigh {
		t.Errorf("arbitration severity = %s, want high", got["binding arbitration is mandatory"])
	}
	if got["non-refundable"] != models.SeverityLow {
		t.Errorf("non-refundable severity = %s, want low", got["non-refundable"])
	}
}

func TestMatchLiteralMetacharacters(t *testing.T) {
	lexicon := models.Lexicon{
		Medium: []models.PhraseEntry{
			{Phrase: "fees (including taxes) apply", Description: "extra charges"},
			{Phrase: "terms.*conditions", Description: "looks like a pattern"},
		},
	}

	m := NewMatcher()
	findings := m.Match("All fees (including taxes) apply. See terms and conditions.", lexicon)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1: %+v", len(findings), findings)
	}
	if findings[0].Phrase != "fees (including taxes) apply" {
		t.Errorf("matched %q, metacharacter phrase should match literally", findings[0].Phrase)
	}
}

func TestMatchIdempotent(t *testing.T) {
	m := NewMatcher()
	text := "we may share your data and subscriptions automatically renew"
	lexicon := testLexicon()

	first := m.Match(text, lexicon)
	second := m.Match(text, lexicon)
	if len(first) != len(second) {
		t.Fatalf("repeated match changed finding count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("finding %d differs across runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestMatchNoMatchesIsEmptyArray(t *testing.T) {
	m := NewMatcher()
	lexicon := testLexicon()

	for _, text := range []string{"", "nothing risky in here"} {
		findings := m.Match(text, lexicon)
		if findings == nil {
			t.Fatalf("Match(%q) returned nil, want empty slice", text)
		}
		got, err := json.Marshal(findings)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(got) != "[]" {
			t.Errorf("Match(%q) marshals as %s, want []", text, got)
		}
	}
}

func TestWordCount(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   \n\t  ", 0},
		{"one", 1},
		{"these are four words", 4},
		{"  leading and trailing  whitespace  ", 4},
	}

	for _, tc := range cases {
		if got := WordCount(tc.text); got != tc.want {
			t.Errorf("WordCount(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestDefaultLexiconIntegrity(t *testing.T) {
	lexicon := DefaultLexicon()

	if lexicon.Size() == 0 {
		t.Fatal("default lexicon is empty")
	}
	if lexicon.Size() != len(lexicon.High)+len(lexicon.Medium)+len(lexicon.Low) {
		t.Error("Size does not equal the sum of tier lengths")
	}

	seen := map[string]models.Severity{}
	lexicon.Walk(func(sev models.Severity, entry models.PhraseEntry) {
		if entry.Phrase == "" {
			t.Errorf("empty phrase in %s tier", sev)
		}
		if entry.Description == "" {
			t.Errorf("phrase %q has no description", entry.Phrase)
		}
		if entry.Phrase != strings.ToLower(entry.Phrase) {
			t.Errorf("phrase %q is not lowercase", entry.Phrase)
		}
		if prev, dup := seen[entry.Phrase]; dup {
			t.Errorf("phrase %q appears in both %s and %s tiers", entry.Phrase, prev, sev)
		}
		seen[entry.Phrase] = sev
	})
}

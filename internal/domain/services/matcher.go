package services

import (
	"strings"

	"tcshield-lab/internal/domain/models"
)

// Matcher scans document text for lexicon phrases. Matching is a literal
// case-insensitive substring scan: phrases are never compiled as patterns,
// so catalogue entries containing regex metacharacters are matched verbatim.
type Matcher struct{}

// NewMatcher creates a new Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match returns one finding per lexicon entry present in text, in catalogue
// order (HIGH, then MEDIUM, then LOW). Counts are non-overlapping occurrences
// per phrase; entries are independent, so overlapping catalogue entries each
// produce their own finding. Category is left unset for the categorizer.
// The slice is never nil, so no match serializes as an empty array.
func (m *Matcher) Match(text string, lexicon models.Lexicon) []models.Finding {
	findings := []models.Finding{}
	if text == "" {
		return findings
	}

	textLower := strings.ToLower(text)

	lexicon.Walk(func(severity models.Severity, entry models.PhraseEntry) {
		phrase := strings.ToLower(entry.Phrase)
		if phrase == "" {
			return
		}
		count := strings.Count(textLower, phrase)
		if count == 0 {
			return
		}
		findings = append(findings, models.Finding{
			Phrase:      entry.Phrase,
			Description: entry.Description,
			Severity:    severity,
			Count:       count,
		})
	})

	return findings
}

// WordCount counts whitespace-delimited tokens; empty or all-whitespace
// text yields zero.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

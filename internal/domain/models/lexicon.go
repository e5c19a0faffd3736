package models

// PhraseEntry is one curated clause pattern with its user-facing explanation.
type PhraseEntry struct {
	Phrase      string `json:"phrase"`
	Description string `json:"description"`
}

// Lexicon is the phrase catalogue grouped by severity. It is treated as
// immutable once built; WithCustom returns a copy when user phrases apply.
type Lexicon struct {
	High   []PhraseEntry `json:"high"`
	Medium []PhraseEntry `json:"medium"`
	Low    []PhraseEntry `json:"low"`
}

// Size returns the total number of entries across all tiers.
func (l Lexicon) Size() int {
	return len(l.High) + len(l.Medium) + len(l.Low)
}

// Tier returns the entries for the given severity.
func (l Lexicon) Tier(s Severity) []PhraseEntry {
	switch s {
	case SeverityHigh:
		return l.High
	case SeverityMedium:
		return l.Medium
	case SeverityLow:
		return l.Low
	}
	return nil
}

// Walk visits every entry in catalogue order, HIGH then MEDIUM then LOW.
func (l Lexicon) Walk(fn func(severity Severity, entry PhraseEntry)) {
	for _, e := range l.High {
		fn(SeverityHigh, e)
	}
	for _, e := range l.Medium {
		fn(SeverityMedium, e)
	}
	for _, e := range l.Low {
		fn(SeverityLow, e)
	}
}

// WithCustom returns a copy of the lexicon with user-defined keywords
// appended to their severity tiers. The receiver is left untouched.
func (l Lexicon) WithCustom(custom []CustomKeyword) Lexicon {
	if len(custom) == 0 {
		return l
	}
	out := Lexicon{
		High:   append([]PhraseEntry(nil), l.High...),
		Medium: append([]PhraseEntry(nil), l.Medium...),
		Low:    append([]PhraseEntry(nil), l.Low...),
	}
	for _, kw := range custom {
		entry := PhraseEntry{Phrase: kw.Phrase, Description: kw.Description}
		if entry.Description == "" {
			entry.Description = "User-defined risky phrase"
		}
		switch kw.Severity {
		case SeverityHigh:
			out.High = append(out.High, entry)
		case SeverityLow:
			out.Low = append(out.Low, entry)
		default:
			out.Medium = append(out.Medium, entry)
		}
	}
	return out
}

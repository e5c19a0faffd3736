package ui

import (
	"strconv"

	"github.com/pterm/pterm"

	"tcshield-lab/internal/domain/models"
)

// PrintFindings renders the matched clauses as a table, most severe first.
func PrintFindings(findings []models.Finding) {
	if len(findings) == 0 {
		pterm.Success.Println("No risky clauses found. This document looks clean.")
		return
	}

	pterm.Warning.Printf("Found %d risky clauses:\n\n", len(findings))

	data := [][]string{
		{"Severity", "Phrase", "Category", "Count", "Description"},
	}

	for _, f := range findings {
		sevStyle := ""
		switch f.Severity {
		case models.SeverityHigh:
			sevStyle = pterm.FgRed.Sprint("HIGH")
		case models.SeverityMedium:
			sevStyle = pterm.FgYellow.Sprint("MEDIUM")
		default:
			sevStyle = pterm.FgBlue.Sprint("LOW")
		}

		data = append(data, []string{
			sevStyle,
			pterm.FgCyan.Sprint(f.Phrase),
			string(f.Category),
			strconv.Itoa(f.Count),
			f.Description,
		})
	}

	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// PrintSummary renders the overall verdict for a document.
func PrintSummary(score int, status models.Status, wordCount int) {
	pterm.Println()
	switch status {
	case models.StatusDanger:
		pterm.Error.Printf("Risk score %d/100 (danger) across %d words\n", score, wordCount)
	case models.StatusWarning:
		pterm.Warning.Printf("Risk score %d/100 (warning) across %d words\n", score, wordCount)
	default:
		pterm.Success.Printf("Risk score %d/100 (safe) across %d words\n", score, wordCount)
	}
}

// StartSpinner starts a spinner with the given text.
func StartSpinner(text string) *pterm.SpinnerPrinter {
	spinner, _ := pterm.DefaultSpinner.Start(text)
	return spinner
}

package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"tcshield-lab/internal/config"
	"tcshield-lab/internal/domain/services"
	"tcshield-lab/internal/ui"
	"tcshield-lab/pkg/logger"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a Terms & Conditions document from a local file",
	Long:  `Reads a plain-text Terms & Conditions or privacy policy document and scores it against the built-in catalogue of risky clauses. Runs fully offline.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", args[0], err)
			os.Exit(1)
		}
		text := string(raw)

		spinner := ui.StartSpinner("Scanning document for risky clauses...")

		log := logger.NewDevelopment()
		matcher := services.NewMatcher()
		scorer := services.NewScorer(config.AnalysisConfig{}, log)
		lexicon := services.DefaultLexicon()

		findings := matcher.Match(text, lexicon)
		for i := range findings {
			findings[i].Category = services.Categorize(findings[i].Phrase, findings[i].Description)
		}
		sort.SliceStable(findings, func(i, j int) bool {
			return findings[i].Severity.Rank() > findings[j].Severity.Rank()
		})

		score := scorer.Score(findings)
		status := scorer.StatusFor(score)
		spinner.Stop()

		ui.PrintFindings(findings)
		ui.PrintSummary(score, status, services.WordCount(text))
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

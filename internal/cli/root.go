package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tcshield",
	Short: "tcshield scans Terms & Conditions for risky clauses",
	Long:  `tcshield analyzes Terms & Conditions and privacy policy documents for clauses that put users at risk, such as data selling, forced arbitration, and unilateral changes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

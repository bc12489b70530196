package cmd

import (
	"github.com/abhisek/stackfour/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stackfour",
	Short: "Rule-based solver for nursing prioritization questions",
	Long: "Stackfour answers NCLEX-style multiple-choice questions with a\n" +
		"deterministic priority framework: life threats first, then safety,\n" +
		"then physiological needs, then the nursing process.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STACKFOUR_DB env var)")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(referenceCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STACKFOUR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

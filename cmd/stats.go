package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics and past evaluation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		runLimit, _ := cmd.Flags().GetInt("runs")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()

		correct, total, err := st.LearningRepo().OutcomeCounts(ctx)
		if err != nil {
			return fmt.Errorf("count outcomes: %w", err)
		}
		fmt.Println("Recorded Predictions")
		fmt.Println(strings.Repeat("─", 60))
		if total == 0 {
			fmt.Println("None yet. Run `stackfour eval --save` to record outcomes.")
		} else {
			fmt.Printf("Graded: %d   Correct: %d   Accuracy: %.1f%%\n",
				total, correct, 100*float64(correct)/float64(total))
		}

		stats, err := st.LearningRepo().LoadStats(ctx)
		if err != nil {
			return fmt.Errorf("load learning stats: %w", err)
		}
		if stats != nil && len(stats.Patterns) > 0 {
			names := make([]string, 0, len(stats.Patterns))
			for name := range stats.Patterns {
				names = append(names, name)
			}
			sort.Slice(names, func(i, j int) bool {
				return stats.Patterns[names[i]].Total > stats.Patterns[names[j]].Total
			})
			if len(names) > 10 {
				names = names[:10]
			}

			fmt.Println()
			fmt.Println("Top Scoring Rules")
			fmt.Println(strings.Repeat("─", 60))
			fmt.Printf("%-32s  %8s  %8s  %8s\n", "Rule", "Used", "Correct", "Rate")
			for _, name := range names {
				p := stats.Patterns[name]
				rate := 0.0
				if p.Total > 0 {
					rate = 100 * float64(p.Correct) / float64(p.Total)
				}
				fmt.Printf("%-32s  %8d  %8d  %7.1f%%\n", truncate(name, 32), p.Total, p.Correct, rate)
			}
		}

		runs, err := st.RunRepo().ListRuns(ctx, runLimit)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}
		if len(runs) > 0 {
			fmt.Println()
			fmt.Println("Recent Evaluation Runs")
			fmt.Println(strings.Repeat("─", 60))
			fmt.Printf("%-20s  %-10s  %-16s  %8s\n", "Started", "Version", "Dataset", "Accuracy")
			for _, run := range runs {
				fmt.Printf("%-20s  %-10s  %-16s  %7.1f%%\n",
					run.StartedAt.Local().Format("2006-01-02 15:04"),
					run.AlgorithmVersion,
					run.DatasetHash,
					100*run.Summary.Overall.Accuracy)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("runs", "n", 5, "Number of past evaluation runs to show")
}

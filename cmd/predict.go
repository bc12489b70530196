package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/stackfour/internal/report"
	"github.com/spf13/cobra"
)

var predictCmd = &cobra.Command{
	Use:   "predict <question-id>",
	Short: "Predict the answer for one question from the corpus",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		noLLM, _ := cmd.Flags().GetBool("no-llm")
		record, _ := cmd.Flags().GetBool("record")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		q, err := st.QuestionRepo().Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("load question %s: %w", args[0], err)
		}

		engine, recorder := buildEngine(ctx, st, noLLM)

		fmt.Println(q.Stem)
		for _, key := range q.OptionKeys() {
			fmt.Printf("  %s. %s\n", key, q.Options[key])
		}
		fmt.Println()

		pred := engine.Predict(ctx, q)
		report.WritePrediction(os.Stdout, pred)

		if q.HasCorrect() {
			verdict := "incorrect"
			if pred.Answers.Equal(q.Correct) {
				verdict = "correct"
			}
			fmt.Printf("\nExpected: %s (%s)\n", q.Correct.String(), verdict)
			if record {
				if err := recorder.Save(ctx); err != nil {
					return fmt.Errorf("save learning state: %w", err)
				}
			}
		}
		return nil
	},
}

func init() {
	predictCmd.Flags().Bool("no-llm", false, "Skip the LLM knowledge helper and use only the built-in fact table")
	predictCmd.Flags().Bool("record", false, "Persist the graded outcome to the learning store")
}

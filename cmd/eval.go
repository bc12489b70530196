package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/abhisek/stackfour/internal/metrics"
	"github.com/abhisek/stackfour/internal/question"
	"github.com/abhisek/stackfour/internal/report"
	"github.com/abhisek/stackfour/internal/solver"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the solver against the stored corpus",
	Long: "Eval grades the solver on a held-out test split of the corpus and\n" +
		"prints accuracy with confidence intervals, per format. Runs saved\n" +
		"with --save can be compared across algorithm versions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		testRatio, _ := cmd.Flags().GetFloat64("test-ratio")
		seed, _ := cmd.Flags().GetInt64("seed")
		all, _ := cmd.Flags().GetBool("all")
		save, _ := cmd.Flags().GetBool("save")
		noLLM, _ := cmd.Flags().GetBool("no-llm")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.QuestionRepo()

		ids, err := repo.IDs(ctx)
		if err != nil {
			return fmt.Errorf("list corpus IDs: %w", err)
		}
		if len(ids) == 0 {
			return fmt.Errorf("corpus is empty; run `stackfour load` first")
		}

		evalIDs := ids
		if !all {
			_, evalIDs = metrics.SplitIDs(ids, testRatio, seed)
		}
		if len(evalIDs) == 0 {
			return fmt.Errorf("test split is empty; lower --test-ratio or pass --all")
		}

		questions := make([]*question.Question, 0, len(evalIDs))
		for _, id := range evalIDs {
			q, err := repo.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("load question %s: %w", id, err)
			}
			questions = append(questions, q)
		}

		engine, recorder := buildEngine(ctx, st, noLLM)

		predictions := make([]question.AnswerSet, 0, len(questions))
		for _, q := range questions {
			predictions = append(predictions, engine.Predict(ctx, q).Answers)
		}

		summary := metrics.Evaluate(questions, predictions)
		run := metrics.NewRun(summary, solver.Version, metrics.DatasetHash(evalIDs), map[string]string{
			"test_ratio": strconv.FormatFloat(testRatio, 'f', -1, 64),
			"seed":       strconv.FormatInt(seed, 10),
			"all":        strconv.FormatBool(all),
			"llm":        strconv.FormatBool(!noLLM),
		})

		report.WriteRun(os.Stdout, run)

		if save {
			if err := st.RunRepo().SaveRun(ctx, run); err != nil {
				return fmt.Errorf("save run: %w", err)
			}
			if err := recorder.Save(ctx); err != nil {
				return fmt.Errorf("save learning state: %w", err)
			}
			fmt.Printf("\nSaved run %s\n", run.ID)
		}
		return nil
	},
}

func init() {
	evalCmd.Flags().Float64("test-ratio", 0.2, "Fraction of the corpus held out for testing")
	evalCmd.Flags().Int64("seed", 42, "Shuffle seed for the train/test split")
	evalCmd.Flags().Bool("all", false, "Evaluate the whole corpus instead of the test split")
	evalCmd.Flags().Bool("save", false, "Persist the evaluation run and learning state")
	evalCmd.Flags().Bool("no-llm", false, "Skip the LLM knowledge helper and use only the built-in fact table")
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/stackfour/internal/question"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Load questions from a CSV or JSON file into the corpus",
	Long: "Load reads a question file and upserts every item into the local\n" +
		"corpus by its ID. CSV files need a header row with id, stem, correct,\n" +
		"format, and option columns A-E.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()

		var questions []*question.Question
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv":
			questions, err = question.LoadCSV(f)
		case ".json":
			questions, err = question.LoadJSON(f)
		default:
			return fmt.Errorf("unsupported file type %q (want .csv or .json)", filepath.Ext(path))
		}
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.QuestionRepo()
		for _, q := range questions {
			if err := repo.Save(ctx, q); err != nil {
				return fmt.Errorf("save question %s: %w", q.ID, err)
			}
		}

		fmt.Printf("Loaded %d questions from %s\n", len(questions), path)
		return nil
	},
}

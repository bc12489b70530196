package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete recorded outcomes and learned rule weights",
	Long: "Reset clears the learning state: recorded prediction outcomes,\n" +
		"rule success counters, and mined keyword associations. The question\n" +
		"corpus and saved evaluation runs are kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("refusing to delete learning state without --force")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.LearningRepo().Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset learning state: %w", err)
		}
		fmt.Println("Learning state cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Actually delete; without it reset is a no-op")
}

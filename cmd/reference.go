package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/stackfour/internal/report"
	"github.com/spf13/cobra"
)

var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Print the priority-order quick reference card",
	Run: func(cmd *cobra.Command, args []string) {
		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			fmt.Println(report.ReferenceCardText())
			return
		}
		report.WriteReferenceCard(os.Stdout)
	},
}

func init() {
	referenceCmd.Flags().Bool("plain", false, "Print without borders or styling")
}

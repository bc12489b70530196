package cmd

import (
	"fmt"

	"github.com/abhisek/stackfour/internal/solver"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("stackfour", version, "(algorithm", solver.Version+")")
	},
}

package main

import (
	"os"

	"github.com/abhisek/stackfour/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

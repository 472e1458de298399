package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/dictionary"
)

// version is the engine release; overridable at build time via -ldflags.
var version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print engine and dictionary versions",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("ats_engine %s (dictionary %s)\n", version, dictionary.Default().Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

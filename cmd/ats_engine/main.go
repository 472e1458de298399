// Package main provides the entry point for the resume ATS engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_engine",
	Short: "Resume structuring and deterministic ATS scoring engine",
	Long:  "ats_engine turns plain resume text into a structured record and produces an explainable, deterministic ATS compatibility score with a per-category breakdown.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

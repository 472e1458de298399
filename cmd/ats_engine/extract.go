package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/extractor"
	"github.com/jonathan/resume-ats/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured record from resume text",
	Long:  `Parses a plain-text (or HTML) resume file into a structured record: contact info, summary, skills, education, experience, and projects. Extraction is deterministic and never fails on malformed input; unrecognized content is left out rather than mis-filed.`,
	RunE:  runExtract,
}

var (
	extractInput      string
	extractOutput     string
	extractDictionary string
	extractHTML       bool
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInput, "input", "i", "", "Path to resume text or HTML file (required)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Path to write the record JSON (default: stdout)")
	extractCmd.Flags().StringVar(&extractDictionary, "dictionary", "", "Path to a custom dictionary JSON file")
	extractCmd.Flags().BoolVar(&extractHTML, "html", false, "Treat input as HTML")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a human-readable summary instead of raw JSON")
	_ = extractCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	dict, err := loadDictionary(extractDictionary)
	if err != nil {
		return err
	}

	text, err := readResumeText(extractInput, extractHTML)
	if err != nil {
		return err
	}

	record := extractor.Extract(text, dict)

	if extractVerbose {
		observability.NewPrinter(os.Stdout).PrintResumeRecord(&record)
		if extractOutput == "" {
			return nil
		}
	}
	return writeOutput(extractOutput, record)
}

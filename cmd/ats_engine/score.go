package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/explain"
	"github.com/jonathan/resume-ats/internal/extractor"
	"github.com/jonathan/resume-ats/internal/observability"
	"github.com/jonathan/resume-ats/internal/scoring"
	"github.com/jonathan/resume-ats/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against the deterministic ATS rubric",
	Long: `Scores a resume on a fixed 100-point rubric (Completeness 30, Keyword Relevance 40, Formatting & Readability 30) and reports per-category findings.

Input is either a resume text file (--input, extracted first) or a previously extracted record JSON (--record), so an enhanced record can be re-scored to measure improvement.`,
	RunE: runScore,
}

var (
	scoreInput      string
	scoreRecordPath string
	scoreOutput     string
	scoreDictionary string
	scoreRole       string
	scoreHTML       bool
	scoreVerbose    bool
)

// scoreResult is the CLI output shape: breakdown plus the flat snapshot for
// external tracking.
type scoreResult struct {
	Record    *types.ResumeRecord  `json:"record,omitempty"`
	Breakdown types.ScoreBreakdown `json:"breakdown"`
	Explained []explain.Entry      `json:"explained"`
	Snapshot  map[string]float64   `json:"snapshot"`
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreInput, "input", "i", "", "Path to resume text or HTML file (mutually exclusive with --record)")
	scoreCmd.Flags().StringVar(&scoreRecordPath, "record", "", "Path to an extracted record JSON file (mutually exclusive with --input)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "output", "o", "", "Path to write the score JSON (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreDictionary, "dictionary", "", "Path to a custom dictionary JSON file")
	scoreCmd.Flags().StringVarP(&scoreRole, "role", "r", "", "Target role used to weight role keyword matching (optional)")
	scoreCmd.Flags().BoolVar(&scoreHTML, "html", false, "Treat input as HTML")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a human-readable breakdown instead of raw JSON")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	if (scoreInput == "") == (scoreRecordPath == "") {
		return fmt.Errorf("exactly one of --input or --record is required")
	}

	dict, err := loadDictionary(scoreDictionary)
	if err != nil {
		return err
	}
	scorer, err := scoring.NewScorer(dict, scoring.DefaultWeights())
	if err != nil {
		return err
	}

	var record types.ResumeRecord
	var extracted *types.ResumeRecord
	if scoreRecordPath != "" {
		if err := readRecord(scoreRecordPath, &record); err != nil {
			return err
		}
	} else {
		text, err := readResumeText(scoreInput, scoreHTML)
		if err != nil {
			return err
		}
		record = extractor.Extract(text, dict)
		extracted = &record
	}

	breakdown := scorer.Score(&record, scoreRole)
	result := scoreResult{
		Record:    extracted,
		Breakdown: breakdown,
		Explained: explain.Explain(breakdown),
		Snapshot:  explain.Snapshot(breakdown),
	}

	if scoreVerbose {
		printer := observability.NewPrinter(os.Stdout)
		if extracted != nil {
			printer.PrintResumeRecord(extracted)
		}
		printer.PrintScoreBreakdown(&breakdown)
		if scoreOutput == "" {
			return nil
		}
	}
	return writeOutput(scoreOutput, result)
}

// readRecord loads and validates an externally supplied record. Validation
// failures are contract violations by the caller, reported as such.
func readRecord(path string, record *types.ResumeRecord) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read record file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, record); err != nil {
		return fmt.Errorf("failed to parse record file %s: %w", path, err)
	}
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid record in %s: %w", path, err)
	}
	return nil
}

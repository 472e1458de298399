package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-ats/internal/explain"
	"github.com/jonathan/resume-ats/internal/extractor"
	"github.com/jonathan/resume-ats/internal/scoring"
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Score multiple resume files concurrently",
	Long: `Scores each given resume file (glob patterns supported) and emits one result per file. The engine is pure and safe for concurrent calls; this command fans scoring out across a bounded worker pool while output order follows the input order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

var (
	batchOutput      string
	batchDictionary  string
	batchRole        string
	batchConcurrency int
)

// batchResult pairs one input file with its score snapshot.
type batchResult struct {
	File     string             `json:"file"`
	Total    float64            `json:"total"`
	Snapshot map[string]float64 `json:"snapshot"`
	Findings []string           `json:"findings,omitempty"`
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Path to write the results JSON (default: stdout)")
	batchCmd.Flags().StringVar(&batchDictionary, "dictionary", "", "Path to a custom dictionary JSON file")
	batchCmd.Flags().StringVarP(&batchRole, "role", "r", "", "Target role used to weight role keyword matching (optional)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum number of files scored in parallel")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	files, err := expandGlobs(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no input files matched")
	}

	dict, err := loadDictionary(batchDictionary)
	if err != nil {
		return err
	}
	scorer, err := scoring.NewScorer(dict, scoring.DefaultWeights())
	if err != nil {
		return err
	}

	results := make([]batchResult, len(files))
	var g errgroup.Group
	g.SetLimit(max(batchConcurrency, 1))

	for i, file := range files {
		g.Go(func() error {
			text, err := readResumeText(file, false)
			if err != nil {
				return err
			}
			record := extractor.Extract(text, dict)
			breakdown := scorer.Score(&record, batchRole)

			var findings []string
			for _, c := range breakdown.Categories {
				findings = append(findings, c.Findings...)
			}
			results[i] = batchResult{
				File:     file,
				Total:    breakdown.Total,
				Snapshot: explain.Snapshot(breakdown),
				Findings: findings,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return writeOutput(batchOutput, results)
}

// expandGlobs resolves glob patterns into a sorted, de-duplicated file list.
// Literal paths pass through even when the file does not exist yet; the read
// will report that case.
func expandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if matches == nil {
			matches = []string{pattern}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

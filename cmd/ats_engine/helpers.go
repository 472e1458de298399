package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-ats/internal/dictionary"
	"github.com/jonathan/resume-ats/internal/ingest"
)

// loadDictionary returns the dictionary for a run: the built-in one, or a
// validated custom file when a path is given.
func loadDictionary(path string) (*dictionary.Dictionary, error) {
	if path == "" {
		return dictionary.Default(), nil
	}
	dict, err := dictionary.Load(path)
	if err != nil {
		return nil, err
	}
	return dict, nil
}

// readResumeText reads and normalizes a resume input file. HTML inputs are
// converted to plain text first; the flag wins, the extension is the
// fallback signal.
func readResumeText(path string, htmlFlag bool) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	isHTML := htmlFlag ||
		strings.HasSuffix(strings.ToLower(path), ".html") ||
		strings.HasSuffix(strings.ToLower(path), ".htm")
	if isHTML {
		return ingest.FromHTML(string(data))
	}
	return ingest.CleanText(string(data)), nil
}

// writeOutput marshals v as indented JSON to a file, or stdout when path is
// empty.
func writeOutput(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// Package explain formats score breakdowns for display and tracking. It is
// pure reformatting: no recomputation, and categories are always emitted in
// the fixed canonical order so that before/after breakdowns can be diffed
// category by category.
package explain

import (
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

// Entry is one formatted breakdown row.
type Entry struct {
	Category string   `json:"category"`
	Earned   float64  `json:"earned"`
	Possible float64  `json:"possible"`
	Findings []string `json:"findings,omitempty"`
}

// Explain reformats a breakdown into ordered entries. Canonical categories
// come first in their fixed order; any unknown categories follow in input
// order. Scores never influence ordering.
func Explain(breakdown types.ScoreBreakdown) []Entry {
	byName := make(map[string]types.Category, len(breakdown.Categories))
	for _, c := range breakdown.Categories {
		if _, dup := byName[c.Name]; !dup {
			byName[c.Name] = c
		}
	}

	entries := make([]Entry, 0, len(breakdown.Categories))
	emitted := make(map[string]bool, len(breakdown.Categories))
	for _, name := range types.CategoryOrder {
		if c, ok := byName[name]; ok {
			entries = append(entries, toEntry(c))
			emitted[name] = true
		}
	}
	for _, c := range breakdown.Categories {
		if !emitted[c.Name] {
			entries = append(entries, toEntry(c))
			emitted[c.Name] = true
		}
	}
	return entries
}

func toEntry(c types.Category) Entry {
	return Entry{
		Category: c.Name,
		Earned:   c.Earned,
		Possible: c.Possible,
		Findings: append([]string(nil), c.Findings...),
	}
}

// Snapshot flattens a breakdown into a serializable map of total plus
// per-category subtotals, keyed by slugged category names. External tracking
// collaborators attach their own ids and timestamps; the engine does not
// sequence or persist snapshots itself.
func Snapshot(breakdown types.ScoreBreakdown) map[string]float64 {
	snap := make(map[string]float64, len(breakdown.Categories)+1)
	snap["total"] = breakdown.Total
	for _, c := range breakdown.Categories {
		snap[slug(c.Name)] = c.Earned
	}
	return snap
}

// slug lowercases a category name and collapses non-alphanumerics to
// underscores: "Formatting & Readability" -> "formatting_readability".
func slug(name string) string {
	var sb strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				sb.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "_")
}

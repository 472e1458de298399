// Package scoring implements the deterministic ATS compatibility score: a
// fixed-weight rubric over a structured resume record producing a 0-100
// total, a per-category breakdown, and actionable findings. Identical input
// always yields an identical breakdown; there is no I/O and no randomness.
package scoring

import (
	"strings"

	"github.com/jonathan/resume-ats/internal/dictionary"
	"github.com/jonathan/resume-ats/internal/types"
)

// Saturation thresholds for the ramped sub-criteria.
const (
	// MinSkillCount is the skill count needed for the completeness credit.
	MinSkillCount = 8
	// RichnessSaturation is the distinct skill count at which the richness
	// ramp reaches its cap.
	RichnessSaturation = 16
	// Strong bullet thresholds: a bullet needs substance, not a fragment.
	strongBulletMinChars = 40
	strongBulletMinWords = 6
)

// Scorer scores resume records against a keyword dictionary and a validated
// weight table. A Scorer is immutable and safe for concurrent use; every
// call allocates its own output.
type Scorer struct {
	dict    *dictionary.Dictionary
	weights Weights
}

// NewScorer builds a scorer. A nil dictionary falls back to the built-in
// one. The weight table is validated up front: a table that does not sum to
// 100 or carries negative points is a *ConfigError.
func NewScorer(dict *dictionary.Dictionary, weights Weights) (*Scorer, error) {
	if dict == nil {
		dict = dictionary.Default()
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{dict: dict, weights: weights}, nil
}

// Weights returns the scorer's weight table.
func (s *Scorer) Weights() Weights { return s.weights }

// Score produces the deterministic breakdown for a record. targetRole is
// optional; when non-empty its words join the role-signal vocabulary for the
// role sub-criterion and have no other effect. An empty record scores zero
// in every category.
func (s *Scorer) Score(record *types.ResumeRecord, targetRole string) types.ScoreBreakdown {
	categories := []types.Category{
		s.scoreCompleteness(record),
		s.scoreKeywords(record, targetRole),
		s.scoreFormatting(record),
	}

	breakdown := types.ScoreBreakdown{Categories: categories}
	breakdown.Total = breakdown.CategorySum()
	return breakdown
}

// ramp maps a raw ratio in [0,1] to round(r*cap, 2) points, clamped to
// [0,cap]. Ramps never exceed their cap even when the raw signal exceeds its
// saturation threshold, keeping scores comparable across resume lengths.
func ramp(r float64, limit float64) float64 {
	if r < 0 {
		r = 0
	}
	if r > 1 {
		r = 1
	}
	return types.Round2(r * limit)
}

// award is a helper for all-or-nothing sub-criteria: full points when ok,
// otherwise zero points plus the finding.
func award(ok bool, points float64, finding string, findings *[]string) float64 {
	if ok {
		return points
	}
	*findings = append(*findings, finding)
	return 0
}

// matchesAnyWord reports whether any of the terms occurs in text at token
// boundaries.
func matchesAnyWord(text string, terms []string) bool {
	for _, term := range terms {
		if term == "" {
			continue
		}
		if containsToken(text, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// containsToken is a boundary-checked substring test over lowercase text.
func containsToken(text, term string) bool {
	for start := 0; start <= len(text)-len(term); {
		idx := strings.Index(text[start:], term)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(term)
		beforeOK := idx == 0 || !isTokenByte(text[idx-1])
		afterOK := end == len(text) || !isTokenByte(text[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
	return false
}

func isTokenByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

package types

import "math"

// Category names in canonical breakdown order.
const (
	CategoryCompleteness = "Completeness"
	CategoryKeywords     = "Keyword Relevance"
	CategoryFormatting   = "Formatting & Readability"
)

// CategoryOrder is the fixed order categories are emitted in. Breakdowns are
// never reordered by score magnitude so before/after runs stay diffable.
var CategoryOrder = []string{
	CategoryCompleteness,
	CategoryKeywords,
	CategoryFormatting,
}

// Category is one scored category with its point cap and findings.
// Findings name the gaps that kept the category below full marks; a
// sub-criterion at its maximum contributes no finding.
type Category struct {
	Name     string   `json:"name"`
	Earned   float64  `json:"earned"`
	Possible float64  `json:"possible"`
	Findings []string `json:"findings,omitempty"`
}

// ScoreBreakdown is the output of a scoring call. Total is kept at
// two-decimal precision and always equals the rounded sum of category
// earned points.
type ScoreBreakdown struct {
	Total      float64    `json:"total"`
	Categories []Category `json:"categories"`
}

// Round2 rounds a point value to two decimals, the precision all earned
// points and totals are kept at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CategorySum returns the rounded sum of earned points across categories.
func (b *ScoreBreakdown) CategorySum() float64 {
	sum := 0.0
	for _, c := range b.Categories {
		sum += c.Earned
	}
	return Round2(sum)
}

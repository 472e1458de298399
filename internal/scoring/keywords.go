package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

// scoreKeywords awards points for skill richness, for skills echoed in the
// resume body, and for role/seniority signals in titles or the summary.
func (s *Scorer) scoreKeywords(record *types.ResumeRecord, targetRole string) types.Category {
	w := s.weights.Keywords
	var findings []string
	earned := 0.0

	distinct := distinctSkills(record.Skills)

	// Richness: ramp saturating at RichnessSaturation distinct skills.
	richness := ramp(float64(len(distinct))/RichnessSaturation, w.Richness)
	earned += richness
	if richness < w.Richness {
		findings = append(findings, fmt.Sprintf(
			"Add more role-relevant skills (target %d+ distinct skills, currently %d).",
			RichnessSaturation, len(distinct)))
	}

	// Reuse: fraction of listed skills that also appear in bullets/summary.
	body := record.BodyText()
	reused := 0
	for _, skill := range distinct {
		if strings.Contains(body, skill) {
			reused++
		}
	}
	reuseRatio := 0.0
	if len(distinct) > 0 {
		reuseRatio = float64(reused) / float64(len(distinct))
	}
	reuse := ramp(reuseRatio, w.Reuse)
	earned += reuse
	if reuse < w.Reuse {
		findings = append(findings,
			"Echo more of your listed skills inside experience bullets and the summary.")
	}

	// Role and seniority signals over titles and summary. A target role only
	// widens the role vocabulary; its absence disables nothing else.
	titleText := record.TitleText()
	roleWords := s.dict.RoleSignals
	if targetRole != "" {
		roleWords = append(append([]string{}, roleWords...), strings.Fields(strings.ToLower(targetRole))...)
	}
	earned += award(matchesAnyWord(titleText, roleWords), w.RoleSignal,
		"Include a clear role keyword (e.g. Engineer, Developer, Analyst) in titles or summary.",
		&findings)
	earned += award(matchesAnyWord(titleText, s.dict.SenioritySignals), w.SenioritySignal,
		"Add a seniority marker (e.g. Senior, Lead) to titles if applicable.",
		&findings)

	return types.Category{
		Name:     types.CategoryKeywords,
		Earned:   types.Round2(earned),
		Possible: s.weights.KeywordsTotal(),
		Findings: findings,
	}
}

// distinctSkills lowercases and de-duplicates the skill list, preserving
// first-seen order. Extractor output is already distinct; this guards
// externally built records.
func distinctSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	var out []string
	for _, s := range skills {
		low := strings.ToLower(strings.TrimSpace(s))
		if low == "" || seen[low] {
			continue
		}
		seen[low] = true
		out = append(out, low)
	}
	return out
}

package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-ats/internal/extractor"
	"github.com/jonathan/resume-ats/internal/types"
)

// quantifiedRe matches a number, percentage, or currency token, the signal
// that a bullet states measurable impact.
var quantifiedRe = regexp.MustCompile(`\d|%|[$€£]`)

// scoreFormatting awards points for bullet quality (substance, action-verb
// openers, quantified impact), consistent date formats, and a contact link.
func (s *Scorer) scoreFormatting(record *types.ResumeRecord) types.Category {
	w := s.weights.Formatting
	var findings []string
	earned := 0.0

	bullets := record.BulletTexts()

	strong := ramp(bulletRatio(bullets, isStrongBullet), w.StrongBullets)
	earned += strong
	if strong < w.StrongBullets {
		findings = append(findings,
			"Write fuller bullets: aim for complete statements of at least 40 characters.")
	}

	verbs := ramp(bulletRatio(bullets, s.startsWithActionVerb), w.ActionVerbs)
	earned += verbs
	if verbs < w.ActionVerbs {
		findings = append(findings,
			"Start more bullets with strong action verbs (e.g. Led, Built, Optimized, Delivered).")
	}

	quantified := ramp(bulletRatio(bullets, isQuantified), w.Quantified)
	earned += quantified
	if quantified < w.Quantified {
		findings = append(findings,
			"Quantify impact with numbers, percentages, or amounts where possible.")
	}

	earned += award(datesConsistent(record), w.DateConsistency,
		"Normalize date formats across all entries (e.g. Jan 2020 - Mar 2021 everywhere).",
		&findings)

	earned += award(len(record.Contact.Links) > 0, w.ContactLink,
		"Include a LinkedIn or GitHub link for recruiter context.",
		&findings)

	return types.Category{
		Name:     types.CategoryFormatting,
		Earned:   types.Round2(earned),
		Possible: s.weights.FormattingTotal(),
		Findings: findings,
	}
}

// bulletRatio returns the fraction of bullets satisfying pred; zero when
// there are no bullets at all.
func bulletRatio(bullets []string, pred func(string) bool) float64 {
	if len(bullets) == 0 {
		return 0
	}
	hits := 0
	for _, b := range bullets {
		if pred(b) {
			hits++
		}
	}
	return float64(hits) / float64(len(bullets))
}

// isStrongBullet applies the length/structure threshold: a strong bullet is
// a full statement, not a fragment.
func isStrongBullet(bullet string) bool {
	trimmed := strings.TrimSpace(bullet)
	return len(trimmed) >= strongBulletMinChars &&
		len(strings.Fields(trimmed)) >= strongBulletMinWords
}

// startsWithActionVerb reports whether a bullet's first word is a recognized
// action verb.
func (s *Scorer) startsWithActionVerb(bullet string) bool {
	words := strings.Fields(bullet)
	if len(words) == 0 {
		return false
	}
	first := strings.TrimRight(words[0], ".,!?;:")
	return s.dict.IsActionVerb(first)
}

// isQuantified reports whether a bullet carries a quantified figure.
func isQuantified(bullet string) bool {
	return quantifiedRe.MatchString(bullet)
}

// datesConsistent reports whether all dated entries classify to one accepted
// date-shape family. Mixed families, unclassifiable dates, or no dated
// entries at all fail the check.
func datesConsistent(record *types.ResumeRecord) bool {
	var dates []string
	for _, exp := range record.Experience {
		if exp.Dates != "" {
			dates = append(dates, exp.Dates)
		}
	}
	for _, edu := range record.Education {
		if edu.Dates != "" {
			dates = append(dates, edu.Dates)
		}
	}
	if len(dates) == 0 {
		return false
	}

	family := ""
	for _, d := range dates {
		shape, ok := extractor.ClassifyDateShape(d)
		if !ok {
			return false
		}
		if family == "" {
			family = shape
		} else if family != shape {
			return false
		}
	}
	return true
}

package scoring

import (
	"fmt"

	"github.com/jonathan/resume-ats/internal/types"
)

// scoreCompleteness awards points for the presence of the core resume
// sections. Every sub-criterion is all-or-nothing; each miss contributes a
// finding naming the gap.
func (s *Scorer) scoreCompleteness(record *types.ResumeRecord) types.Category {
	w := s.weights.Completeness
	var findings []string
	earned := 0.0

	contactOK := record.Contact.Email != "" &&
		(record.Contact.Phone != "" || len(record.Contact.Links) > 0)
	earned += award(contactOK, w.ContactInfo,
		"Provide an email address plus a phone number or profile link for full contact credit.",
		&findings)

	earned += award(record.Summary != "", w.Summary,
		"Add a concise professional summary with role-relevant keywords.",
		&findings)

	if len(record.Skills) >= MinSkillCount {
		earned += w.SkillCount
	} else {
		findings = append(findings, fmt.Sprintf(
			"List at least %d distinct skills (currently %d).",
			MinSkillCount, len(record.Skills)))
	}

	earned += award(len(record.Education) > 0, w.Education,
		"Add at least one education entry with degree and institution.",
		&findings)

	earned += award(len(record.Experience) > 0, w.Experience,
		"Provide at least one experience entry with impact-focused bullets.",
		&findings)

	return types.Category{
		Name:     types.CategoryCompleteness,
		Earned:   types.Round2(earned),
		Possible: s.weights.CompletenessTotal(),
		Findings: findings,
	}
}

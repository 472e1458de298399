// Package extractor converts normalized resume text into a structured
// ResumeRecord. Extraction is a pure function of its input: it performs no
// I/O, never fails on malformed text, and degrades to empty fields so that
// partial input still supports scoring.
//
// Classification is a pipeline of small predicate rules over the document's
// lines: heading detection splits the text into section blocks, and each
// block is parsed by a section-specific rule set. Unrecognized headings drop
// their content rather than mis-filing it.
package extractor

import (
	"strings"

	"github.com/jonathan/resume-ats/internal/dictionary"
	"github.com/jonathan/resume-ats/internal/types"
)

// Extract parses resume text into a structured record using the given
// dictionary. A nil dictionary falls back to the built-in one. The returned
// record preserves source document order in every sequence field.
func Extract(text string, dict *dictionary.Dictionary) types.ResumeRecord {
	if dict == nil {
		dict = dictionary.Default()
	}

	var rec types.ResumeRecord
	if strings.TrimSpace(text) == "" {
		return rec
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")

	prelude, blocks := splitDocument(lines, dict)

	rec.Contact = types.Contact{
		Name:     extractName(lines),
		Email:    extractEmail(text),
		Phone:    extractPhone(text),
		Location: extractLocation(text, lines),
		Links:    extractLinks(text),
	}

	var skillsBlocks [][]string
	var summaryParts []string
	for _, block := range blocks {
		switch block.kind {
		case dictionary.SectionSkills:
			skillsBlocks = append(skillsBlocks, block.lines)
		case dictionary.SectionSummary:
			for _, par := range splitParagraphs(block.lines) {
				summaryParts = append(summaryParts, strings.Join(par, " "))
			}
		case dictionary.SectionEducation:
			rec.Education = append(rec.Education, parseEducation(block.lines, dict)...)
		case dictionary.SectionExperience:
			rec.Experience = append(rec.Experience, parseExperience(block.lines)...)
		case dictionary.SectionProjects:
			rec.Projects = append(rec.Projects, parseProjects(block.lines)...)
		}
	}

	if len(summaryParts) > 0 {
		rec.Summary = strings.Join(summaryParts, " ")
	} else {
		rec.Summary = extractSummary(prelude)
	}

	rec.Skills = extractSkills(text, skillsBlocks, dict)

	return rec
}

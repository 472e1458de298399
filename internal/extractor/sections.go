package extractor

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-ats/internal/dictionary"
)

// maxHeadingWords is the cutoff for heading-shaped lines.
const maxHeadingWords = 4

// sectionBlock is the run of lines under one heading. Kind is empty for
// headings the dictionary does not recognize; those blocks are dropped
// rather than mis-filed.
type sectionBlock struct {
	kind    string
	heading string
	lines   []string
}

// classifyHeading decides whether a line is a section heading. A heading is
// short (at most four words) and either matches a known section alias, is
// written in all caps, or carries a trailing colon.
func classifyHeading(line string, dict *dictionary.Dictionary) (kind string, isHeading bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || isBulletLine(trimmed) {
		return "", false
	}
	if len(strings.Fields(trimmed)) > maxHeadingWords {
		return "", false
	}
	if kind, ok := dict.SectionKind(trimmed); ok {
		return kind, true
	}
	if isAllCaps(trimmed) || strings.HasSuffix(trimmed, ":") {
		return "", true
	}
	return "", false
}

// isAllCaps reports whether a line contains letters and none of them
// lowercase.
func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// splitDocument partitions the document into the prelude (lines before the
// first heading) and the heading-delimited blocks that follow. Extraction
// never reorders lines; it only classifies them.
func splitDocument(lines []string, dict *dictionary.Dictionary) (prelude []string, blocks []sectionBlock) {
	var current *sectionBlock
	for _, line := range lines {
		if kind, ok := classifyHeading(line, dict); ok {
			blocks = append(blocks, sectionBlock{kind: kind, heading: strings.TrimSpace(line)})
			current = &blocks[len(blocks)-1]
			continue
		}
		if current == nil {
			prelude = append(prelude, line)
		} else {
			current.lines = append(current.lines, line)
		}
	}
	return prelude, blocks
}

// contactTokens mark lines that belong to a contact block rather than prose.
var contactTokens = []string{"@", "http", "www.", "linkedin", "github", "phone", "mobile", "tel"}

// extractSummary picks the first paragraph-shaped prelude block that is not
// dominated by contact tokens and not a lone name-like line.
func extractSummary(prelude []string) string {
	for _, par := range splitParagraphs(prelude) {
		if contactDominated(par) {
			continue
		}
		// A single short line at the top is a name or title, not a summary.
		if len(par) == 1 && len(strings.Fields(par[0])) <= 5 {
			continue
		}
		return strings.Join(par, " ")
	}
	return ""
}

// splitParagraphs groups consecutive non-blank lines.
func splitParagraphs(lines []string) [][]string {
	var paragraphs [][]string
	var current []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(current) > 0 {
				paragraphs = append(paragraphs, current)
				current = nil
			}
			continue
		}
		current = append(current, trimmed)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, current)
	}
	return paragraphs
}

// contactDominated reports whether at least half of a paragraph's lines carry
// contact tokens (email, URL, phone labels, or a phone-shaped digit run).
func contactDominated(par []string) bool {
	if len(par) == 0 {
		return false
	}
	hits := 0
	for _, line := range par {
		low := strings.ToLower(line)
		if hasAnyLabel(low, contactTokens) {
			hits++
			continue
		}
		if digits := nonDigitRe.ReplaceAllString(line, ""); len(digits) >= minPhoneDigits {
			hits++
		}
	}
	return hits*2 >= len(par)
}

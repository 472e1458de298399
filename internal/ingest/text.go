// Package ingest normalizes resume input at the engine boundary: plain text
// cleanup and HTML-to-text conversion. Binary formats (PDF/DOCX/OCR) are the
// job of external collaborators; the engine only ever sees text.
package ingest

import (
	"regexp"
	"strings"
)

var innerSpaceRe = regexp.MustCompile(`\s+`)

// CleanText normalizes text content while preserving document structure:
// line endings, bullet markers, and indentation survive; trailing spaces and
// runs of blank lines do not.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := collapseBlankLines(strings.Join(cleaned, "\n"))
	return strings.TrimSpace(result)
}

// cleanLine normalizes one line. Bullet lines keep their marker and
// indentation; other lines keep leading indentation but have inner space
// runs collapsed.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	indent := len(line) - len(trimmed)

	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ") {
		marker := trimmed[:strings.IndexByte(trimmed, ' ')+1]
		body := innerSpaceRe.ReplaceAllString(strings.TrimSpace(trimmed[len(marker):]), " ")
		return strings.Repeat(" ", indent) + marker + body
	}

	body := innerSpaceRe.ReplaceAllString(strings.TrimSpace(trimmed), " ")
	return strings.Repeat(" ", indent) + body
}

// collapseBlankLines limits consecutive blank lines to one, enough to keep
// paragraph and entry boundaries intact.
func collapseBlankLines(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		if line == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
		} else {
			blankRun = 0
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

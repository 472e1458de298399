package extractor

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-ats/internal/dictionary"
	"github.com/jonathan/resume-ats/internal/types"
)

var bulletMarkerRe = regexp.MustCompile(`^\s*[-*•·]\s*`)

// titleCompanySeps are tried in order when splitting a "Title — Company"
// line. Plain comma is excluded: companies like "Acme, Inc." make it too
// ambiguous, and a second non-bullet line already supplies the company.
var titleCompanySeps = []string{" — ", " – ", " - ", " | ", " @ ", " at "}

// isBulletLine reports whether a line is a bullet item (leading -, *, •,
// or an indented dash).
func isBulletLine(line string) bool {
	return bulletMarkerRe.MatchString(line)
}

func stripBulletMarker(line string) string {
	return strings.TrimSpace(bulletMarkerRe.ReplaceAllString(strings.TrimSpace(line), ""))
}

// splitTitleCompany splits a "Title — Company" shaped line. The boolean is
// false for lines without a recognized separator.
func splitTitleCompany(line string) (title, company string, ok bool) {
	for _, sep := range titleCompanySeps {
		if idx := strings.Index(line, sep); idx > 0 {
			title = strings.TrimSpace(line[:idx])
			company = strings.TrimSpace(line[idx+len(sep):])
			if title != "" {
				return title, company, true
			}
		}
	}
	return "", "", false
}

// parseExperience turns an experience block into ordered entries. Sub-entries
// are separated by blank lines or by a fresh "Title — Company" line; bullet
// lines become Bullets, a date-range shaped line (or inline range) becomes
// Dates, and the first plain line is the title, the second the company.
func parseExperience(lines []string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	var cur types.ExperienceEntry

	flush := func() {
		if cur.Title != "" || cur.Company != "" || cur.Dates != "" || len(cur.Bullets) > 0 {
			entries = append(entries, cur)
		}
		cur = types.ExperienceEntry{}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			flush()
		case isBulletLine(raw):
			if b := stripBulletMarker(raw); b != "" {
				cur.Bullets = append(cur.Bullets, b)
			}
		case isDateLine(line):
			if cur.Dates != "" {
				flush()
			}
			cur.Dates = line
		default:
			if dr, ok := findDateRange(line); ok && cur.Dates == "" {
				cur.Dates = dr
				line = trimDateRemnants(strings.Replace(line, dr, "", 1))
				if line == "" {
					continue
				}
			}
			if title, company, ok := splitTitleCompany(line); ok {
				if cur.Title != "" || len(cur.Bullets) > 0 {
					flush()
				}
				cur.Title, cur.Company = title, company
			} else if cur.Title == "" {
				cur.Title = line
			} else if cur.Company == "" {
				cur.Company = line
			}
			// Further plain lines are prose the positional heuristic
			// cannot place; they are dropped, not mis-filed.
		}
	}
	flush()
	return entries
}

// trimDateRemnants cleans up what is left of a line after an inline date
// range was cut out of it ("Engineer, Acme ()" -> "Engineer, Acme").
func trimDateRemnants(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "()")
	s = strings.TrimSuffix(s, "[]")
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), ",|–—-"))
}

// parseEducation turns an education block into entries. A degree-keyword line
// starts a new entry; "Degree, Institution" lines fill both fields, and an
// "in <Field>" tail inside the degree part becomes Field. Entries missing
// both institution and degree are dropped.
func parseEducation(lines []string, dict *dictionary.Dictionary) []types.EducationEntry {
	var entries []types.EducationEntry
	var cur types.EducationEntry

	flush := func() {
		if cur.Institution != "" || cur.Degree != "" {
			entries = append(entries, cur)
		}
		cur = types.EducationEntry{}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(stripBulletMarker(raw))
		if line == "" {
			flush()
			continue
		}
		if isDateLine(line) {
			if cur.Dates == "" {
				cur.Dates = line
			}
			continue
		}
		if dr, ok := findDateRange(line); ok && cur.Dates == "" {
			cur.Dates = dr
			line = trimDateRemnants(strings.Replace(line, dr, "", 1))
			if line == "" {
				continue
			}
		}

		if dict.HasDegreeKeyword(line) {
			if cur.Degree != "" {
				flush()
			}
			degreePart := line
			if idx := strings.IndexByte(line, ','); idx >= 0 {
				degreePart = strings.TrimSpace(line[:idx])
				if rest := strings.TrimSpace(line[idx+1:]); rest != "" && cur.Institution == "" {
					cur.Institution = rest
				}
			}
			cur.Degree, cur.Field = splitDegreeField(degreePart)
			continue
		}
		if cur.Institution == "" {
			cur.Institution = line
		}
	}
	flush()
	return entries
}

// splitDegreeField splits "B.S. in Computer Science" into degree and field.
func splitDegreeField(degree string) (string, string) {
	low := strings.ToLower(degree)
	idx := strings.Index(low, " in ")
	if idx <= 0 {
		return degree, ""
	}
	return strings.TrimSpace(degree[:idx]), strings.TrimSpace(degree[idx+4:])
}

// parseProjects turns a projects block into entries. Blocks are separated by
// blank lines; the first line is the project name, bullet lines are bullets,
// and remaining plain lines join into the description.
func parseProjects(lines []string) []types.ProjectEntry {
	var entries []types.ProjectEntry

	for _, par := range splitProjectBlocks(lines) {
		var entry types.ProjectEntry
		var descParts []string
		for i, raw := range par {
			if isBulletLine(raw) {
				if b := stripBulletMarker(raw); b != "" {
					entry.Bullets = append(entry.Bullets, b)
				}
				continue
			}
			line := strings.TrimSpace(raw)
			if i == 0 {
				entry.Name = strings.TrimSuffix(line, ":")
				continue
			}
			descParts = append(descParts, line)
		}
		entry.Description = strings.Join(descParts, " ")
		if entry.Name != "" || entry.Description != "" || len(entry.Bullets) > 0 {
			entries = append(entries, entry)
		}
	}
	return entries
}

// splitProjectBlocks groups lines into blank-line separated blocks while
// preserving the raw lines (bullet markers must survive for classification).
func splitProjectBlocks(lines []string) [][]string {
	var blocks [][]string
	var current []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

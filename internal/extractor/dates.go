package extractor

import "regexp"

// Accepted date-shape families. Entries whose dates all classify to the same
// family count as format-consistent; mixing families does not.
const (
	DateShapeMonth   = "month"   // "Jan 2020 - Mar 2021", "May 2019"
	DateShapeNumeric = "numeric" // "03/2021-05/2022", "03/2021"
	DateShapeYear    = "year"    // "2019 - 2021", "2019"
)

const (
	monthPat   = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)[a-z]*\.?`
	sepPat     = `\s*(?:[-–—]|to)\s*`
	presentPat = `(?:Present|Current|Now)`
)

var (
	monthRangeRe   = regexp.MustCompile(`(?i)^` + monthPat + `\s+\d{4}` + sepPat + `(?:` + monthPat + `\s+\d{4}|` + presentPat + `)$`)
	numericRangeRe = regexp.MustCompile(`(?i)^\d{1,2}[/.]\d{4}` + sepPat + `(?:\d{1,2}[/.]\d{4}|` + presentPat + `)$`)
	yearRangeRe    = regexp.MustCompile(`(?i)^\d{4}` + sepPat + `(?:\d{4}|` + presentPat + `)$`)
	monthSingleRe  = regexp.MustCompile(`(?i)^` + monthPat + `\s+\d{4}$`)
	yearSingleRe   = regexp.MustCompile(`^\d{4}$`)

	inlineDateRe = regexp.MustCompile(`(?i)(?:` + monthPat + `\s+\d{4}` + sepPat + `(?:` + monthPat + `\s+\d{4}|` + presentPat + `)` +
		`|\d{1,2}[/.]\d{4}` + sepPat + `(?:\d{1,2}[/.]\d{4}|` + presentPat + `)` +
		`|\d{4}` + sepPat + `(?:\d{4}|` + presentPat + `))`)
)

// ClassifyDateShape classifies a dates string into one of the accepted shape
// families. The boolean is false when the string matches no accepted shape.
func ClassifyDateShape(dates string) (string, bool) {
	switch {
	case monthRangeRe.MatchString(dates), monthSingleRe.MatchString(dates):
		return DateShapeMonth, true
	case numericRangeRe.MatchString(dates):
		return DateShapeNumeric, true
	case yearRangeRe.MatchString(dates), yearSingleRe.MatchString(dates):
		return DateShapeYear, true
	default:
		return "", false
	}
}

// isDateLine reports whether an entire trimmed line is a date or date range.
func isDateLine(line string) bool {
	_, ok := ClassifyDateShape(line)
	return ok
}

// findDateRange locates an inline date range inside a longer line, e.g.
// "Software Engineer, Acme (Jan 2020 - Present)". Returns the matched range
// and whether one was found.
func findDateRange(line string) (string, bool) {
	m := inlineDateRe.FindString(line)
	return m, m != ""
}

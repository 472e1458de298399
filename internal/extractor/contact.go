package extractor

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// phoneCandidateRe tolerates separators and an optional country code.
	phoneCandidateRe = regexp.MustCompile(`(?:\+\d{1,3}[-\s.]*)?(?:\(?\d{2,4}\)?[-\s.]*)?\d{3,4}[-\s.]*\d{4,6}`)
	nonDigitRe       = regexp.MustCompile(`\D`)

	schemeURLRe = regexp.MustCompile(`https?://[^\s)]+`)
	bareURLRe   = regexp.MustCompile(`\b(?:www\.)?[a-zA-Z0-9-]+(?:\.[a-zA-Z0-9-]+)*\.(?:com|io|ai|dev|net|org)(?:/[^\s)]*)?`)

	linkedinHandleRe = regexp.MustCompile(`\b(in/[\w-]+)\b`)
	linkedinLabelRe  = regexp.MustCompile(`(?i)linkedin\s*[:\-]?\s*([\w/-]+)`)
	githubLabelRe    = regexp.MustCompile(`(?i)github\s*[:\-]?\s*([\w/-]+)`)
)

// phoneLabels mark lines whose numbers are trusted over unlabeled candidates.
var phoneLabels = []string{"phone", "mobile", "contact", "tel", "whatsapp"}

// emailProviders are domains never treated as a personal website.
var emailProviders = []string{"gmail.com", "yahoo.com", "outlook.com", "proton.me", "hotmail.com"}

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

// extractEmail returns the first email-shaped substring, or empty.
func extractEmail(text string) string {
	return emailRe.FindString(text)
}

// extractPhone returns the first plausible phone number, normalized to a bare
// digit sequence. Lines labeled phone/mobile/tel win over unlabeled matches,
// and email addresses are scrubbed first so their digits cannot be picked up.
// A numeric run that merely falls in the accepted digit range (dates, IDs)
// can still misfire; that ambiguity is accepted rather than guessed around.
func extractPhone(text string) string {
	scrubbed := emailRe.ReplaceAllString(text, " ")

	var labeled, unlabeled []string
	for _, line := range strings.Split(scrubbed, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lineLower := strings.ToLower(line)
		for _, cand := range phoneCandidateRe.FindAllString(line, -1) {
			digits := nonDigitRe.ReplaceAllString(cand, "")
			if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
				continue
			}
			if hasAnyLabel(lineLower, phoneLabels) {
				labeled = append(labeled, digits)
			} else {
				unlabeled = append(unlabeled, digits)
			}
		}
	}

	if len(labeled) > 0 {
		return labeled[0]
	}
	if len(unlabeled) > 0 {
		return unlabeled[0]
	}
	return ""
}

func hasAnyLabel(lineLower string, labels []string) bool {
	for _, l := range labels {
		if strings.Contains(lineLower, l) {
			return true
		}
	}
	return false
}

// extractLinks collects profile and portfolio URLs: scheme URLs, bare
// domains, and labeled handles ("LinkedIn: someuser", "in/someuser"). Links
// are returned in LinkedIn, GitHub, portfolio order with empties skipped.
func extractLinks(text string) []string {
	scrubbed := emailRe.ReplaceAllString(text, " ")

	seen := make(map[string]bool)
	var urls []string
	add := func(raw string) {
		raw = strings.Trim(raw, ").,;")
		if raw == "" || seen[strings.ToLower(raw)] {
			return
		}
		seen[strings.ToLower(raw)] = true
		urls = append(urls, raw)
	}
	for _, m := range schemeURLRe.FindAllString(scrubbed, -1) {
		add(m)
	}
	for _, m := range bareURLRe.FindAllString(scrubbed, -1) {
		add(m)
	}

	var linkedin, github, website string
	for _, url := range urls {
		low := strings.ToLower(url)
		normalized := url
		if !strings.HasPrefix(low, "http") {
			normalized = "https://" + low
		}
		switch {
		case strings.Contains(low, "linkedin.com"):
			if linkedin == "" {
				linkedin = normalized
			}
		case strings.Contains(low, "github.com"):
			if github == "" {
				github = normalized
			}
		}
	}

	if linkedin == "" {
		if m := linkedinHandleRe.FindStringSubmatch(text); m != nil {
			linkedin = "https://www.linkedin.com/" + m[1]
		}
	}
	if linkedin == "" {
		if m := linkedinLabelRe.FindStringSubmatch(text); m != nil {
			handle := strings.Trim(m[1], ".")
			switch {
			case strings.HasPrefix(handle, "http"):
				linkedin = handle
			case strings.HasPrefix(handle, "in/"), strings.HasPrefix(handle, "company/"):
				linkedin = "https://www.linkedin.com/" + handle
			default:
				linkedin = "https://www.linkedin.com/in/" + handle
			}
		}
	}
	if github == "" {
		if m := githubLabelRe.FindStringSubmatch(text); m != nil {
			handle := strings.Trim(m[1], ".")
			if strings.HasPrefix(handle, "http") {
				github = handle
			} else {
				github = "https://github.com/" + strings.TrimPrefix(handle, "/")
			}
		}
	}

	for _, url := range urls {
		low := strings.ToLower(url)
		if strings.Contains(low, "linkedin.com") || strings.Contains(low, "github.com") || strings.Contains(low, "mailto:") {
			continue
		}
		if hasAnyLabel(low, emailProviders) {
			continue
		}
		if strings.HasPrefix(low, "http") {
			website = url
		} else {
			website = "https://" + low
		}
		break
	}

	var links []string
	for _, l := range []string{linkedin, github, website} {
		if l != "" {
			links = append(links, l)
		}
	}
	return links
}

// nameNoise marks lines that cannot be a candidate name.
var nameNoise = []string{
	"email", "phone", "linkedin", "github", "www.", "@",
	"resume", "curriculum", "vitae",
}

// extractName returns the first plausible name line near the top of the
// document: one to five words, free of contact noise.
func extractName(lines []string) string {
	limit := min(len(lines), 10)
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if hasAnyLabel(strings.ToLower(line), nameNoise) {
			continue
		}
		if words := len(strings.Fields(line)); words >= 1 && words <= 5 {
			return line
		}
	}
	return ""
}

var (
	locationLabelRe = regexp.MustCompile(`(?i)\b(?:location|based in|residing in|address)\b\s*[:\-]?\s*(.+)`)
	cityRegionRe    = regexp.MustCompile(`^[A-Za-z .]+,\s*[A-Za-z .]+$`)
)

// extractLocation finds a location from an explicit label, falling back to a
// whole line near the top of the document shaped like "City, Region".
func extractLocation(text string, lines []string) string {
	if m := locationLabelRe.FindStringSubmatch(text); m != nil {
		loc := m[1]
		if idx := strings.IndexByte(loc, '\n'); idx >= 0 {
			loc = loc[:idx]
		}
		return strings.Trim(strings.TrimSpace(loc), ",")
	}
	limit := min(len(lines), 10)
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if len(line) <= 40 && cityRegionRe.MatchString(line) {
			return line
		}
	}
	return ""
}

package extractor

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-ats/internal/dictionary"
)

const (
	maxSkillTokenChars = 40
	maxSkillTokenWords = 4
	maxSkills          = 50
)

var (
	skillSplitRe = regexp.MustCompile(`[,;|•·]+`)
	skillNoiseRe = regexp.MustCompile(`(?i)\b(skills?|technical|core|competencies)\b`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
)

// extractSkills merges two sources with case-insensitive de-duplication,
// first occurrence winning: a dictionary scan of the full text ordered by
// first occurrence, then the tokenized lines of any skills-section blocks.
func extractSkills(text string, skillsBlocks [][]string, dict *dictionary.Dictionary) []string {
	lowered := strings.ToLower(text)

	type hit struct {
		name string
		idx  int
	}
	var hits []hit
	for _, name := range dict.Skills {
		best := -1
		for _, variant := range dict.SkillVariants(name) {
			if idx := firstTokenIndex(lowered, variant); idx >= 0 && (best < 0 || idx < best) {
				best = idx
			}
		}
		if best >= 0 {
			hits = append(hits, hit{name: name, idx: best})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].idx < hits[j].idx })

	seen := make(map[string]bool)
	var skills []string
	add := func(s string) {
		key := strings.ToLower(s)
		if s == "" || seen[key] || len(skills) >= maxSkills {
			return
		}
		seen[key] = true
		skills = append(skills, s)
	}

	for _, h := range hits {
		add(h.name)
	}

	for _, block := range skillsBlocks {
		for _, line := range block {
			for _, token := range tokenizeSkillLine(line) {
				if canonical, ok := dict.CanonicalSkill(token); ok {
					add(canonical)
				} else {
					add(displayCase(token))
				}
			}
		}
	}

	return skills
}

// tokenizeSkillLine splits a skills line on comma/pipe/bullet separators and
// cleans each token. Label prefixes like "Languages:" are stripped so only
// the value part survives.
func tokenizeSkillLine(line string) []string {
	line = stripBulletMarker(line)
	var tokens []string
	for _, raw := range skillSplitRe.Split(line, -1) {
		tok := cleanSkillToken(raw)
		if tok == "" || len(tok) > maxSkillTokenChars {
			continue
		}
		if len(strings.Fields(tok)) > maxSkillTokenWords {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func cleanSkillToken(tok string) string {
	if idx := strings.LastIndexByte(tok, ':'); idx >= 0 {
		tok = tok[idx+1:]
	}
	tok = strings.Trim(tok, "•-*|,:; \t")
	tok = skillNoiseRe.ReplaceAllString(tok, "")
	tok = spaceRunRe.ReplaceAllString(tok, " ")
	return strings.TrimSpace(tok)
}

// displayCase capitalizes all-lowercase tokens; tokens that already carry
// case information ("iOS", "PyTorch") pass through untouched.
func displayCase(tok string) string {
	if tok != strings.ToLower(tok) {
		return tok
	}
	words := strings.Fields(tok)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// firstTokenIndex returns the index of the first occurrence of term in text
// delimited by non-alphanumeric boundaries, or -1. Boundary matching keeps
// "go" from hitting inside "google" while still accepting "go," and "go/".
func firstTokenIndex(text, term string) int {
	if term == "" {
		return -1
	}
	for start := 0; start <= len(text)-len(term); {
		idx := strings.Index(text[start:], term)
		if idx < 0 {
			return -1
		}
		idx += start
		end := idx + len(term)
		beforeOK := idx == 0 || !isAlnumByte(text[idx-1])
		afterOK := end == len(text) || !isAlnumByte(text[end])
		if beforeOK && afterOK {
			return idx
		}
		start = idx + 1
	}
	return -1
}

func isAlnumByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// Package dictionary provides the immutable keyword reference data consumed
// by the extractor and the scorer: canonical skill names, action verbs,
// role/seniority signals, section heading aliases and degree keywords.
//
// Dictionaries are versioned static data injected into the engine rather
// than package-level mutable state, so tests can substitute fixtures.
package dictionary

import "strings"

// Section kinds a heading can resolve to.
const (
	SectionSummary    = "summary"
	SectionSkills     = "skills"
	SectionEducation  = "education"
	SectionExperience = "experience"
	SectionProjects   = "projects"
)

// Dictionary holds the reference vocabulary for one dictionary version.
// The exported fields are the serialized form; lookups go through the
// methods, which use indexes built once at construction.
type Dictionary struct {
	Version string `json:"version"`

	// Skills holds canonical display names ("SQL", "Node.js"). Matching is
	// case-insensitive; output uses the canonical casing.
	Skills []string `json:"skills"`

	// SkillAliases maps lowercase variants to canonical names ("golang" -> "Go").
	SkillAliases map[string]string `json:"skill_aliases,omitempty"`

	// ActionVerbs are the bullet-initial verbs that count as strong openers.
	ActionVerbs []string `json:"action_verbs"`

	// RoleSignals and SenioritySignals are matched against titles and summary.
	RoleSignals      []string `json:"role_signals"`
	SenioritySignals []string `json:"seniority_signals"`

	// SectionAliases maps normalized heading text to a section kind.
	SectionAliases map[string]string `json:"section_aliases"`

	// DegreeKeywords mark education lines ("bachelor", "mba", "b.s.").
	DegreeKeywords []string `json:"degree_keywords"`

	verbSet      map[string]bool
	canonical    map[string]string // lowercase name or alias -> canonical name
	variantsBy   map[string][]string
	degreeLower  []string
	sectionIndex map[string]string
}

// Default returns the built-in dictionary.
func Default() *Dictionary {
	d := &Dictionary{
		Version: "2025.1",
		Skills: []string{
			"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "Go", "Rust",
			"Ruby", "PHP", "Swift", "Kotlin", "Scala", "R",
			"React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask",
			"FastAPI", "Spring", "Rails",
			"SQL", "MySQL", "PostgreSQL", "SQLite", "MongoDB", "Redis",
			"Elasticsearch", "Kafka", "RabbitMQ",
			"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Jenkins",
			"Git", "Linux", "Bash",
			"Machine Learning", "Deep Learning", "NLP", "Computer Vision",
			"Data Science", "TensorFlow", "PyTorch", "scikit-learn", "Pandas",
			"NumPy", "Spark",
			"HTML", "CSS", "Bootstrap", "Tailwind", "Sass",
			"Agile", "Scrum", "DevOps", "CI/CD", "Microservices", "REST API",
			"GraphQL", "gRPC",
		},
		SkillAliases: map[string]string{
			"golang":     "Go",
			"go lang":    "Go",
			"js":         "JavaScript",
			"ts":         "TypeScript",
			"k8s":        "Kubernetes",
			"react.js":   "React",
			"reactjs":    "React",
			"vue.js":     "Vue",
			"vuejs":      "Vue",
			"nodejs":     "Node.js",
			"node":       "Node.js",
			"postgres":   "PostgreSQL",
			"sklearn":    "scikit-learn",
			"rest":       "REST API",
			"rest apis":  "REST API",
			"ml":         "Machine Learning",
			"tf":         "TensorFlow",
			"ci cd":      "CI/CD",
			"cicd":       "CI/CD",
			"amazon web services": "AWS",
			"google cloud":        "GCP",
		},
		ActionVerbs: []string{
			"achieved", "analyzed", "architected", "automated", "built", "created",
			"delivered", "designed", "developed", "drove", "engineered",
			"implemented", "improved", "increased", "launched", "led", "managed",
			"migrated", "optimized", "owned", "reduced", "refactored", "scaled",
			"shipped", "spearheaded", "streamlined", "transformed",
		},
		RoleSignals: []string{
			"engineer", "developer", "analyst", "scientist", "manager",
			"architect", "consultant", "administrator", "designer", "intern",
			"researcher", "specialist",
		},
		SenioritySignals: []string{
			"senior", "lead", "principal", "staff", "head", "director", "chief",
		},
		SectionAliases: map[string]string{
			"summary":                 SectionSummary,
			"professional summary":    SectionSummary,
			"profile":                 SectionSummary,
			"objective":               SectionSummary,
			"about":                   SectionSummary,
			"about me":                SectionSummary,
			"skills":                  SectionSkills,
			"technical skills":        SectionSkills,
			"technologies":            SectionSkills,
			"core competencies":       SectionSkills,
			"skills and tools":        SectionSkills,
			"education":               SectionEducation,
			"academic background":     SectionEducation,
			"academics":               SectionEducation,
			"experience":              SectionExperience,
			"work experience":         SectionExperience,
			"professional experience": SectionExperience,
			"employment":              SectionExperience,
			"employment history":      SectionExperience,
			"work history":            SectionExperience,
			"projects":                SectionProjects,
			"personal projects":       SectionProjects,
			"selected projects":       SectionProjects,
			"side projects":           SectionProjects,
		},
		DegreeKeywords: []string{
			"bachelor", "master", "phd", "ph.d", "doctorate", "associate",
			"diploma", "b.s.", "b.a.", "m.s.", "m.a.", "mba", "b.sc", "m.sc",
			"b.tech", "m.tech", "bsc", "msc", "btech", "mtech",
		},
	}
	d.buildIndex()
	return d
}

// buildIndex precomputes the lookup maps. Called once at construction; the
// dictionary is read-only afterwards.
func (d *Dictionary) buildIndex() {
	d.verbSet = make(map[string]bool, len(d.ActionVerbs))
	for _, v := range d.ActionVerbs {
		d.verbSet[strings.ToLower(v)] = true
	}

	d.canonical = make(map[string]string, len(d.Skills)+len(d.SkillAliases))
	d.variantsBy = make(map[string][]string, len(d.Skills))
	for _, s := range d.Skills {
		low := strings.ToLower(s)
		d.canonical[low] = s
		d.variantsBy[s] = append(d.variantsBy[s], low)
	}
	for alias, name := range d.SkillAliases {
		low := strings.ToLower(alias)
		d.canonical[low] = name
		d.variantsBy[name] = append(d.variantsBy[name], low)
	}

	d.degreeLower = make([]string, len(d.DegreeKeywords))
	for i, k := range d.DegreeKeywords {
		d.degreeLower[i] = strings.ToLower(k)
	}

	d.sectionIndex = make(map[string]string, len(d.SectionAliases))
	for alias, kind := range d.SectionAliases {
		d.sectionIndex[normalizeHeading(alias)] = kind
	}
}

// normalizeHeading lowercases a heading and strips punctuation and
// decoration so "TECHNICAL SKILLS:" and "Technical Skills" compare equal.
func normalizeHeading(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Trim(s, ":-*#•·|= \t")
	s = strings.ReplaceAll(s, "&", "and")
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ' || r == '\t':
			sb.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// CanonicalSkill resolves a token to its canonical skill name. The boolean
// reports whether the token is a known skill or alias.
func (d *Dictionary) CanonicalSkill(token string) (string, bool) {
	name, ok := d.canonical[strings.ToLower(strings.TrimSpace(token))]
	return name, ok
}

// SkillVariants returns the lowercase textual variants (canonical name plus
// aliases) to scan for when matching a canonical skill against free text.
func (d *Dictionary) SkillVariants(name string) []string {
	return d.variantsBy[name]
}

// IsActionVerb reports whether a word counts as a strong bullet opener.
func (d *Dictionary) IsActionVerb(word string) bool {
	return d.verbSet[strings.ToLower(word)]
}

// SectionKind resolves heading text to a section kind. The boolean is false
// for headings the dictionary does not recognize.
func (d *Dictionary) SectionKind(heading string) (string, bool) {
	kind, ok := d.sectionIndex[normalizeHeading(heading)]
	return kind, ok
}

// HasDegreeKeyword reports whether a line mentions a known degree keyword.
func (d *Dictionary) HasDegreeKeyword(line string) bool {
	low := strings.ToLower(line)
	for _, k := range d.degreeLower {
		if containsWord(low, k) {
			return true
		}
	}
	return false
}

// containsWord reports whether term occurs in text at token boundaries.
// Boundaries are non-alphanumeric so "b.s." matches but "mba" does not
// match inside "lambda".
func containsWord(text, term string) bool {
	if term == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(text[start:], term)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(term)
		beforeOK := idx == 0 || !isAlnum(rune(text[idx-1]))
		afterOK := end == len(text) || !isAlnum(rune(text[end]))
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ats/internal/dictionary"
)

func TestClassifyHeading(t *testing.T) {
	dict := dictionary.Default()

	tests := []struct {
		name        string
		line        string
		wantKind    string
		wantHeading bool
	}{
		{"Known alias", "Experience", dictionary.SectionExperience, true},
		{"Known alias all caps", "TECHNICAL SKILLS", dictionary.SectionSkills, true},
		{"Known alias with colon", "Work History:", dictionary.SectionExperience, true},
		{"Ampersand alias", "Skills & Tools", dictionary.SectionSkills, true},
		{"Unknown all caps", "CAREER HIGHLIGHTS", "", true},
		{"Unknown with colon", "Stuff I Did:", "", true},
		{"Plain prose", "Worked on things", "", false},
		{"Too many words", "A very long line that is clearly prose", "", false},
		{"Bullet line", "- EXPERIENCE", "", false},
		{"Blank", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := classifyHeading(tt.line, dict)
			assert.Equal(t, tt.wantHeading, ok)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}

func TestIsAllCaps(t *testing.T) {
	assert.True(t, isAllCaps("EDUCATION"))
	assert.True(t, isAllCaps("WORK HISTORY"))
	assert.False(t, isAllCaps("Education"))
	assert.False(t, isAllCaps("2019")) // no letters at all
	assert.False(t, isAllCaps(""))
}

func TestSplitDocument(t *testing.T) {
	dict := dictionary.Default()
	lines := []string{
		"Jane Doe",
		"jane@example.com",
		"",
		"EXPERIENCE",
		"Engineer — Acme",
		"- Built things",
		"EDUCATION",
		"B.S., State University",
	}

	prelude, blocks := splitDocument(lines, dict)

	assert.Equal(t, []string{"Jane Doe", "jane@example.com", ""}, prelude)
	require.Len(t, blocks, 2)
	assert.Equal(t, dictionary.SectionExperience, blocks[0].kind)
	assert.Equal(t, []string{"Engineer — Acme", "- Built things"}, blocks[0].lines)
	assert.Equal(t, dictionary.SectionEducation, blocks[1].kind)
	assert.Equal(t, []string{"B.S., State University"}, blocks[1].lines)
}

func TestSplitDocument_NoHeadings(t *testing.T) {
	dict := dictionary.Default()
	lines := []string{"Jane Doe", "just prose"}

	prelude, blocks := splitDocument(lines, dict)

	assert.Equal(t, lines, prelude)
	assert.Empty(t, blocks)
}

func TestExtractSummary(t *testing.T) {
	tests := []struct {
		name     string
		prelude  []string
		expected string
	}{
		{
			name: "First prose paragraph",
			prelude: []string{
				"Jane Doe",
				"",
				"Engineer with eight years of backend experience",
				"across fintech and logistics.",
			},
			expected: "Engineer with eight years of backend experience across fintech and logistics.",
		},
		{
			name:     "Contact block is skipped",
			prelude:  []string{"John Doe", "john@example.com"},
			expected: "",
		},
		{
			name:     "Lone short line is a name not a summary",
			prelude:  []string{"Jane Doe"},
			expected: "",
		},
		{
			name:     "Empty prelude",
			prelude:  nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractSummary(tt.prelude))
		})
	}
}

func TestContactDominated(t *testing.T) {
	tests := []struct {
		name     string
		par      []string
		expected bool
	}{
		{"Email line tips a two line paragraph", []string{"John Doe", "john@example.com"}, true},
		{"Phone digits count", []string{"555 123 4567", "Jane Doe", "Austin TX"}, false},
		{"All contact", []string{"jane@example.com", "linkedin.com/in/jane"}, true},
		{"Prose only", []string{"Engineer with a focus on reliability", "and developer tooling."}, false},
		{"Empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, contactDominated(tt.par))
		})
	}
}

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ats/internal/types"
)

// fullCreditRecord satisfies every sub-criterion of the default rubric.
func fullCreditRecord() *types.ResumeRecord {
	return &types.ResumeRecord{
		Contact: types.Contact{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Phone: "5551234567",
			Links: []string{"https://github.com/jane"},
		},
		Summary: "Senior software engineer delivering platforms with Go, Python, AWS, " +
			"Docker, Kubernetes, PostgreSQL, Redis, React, TypeScript, GraphQL, " +
			"Terraform, Linux, Git, SQL, Kafka, and Agile.",
		Skills: []string{
			"Go", "Python", "AWS", "Docker", "Kubernetes", "PostgreSQL", "Redis",
			"React", "TypeScript", "GraphQL", "Terraform", "Linux", "Git", "SQL",
			"Kafka", "Agile",
		},
		Education: []types.EducationEntry{{
			Institution: "State University",
			Degree:      "B.S.",
			Field:       "Computer Science",
			Dates:       "Sep 2012 - May 2016",
		}},
		Experience: []types.ExperienceEntry{{
			Title:   "Senior Software Engineer",
			Company: "Acme",
			Dates:   "Jan 2020 - Present",
			Bullets: []string{
				"Led a team of 12 engineers delivering the payments platform on Kubernetes",
				"Reduced API latency by 45% through caching and query optimization",
			},
		}},
	}
}

func newTestScorer(t *testing.T) *Scorer {
	t.Helper()
	scorer, err := NewScorer(nil, DefaultWeights())
	require.NoError(t, err)
	return scorer
}

func TestScore_EmptyRecordScoresZero(t *testing.T) {
	scorer := newTestScorer(t)

	breakdown := scorer.Score(&types.ResumeRecord{}, "")

	assert.Equal(t, 0.0, breakdown.Total)
	require.Len(t, breakdown.Categories, 3)
	for _, c := range breakdown.Categories {
		assert.Equal(t, 0.0, c.Earned, "category %s", c.Name)
		assert.NotEmpty(t, c.Findings, "every missed sub-criterion must yield a finding")
	}
}

func TestScore_CeilingIsExactlyOneHundred(t *testing.T) {
	scorer := newTestScorer(t)

	breakdown := scorer.Score(fullCreditRecord(), "")

	assert.Equal(t, 100.00, breakdown.Total)
	for _, c := range breakdown.Categories {
		assert.Equal(t, c.Possible, c.Earned, "category %s", c.Name)
		assert.Empty(t, c.Findings, "full marks must produce no findings in %s", c.Name)
	}
}

func TestScore_Deterministic(t *testing.T) {
	scorer := newTestScorer(t)
	record := fullCreditRecord()
	record.Skills = record.Skills[:5]
	record.Experience[0].Bullets = record.Experience[0].Bullets[:1]

	first := scorer.Score(record, "engineer")
	second := scorer.Score(record, "engineer")

	assert.Equal(t, first, second, "identical input must yield an identical breakdown")
}

func TestScore_Bounded(t *testing.T) {
	scorer := newTestScorer(t)

	records := []*types.ResumeRecord{
		{},
		fullCreditRecord(),
		{Summary: "Just a summary", Skills: []string{"Go"}},
		{Experience: []types.ExperienceEntry{{Title: "Engineer", Bullets: []string{"Did work"}}}},
	}

	for _, rec := range records {
		breakdown := scorer.Score(rec, "")
		assert.GreaterOrEqual(t, breakdown.Total, 0.0)
		assert.LessOrEqual(t, breakdown.Total, 100.0)
		for _, c := range breakdown.Categories {
			assert.GreaterOrEqual(t, c.Earned, 0.0)
			assert.LessOrEqual(t, c.Earned, c.Possible, "category %s", c.Name)
		}
	}
}

func TestScore_TotalEqualsCategorySum(t *testing.T) {
	scorer := newTestScorer(t)
	record := fullCreditRecord()
	record.Skills = record.Skills[:11]

	breakdown := scorer.Score(record, "")

	assert.Equal(t, breakdown.CategorySum(), breakdown.Total)
}

func TestScore_CanonicalCategoryOrder(t *testing.T) {
	scorer := newTestScorer(t)

	breakdown := scorer.Score(fullCreditRecord(), "")

	require.Len(t, breakdown.Categories, 3)
	assert.Equal(t, types.CategoryCompleteness, breakdown.Categories[0].Name)
	assert.Equal(t, types.CategoryKeywords, breakdown.Categories[1].Name)
	assert.Equal(t, types.CategoryFormatting, breakdown.Categories[2].Name)
}

func TestNewScorer_RejectsBadWeights(t *testing.T) {
	t.Run("sum not one hundred", func(t *testing.T) {
		weights := DefaultWeights()
		weights.Keywords.Richness += 5

		_, err := NewScorer(nil, weights)
		require.Error(t, err)

		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, 105.0, cfgErr.Total)
	})

	t.Run("negative sub-criterion", func(t *testing.T) {
		weights := DefaultWeights()
		weights.Formatting.Quantified = -7
		weights.Formatting.StrongBullets += 14

		_, err := NewScorer(nil, weights)

		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
	})
}

func TestWeights_DefaultTable(t *testing.T) {
	w := DefaultWeights()

	require.NoError(t, w.Validate())
	assert.Equal(t, 30.0, w.CompletenessTotal())
	assert.Equal(t, 40.0, w.KeywordsTotal())
	assert.Equal(t, 30.0, w.FormattingTotal())
	assert.Equal(t, 100.0, w.Total())
}

func TestRamp(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		limit    float64
		expected float64
	}{
		{"Zero", 0, 20, 0},
		{"Half", 0.5, 20, 10},
		{"Full", 1, 20, 20},
		{"Clamped above", 1.7, 20, 20},
		{"Clamped below", -0.3, 20, 0},
		{"Rounded to two decimals", 1.0 / 3.0, 8, 2.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ramp(tt.ratio, tt.limit))
		})
	}
}

func TestMatchesAnyWord(t *testing.T) {
	assert.True(t, matchesAnyWord("senior software engineer", []string{"engineer"}))
	assert.False(t, matchesAnyWord("engineering department", []string{"engineer"}),
		"token boundaries must hold")
	assert.False(t, matchesAnyWord("anything", nil))
	assert.False(t, matchesAnyWord("anything", []string{""}))
}

func TestConfigError_Message(t *testing.T) {
	err := &ConfigError{Message: "category weights must sum to 100", Total: 95}
	assert.Contains(t, err.Error(), "95")

	err = &ConfigError{Message: "sub-criterion weights must be non-negative"}
	assert.NotContains(t, err.Error(), "got")
}

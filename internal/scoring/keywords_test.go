package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-ats/internal/types"
)

func TestScoreKeywords_RichnessRamp(t *testing.T) {
	scorer := newTestScorer(t)

	eight := &types.ResumeRecord{
		Skills: []string{"Go", "Python", "SQL", "Docker", "Kubernetes", "AWS", "Git", "Linux"},
	}
	cat := scorer.scoreKeywords(eight, "")
	assert.Equal(t, 10.0, cat.Earned, "8 of 16 skills is half the richness ramp")

	sixteen := fullCreditRecord()
	sixteen.Summary = ""
	sixteen.Experience = nil
	cat = scorer.scoreKeywords(sixteen, "")
	assert.Equal(t, 20.0, cat.Earned, "saturated richness with no reuse or signals")
}

func TestScoreKeywords_ReuseRatio(t *testing.T) {
	scorer := newTestScorer(t)

	record := &types.ResumeRecord{
		Skills:  []string{"Go", "Python"},
		Summary: "Shipped resilient Go services across three regions.",
	}

	cat := scorer.scoreKeywords(record, "")

	// Richness 2/16 of 20 = 2.5; reuse 1/2 of 15 = 7.5; no role or
	// seniority signal in the summary.
	assert.Equal(t, 10.0, cat.Earned)
	assert.Contains(t, cat.Findings[1], "Echo more of your listed skills")
}

func TestScoreKeywords_DuplicateSkillsCountOnce(t *testing.T) {
	scorer := newTestScorer(t)

	record := &types.ResumeRecord{Skills: []string{"Go", "go", " GO "}}
	cat := scorer.scoreKeywords(record, "")

	assert.Equal(t, ramp(1.0/16.0, 20), cat.Earned)
}

func TestScoreKeywords_TargetRoleWidensVocabulary(t *testing.T) {
	scorer := newTestScorer(t)

	record := &types.ResumeRecord{
		Experience: []types.ExperienceEntry{{Title: "Kitchen Wizard"}},
	}

	without := scorer.scoreKeywords(record, "")
	with := scorer.scoreKeywords(record, "Wizard")

	assert.Equal(t, 0.0, without.Earned)
	assert.Equal(t, 3.0, with.Earned, "target role words join the role vocabulary")
}

func TestScoreKeywords_SignalsMatchTitlesAndSummary(t *testing.T) {
	scorer := newTestScorer(t)

	tests := []struct {
		name    string
		record  types.ResumeRecord
		want    float64
		message string
	}{
		{
			name:    "Role signal in title",
			record:  types.ResumeRecord{Experience: []types.ExperienceEntry{{Title: "Software Engineer"}}},
			want:    3,
			message: "engineer in a title",
		},
		{
			name:    "Role and seniority in summary",
			record:  types.ResumeRecord{Summary: "Senior developer focused on data platforms"},
			want:    5,
			message: "both signals in the summary",
		},
		{
			name:    "Seniority requires a token boundary",
			record:  types.ResumeRecord{Summary: "Leadership material"},
			want:    0,
			message: "lead must not match inside leadership",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := scorer.scoreKeywords(&tt.record, "")
			assert.Equal(t, tt.want, cat.Earned, tt.message)
		})
	}
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		record  ResumeRecord
		wantErr bool
	}{
		{"Empty record is valid", ResumeRecord{}, false},
		{
			name: "Well formed contact",
			record: ResumeRecord{Contact: Contact{
				Email: "jane@example.com",
				Phone: "5551234567",
			}},
			wantErr: false,
		},
		{
			name:    "Malformed email",
			record:  ResumeRecord{Contact: Contact{Email: "not-an-email"}},
			wantErr: true,
		},
		{
			name:    "Phone with separators",
			record:  ResumeRecord{Contact: Contact{Phone: "555-123-4567"}},
			wantErr: true,
		},
		{
			name:    "Phone too short",
			record:  ResumeRecord{Contact: Contact{Phone: "12345"}},
			wantErr: true,
		},
		{
			name:    "Phone too long",
			record:  ResumeRecord{Contact: Contact{Phone: "1234567890123456"}},
			wantErr: true,
		},
		{
			name:    "Seven digit phone ok",
			record:  ResumeRecord{Contact: Contact{Phone: "1234567"}},
			wantErr: false,
		},
		{
			name:    "Fifteen digit phone ok",
			record:  ResumeRecord{Contact: Contact{Phone: "123456789012345"}},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResumeRecord_BulletTexts(t *testing.T) {
	rec := ResumeRecord{
		Experience: []ExperienceEntry{
			{Bullets: []string{"first", "second"}},
			{Bullets: []string{"third"}},
		},
		Projects: []ProjectEntry{{Bullets: []string{"fourth"}}},
	}

	assert.Equal(t, []string{"first", "second", "third", "fourth"}, rec.BulletTexts())
	assert.Empty(t, (&ResumeRecord{}).BulletTexts())
}

func TestResumeRecord_BodyText(t *testing.T) {
	rec := ResumeRecord{
		Summary:    "Built Go Services",
		Experience: []ExperienceEntry{{Bullets: []string{"Shipped Kafka pipelines"}}},
		Projects:   []ProjectEntry{{Description: "CLI Tooling", Bullets: []string{"Used Redis"}}},
	}

	body := rec.BodyText()

	assert.Contains(t, body, "built go services")
	assert.Contains(t, body, "shipped kafka pipelines")
	assert.Contains(t, body, "cli tooling")
	assert.Contains(t, body, "used redis")
	assert.NotContains(t, body, "Built", "body text is lowercased")
}

func TestResumeRecord_TitleText(t *testing.T) {
	rec := ResumeRecord{
		Summary: "Analyst At Heart",
		Experience: []ExperienceEntry{
			{Title: "Senior Engineer"},
			{Title: "Team Lead"},
		},
	}

	text := rec.TitleText()

	assert.Contains(t, text, "senior engineer")
	assert.Contains(t, text, "team lead")
	assert.Contains(t, text, "analyst at heart")
}

func TestResumeRecord_IsEmpty(t *testing.T) {
	assert.True(t, (&ResumeRecord{}).IsEmpty())
	assert.True(t, (&ResumeRecord{Contact: Contact{Name: "Jane Doe", Location: "Austin"}}).IsEmpty(),
		"name and location alone carry no scoreable content")
	assert.False(t, (&ResumeRecord{Summary: "x"}).IsEmpty())
	assert.False(t, (&ResumeRecord{Skills: []string{"Go"}}).IsEmpty())
	assert.False(t, (&ResumeRecord{Contact: Contact{Email: "a@b.com"}}).IsEmpty())
}

func TestResumeRecord_ValidateDoesNotMutate(t *testing.T) {
	rec := ResumeRecord{Contact: Contact{Email: "jane@example.com"}}
	before := rec

	require.NoError(t, rec.Validate())
	assert.Equal(t, before, rec)
}

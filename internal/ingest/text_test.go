package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "CRLF normalized",
			input:    "Jane Doe\r\nEngineer\r\n",
			expected: "Jane Doe\nEngineer",
		},
		{
			name:     "Blank runs collapse to one",
			input:    "Summary\n\n\n\nExperience",
			expected: "Summary\n\nExperience",
		},
		{
			name:     "Inner spaces collapse",
			input:    "Jane    Doe\tEngineer",
			expected: "Jane Doe Engineer",
		},
		{
			name:     "Bullet marker and indent survive",
			input:    "Work:\n  - Built   the   thing",
			expected: "Work:\n  - Built the thing",
		},
		{
			name:     "Unicode bullet survives",
			input:    "• Shipped   v1",
			expected: "• Shipped v1",
		},
		{
			name:     "Trailing whitespace trimmed",
			input:    "Jane Doe   \n",
			expected: "Jane Doe",
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "Whitespace only",
			input:    "   \n\t\n ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestCleanText_PreservesDocumentOrder(t *testing.T) {
	input := "EXPERIENCE\n- second bullet\n- first bullet"
	assert.Equal(t, input, CleanText(input), "cleanup never reorders lines")
}

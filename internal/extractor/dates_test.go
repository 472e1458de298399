package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDateShape(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shape     string
		wantMatch bool
	}{
		{"Month range", "Jan 2020 - Mar 2021", DateShapeMonth, true},
		{"Month range with full names", "September 2018 - Present", DateShapeMonth, true},
		{"Month range with to", "Jun 2019 to Aug 2020", DateShapeMonth, true},
		{"Month single", "May 2019", DateShapeMonth, true},
		{"Month range en dash", "Jan 2020 – Mar 2021", DateShapeMonth, true},
		{"Numeric range", "03/2021-05/2022", DateShapeNumeric, true},
		{"Numeric range dotted", "03.2021 - 05.2022", DateShapeNumeric, true},
		{"Numeric range to present", "03/2021 - Present", DateShapeNumeric, true},
		{"Year range", "2019 - 2021", DateShapeYear, true},
		{"Year range to present", "2019 - Current", DateShapeYear, true},
		{"Year single", "2019", DateShapeYear, true},
		{"Missing space after month", "March2020", "", false},
		{"Free text", "since last spring", "", false},
		{"Trailing words", "Jan 2020 till now", "", false},
		{"Empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, ok := ClassifyDateShape(tt.input)
			assert.Equal(t, tt.wantMatch, ok)
			assert.Equal(t, tt.shape, shape)
		})
	}
}

func TestIsDateLine(t *testing.T) {
	assert.True(t, isDateLine("Jan 2020 - Present"))
	assert.True(t, isDateLine("2015 - 2019"))
	assert.False(t, isDateLine("Software Engineer"))
	assert.False(t, isDateLine("Graduated in 2019 with honors"))
}

func TestFindDateRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantRange string
		wantFound bool
	}{
		{"Parenthesized month range", "Software Engineer, Acme (Jan 2020 - Present)", "Jan 2020 - Present", true},
		{"Trailing numeric range", "Data Analyst | 03/2018 - 06/2020", "03/2018 - 06/2020", true},
		{"Year range inline", "Consultant, 2016 - 2018, remote", "2016 - 2018", true},
		{"No range", "Software Engineer, Acme", "", false},
		{"Single year is not a range", "Class of 2019", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := findDateRange(tt.input)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantRange, got)
		})
	}
}

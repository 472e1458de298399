// Package types provides type definitions for structured data used throughout the resume ATS engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Contact holds the contact details extracted from a resume.
// Links are kept in source order (LinkedIn, GitHub, portfolio when all present).
type Contact struct {
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string   `json:"phone,omitempty" validate:"omitempty,phonedigits"`
	Location string   `json:"location,omitempty"`
	Links    []string `json:"links,omitempty"`
}

// EducationEntry represents a single education item. Every field is optional,
// but an entry is only kept when at least one of institution/degree is present.
type EducationEntry struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Dates       string `json:"dates,omitempty"`
}

// ExperienceEntry represents a single work experience item with its bullets.
type ExperienceEntry struct {
	Title   string   `json:"title,omitempty"`
	Company string   `json:"company,omitempty"`
	Dates   string   `json:"dates,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
}

// ProjectEntry represents a single project item.
type ProjectEntry struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Bullets     []string `json:"bullets,omitempty"`
}

// ResumeRecord is the canonical structured form of a resume. A record is
// created fresh per extraction call and never mutated afterwards; edits
// produce a new record so before/after breakdowns stay diffable.
//
// All slices preserve source document order. Skills are de-duplicated
// case-insensitively, first occurrence wins.
type ResumeRecord struct {
	Contact    Contact           `json:"contact"`
	Summary    string            `json:"summary,omitempty"`
	Skills     []string          `json:"skills,omitempty"`
	Education  []EducationEntry  `json:"education,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Projects   []ProjectEntry    `json:"projects,omitempty"`
}

// phoneDigitsRule validates that a phone value is a plain digit sequence of
// plausible length (7-15 digits). The extractor always produces this form;
// the rule catches externally constructed records that do not.
func phoneDigitsRule(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if phone == "" {
		return true
	}
	if len(phone) < 7 || len(phone) > 15 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Validate checks the structural invariants of an externally supplied record.
// Extractor output always passes; a failure indicates a contract violation by
// the caller, not a scoring fallback.
func (r *ResumeRecord) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("phonedigits", phoneDigitsRule); err != nil {
		return err
	}
	return validate.Struct(r)
}

// BulletTexts returns all experience and project bullets in document order.
func (r *ResumeRecord) BulletTexts() []string {
	var bullets []string
	for _, exp := range r.Experience {
		bullets = append(bullets, exp.Bullets...)
	}
	for _, proj := range r.Projects {
		bullets = append(bullets, proj.Bullets...)
	}
	return bullets
}

// BodyText returns the lowercased free text of the record (summary, bullets,
// and project descriptions) used for keyword reuse checks.
func (r *ResumeRecord) BodyText() string {
	var sb strings.Builder
	sb.WriteString(r.Summary)
	sb.WriteString("\n")
	for _, exp := range r.Experience {
		for _, b := range exp.Bullets {
			sb.WriteString(b)
			sb.WriteString("\n")
		}
	}
	for _, proj := range r.Projects {
		sb.WriteString(proj.Description)
		sb.WriteString("\n")
		for _, b := range proj.Bullets {
			sb.WriteString(b)
			sb.WriteString("\n")
		}
	}
	return strings.ToLower(sb.String())
}

// TitleText returns the lowercased concatenation of experience titles and the
// summary, the text role/seniority signals are matched against.
func (r *ResumeRecord) TitleText() string {
	var sb strings.Builder
	for _, exp := range r.Experience {
		sb.WriteString(exp.Title)
		sb.WriteString(" ")
	}
	sb.WriteString(r.Summary)
	return strings.ToLower(sb.String())
}

// IsEmpty reports whether the record carries no extracted content at all.
func (r *ResumeRecord) IsEmpty() bool {
	return r.Contact.Email == "" && r.Contact.Phone == "" && len(r.Contact.Links) == 0 &&
		r.Summary == "" && len(r.Skills) == 0 && len(r.Education) == 0 &&
		len(r.Experience) == 0 && len(r.Projects) == 0
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-ats/internal/explain"
	"github.com/jonathan/resume-ats/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 64
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 6
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeRecord outputs a human-readable summary of an extracted record.
func (p *Printer) PrintResumeRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(record.Contact.Name)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(record.Contact.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orDash(record.Contact.Phone)))
	for _, link := range record.Contact.Links {
		sb.WriteString(fmt.Sprintf("Link:     %s\n", link))
	}
	sb.WriteString("\n")

	if len(record.Skills) > 0 {
		count := min(len(record.Skills), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(record.Skills)))
		for _, skill := range record.Skills[:count] {
			sb.WriteString(fmt.Sprintf("  • %s\n", skill))
		}
		if len(record.Skills) > count {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Skills)-count))
		}
	}

	sb.WriteString(fmt.Sprintf("\nEducation entries:  %d\n", len(record.Education)))
	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(record.Experience)))
	sb.WriteString(fmt.Sprintf("Project entries:    %d", len(record.Projects)))

	p.printBox("Extracted Resume", sb.String())
}

// PrintScoreBreakdown outputs a score breakdown with per-category findings,
// in canonical category order.
func (p *Printer) PrintScoreBreakdown(breakdown *types.ScoreBreakdown) {
	if breakdown == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total: %.2f / 100\n", breakdown.Total))

	for _, entry := range explain.Explain(*breakdown) {
		sb.WriteString(fmt.Sprintf("\n%s: %.2f / %.2f\n", entry.Category, entry.Earned, entry.Possible))
		for _, finding := range entry.Findings {
			sb.WriteString(fmt.Sprintf("  • %s\n", finding))
		}
	}

	p.printBox("ATS Score", strings.TrimRight(sb.String(), "\n"))
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

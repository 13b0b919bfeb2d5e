package finalnewline

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/rubylint/rubylint/internal/lint"
)

// Rule checks that the file ends with exactly one newline: a missing final
// newline and trailing blank lines are both reported.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "Layout/FinalNewline" }

// Category implements rule.Rule.
func (r *Rule) Category() lint.Category { return lint.Layout }

// DefaultSeverity implements rule.Rule.
func (r *Rule) DefaultSeverity() lint.Severity { return lint.Convention }

// Description implements rule.Rule.
func (r *Rule) Description() string { return "Files must end with exactly one newline." }

// Check implements rule.Rule.
func (r *Rule) Check(f *lint.SourceFile) []lint.Diagnostic {
	if len(f.Source) == 0 {
		return nil
	}

	if !bytes.HasSuffix(f.Source, []byte("\n")) {
		last := f.Lines[len(f.Lines)-1]
		return []lint.Diagnostic{{
			RuleID:   r.ID(),
			Message:  "Final newline missing.",
			Severity: r.DefaultSeverity(),
			Location: lint.Location{
				Line:   len(f.Lines),
				Column: utf8.RuneCountInString(last) + 1,
				Length: 0,
			},
		}}
	}

	// Trailing blank lines: everything after the last non-blank line.
	last := len(f.Lines)
	for last > 0 && f.Lines[last-1] == "" {
		last--
	}
	if last == len(f.Lines) {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   r.ID(),
		Message:  "Trailing blank lines detected.",
		Severity: r.DefaultSeverity(),
		Location: lint.Location{Line: last + 1, Column: 1, Length: 0},
	}}
}

// Fix implements rule.Fixable.
func (r *Rule) Fix(f *lint.SourceFile) []byte {
	if len(f.Source) == 0 {
		return f.Source
	}
	out := strings.TrimRight(string(f.Source), "\n") + "\n"
	return []byte(out)
}

package trailingwhitespace

import (
	"strings"
	"unicode/utf8"

	"github.com/rubylint/rubylint/internal/lint"
)

// Rule checks that no line ends in spaces or tabs.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "Layout/TrailingWhitespace" }

// Category implements rule.Rule.
func (r *Rule) Category() lint.Category { return lint.Layout }

// DefaultSeverity implements rule.Rule.
func (r *Rule) DefaultSeverity() lint.Severity { return lint.Convention }

// Description implements rule.Rule.
func (r *Rule) Description() string { return "Avoids trailing whitespace at the end of lines." }

// Check implements rule.Rule.
func (r *Rule) Check(f *lint.SourceFile) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for i, line := range f.Lines {
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == line {
			continue
		}
		diags = append(diags, lint.Diagnostic{
			RuleID:   r.ID(),
			Message:  "Trailing whitespace detected.",
			Severity: r.DefaultSeverity(),
			Location: lint.Location{
				Line:   i + 1,
				Column: lint.ColumnOf(line, len(trimmed)),
				Length: utf8.RuneCountInString(line) - utf8.RuneCountInString(trimmed),
			},
		})
	}
	return diags
}

// Fix implements rule.Fixable.
func (r *Rule) Fix(f *lint.SourceFile) []byte {
	lines := make([]string, len(f.Lines))
	for i, line := range f.Lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	out := strings.Join(lines, "\n")
	if len(f.Source) > 0 && f.Source[len(f.Source)-1] == '\n' {
		out += "\n"
	}
	return []byte(out)
}

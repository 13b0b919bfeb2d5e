package semicolon

import (
	"strings"

	"github.com/rubylint/rubylint/internal/lint"
)

// Rule checks for semicolons outside strings and comments.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "Style/Semicolon" }

// Category implements rule.Rule.
func (r *Rule) Category() lint.Category { return lint.Style }

// DefaultSeverity implements rule.Rule.
func (r *Rule) DefaultSeverity() lint.Severity { return lint.Convention }

// Description implements rule.Rule.
func (r *Rule) Description() string {
	return "Avoids semicolons to terminate or separate expressions."
}

// Check implements rule.Rule.
func (r *Rule) Check(f *lint.SourceFile) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for i, line := range f.Lines {
		lineNum := i + 1
		offset := 0
		for {
			idx := strings.IndexByte(line[offset:], ';')
			if idx < 0 {
				break
			}
			idx += offset
			col := lint.ColumnOf(line, idx)
			if !f.InStringOrComment(lineNum, col) {
				diags = append(diags, lint.Diagnostic{
					RuleID:   r.ID(),
					Message:  "Do not use semicolons to terminate expressions.",
					Severity: r.DefaultSeverity(),
					Location: lint.Location{Line: lineNum, Column: col, Length: 1},
				})
			}
			offset = idx + 1
		}
	}
	return diags
}

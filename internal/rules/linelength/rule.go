package linelength

import (
	"fmt"
	"unicode/utf8"

	"github.com/rubylint/rubylint/internal/lint"
)

// maxLength is the longest acceptable line, in characters.
const maxLength = 80

// Rule checks that no line exceeds the maximum length. Length counts
// characters, not bytes.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "Metrics/LineLength" }

// Category implements rule.Rule.
func (r *Rule) Category() lint.Category { return lint.Metrics }

// DefaultSeverity implements rule.Rule.
func (r *Rule) DefaultSeverity() lint.Severity { return lint.Convention }

// Description implements rule.Rule.
func (r *Rule) Description() string {
	return fmt.Sprintf("Lines should be at most %d characters.", maxLength)
}

// Check implements rule.Rule.
func (r *Rule) Check(f *lint.SourceFile) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for i, line := range f.Lines {
		n := utf8.RuneCountInString(line)
		if n <= maxLength {
			continue
		}
		diags = append(diags, lint.Diagnostic{
			RuleID:   r.ID(),
			Message:  fmt.Sprintf("Line is too long. [%d/%d]", n, maxLength),
			Severity: r.DefaultSeverity(),
			Location: lint.Location{
				Line:   i + 1,
				Column: maxLength + 1,
				Length: n - maxLength,
			},
		})
	}
	return diags
}

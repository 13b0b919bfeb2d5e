package methodname

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rubylint/rubylint/internal/lint"
)

// defRe matches a method definition and captures the method name. The
// receiver of a singleton method (def self.name) is skipped over.
var defRe = regexp.MustCompile(`^\s*def\s+(?:self\.)?([A-Za-z_][A-Za-z0-9_]*[!?=]?)`)

// Rule checks that method names use snake_case.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "Naming/MethodName" }

// Category implements rule.Rule.
func (r *Rule) Category() lint.Category { return lint.Naming }

// DefaultSeverity implements rule.Rule.
func (r *Rule) DefaultSeverity() lint.Severity { return lint.Convention }

// Description implements rule.Rule.
func (r *Rule) Description() string { return "Method names should use snake_case." }

// Check implements rule.Rule.
func (r *Rule) Check(f *lint.SourceFile) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for i, line := range f.Lines {
		lineNum := i + 1
		m := defRe.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}
		name := line[m[2]:m[3]]
		if name == strings.ToLower(name) {
			continue
		}
		col := lint.ColumnOf(line, m[2])
		if f.InStringOrComment(lineNum, col) {
			continue
		}
		diags = append(diags, lint.Diagnostic{
			RuleID:   r.ID(),
			Message:  fmt.Sprintf("Use snake_case for method names; %q is not snake_case.", name),
			Severity: r.DefaultSeverity(),
			Location: lint.Location{
				Line:   lineNum,
				Column: col,
				Length: utf8.RuneCountInString(name),
			},
		})
	}
	return diags
}

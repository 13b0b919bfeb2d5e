package debugger

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/rubylint/rubylint/internal/lint"
)

// debuggerRe matches calls that drop into an interactive debugger.
// Compiled once and shared read-only across concurrent checks.
var debuggerRe = regexp.MustCompile(`\b(binding\.(?:pry|irb)|byebug|debugger)\b`)

// Rule checks for debugger entry points left in the source.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "Lint/Debugger" }

// Category implements rule.Rule.
func (r *Rule) Category() lint.Category { return lint.Lint }

// DefaultSeverity implements rule.Rule.
func (r *Rule) DefaultSeverity() lint.Severity { return lint.Warning }

// Description implements rule.Rule.
func (r *Rule) Description() string {
	return "Checks for debugger calls like binding.pry or byebug."
}

// Check implements rule.Rule.
func (r *Rule) Check(f *lint.SourceFile) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for i, line := range f.Lines {
		lineNum := i + 1
		for _, m := range debuggerRe.FindAllStringIndex(line, -1) {
			col := lint.ColumnOf(line, m[0])
			if f.InStringOrComment(lineNum, col) {
				continue
			}
			call := line[m[0]:m[1]]
			diags = append(diags, lint.Diagnostic{
				RuleID:   r.ID(),
				Message:  fmt.Sprintf("Remove debugger entry point %q.", call),
				Severity: r.DefaultSeverity(),
				Location: lint.Location{
					Line:   lineNum,
					Column: col,
					Length: utf8.RuneCountInString(call),
				},
			})
		}
	}
	return diags
}

package orderedgems

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rubylint/rubylint/internal/lint"
)

// gemRe matches a gem declaration and captures the gem name. The name may
// be single- or double-quoted.
var gemRe = regexp.MustCompile(`^(\s*)gem\s+['"]([A-Za-z0-9_./-]+)['"]`)

// Rule checks that gem declarations are alphabetical within their section
// of a Gemfile. Blank lines and full-line comments separate sections.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "Style/OrderedGems" }

// Category implements rule.Rule.
func (r *Rule) Category() lint.Category { return lint.Style }

// DefaultSeverity implements rule.Rule.
func (r *Rule) DefaultSeverity() lint.Severity { return lint.Convention }

// Description implements rule.Rule.
func (r *Rule) Description() string {
	return "Gems in a Gemfile should be alphabetically sorted within their section."
}

// Check implements rule.Rule.
func (r *Rule) Check(f *lint.SourceFile) []lint.Diagnostic {
	var diags []lint.Diagnostic
	prev := ""
	for i, line := range f.Lines {
		lineNum := i + 1
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			// Section separator: ordering restarts below it.
			prev = ""
			continue
		}

		m := gemRe.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}
		// Guard against gem-looking text inside a string or comment.
		if f.InStringOrComment(lineNum, lint.ColumnOf(line, m[3])) {
			continue
		}

		name := line[m[4]:m[5]]
		if prev != "" && strings.ToLower(name) < strings.ToLower(prev) {
			diags = append(diags, lint.Diagnostic{
				RuleID: r.ID(),
				Message: fmt.Sprintf(
					"Gems should be sorted in an alphabetical order within their section of the Gemfile. Gem %q should appear before %q.",
					name, prev),
				Severity: r.DefaultSeverity(),
				Location: lint.Location{
					Line:   lineNum,
					Column: 1,
					Length: utf8.RuneCountInString(line[m[0]:m[1]]),
				},
			})
		}
		prev = name
	}
	return diags
}

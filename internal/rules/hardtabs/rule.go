package hardtabs

import (
	"strings"

	"github.com/rubylint/rubylint/internal/lint"
)

// Rule checks that indentation and code use spaces, not hard tabs. Tabs
// inside string literals and comments are left alone.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "Layout/Tab" }

// Category implements rule.Rule.
func (r *Rule) Category() lint.Category { return lint.Layout }

// DefaultSeverity implements rule.Rule.
func (r *Rule) DefaultSeverity() lint.Severity { return lint.Convention }

// Description implements rule.Rule.
func (r *Rule) Description() string { return "Checks for hard tabs outside strings and comments." }

// Check implements rule.Rule.
func (r *Rule) Check(f *lint.SourceFile) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for i, line := range f.Lines {
		lineNum := i + 1
		for idx := strings.IndexByte(line, '\t'); idx >= 0; {
			col := lint.ColumnOf(line, idx)
			if !f.InStringOrComment(lineNum, col) {
				diags = append(diags, lint.Diagnostic{
					RuleID:   r.ID(),
					Message:  "Tab detected.",
					Severity: r.DefaultSeverity(),
					Location: lint.Location{Line: lineNum, Column: col, Length: 1},
				})
			}
			next := strings.IndexByte(line[idx+1:], '\t')
			if next < 0 {
				break
			}
			idx += 1 + next
		}
	}
	return diags
}

// Fix implements rule.Fixable. Tabs outside strings and comments are
// replaced with two spaces each.
func (r *Rule) Fix(f *lint.SourceFile) []byte {
	lines := make([]string, len(f.Lines))
	for i, line := range f.Lines {
		lineNum := i + 1
		var b strings.Builder
		offset := 0
		for _, ch := range line {
			if ch == '\t' && !f.InStringOrComment(lineNum, lint.ColumnOf(line, offset)) {
				b.WriteString("  ")
			} else {
				b.WriteRune(ch)
			}
			offset += len(string(ch))
		}
		lines[i] = b.String()
	}
	out := strings.Join(lines, "\n")
	if len(f.Source) > 0 && f.Source[len(f.Source)-1] == '\n' {
		out += "\n"
	}
	return []byte(out)
}

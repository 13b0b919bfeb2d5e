package rule

import "github.com/rubylint/rubylint/internal/lint"

// Rule is a single check that inspects a source file.
//
// Check must be a pure function of the file's content: no hidden state
// between invocations and no mutation of shared structures, so that rules
// can run concurrently against different files without coordination.
// Diagnostics may come back in any order; the engine restores ordering.
type Rule interface {
	// ID returns the stable "Category/Name" identifier. Changing an ID
	// is a breaking compatibility change: config files, --only/--except
	// filters, and report output all key on it.
	ID() string
	Category() lint.Category
	DefaultSeverity() lint.Severity
	Description() string
	Check(f *lint.SourceFile) []lint.Diagnostic
}

// Fixable is a Rule that can also rewrite the source to remove its
// violations.
type Fixable interface {
	Rule
	Fix(f *lint.SourceFile) []byte
}

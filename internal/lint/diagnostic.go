package lint

import "fmt"

// Severity ranks how serious a diagnostic is. Values are ordered from
// least to most severe; the core never filters by severity, the ordering
// exists for display and for callers that want to rank output.
type Severity int

// Severity levels, least severe first.
const (
	Info Severity = iota
	Refactor
	Convention
	Warning
	Error
	Fatal
)

// Code returns the single-letter code used in compact output.
func (s Severity) Code() string {
	switch s {
	case Info:
		return "I"
	case Refactor:
		return "R"
	case Convention:
		return "C"
	case Warning:
		return "W"
	case Error:
		return "E"
	case Fatal:
		return "F"
	}
	return "?"
}

// String returns the lowercase name used in config files and JSON output.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Refactor:
		return "refactor"
	case Convention:
		return "convention"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	}
	return "unknown"
}

// ParseSeverity converts a config-file severity name to a Severity.
func ParseSeverity(name string) (Severity, error) {
	switch name {
	case "info":
		return Info, nil
	case "refactor":
		return Refactor, nil
	case "convention":
		return Convention, nil
	case "warning":
		return Warning, nil
	case "error":
		return Error, nil
	case "fatal":
		return Fatal, nil
	}
	return Info, fmt.Errorf("unknown severity %q", name)
}

// Category tags a rule's subject area. Purely descriptive; it drives rule
// listing and the first segment of a rule ID, never behavior.
type Category string

// Rule categories.
const (
	Layout  Category = "Layout"
	Style   Category = "Style"
	Lint    Category = "Lint"
	Naming  Category = "Naming"
	Metrics Category = "Metrics"
)

// Location points at a span of text in a source file. Line and Column are
// 1-based; Length counts characters (runes), not bytes.
type Location struct {
	Line   int
	Column int
	Length int
}

// Diagnostic is a single reported issue. Immutable once constructed.
// RuleID follows the "Category/Name" contract: exactly one slash dividing
// the category token from the rule token.
type Diagnostic struct {
	RuleID   string
	Message  string
	Severity Severity
	Location Location
}

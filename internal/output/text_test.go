package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rubylint/rubylint/internal/engine"
	"github.com/rubylint/rubylint/internal/lint"
)

func sampleReport() *engine.Report {
	return &engine.Report{
		Files: []engine.FileResult{
			{
				Path: "Gemfile",
				Diagnostics: []lint.Diagnostic{
					{
						RuleID:   "Style/OrderedGems",
						Message:  `Gem "rails" should appear before "rspec".`,
						Severity: lint.Convention,
						Location: lint.Location{Line: 2, Column: 1, Length: 11},
					},
				},
			},
			{
				Path: "app/models/user.rb",
				Diagnostics: []lint.Diagnostic{
					{
						RuleID:   "Lint/Debugger",
						Message:  `Remove debugger entry point "binding.pry".`,
						Severity: lint.Warning,
						Location: lint.Location{Line: 5, Column: 3, Length: 11},
					},
				},
			},
		},
		FileCount:       2,
		DiagnosticCount: 2,
	}
}

func TestTextFormatter_Plain(t *testing.T) {
	var buf bytes.Buffer
	f := &TextFormatter{Color: false}
	if err := f.Format(&buf, sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d: %q", len(lines), out)
	}
	want := `Gemfile:2:1: C: Gem "rails" should appear before "rspec". [Style/OrderedGems]`
	if lines[0] != want {
		t.Errorf("expected %q, got %q", want, lines[0])
	}
	if !strings.Contains(lines[1], "app/models/user.rb:5:3: W:") {
		t.Errorf("expected path:line:col and severity code, got %q", lines[1])
	}
	if !strings.Contains(lines[1], "[Lint/Debugger]") {
		t.Errorf("expected rule id suffix, got %q", lines[1])
	}
}

func TestTextFormatter_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	f := &TextFormatter{}
	if err := f.Format(&buf, &engine.Report{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output for an empty report, got %q", buf.String())
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rubylint/rubylint/internal/lint"
	"github.com/rubylint/rubylint/internal/rule"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_RuleEntries(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
Style/OrderedGems:
  Enabled: false
Metrics/LineLength:
  Severity: warning
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	enabled := cfg.IsRuleEnabled("Style/OrderedGems")
	if enabled == nil || *enabled {
		t.Error("expected Style/OrderedGems explicitly disabled")
	}
	if cfg.IsRuleEnabled("Metrics/LineLength") != nil {
		t.Error("expected no enabled override for Metrics/LineLength")
	}

	sev, ok := cfg.SeverityOverride("Metrics/LineLength")
	if !ok || sev != lint.Warning {
		t.Errorf("expected warning override, got %v (ok=%v)", sev, ok)
	}
	if _, ok := cfg.SeverityOverride("Style/OrderedGems"); ok {
		t.Error("expected no severity override for Style/OrderedGems")
	}
}

func TestLoad_AbsentEntryMeansNoOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "Style/OrderedGems:\n  Enabled: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.IsRuleEnabled("Lint/Debugger") != nil {
		t.Error("absence of an entry must mean no override, not disabled")
	}
}

func TestLoad_GlobalSection(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
AllRules:
  Exclude:
    - "vendor/**"
    - "db/schema.rb"
  TargetVersion: "3.2"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Global.Exclude) != 2 {
		t.Fatalf("expected 2 exclude patterns, got %d", len(cfg.Global.Exclude))
	}
	if cfg.Global.TargetVersion != "3.2" {
		t.Errorf("expected target version 3.2, got %q", cfg.Global.TargetVersion)
	}
	if _, ok := cfg.Rules["AllRules"]; ok {
		t.Error("AllRules must not be treated as a rule entry")
	}
}

func TestLoad_MalformedYAMLFailsHard(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "Style/OrderedGems: [not: valid\n")

	if _, err := Load(path); err == nil {
		t.Error("expected malformed YAML to fail Load")
	}
}

func TestLoad_UnknownSeverityFailsHard(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "Metrics/LineLength:\n  Severity: critical\n")

	if _, err := Load(path); err == nil {
		t.Error("expected an unknown severity name to fail Load")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoad_UnknownRuleIDPassesThrough(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "Style/FromTheFuture:\n  Enabled: false\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	enabled := cfg.IsRuleEnabled("Style/FromTheFuture")
	if enabled == nil || *enabled {
		t.Error("an unknown rule id must be carried through, not rejected")
	}
}

type stubRule struct{ id string }

func (r *stubRule) ID() string                                 { return r.id }
func (r *stubRule) Category() lint.Category                    { return lint.Style }
func (r *stubRule) DefaultSeverity() lint.Severity             { return lint.Convention }
func (r *stubRule) Description() string                        { return "stub" }
func (r *stubRule) Check(_ *lint.SourceFile) []lint.Diagnostic { return nil }

func TestApply_EnableDisable(t *testing.T) {
	reg := rule.NewRegistry([]rule.Rule{&stubRule{id: "Style/A"}, &stubRule{id: "Style/B"}})
	reg.Disable("Style/B")

	on, off := true, false
	cfg := Default()
	cfg.Rules["Style/A"] = RuleCfg{Enabled: &off}
	cfg.Rules["Style/B"] = RuleCfg{Enabled: &on}
	cfg.Apply(reg)

	if reg.IsEnabled("Style/A") {
		t.Error("config should disable Style/A")
	}
	if !reg.IsEnabled("Style/B") {
		t.Error("config should re-enable Style/B")
	}
}

func TestDiscover_WalksUpToGitBoundary(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "app", "models")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	want := writeConfig(t, root, "Style/OrderedGems:\n  Enabled: false\n")

	got, err := Discover(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDiscover_StopsAtGitRoot(t *testing.T) {
	root := t.TempDir()
	// Config above the repo root must not be found.
	writeConfig(t, root, "Style/OrderedGems:\n  Enabled: false\n")

	repo := filepath.Join(root, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := Discover(repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected no config found inside the repo boundary, got %q", got)
	}
}

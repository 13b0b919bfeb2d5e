package fix

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rubylint/rubylint/internal/config"
	"github.com/rubylint/rubylint/internal/engine"
	"github.com/rubylint/rubylint/internal/lint"
	"github.com/rubylint/rubylint/internal/rule"
)

// Fixer applies auto-fixes for fixable rules and reports what remains.
type Fixer struct {
	Registry *rule.Registry
	Config   *config.Config
	Jobs     int
}

// Result holds the outcome of a fix run.
type Result struct {
	// Report contains the diagnostics remaining after fixing (from
	// non-fixable rules and violations that could not be auto-fixed).
	Report *engine.Report
	// Modified lists file paths that were written back to disk.
	Modified []string
	// Errors contains write/read failures encountered while fixing.
	Errors []error
}

// maxPasses bounds the fix loop. One rule's rewrite can expose a violation
// of another, so passes repeat until the content is stable.
const maxPasses = 10

// Fix rewrites the files at the given paths using every enabled fixable
// rule, then lints them again for the remaining diagnostics.
func (f *Fixer) Fix(paths []string) *Result {
	res := &Result{}

	var fixable []rule.Fixable
	for _, rl := range f.Registry.Enabled() {
		if fr, ok := rl.(rule.Fixable); ok {
			fixable = append(fixable, fr)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		source, err := os.ReadFile(path)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("reading %q: %w", path, err))
			continue
		}

		current := source
		for pass := 0; pass < maxPasses; pass++ {
			before := current
			for _, fr := range fixable {
				sf := lint.NewSourceFile(path, current)
				if len(fr.Check(sf)) == 0 {
					continue
				}
				current = fr.Fix(sf)
			}
			if bytes.Equal(before, current) {
				break
			}
		}

		if !bytes.Equal(source, current) {
			if err := os.WriteFile(path, current, info.Mode()); err != nil {
				res.Errors = append(res.Errors, fmt.Errorf("writing %q: %w", path, err))
				continue
			}
			res.Modified = append(res.Modified, path)
		}
	}

	runner := &engine.Runner{Registry: f.Registry, Config: f.Config, Jobs: f.Jobs}
	res.Report = runner.Run(paths)
	return res
}

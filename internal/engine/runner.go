package engine

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"

	"github.com/rubylint/rubylint/internal/config"
	"github.com/rubylint/rubylint/internal/lint"
	"github.com/rubylint/rubylint/internal/log"
	"github.com/rubylint/rubylint/internal/rule"
)

// Runner drives the linting pipeline: for each file it loads the content
// into a SourceFile, runs every enabled rule, applies severity overrides
// from the config, and collects diagnostics into a deterministic Report.
//
// Files are processed by a bounded pool of goroutines, one independent
// unit of work per file. The registry is read-only during a run (all
// enable/disable decisions happen before Run), each SourceFile is owned by
// the worker that built it, and the only synchronization point is the join
// before the final sort.
type Runner struct {
	Registry *rule.Registry
	Config   *config.Config
	// Jobs bounds the worker pool; <= 0 means GOMAXPROCS.
	Jobs int
	Log  *log.Logger
}

// FileResult holds one file's diagnostics, ordered by (line, column).
type FileResult struct {
	Path        string
	Diagnostics []lint.Diagnostic
}

// Report is the aggregate of a run: per-file results ordered by path and
// total counts summed over them.
type Report struct {
	Files           []FileResult
	FileCount       int
	DiagnosticCount int
}

// Run lints the files at the given paths. Paths that are not readable
// regular files are silently omitted: they produce no diagnostic and do
// not count as files. The report is independent of input ordering and of
// worker scheduling: per-file diagnostics are stable-sorted by
// (line, column) and files are sorted by path after the join.
func (r *Runner) Run(paths []string) *Report {
	targets := r.filterExcluded(paths)

	// Snapshot before the fan-out; workers never touch the registry.
	enabled := r.Registry.Enabled()

	jobs := r.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(targets) {
		jobs = len(targets)
	}

	results := make([]*FileResult, len(targets))

	var g errgroup.Group
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, path := range targets {
		i, path := i, path
		g.Go(func() error {
			results[i] = r.checkFile(path, enabled)
			return nil
		})
	}
	// Workers never return errors; failed loads are skipped per contract.
	_ = g.Wait()

	return buildReport(results)
}

// RunSource lints a single in-memory buffer under a synthetic name, e.g.
// "<stdin>".
func (r *Runner) RunSource(name string, source []byte) *Report {
	f := lint.NewSourceFile(name, source)
	res := r.checkBuffer(f, r.Registry.Enabled())
	return buildReport([]*FileResult{res})
}

// checkFile loads one file and runs the enabled rules against it. Returns
// nil for anything that is not a readable regular file.
func (r *Runner) checkFile(path string, rules []rule.Rule) *FileResult {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		r.logf("skipping %s: not a readable regular file", path)
		return nil
	}
	source, err := os.ReadFile(path)
	if err != nil {
		r.logf("skipping %s: %v", path, err)
		return nil
	}
	return r.checkBuffer(lint.NewSourceFile(path, source), rules)
}

// checkBuffer runs the enabled rules against one buffer and sorts the
// collected diagnostics.
func (r *Runner) checkBuffer(f *lint.SourceFile, rules []rule.Rule) *FileResult {
	var diags []lint.Diagnostic
	for _, rl := range rules {
		out := checkRule(rl, f)
		if sev, ok := r.severityOverride(rl.ID()); ok {
			for i := range out {
				out[i].Severity = sev
			}
		}
		diags = append(diags, out...)
	}

	// Stable: ties at the same location keep emission order, which is
	// fixed by the registry's rule order.
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Location.Line != diags[j].Location.Line {
			return diags[i].Location.Line < diags[j].Location.Line
		}
		return diags[i].Location.Column < diags[j].Location.Column
	})

	return &FileResult{Path: f.Path, Diagnostics: diags}
}

// checkRule invokes one rule, converting a panicking rule into an empty
// diagnostic list rather than a wrong one.
func checkRule(rl rule.Rule, f *lint.SourceFile) (diags []lint.Diagnostic) {
	defer func() {
		if recover() != nil {
			diags = nil
		}
	}()
	return rl.Check(f)
}

func (r *Runner) severityOverride(id string) (lint.Severity, bool) {
	if r.Config == nil {
		return 0, false
	}
	return r.Config.SeverityOverride(id)
}

// filterExcluded drops paths matching the AllRules exclusion globs.
func (r *Runner) filterExcluded(paths []string) []string {
	if r.Config == nil || len(r.Config.Global.Exclude) == 0 {
		return paths
	}

	var matchers []glob.Glob
	for _, pattern := range r.Config.Global.Exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		matchers = append(matchers, g)
	}

	result := make([]string, 0, len(paths))
	for _, path := range paths {
		if r.isExcluded(path, matchers) {
			r.logf("excluding %s", path)
			continue
		}
		result = append(result, path)
	}
	return result
}

func (r *Runner) isExcluded(path string, matchers []glob.Glob) bool {
	cleanPath := filepath.Clean(path)
	for _, g := range matchers {
		if g.Match(path) || g.Match(cleanPath) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}

func (r *Runner) logf(format string, args ...any) {
	if r.Log != nil {
		r.Log.Printf(format, args...)
	}
}

// buildReport drops skipped files, sorts the rest by path, and sums the
// counts.
func buildReport(results []*FileResult) *Report {
	report := &Report{}
	for _, res := range results {
		if res == nil {
			continue
		}
		report.Files = append(report.Files, *res)
	}
	sort.Slice(report.Files, func(i, j int) bool {
		return report.Files[i].Path < report.Files[j].Path
	})
	report.FileCount = len(report.Files)
	for _, fr := range report.Files {
		report.DiagnosticCount += len(fr.Diagnostics)
	}
	return report
}

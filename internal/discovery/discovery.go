// Package discovery finds Ruby source files by expanding directories and
// glob patterns.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns match the Ruby file shapes linted when a directory is
// given.
var DefaultPatterns = []string{
	"**/*.rb",
	"**/*.gemspec",
	"**/*.rake",
	"**/Gemfile",
	"**/Rakefile",
	"**/config.ru",
}

// Options controls how file discovery behaves.
type Options struct {
	// Patterns is the list of glob patterns to match files against.
	// Empty means DefaultPatterns.
	Patterns []string

	// BaseDir is the directory to walk from. Defaults to "." if empty.
	BaseDir string
}

// Discover walks BaseDir and returns files matching any of the configured
// glob patterns. Results are deduplicated and sorted.
func Discover(opts Options) ([]string, error) {
	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}

	w := &walker{
		absBase:  absBase,
		patterns: validatePatterns(patterns),
		seen:     make(map[string]bool),
	}
	if len(w.patterns) == 0 {
		return nil, nil
	}

	if err := filepath.Walk(baseDir, w.visit); err != nil {
		return nil, err
	}

	sort.Strings(w.result)
	return w.result, nil
}

// Resolve expands CLI positional arguments into a deduplicated, sorted
// file list. Arguments may be plain files (taken as-is), directories
// (walked recursively for Ruby file shapes), or glob patterns. A
// nonexistent path that is not a glob pattern is an error.
func Resolve(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	add := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if !seen[abs] {
			seen[abs] = true
			result = append(result, path)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err == nil && info.IsDir():
			files, err := Discover(Options{BaseDir: arg})
			if err != nil {
				return nil, fmt.Errorf("walking %q: %w", arg, err)
			}
			for _, f := range files {
				add(f)
			}
		case err == nil:
			// Explicitly named files are taken as-is, whatever
			// their extension.
			add(arg)
		case hasGlobChars(arg):
			matches, err := doublestar.FilepathGlob(arg)
			if err != nil {
				return nil, fmt.Errorf("bad glob pattern %q: %w", arg, err)
			}
			for _, m := range matches {
				if fi, err := os.Stat(m); err == nil && !fi.IsDir() {
					add(m)
				}
			}
		default:
			return nil, fmt.Errorf("no such file or directory: %s", arg)
		}
	}

	sort.Strings(result)
	return result, nil
}

// validatePatterns returns patterns that are syntactically valid.
func validatePatterns(patterns []string) []string {
	valid := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if doublestar.ValidatePattern(p) {
			valid = append(valid, p)
		}
	}
	return valid
}

// hasGlobChars returns true if the string contains glob meta-characters.
func hasGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// walker holds state for the directory walk.
type walker struct {
	absBase  string
	patterns []string
	seen     map[string]bool
	result   []string
}

// visit is the filepath.WalkFunc callback.
func (w *walker) visit(path string, info os.FileInfo, walkErr error) error {
	if walkErr != nil {
		return walkErr
	}
	if info.IsDir() {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil
	}
	rel, err := filepath.Rel(w.absBase, abs)
	if err != nil {
		return nil
	}
	rel = filepath.ToSlash(rel)

	if w.matchesAny(rel) && !w.seen[abs] {
		w.seen[abs] = true
		w.result = append(w.result, path)
	}
	return nil
}

// matchesAny returns true if rel matches any of the configured patterns.
func (w *walker) matchesAny(rel string) bool {
	for _, p := range w.patterns {
		matched, err := doublestar.Match(p, rel)
		if err == nil && matched {
			return true
		}
	}
	return false
}

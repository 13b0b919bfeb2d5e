package lint

import (
	"strings"
	"unicode/utf8"
)

// SourceFile holds one source file's raw content and its line
// decomposition. Lines is computed once from Source at construction (line
// terminators stripped) and never mutated afterward.
type SourceFile struct {
	Path   string
	Source []byte
	Lines  []string
}

// NewSourceFile builds a SourceFile from raw content. Path may be a real
// file path or a synthetic name such as "<stdin>".
func NewSourceFile(path string, source []byte) *SourceFile {
	lines := strings.Split(string(source), "\n")
	// A trailing newline produces an empty final element; that is not a
	// line of the file.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return &SourceFile{
		Path:   path,
		Source: source,
		Lines:  lines,
	}
}

// LineCount returns the number of lines in the file.
func (f *SourceFile) LineCount() int {
	return len(f.Lines)
}

// Line returns the 1-based line n without its terminator, and whether it
// exists.
func (f *SourceFile) Line(n int) (string, bool) {
	if n < 1 || n > len(f.Lines) {
		return "", false
	}
	return f.Lines[n-1], true
}

// ColumnOf converts a byte offset within line into a 1-based character
// column. Columns count runes, so a multi-byte character advances the
// column by one.
func ColumnOf(line string, byteOffset int) int {
	if byteOffset > len(line) {
		byteOffset = len(line)
	}
	return utf8.RuneCountInString(line[:byteOffset]) + 1
}

// commentMarker starts a line comment when it appears outside any string.
const commentMarker = '#'

// InStringOrComment reports whether the character at the 1-based
// (line, column) lies inside a single-quoted string, a double-quoted
// string, or a line comment. Column counts characters, not bytes.
//
// The scan is a per-line heuristic: each line is classified as if it
// started outside any string, so multi-line string constructs are
// misclassified past the first line boundary. That is a deliberate,
// bounded inaccuracy of the scanner, not something callers should try to
// compensate for.
//
// Every call re-scans the line from its start up to (but not including)
// column, so repeated queries at different columns on the same line never
// observe stale state.
func (f *SourceFile) InStringOrComment(line, column int) bool {
	if line < 1 || line > len(f.Lines) || column < 1 {
		return false
	}

	var inSingle, inDouble, escaped bool
	pos := 0
	for _, ch := range f.Lines[line-1] {
		pos++
		if pos >= column {
			break
		}
		if escaped {
			// The previous backslash consumes this character; it
			// cannot act as a quote or comment marker.
			escaped = false
			continue
		}
		switch {
		case ch == '\\' && inDouble:
			// Escapes are only meaningful inside double quotes.
			escaped = true
		case ch == commentMarker && !inSingle && !inDouble:
			// The rest of the line is a comment.
			return true
		case ch == '\'' && !inDouble:
			inSingle = !inSingle
		case ch == '"' && !inSingle:
			inDouble = !inDouble
		}
	}
	return inSingle || inDouble
}

// Package log provides the verbose progress logger behind --verbose.
package log

import (
	"fmt"
	"io"
)

// Logger writes progress messages when Enabled is true. Output goes to the
// configured writer, typically stderr. The zero value is a silent logger.
type Logger struct {
	Enabled bool
	W       io.Writer
}

// Printf writes a formatted message followed by a newline when the logger
// is enabled and has a writer. It is a no-op otherwise.
func (l *Logger) Printf(format string, args ...any) {
	if !l.Enabled || l.W == nil {
		return
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}

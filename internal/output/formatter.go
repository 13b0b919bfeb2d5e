package output

import (
	"io"

	"github.com/rubylint/rubylint/internal/engine"
)

// Formatter renders a run report.
type Formatter interface {
	Format(w io.Writer, report *engine.Report) error
}

package output

import (
	"encoding/json"
	"io"

	"github.com/rubylint/rubylint/internal/engine"
)

// JSONFormatter renders the report as a single JSON document carrying the
// file and diagnostic counts alongside the flat diagnostic list.
type JSONFormatter struct{}

type jsonReport struct {
	FileCount       int              `json:"file_count"`
	DiagnosticCount int              `json:"diagnostic_count"`
	Diagnostics     []jsonDiagnostic `json:"diagnostics"`
}

type jsonDiagnostic struct {
	Path     string `json:"path"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Length   int    `json:"length"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	RuleID   string `json:"rule_id"`
}

// Format implements Formatter. An empty report produces an empty
// diagnostics array, not null.
func (f *JSONFormatter) Format(w io.Writer, report *engine.Report) error {
	out := jsonReport{
		FileCount:       report.FileCount,
		DiagnosticCount: report.DiagnosticCount,
		Diagnostics:     make([]jsonDiagnostic, 0, report.DiagnosticCount),
	}
	for _, fr := range report.Files {
		for _, d := range fr.Diagnostics {
			out.Diagnostics = append(out.Diagnostics, jsonDiagnostic{
				Path:     fr.Path,
				Line:     d.Location.Line,
				Column:   d.Location.Column,
				Length:   d.Location.Length,
				Severity: d.Severity.String(),
				Message:  d.Message,
				RuleID:   d.RuleID,
			})
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

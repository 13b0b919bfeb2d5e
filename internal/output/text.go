package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/rubylint/rubylint/internal/engine"
)

// TextFormatter renders one diagnostic per line:
//
//	path:line:col: C: message [Category/Name]
//
// When Color is true the location is cyan and the rule ID yellow.
type TextFormatter struct {
	Color bool
}

// Format implements Formatter.
func (f *TextFormatter) Format(w io.Writer, report *engine.Report) error {
	locColor := color.New(color.FgCyan)
	ruleColor := color.New(color.FgYellow)

	for _, fr := range report.Files {
		for _, d := range fr.Diagnostics {
			loc := fmt.Sprintf("%s:%d:%d", fr.Path, d.Location.Line, d.Location.Column)
			id := fmt.Sprintf("[%s]", d.RuleID)
			if f.Color {
				loc = locColor.Sprint(loc)
				id = ruleColor.Sprint(id)
			}
			if _, err := fmt.Fprintf(w, "%s: %s: %s %s\n",
				loc, d.Severity.Code(), d.Message, id); err != nil {
				return err
			}
		}
	}
	return nil
}

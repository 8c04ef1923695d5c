package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/zjhiphop/ng-attr-hint/internal/lint"
)

// TextFormatter outputs diagnostics in human-readable text format.
// When Color is true, the file location is printed in cyan and the rule
// ID in yellow.
type TextFormatter struct {
	Color bool
}

// Format writes each diagnostic as a single line in the pattern:
// file:line rule severity [attrs] message
func (f *TextFormatter) Format(w io.Writer, diagnostics []lint.Diagnostic) error {
	for _, d := range diagnostics {
		attrs := strings.Join(d.Attrs, ", ")
		var err error
		if f.Color {
			// file in cyan, rule in yellow
			_, err = fmt.Fprintf(w, "\033[36m%s:%d\033[0m \033[33m%s\033[0m %s [%s] %s\n",
				d.File, d.Line, d.RuleID, d.Severity, attrs, d.Message)
		} else {
			_, err = fmt.Fprintf(w, "%s:%d %s %s [%s] %s\n",
				d.File, d.Line, d.RuleID, d.Severity, attrs, d.Message)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Package log provides the verbose trace logger used by the lint
// pipeline. It is deliberately minimal: one level, one writer, off by
// default.
package log

import (
	"fmt"
	"io"
)

// Logger writes pipeline trace messages. A nil or disabled Logger
// discards everything, so callers never need to guard Printf.
type Logger struct {
	enabled bool
	w       io.Writer
}

// New returns a Logger writing to w when enabled. Typically w is stderr
// so trace output never mixes with findings.
func New(enabled bool, w io.Writer) *Logger {
	return &Logger{enabled: enabled, w: w}
}

// Printf writes one formatted trace line.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.enabled || l.w == nil {
		return
	}
	_, _ = fmt.Fprintf(l.w, format+"\n", args...)
}

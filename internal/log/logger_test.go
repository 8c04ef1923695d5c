package log

import (
	"bytes"
	"testing"
)

func TestPrintf_Enabled(t *testing.T) {
	var buf bytes.Buffer
	l := New(true, &buf)

	l.Printf("linting %s with %d rules", "page.html", 8)

	want := "linting page.html with 8 rules\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintf_Disabled(t *testing.T) {
	var buf bytes.Buffer
	l := New(false, &buf)

	l.Printf("skipping ignored file %s", "vendor.html")

	if got := buf.String(); got != "" {
		t.Errorf("expected no output, got %q", got)
	}
}

func TestPrintf_NilLogger(t *testing.T) {
	var l *Logger
	l.Printf("must not panic")
}

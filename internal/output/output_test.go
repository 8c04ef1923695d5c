package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/zjhiphop/ng-attr-hint/internal/lint"
)

func sampleDiags() []lint.Diagnostic {
	return []lint.Diagnostic{
		{
			File:     "page.html",
			Line:     3,
			RuleID:   "NG001",
			RuleName: "mutually-exclusive-attrs",
			Attrs:    []string{"ng-show", "ng-hide"},
			Severity: lint.Error,
			Message:  "attributes ng-show, ng-hide are mutually exclusive",
		},
		{
			File:     "page.html",
			Line:     8,
			RuleID:   "NG004",
			RuleName: "ng-init-misuse",
			Attrs:    []string{"ng-init"},
			Severity: lint.Warning,
			Message:  "ng-init should only be used to alias special properties of ng-repeat",
		},
	}
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &TextFormatter{}
	if err := f.Format(&buf, sampleDiags()); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	want := "page.html:3 NG001 error [ng-show, ng-hide] attributes ng-show, ng-hide are mutually exclusive"
	if lines[0] != want {
		t.Errorf("line = %q, want %q", lines[0], want)
	}
	if !strings.HasPrefix(lines[1], "page.html:8 NG004 warning [ng-init]") {
		t.Errorf("line = %q", lines[1])
	}
}

func TestTextFormatter_Color(t *testing.T) {
	var buf bytes.Buffer
	f := &TextFormatter{Color: true}
	if err := f.Format(&buf, sampleDiags()[:1]); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\033[36mpage.html:3\033[0m") {
		t.Errorf("location not cyan: %q", out)
	}
	if !strings.Contains(out, "\033[33mNG001\033[0m") {
		t.Errorf("rule not yellow: %q", out)
	}
}

func TestTextFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TextFormatter{}).Format(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(&buf, sampleDiags()); err != nil {
		t.Fatal(err)
	}

	var items []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &items); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(items) != 2 {
		t.Fatalf("got %d items", len(items))
	}
	first := items[0]
	if first["file"] != "page.html" || first["line"] != float64(3) ||
		first["rule"] != "NG001" || first["name"] != "mutually-exclusive-attrs" ||
		first["severity"] != "error" {
		t.Errorf("first item = %v", first)
	}
	attrs, ok := first["attrs"].([]any)
	if !ok || len(attrs) != 2 {
		t.Errorf("attrs = %v", first["attrs"])
	}
}

func TestJSONFormatter_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty output = %q, want []", buf.String())
	}
}

func TestJSONFormatter_NilAttrsEncodedAsEmptyList(t *testing.T) {
	var buf bytes.Buffer
	d := []lint.Diagnostic{{File: "a.html", Line: 1, RuleID: "NG006", Severity: lint.Error}}
	if err := (&JSONFormatter{}).Format(&buf, d); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), `"attrs": null`) {
		t.Errorf("attrs encoded as null: %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"attrs": []`) {
		t.Errorf("attrs not an empty list: %s", buf.String())
	}
}

package ngoptionsgrammar

import (
	"testing"

	"github.com/zjhiphop/ng-attr-hint/internal/lint"
)

func makeSelect(expr string) *lint.Tag {
	tag := lint.NewTag("select", "test.html", 7)
	tag.SetAttr("ng-options", expr)
	return tag
}

func TestCheck_ValidExpressions(t *testing.T) {
	exprs := []string{
		"x for x in items",
		"item.name for item in items",
		"item.name as item.label for item in items",
		"item.name group by item.group for item in items",
		"item.name disable when item.disabled for item in items",
		"item.name as item.label group by item.group for item in items",
		"(key, value) for (key, value) in object",
		"value for (key, value) in object",
		"item for item in items track by item.id",
		"item.name as item.label for item in items track by item.id",
	}
	r := &Rule{}
	for _, expr := range exprs {
		if diags := r.Check(makeSelect(expr), nil); len(diags) != 0 {
			t.Errorf("%q flagged: %v", expr, diags)
		}
	}
}

func TestCheck_InvalidExpressions(t *testing.T) {
	exprs := []string{
		"for x in items",      // missing select
		"x for in items",      // missing value variable
		"x for x items",       // missing in
		"x in items",          // missing for
		"x for (a,) in items", // malformed key/value pair
	}
	r := &Rule{}
	for _, expr := range exprs {
		diags := r.Check(makeSelect(expr), nil)
		if len(diags) != 1 {
			t.Errorf("%q: expected 1 diagnostic, got %d", expr, len(diags))
			continue
		}
		if diags[0].Severity != lint.Error {
			t.Errorf("%q: severity = %s, want error", expr, diags[0].Severity)
		}
		if diags[0].Attrs[0] != "ng-options" {
			t.Errorf("%q: attrs = %v, want [ng-options]", expr, diags[0].Attrs)
		}
	}
}

func TestCheck_EmptyValueLeftToEmptyAttributeRule(t *testing.T) {
	r := &Rule{}
	if diags := r.Check(makeSelect(""), nil); len(diags) != 0 {
		t.Errorf("empty ng-options flagged: %v", diags)
	}
}

func TestCheck_NoOptionsClean(t *testing.T) {
	tag := lint.NewTag("select", "test.html", 1)
	tag.SetAttr("ng-model", "choice")

	r := &Rule{}
	if diags := r.Check(tag, nil); len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

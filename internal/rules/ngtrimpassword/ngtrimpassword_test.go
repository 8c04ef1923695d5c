package ngtrimpassword

import (
	"testing"

	"github.com/zjhiphop/ng-attr-hint/internal/lint"
)

func makeInput(typ string, attrs ...string) *lint.Tag {
	tag := lint.NewTag("input", "test.html", 1)
	tag.SetAttr("type", typ)
	for _, a := range attrs {
		tag.SetAttr(a, "")
	}
	return tag
}

func TestCheck_PasswordWithTrim(t *testing.T) {
	r := &Rule{}
	diags := r.Check(makeInput("password", "ng-trim"), nil)

	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Severity != lint.Warning {
		t.Errorf("severity = %s, want warning", diags[0].Severity)
	}
	if diags[0].Attrs[0] != "ng-trim" {
		t.Errorf("attrs = %v, want [ng-trim]", diags[0].Attrs)
	}
}

func TestCheck_TextInputClean(t *testing.T) {
	r := &Rule{}
	if diags := r.Check(makeInput("text", "ng-trim"), nil); len(diags) != 0 {
		t.Errorf("text input flagged: %v", diags)
	}
}

func TestCheck_PasswordWithoutTrimClean(t *testing.T) {
	r := &Rule{}
	if diags := r.Check(makeInput("password"), nil); len(diags) != 0 {
		t.Errorf("password without ng-trim flagged: %v", diags)
	}
}

func TestCheck_NonInputClean(t *testing.T) {
	tag := lint.NewTag("div", "test.html", 1)
	tag.SetAttr("type", "password")
	tag.SetAttr("ng-trim", "")

	r := &Rule{}
	if diags := r.Check(tag, nil); len(diags) != 0 {
		t.Errorf("non-input flagged: %v", diags)
	}
}

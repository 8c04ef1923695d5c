package ngtrimpassword

import (
	"github.com/zjhiphop/ng-attr-hint/internal/lint"
	"github.com/zjhiphop/ng-attr-hint/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule flags ng-trim on password inputs, where it has no effect.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "NG003" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "ng-trim-password" }

// Category implements rule.Rule.
func (r *Rule) Category() string { return "usage" }

// Check implements rule.Rule.
func (r *Rule) Check(t *lint.Tag, _ *lint.Settings) []lint.Diagnostic {
	if t.Name != "input" || t.Val("type") != "password" || !t.Has("ng-trim") {
		return nil
	}
	return []lint.Diagnostic{{
		File:     t.File,
		Line:     t.Line,
		RuleID:   r.ID(),
		RuleName: r.Name(),
		Attrs:    []string{"ng-trim"},
		Severity: lint.Warning,
		Message:  "ng-trim has no effect on password inputs",
	}}
}

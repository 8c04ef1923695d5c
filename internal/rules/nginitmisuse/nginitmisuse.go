package nginitmisuse

import (
	"github.com/zjhiphop/ng-attr-hint/internal/lint"
	"github.com/zjhiphop/ng-attr-hint/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule flags ng-init used without ng-repeat. The only sanctioned use of
// ng-init is aliasing special properties of ng-repeat; anything else
// belongs in a controller.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "NG004" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "ng-init-misuse" }

// Category implements rule.Rule.
func (r *Rule) Category() string { return "usage" }

// Check implements rule.Rule.
func (r *Rule) Check(t *lint.Tag, _ *lint.Settings) []lint.Diagnostic {
	if !t.Has("ng-init") || t.Has("ng-repeat") {
		return nil
	}
	return []lint.Diagnostic{{
		File:     t.File,
		Line:     t.Line,
		RuleID:   r.ID(),
		RuleName: r.Name(),
		Attrs:    []string{"ng-init"},
		Severity: lint.Warning,
		Message:  "ng-init should only be used to alias special properties of ng-repeat",
	}}
}

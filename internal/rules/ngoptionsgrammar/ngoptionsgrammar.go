package ngoptionsgrammar

import (
	"fmt"
	"regexp"

	"github.com/zjhiphop/ng-attr-hint/internal/lint"
	"github.com/zjhiphop/ng-attr-hint/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// ngOptions is the canonical ngOptions comprehension grammar:
//
//	select (as label)? (group by group)? (disable when disable)?
//	for (key,)? value in collection (track by expr)?
var ngOptions = regexp.MustCompile(`^\s*([\s\S]+?)(?:\s+as\s+([\s\S]+?))?(?:\s+group\s+by\s+([\s\S]+?))?(?:\s+disable\s+when\s+([\s\S]+?))?\s+for\s+(?:([$\w][$\w]*)|(?:\(\s*([$\w][$\w]*)\s*,\s*([$\w][$\w]*)\s*\)))\s+in\s+([\s\S]+?)(?:\s+track\s+by\s+([\s\S]+?))?$`)

// Rule checks that a non-empty ng-options value parses as a select
// comprehension expression.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "NG006" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "ng-options-grammar" }

// Category implements rule.Rule.
func (r *Rule) Category() string { return "expression" }

// Check implements rule.Rule. Empty values are left to the
// empty-attribute rule.
func (r *Rule) Check(t *lint.Tag, _ *lint.Settings) []lint.Diagnostic {
	if !t.Has("ng-options") {
		return nil
	}
	expr := t.Val("ng-options")
	if expr == "" || ngOptions.MatchString(expr) {
		return nil
	}
	return []lint.Diagnostic{{
		File:     t.File,
		Line:     t.Line,
		RuleID:   r.ID(),
		RuleName: r.Name(),
		Attrs:    []string{"ng-options"},
		Severity: lint.Error,
		Message:  fmt.Sprintf("invalid ng-options expression %q on <%s> tag", expr, t.Name),
	}}
}

package mutuallyexclusive

import (
	"fmt"
	"strings"

	"github.com/zjhiphop/ng-attr-hint/internal/lint"
	"github.com/zjhiphop/ng-attr-hint/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// groups lists the attribute sets that must not appear together on one
// tag. Offending attributes are reported in group order.
var groups = [][]string{
	{"ng-show", "ng-hide"},
	{"ng-bind", "ng-bind-html", "ng-bind-template"},
	{"href", "ng-href"},
	{"pattern", "ng-pattern"},
	{"required", "ng-required"},
	{"src", "ng-src"},
}

// Rule checks that no tag combines attributes from a mutually exclusive
// group.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "NG001" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "mutually-exclusive-attrs" }

// Category implements rule.Rule.
func (r *Rule) Category() string { return "conflict" }

// Check implements rule.Rule. It emits one finding per group with two or
// more members present, listing exactly the intersecting attributes.
func (r *Rule) Check(t *lint.Tag, _ *lint.Settings) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, group := range groups {
		var present []string
		for _, name := range group {
			if t.Has(name) {
				present = append(present, name)
			}
		}
		if len(present) < 2 {
			continue
		}
		diags = append(diags, lint.Diagnostic{
			File:     t.File,
			Line:     t.Line,
			RuleID:   r.ID(),
			RuleName: r.Name(),
			Attrs:    present,
			Severity: lint.Error,
			Message:  fmt.Sprintf("attributes %s are mutually exclusive", strings.Join(present, ", ")),
		})
	}
	return diags
}

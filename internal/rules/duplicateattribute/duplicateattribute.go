package duplicateattribute

import (
	"fmt"

	"github.com/zjhiphop/ng-attr-hint/internal/lint"
	"github.com/zjhiphop/ng-attr-hint/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule checks that no attribute name appears more than once on a tag.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "NG002" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "duplicate-attribute" }

// Category implements rule.Rule.
func (r *Rule) Category() string { return "conflict" }

// Check implements rule.Rule. It emits one finding per duplicated name,
// in first-seen attribute order.
func (r *Rule) Check(t *lint.Tag, _ *lint.Settings) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, name := range t.Keys {
		if _, ok := t.Duplicates[name]; !ok {
			continue
		}
		diags = append(diags, lint.Diagnostic{
			File:     t.File,
			Line:     t.Line,
			RuleID:   r.ID(),
			RuleName: r.Name(),
			Attrs:    []string{name},
			Severity: lint.Error,
			Message:  fmt.Sprintf("duplicate attribute %s", name),
		})
	}
	return diags
}

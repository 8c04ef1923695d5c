package emptyattribute

import (
	"fmt"
	"strings"

	"github.com/zjhiphop/ng-attr-hint/internal/lint"
	"github.com/zjhiphop/ng-attr-hint/internal/rule"
)

func init() {
	rule.Register(&Rule{Allow: defaultAllow()})
}

// defaultAllow lists the ng attributes that are meaningful with an empty
// value.
func defaultAllow() []string {
	return []string{"ng-cloak", "ng-transclude"}
}

// Rule flags framework binding attributes with empty values. Attribute
// names on the Allow list or on the invocation's ignore list are exempt.
type Rule struct {
	Allow []string
}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "NG008" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "empty-ng-attribute" }

// Category implements rule.Rule.
func (r *Rule) Category() string { return "usage" }

// Check implements rule.Rule. One finding per qualifying attribute, in
// first-seen order.
func (r *Rule) Check(t *lint.Tag, s *lint.Settings) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, name := range t.Keys {
		if !strings.HasPrefix(name, "ng-") || t.Attrs[name] != "" {
			continue
		}
		if r.allowed(name) || s.IgnoresAttribute(name) {
			continue
		}
		diags = append(diags, lint.Diagnostic{
			File:     t.File,
			Line:     t.Line,
			RuleID:   r.ID(),
			RuleName: r.Name(),
			Attrs:    []string{name},
			Severity: lint.Warning,
			Message:  fmt.Sprintf("attribute %s has an empty value", name),
		})
	}
	return diags
}

func (r *Rule) allowed(name string) bool {
	for _, a := range r.Allow {
		if a == name {
			return true
		}
	}
	return false
}

// DefaultSettings implements rule.Configurable.
func (r *Rule) DefaultSettings() map[string]any {
	return map[string]any{"allow": defaultAllow()}
}

// ApplySettings implements rule.Configurable. The "allow" setting
// replaces the default allow list.
func (r *Rule) ApplySettings(settings map[string]any) error {
	v, ok := settings["allow"]
	if !ok {
		return nil
	}
	switch list := v.(type) {
	case []string:
		r.Allow = list
	case []any:
		allow := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("allow entries must be strings, got %T", item)
			}
			allow = append(allow, s)
		}
		r.Allow = allow
	default:
		return fmt.Errorf("allow must be a list of attribute names, got %T", v)
	}
	return nil
}

package ngrepeattrackby

import (
	"fmt"
	"regexp"

	"github.com/zjhiphop/ng-attr-hint/internal/lint"
	"github.com/zjhiphop/ng-attr-hint/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

var (
	// pairSpacing collapses "( x , y )" to "(x,y)" so a tracking function
	// call with spaced arguments counts as a single token below.
	pairSpacing = regexp.MustCompile(`\(\s*([^,()]*?)\s*,\s*([^,()]*?)\s*\)`)
	trackBy     = regexp.MustCompile(`\btrack\s+by\b`)
	// trackByLast matches a track by clause whose expression is the final
	// token of the whole value.
	trackByLast = regexp.MustCompile(`\btrack\s+by\s+\S+\s*$`)
)

// Rule checks that a track by clause in ng-repeat is the last clause of
// the expression.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "NG005" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "ng-repeat-track-by" }

// Category implements rule.Rule.
func (r *Rule) Category() string { return "expression" }

// Check implements rule.Rule.
func (r *Rule) Check(t *lint.Tag, _ *lint.Settings) []lint.Diagnostic {
	if !t.Has("ng-repeat") {
		return nil
	}
	expr := pairSpacing.ReplaceAllString(t.Val("ng-repeat"), "($1,$2)")
	if !trackBy.MatchString(expr) || trackByLast.MatchString(expr) {
		return nil
	}
	return []lint.Diagnostic{{
		File:     t.File,
		Line:     t.Line,
		RuleID:   r.ID(),
		RuleName: r.Name(),
		Attrs:    []string{"ng-repeat"},
		Severity: lint.Error,
		Message:  fmt.Sprintf("track by must be the last clause of ng-repeat expression %q", t.Val("ng-repeat")),
	}}
}

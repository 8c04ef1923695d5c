package ngoptionstrackby

import (
	"regexp"

	"github.com/zjhiphop/ng-attr-hint/internal/lint"
	"github.com/zjhiphop/ng-attr-hint/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// selectAsTrackBy matches an ng-options value that combines a select-as
// label with a track by clause, anywhere in the expression.
var selectAsTrackBy = regexp.MustCompile(`\s+as\s+[\s\S]+?\s+track\s+by\s+`)

// Rule checks that ng-options does not combine select-as with track by.
// The two features are incompatible: track by cannot resolve the model
// back to a selected option when the model is a mapped label expression.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "NG007" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "ng-options-track-by" }

// Category implements rule.Rule.
func (r *Rule) Category() string { return "expression" }

// Check implements rule.Rule.
func (r *Rule) Check(t *lint.Tag, _ *lint.Settings) []lint.Diagnostic {
	if !t.Has("ng-options") || !selectAsTrackBy.MatchString(t.Val("ng-options")) {
		return nil
	}
	return []lint.Diagnostic{{
		File:     t.File,
		Line:     t.Line,
		RuleID:   r.ID(),
		RuleName: r.Name(),
		Attrs:    []string{"ng-options"},
		Severity: lint.Error,
		Message:  "ng-options should not combine select-as with track by",
	}}
}

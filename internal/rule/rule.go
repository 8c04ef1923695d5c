package rule

import "github.com/zjhiphop/ng-attr-hint/internal/lint"

// Rule is a single lint check run against every opening tag. Rules are
// stateless across tags: Check may read the snapshot and settings but
// must not retain them or keep state between invocations.
type Rule interface {
	ID() string
	Name() string
	Category() string
	Check(t *lint.Tag, s *lint.Settings) []lint.Diagnostic
}

// Configurable is implemented by rules that have user-tunable settings.
type Configurable interface {
	ApplySettings(settings map[string]any) error
	DefaultSettings() map[string]any
}

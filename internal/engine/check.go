package engine

import (
	"fmt"

	"github.com/zjhiphop/ng-attr-hint/internal/config"
	"github.com/zjhiphop/ng-attr-hint/internal/rule"
)

// ConfigureRule returns a rule instance carrying the settings from cfg.
// Registered instances are shared across files, so a settings-bearing
// config gets a fresh clone; without settings (or for rules that take
// none) the registered instance is returned as is.
func ConfigureRule(rl rule.Rule, cfg config.RuleCfg) (rule.Rule, error) {
	if cfg.Settings == nil {
		return rl, nil
	}
	if _, ok := rl.(rule.Configurable); !ok {
		return rl, nil
	}
	clone := rule.CloneRule(rl)
	if c, ok := clone.(rule.Configurable); ok {
		if err := c.ApplySettings(cfg.Settings); err != nil {
			return nil, fmt.Errorf("applying settings for %s: %w", rl.Name(), err)
		}
	}
	return clone, nil
}

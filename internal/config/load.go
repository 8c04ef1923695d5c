package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zjhiphop/ng-attr-hint/internal/rule"
)

const configFileName = ".ng-attr-hint.yml"

// Load parses the YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Discover looks for a .ng-attr-hint.yml file, starting at startDir and
// walking toward the filesystem root. The search does not cross a .git
// directory, so a config outside the current repository is never picked
// up. Returns "" when nothing was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		// A .git directory marks the repository root; do not search
		// further up.
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// Defaults returns a Config with all registered rules enabled with
// default settings.
func Defaults() *Config {
	all := rule.All()
	rules := make(map[string]RuleCfg, len(all))
	for _, r := range all {
		rules[r.Name()] = RuleCfg{Enabled: true}
	}
	return &Config{
		Rules: rules,
	}
}

// DumpDefaults returns a Config with all registered rules enabled and
// their default settings populated. Rules that implement Configurable
// have their DefaultSettings() included in RuleCfg.Settings. Categories
// are included with all set to true.
// This is consumed by `ng-attr-hint init` to generate a default config file.
func DumpDefaults() *Config {
	all := rule.All()
	rules := make(map[string]RuleCfg, len(all))
	for _, r := range all {
		rc := RuleCfg{Enabled: true}
		if c, ok := r.(rule.Configurable); ok {
			rc.Settings = c.DefaultSettings()
		}
		rules[r.Name()] = rc
	}

	categories := make(map[string]bool, len(ValidCategories))
	for _, cat := range ValidCategories {
		categories[cat] = true
	}

	return &Config{
		Rules:      rules,
		Categories: categories,
	}
}

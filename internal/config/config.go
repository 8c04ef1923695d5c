package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ValidCategories are the rule categories that can be toggled wholesale.
var ValidCategories = []string{"conflict", "usage", "expression"}

// Config is the top-level configuration.
type Config struct {
	Rules            map[string]RuleCfg `yaml:"rules"`
	Categories       map[string]bool    `yaml:"categories"`
	Overrides        []Override         `yaml:"overrides"`
	Ignore           []string           `yaml:"ignore"`
	IgnoreAttributes []string           `yaml:"ignore-attributes"`
	Encoding         string             `yaml:"encoding"`
	// Files holds doublestar discovery patterns used when the CLI is
	// given no file arguments.
	Files []string `yaml:"files"`
}

// Override applies rule settings to files matching glob patterns.
type Override struct {
	Files []string           `yaml:"files"`
	Rules map[string]RuleCfg `yaml:"rules"`
}

// RuleCfg is a YAML union: can be bool (enable/disable) or map[string]any (settings).
type RuleCfg struct {
	Enabled  bool
	Settings map[string]any
}

// UnmarshalYAML implements custom YAML unmarshalling for RuleCfg.
// It handles three forms:
//   - false -> Enabled=false, Settings=nil
//   - true  -> Enabled=true,  Settings=nil
//   - {key: val, ...} -> Enabled=true, Settings={key: val, ...}
func (r *RuleCfg) UnmarshalYAML(value *yaml.Node) error {
	// Try bool first
	if value.Kind == yaml.ScalarNode {
		var b bool
		if err := value.Decode(&b); err == nil {
			r.Enabled = b
			r.Settings = nil
			return nil
		}
	}

	// Try map
	if value.Kind == yaml.MappingNode {
		var m map[string]any
		if err := value.Decode(&m); err != nil {
			return fmt.Errorf("invalid rule config: %w", err)
		}
		r.Enabled = true
		r.Settings = m
		return nil
	}

	return fmt.Errorf("rule config must be a bool or a mapping, got %v", value.Kind)
}

// CategoryEnabled reports whether a category is enabled. Categories not
// mentioned in the config default to enabled.
func (c *Config) CategoryEnabled(name string) bool {
	if c.Categories == nil {
		return true
	}
	enabled, ok := c.Categories[name]
	if !ok {
		return true
	}
	return enabled
}

// Validate checks category names and rule references against the known
// sets. Unknown entries are configuration errors, reported before any
// file is read.
func (c *Config) Validate(knownRules map[string]bool) error {
	for name := range c.Categories {
		if !validCategory(name) {
			return fmt.Errorf("unknown category %q", name)
		}
	}
	for name := range c.Rules {
		if !knownRules[name] {
			return fmt.Errorf("unknown rule %q", name)
		}
	}
	for _, o := range c.Overrides {
		for name := range o.Rules {
			if !knownRules[name] {
				return fmt.Errorf("unknown rule %q in override", name)
			}
		}
	}
	return nil
}

func validCategory(name string) bool {
	for _, c := range ValidCategories {
		if c == name {
			return true
		}
	}
	return false
}

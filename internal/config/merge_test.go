package config

import "testing"

func defaultsFixture() *Config {
	return &Config{Rules: map[string]RuleCfg{
		"duplicate-attribute": {Enabled: true},
		"ng-init-misuse":      {Enabled: true},
	}}
}

func TestMerge_NilLoadedCopiesDefaults(t *testing.T) {
	defaults := defaultsFixture()
	merged := Merge(defaults, nil)

	if len(merged.Rules) != 2 {
		t.Fatalf("rules = %v", merged.Rules)
	}
	merged.Rules["duplicate-attribute"] = RuleCfg{Enabled: false}
	if !defaults.Rules["duplicate-attribute"].Enabled {
		t.Error("merge must not alias the defaults map")
	}
}

func TestMerge_LoadedOverridesRules(t *testing.T) {
	loaded := &Config{
		Rules:            map[string]RuleCfg{"ng-init-misuse": {Enabled: false}},
		Ignore:           []string{"vendor/**"},
		IgnoreAttributes: []string{"ng-foo"},
		Encoding:         "iso-8859-1",
		Files:            []string{"src/**/*.html"},
	}
	merged := Merge(defaultsFixture(), loaded)

	if !merged.Rules["duplicate-attribute"].Enabled {
		t.Error("unmentioned rule should keep its default")
	}
	if merged.Rules["ng-init-misuse"].Enabled {
		t.Error("loaded rule setting should win")
	}
	if merged.Encoding != "iso-8859-1" || len(merged.Ignore) != 1 || len(merged.Files) != 1 {
		t.Errorf("loaded scalars not carried: %+v", merged)
	}
}

func TestEffective_OverridesApplyInOrder(t *testing.T) {
	cfg := &Config{
		Rules: map[string]RuleCfg{
			"duplicate-attribute": {Enabled: true},
			"ng-init-misuse":      {Enabled: true},
		},
		Overrides: []Override{
			{
				Files: []string{"*.part.html"},
				Rules: map[string]RuleCfg{"ng-init-misuse": {Enabled: false}},
			},
			{
				Files: []string{"widget.part.html"},
				Rules: map[string]RuleCfg{"ng-init-misuse": {Enabled: true}},
			},
		},
	}

	// No override matches.
	eff := Effective(cfg, "page.html")
	if !eff["ng-init-misuse"].Enabled {
		t.Error("page.html: rule should stay enabled")
	}

	// First override matches.
	eff = Effective(cfg, "header.part.html")
	if eff["ng-init-misuse"].Enabled {
		t.Error("header.part.html: first override should disable the rule")
	}

	// Both match; the later override wins.
	eff = Effective(cfg, "widget.part.html")
	if !eff["ng-init-misuse"].Enabled {
		t.Error("widget.part.html: later override should win")
	}

	if !eff["duplicate-attribute"].Enabled {
		t.Error("rules untouched by overrides should keep their base config")
	}
}

func TestEffective_InvalidPatternSkipped(t *testing.T) {
	cfg := &Config{
		Rules: map[string]RuleCfg{"ng-init-misuse": {Enabled: true}},
		Overrides: []Override{{
			Files: []string{"[unclosed"},
			Rules: map[string]RuleCfg{"ng-init-misuse": {Enabled: false}},
		}},
	}
	eff := Effective(cfg, "page.html")
	if !eff["ng-init-misuse"].Enabled {
		t.Error("invalid override pattern should be skipped, not matched")
	}
}

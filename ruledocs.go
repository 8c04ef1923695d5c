package ngattrhint

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed docs/rules
var docsFS embed.FS

// RuleDoc describes one lint rule, taken from the front matter of its
// embedded documentation file.
type RuleDoc struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ListRules returns all documented rules sorted by ID.
func ListRules() ([]RuleDoc, error) {
	sub, err := fs.Sub(docsFS, "docs")
	if err != nil {
		return nil, err
	}
	return listRulesFromFS(sub)
}

// LookupRule returns the documentation body for the rule with the given
// ID or name. Lookup is case-insensitive.
func LookupRule(idOrName string) (string, error) {
	sub, err := fs.Sub(docsFS, "docs")
	if err != nil {
		return "", err
	}
	return lookupRuleFromFS(sub, idOrName)
}

// listRulesFromFS reads rule docs from rules/*/README.md under fsys.
// Files without valid front matter are skipped.
func listRulesFromFS(fsys fs.FS) ([]RuleDoc, error) {
	paths, err := fs.Glob(fsys, "rules/*/README.md")
	if err != nil {
		return nil, err
	}

	var rules []RuleDoc
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			continue
		}
		doc, _, ok := parseRuleDoc(data)
		if !ok {
			continue
		}
		rules = append(rules, doc)
	}

	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })
	return rules, nil
}

// lookupRuleFromFS finds one rule doc by ID or name and returns its body.
func lookupRuleFromFS(fsys fs.FS, idOrName string) (string, error) {
	paths, err := fs.Glob(fsys, "rules/*/README.md")
	if err != nil {
		return "", err
	}

	want := strings.ToLower(idOrName)
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			continue
		}
		doc, body, ok := parseRuleDoc(data)
		if !ok {
			continue
		}
		if strings.ToLower(doc.ID) == want || strings.ToLower(doc.Name) == want {
			return body, nil
		}
	}
	return "", fmt.Errorf("unknown rule %q", idOrName)
}

// parseRuleDoc splits a rule README into its YAML front matter and body.
func parseRuleDoc(data []byte) (RuleDoc, string, bool) {
	delim := []byte("---\n")
	if !bytes.HasPrefix(data, delim) {
		return RuleDoc{}, "", false
	}
	rest := data[len(delim):]
	end := bytes.Index(rest, delim)
	if end < 0 {
		return RuleDoc{}, "", false
	}

	var doc RuleDoc
	if err := yaml.Unmarshal(rest[:end], &doc); err != nil {
		return RuleDoc{}, "", false
	}
	if doc.ID == "" || doc.Name == "" {
		return RuleDoc{}, "", false
	}

	body := string(rest[end+len(delim):])
	return doc, body, true
}

// Package ngattrhint lints AngularJS template-binding attributes in HTML
// files: mutually exclusive attributes used together, duplicated
// attributes, malformed binding expressions, discouraged idioms, and
// empty binding attributes.
package ngattrhint

import (
	"errors"

	"github.com/zjhiphop/ng-attr-hint/internal/config"
	"github.com/zjhiphop/ng-attr-hint/internal/engine"
	"github.com/zjhiphop/ng-attr-hint/internal/lint"
	"github.com/zjhiphop/ng-attr-hint/internal/rule"

	// Import all rule packages so their init() functions register rules.
	_ "github.com/zjhiphop/ng-attr-hint/internal/rules/duplicateattribute"
	_ "github.com/zjhiphop/ng-attr-hint/internal/rules/emptyattribute"
	_ "github.com/zjhiphop/ng-attr-hint/internal/rules/mutuallyexclusive"
	_ "github.com/zjhiphop/ng-attr-hint/internal/rules/nginitmisuse"
	_ "github.com/zjhiphop/ng-attr-hint/internal/rules/ngoptionsgrammar"
	_ "github.com/zjhiphop/ng-attr-hint/internal/rules/ngoptionstrackby"
	_ "github.com/zjhiphop/ng-attr-hint/internal/rules/ngrepeattrackby"
	_ "github.com/zjhiphop/ng-attr-hint/internal/rules/ngtrimpassword"
)

// Options configures one lint invocation.
type Options struct {
	// Files are the files to lint, in output order. Required: a nil
	// slice is a configuration error, while an empty non-nil slice is a
	// valid request that lints nothing.
	Files []string
	// IgnoreAttributes exempts attribute names from the empty-attribute
	// rule.
	IgnoreAttributes []string
	// FileEncoding is the IANA name of the input text encoding.
	// Empty means UTF-8.
	FileEncoding string
}

// Finding is one lint result.
type Finding struct {
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Rule     string   `json:"rule"`
	Severity string   `json:"severity"`
	Attrs    []string `json:"attrs"`
	Message  string   `json:"message"`
}

// Run lints opts.Files with all rules enabled and returns the findings
// in deterministic order: submission order across files, document order
// within a file, rule order within a tag. Files are linted concurrently;
// the first file that fails to read or tokenize fails the whole call and
// no findings are returned. Option validation happens before any file is
// opened.
func Run(opts Options) ([]Finding, error) {
	if opts.Files == nil {
		return nil, errors.New("no files given")
	}
	if err := engine.ValidEncoding(opts.FileEncoding); err != nil {
		return nil, err
	}

	settings := &lint.Settings{
		Files:            opts.Files,
		IgnoreAttributes: opts.IgnoreAttributes,
		FileEncoding:     opts.FileEncoding,
	}
	runner := &engine.Runner{
		Config:   config.Defaults(),
		Rules:    rule.All(),
		Settings: settings,
	}

	diags, err := runner.Run(opts.Files)
	if err != nil {
		return nil, err
	}

	findings := make([]Finding, 0, len(diags))
	for _, d := range diags {
		findings = append(findings, Finding{
			File:     d.File,
			Line:     d.Line,
			Rule:     d.RuleID,
			Severity: string(d.Severity),
			Attrs:    d.Attrs,
			Message:  d.Message,
		})
	}
	return findings, nil
}

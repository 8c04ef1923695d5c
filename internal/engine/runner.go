package engine

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"

	"github.com/zjhiphop/ng-attr-hint/internal/annotate"
	"github.com/zjhiphop/ng-attr-hint/internal/config"
	"github.com/zjhiphop/ng-attr-hint/internal/lint"
	"github.com/zjhiphop/ng-attr-hint/internal/log"
	"github.com/zjhiphop/ng-attr-hint/internal/parser"
	"github.com/zjhiphop/ng-attr-hint/internal/rule"
)

// chunkSize is the read buffer handed to the annotator. Boundaries are
// arbitrary; the annotator carries its line counter and partial line
// across them.
const chunkSize = 32 * 1024

// Runner drives the linting pipeline. Each file gets its own pipeline:
// open a stream, decode, annotate chunk by chunk, buffer the annotated
// document, then parse it tag by tag running every enabled rule. File
// pipelines run concurrently; nothing mutable is shared between them.
type Runner struct {
	Config   *config.Config
	Rules    []rule.Rule
	Settings *lint.Settings
	Log      *log.Logger
}

// Run lints the files at the given paths concurrently and returns all
// diagnostics flattened in path-submission order, regardless of which
// pipeline finishes first. The first pipeline failure fails the whole
// run: remaining pipelines finish but their results are discarded, and
// no partial diagnostics are returned.
func (r *Runner) Run(paths []string) ([]lint.Diagnostic, error) {
	results := make([][]lint.Diagnostic, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		if r.isIgnored(path) {
			r.logf("skipping ignored file %s", path)
			continue
		}
		i, path := i, path
		g.Go(func() error {
			diags, err := r.LintFile(path)
			if err != nil {
				return err
			}
			results[i] = diags
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []lint.Diagnostic
	for _, diags := range results {
		all = append(all, diags...)
	}
	return all, nil
}

// LintFile runs one file pipeline and returns that file's diagnostics in
// document order.
func (r *Runner) LintFile(path string) ([]lint.Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return r.LintReader(path, f)
}

// LintReader lints the stream src attributed to path. It is the common
// pipeline behind LintFile and stdin linting: decode, annotate, buffer,
// parse, evaluate rules per tag.
func (r *Runner) LintReader(path string, src io.Reader) ([]lint.Diagnostic, error) {
	decoded, err := decodeReader(src, r.Settings.FileEncoding)
	if err != nil {
		return nil, err
	}

	ann := annotate.New(path)
	var doc bytes.Buffer
	chunk := make([]byte, chunkSize)
	for {
		n, err := decoded.Read(chunk)
		if n > 0 {
			doc.Write(ann.Annotate(chunk[:n]))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
	}
	doc.Write(ann.Flush())

	rules, err := r.fileRules(path)
	if err != nil {
		return nil, err
	}
	r.logf("linting %s with %d rules", path, len(rules))

	var diags []lint.Diagnostic
	err = parser.Parse(path, doc.String(), func(t *lint.Tag) {
		for _, rl := range rules {
			diags = append(diags, rl.Check(t, r.Settings)...)
		}
	})
	if err != nil {
		return nil, err
	}
	return diags, nil
}

// fileRules returns the configured rule instances enabled for path, in
// evaluation order. Rules whose category is disabled are dropped; rules
// with settings in the effective config are cloned and configured so the
// registered instances stay untouched.
func (r *Runner) fileRules(path string) ([]rule.Rule, error) {
	effective := config.Effective(r.Config, path)

	var rules []rule.Rule
	for _, rl := range r.Rules {
		cfg, ok := effective[rl.Name()]
		if !ok || !cfg.Enabled {
			continue
		}
		if !r.Config.CategoryEnabled(rl.Category()) {
			continue
		}
		configured, err := ConfigureRule(rl, cfg)
		if err != nil {
			return nil, err
		}
		rules = append(rules, configured)
	}
	return rules, nil
}

// isIgnored returns true if the file path matches any of the configured
// ignore patterns.
func (r *Runner) isIgnored(path string) bool {
	cleanPath := filepath.Clean(path)

	for _, pattern := range r.Config.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(path) || g.Match(cleanPath) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}

func (r *Runner) logf(format string, args ...any) {
	r.Log.Printf(format, args...)
}

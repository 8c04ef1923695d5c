// Package discovery finds HTML files by expanding glob patterns from config.
package discovery

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/zjhiphop/ng-attr-hint/internal/lint"
)

// Options controls how file discovery behaves.
type Options struct {
	// Patterns is the list of doublestar glob patterns to match files
	// against, relative to BaseDir. An empty list discovers nothing.
	Patterns []string

	// BaseDir is the directory to walk from. Defaults to "." if empty.
	BaseDir string

	// UseGitignore enables filtering by .gitignore rules.
	UseGitignore bool
}

// Discover walks BaseDir and returns files matching any of the configured
// glob patterns. Results are deduplicated and sorted.
func Discover(opts Options) ([]string, error) {
	patterns := validPatterns(opts.Patterns)
	if len(patterns) == 0 {
		return nil, nil
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}

	var git *lint.GitignoreMatcher
	if opts.UseGitignore {
		git = lint.NewGitignoreMatcher(baseDir)
	}

	seen := make(map[string]bool)
	var result []string

	err = filepath.Walk(absBase, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(absBase, path)
		if err != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if git != nil && git.IsIgnored(path, info.IsDir()) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}

		if !matchesAny(patterns, rel) {
			return nil
		}
		if !seen[path] {
			seen[path] = true
			result = append(result, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(result)
	return result, nil
}

// validPatterns returns patterns that are syntactically valid.
func validPatterns(patterns []string) []string {
	valid := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if doublestar.ValidatePattern(p) {
			valid = append(valid, p)
		}
	}
	return valid
}

// matchesAny returns true if rel matches any of the given patterns.
func matchesAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		matched, err := doublestar.Match(p, rel)
		if err == nil && matched {
			return true
		}
	}
	return false
}

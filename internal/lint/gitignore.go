package lint

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// GitignoreMatcher checks whether a path is ignored according to
// .gitignore rules. It collects .gitignore files from the walked tree and
// its ancestors; later rules override earlier ones, and negation patterns
// re-include previously ignored paths.
type GitignoreMatcher struct {
	rules []ignoreRule
}

// ignoreRule is a single pattern from a .gitignore file.
type ignoreRule struct {
	// base is the directory containing the defining .gitignore.
	base string
	// pattern is the cleaned gitignore pattern.
	pattern string
	// negate re-includes a previously ignored path.
	negate bool
	// dirOnly restricts the pattern to directories (trailing /).
	dirOnly bool
	// anchored patterns (containing a non-trailing /) match against the
	// full path relative to base rather than any path component.
	anchored bool
}

// NewGitignoreMatcher builds a matcher for a walk rooted at root. It loads
// .gitignore files from root's ancestors (outermost first) and from every
// directory inside root.
func NewGitignoreMatcher(root string) *GitignoreMatcher {
	m := &GitignoreMatcher{}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return m
	}

	// Ancestor .gitignore files apply first, outermost to innermost.
	var ancestors []string
	for dir := filepath.Dir(absRoot); ; dir = filepath.Dir(dir) {
		if gi := filepath.Join(dir, ".gitignore"); fileExists(gi) {
			ancestors = append([]string{gi}, ancestors...)
		}
		if filepath.Dir(dir) == dir {
			break
		}
	}
	for _, gi := range ancestors {
		m.rules = append(m.rules, loadIgnoreFile(gi)...)
	}

	_ = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() && info.Name() == ".gitignore" {
			m.rules = append(m.rules, loadIgnoreFile(path)...)
		}
		return nil
	})

	return m
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// loadIgnoreFile parses one .gitignore file. Unreadable files contribute
// no rules.
func loadIgnoreFile(path string) []ignoreRule {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer func() { _ = f.Close() }()

	base := filepath.Dir(path)
	var rules []ignoreRule

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := trimIgnoreLine(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		r := ignoreRule{base: base}
		if strings.HasPrefix(line, "!") {
			r.negate = true
			line = line[1:]
		}
		if strings.HasSuffix(line, "/") {
			r.dirOnly = true
			line = strings.TrimSuffix(line, "/")
		}
		if strings.HasPrefix(line, "/") {
			line = line[1:]
			r.anchored = true
		} else {
			r.anchored = strings.Contains(line, "/")
		}

		r.pattern = line
		rules = append(rules, r)
	}
	return rules
}

// trimIgnoreLine strips trailing spaces and tabs unless the last space is
// escaped with a backslash.
func trimIgnoreLine(s string) string {
	i := len(s)
	for i > 0 && (s[i-1] == ' ' || s[i-1] == '\t') {
		i--
	}
	if i < len(s) && i > 0 && s[i-1] == '\\' {
		return s[:i-1] + " "
	}
	return s[:i]
}

// IsIgnored returns true if the given absolute path should be ignored.
// isDir indicates whether the path is a directory.
func (m *GitignoreMatcher) IsIgnored(absPath string, isDir bool) bool {
	ignored := false
	for _, r := range m.rules {
		if r.dirOnly && !isDir {
			continue
		}
		if r.matches(absPath) {
			ignored = !r.negate
		}
	}
	return ignored
}

// matches checks whether the rule applies to the given absolute path.
func (r ignoreRule) matches(absPath string) bool {
	rel, err := filepath.Rel(r.base, absPath)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	// Paths outside the rule's base never match.
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return false
	}

	if r.anchored {
		ok, _ := doublestar.Match(r.pattern, rel)
		return ok
	}

	// Unanchored patterns match the basename of any path component, per
	// git semantics.
	if ok, _ := doublestar.Match(r.pattern, filepath.Base(absPath)); ok {
		return true
	}
	ok, _ := doublestar.Match(r.pattern, rel)
	return ok
}

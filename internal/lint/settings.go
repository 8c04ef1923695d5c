package lint

// Settings is the per-invocation configuration shared read-only by every
// rule. It is constructed once before any file is opened and never
// mutated afterwards, so concurrent pipelines may read it freely.
type Settings struct {
	// Files is the ordered list of files to lint. Output ordering follows
	// this order regardless of which file finishes first.
	Files []string
	// IgnoreAttributes lists attribute names exempted from the
	// empty-attribute rule.
	IgnoreAttributes []string
	// FileEncoding is the IANA name of the text encoding used to read
	// files. Empty means UTF-8.
	FileEncoding string
}

// IgnoresAttribute reports whether name is on the ignore list. A nil
// receiver ignores nothing.
func (s *Settings) IgnoresAttribute(name string) bool {
	if s == nil {
		return false
	}
	for _, a := range s.IgnoreAttributes {
		if a == name {
			return true
		}
	}
	return false
}

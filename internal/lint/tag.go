package lint

// Tag is the attribute snapshot of one opening tag. It is built fresh for
// every tag the parser encounters, handed to each rule in turn, and
// discarded before the next tag opens.
type Tag struct {
	// Name is the lowercased tag identifier.
	Name string
	// File and Line locate the tag in the original source.
	File string
	Line int
	// Attrs maps attribute names to values. When an attribute name is
	// repeated on the same tag, the first occurrence wins here.
	Attrs map[string]string
	// Duplicates holds the value of the latest repeat for every attribute
	// name that appears more than once on the tag.
	Duplicates map[string]string
	// Keys is the first-seen order of attribute names.
	Keys []string
}

// NewTag returns an empty snapshot for a tag at the given location.
func NewTag(name, file string, line int) *Tag {
	return &Tag{
		Name:       name,
		File:       file,
		Line:       line,
		Attrs:      make(map[string]string),
		Duplicates: make(map[string]string),
	}
}

// SetAttr records one attribute in source order. Repeats of a name already
// seen land in Duplicates instead of overwriting the canonical value.
func (t *Tag) SetAttr(name, value string) {
	if _, ok := t.Attrs[name]; ok {
		t.Duplicates[name] = value
		return
	}
	t.Attrs[name] = value
	t.Keys = append(t.Keys, name)
}

// Has reports whether the tag carries the named attribute.
func (t *Tag) Has(name string) bool {
	_, ok := t.Attrs[name]
	return ok
}

// Val returns the canonical (first-occurrence) value of the named
// attribute, or "" when absent.
func (t *Tag) Val(name string) string {
	return t.Attrs[name]
}

package rule

import "reflect"

// CloneRule returns a copy of r that can be configured independently of
// the registered instance. A Configurable rule is cloned as a fresh
// zero-value instance with its default settings applied; other pointer
// rules get a reflect-based shallow copy.
func CloneRule(r Rule) Rule {
	rv := reflect.ValueOf(r)
	if rv.Kind() != reflect.Ptr {
		// Value type, already a copy.
		return r
	}

	clone := reflect.New(rv.Elem().Type())
	if _, ok := r.(Configurable); !ok {
		clone.Elem().Set(rv.Elem())
	}

	out := clone.Interface().(Rule)
	if c, ok := out.(Configurable); ok {
		_ = c.ApplySettings(c.DefaultSettings())
	}
	return out
}

package rule

import "sort"

var registry []Rule

// Register adds a rule to the global registry. Rules register themselves
// from their package init functions.
func Register(r Rule) {
	registry = append(registry, r)
}

// All returns a copy of all registered rules ordered by ID. Evaluation
// order within one tag is this order; it is fixed by the IDs rather than
// by package initialization order, which follows import order and is not
// meaningful.
func All() []Rule {
	result := make([]Rule, len(registry))
	copy(result, registry)
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })
	return result
}

// ByID returns the registered rule with the given ID, or nil.
func ByID(id string) Rule {
	for _, r := range registry {
		if r.ID() == id {
			return r
		}
	}
	return nil
}

// Reset clears the registry. Used for testing.
func Reset() {
	registry = nil
}

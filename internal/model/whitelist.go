package model

import "sort"

// MethodSet is a set of method names.
type MethodSet map[string]struct{}

// NewMethodSet builds a set from names.
func NewMethodSet(names ...string) MethodSet {
	set := make(MethodSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}

	return set
}

// Has reports whether name is in the set.
func (s MethodSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add merges names into the set.
func (s MethodSet) Add(names ...string) {
	for _, name := range names {
		s[name] = struct{}{}
	}
}

// Union merges another set into s.
func (s MethodSet) Union(other MethodSet) {
	for name := range other {
		s[name] = struct{}{}
	}
}

// Sorted returns the names in lexical order.
func (s MethodSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Whitelist maps a class FQN (package.Class) to the wanted method names.
type Whitelist map[string]MethodSet

// Classes returns the class FQNs in lexical order.
func (w Whitelist) Classes() []string {
	classes := make([]string, 0, len(w))
	for class := range w {
		classes = append(classes, class)
	}

	sort.Strings(classes)

	return classes
}

// MethodCount returns the number of wanted methods across all classes.
func (w Whitelist) MethodCount() int {
	total := 0
	for _, methods := range w {
		total += len(methods)
	}

	return total
}

package abt

import (
	"slices"
	"strings"
)

// Names is an immutable set of variable names. The zero value is the empty
// set. Every method that changes membership returns a new set and leaves the
// receiver untouched.
type Names struct {
	set map[string]struct{}
}

// NewNames creates a set containing names.
func NewNames(names ...string) Names {
	ns := Names{set: make(map[string]struct{}, len(names))}
	for _, n := range names {
		ns.set[n] = struct{}{}
	}
	return ns
}

// Has reports whether name is in the set.
func (ns Names) Has(name string) bool {
	_, ok := ns.set[name]
	return ok
}

// Len returns the number of names in the set.
func (ns Names) Len() int {
	return len(ns.set)
}

// With returns a copy of the set extended with names.
func (ns Names) With(names ...string) Names {
	if len(names) == 0 {
		return ns
	}
	result := ns.clone()
	for _, n := range names {
		result.set[n] = struct{}{}
	}
	return result
}

// Without returns a copy of the set with names removed.
func (ns Names) Without(names ...string) Names {
	result := ns.clone()
	for _, n := range names {
		delete(result.set, n)
	}
	return result
}

// Union returns the names in either set.
func (ns Names) Union(other Names) Names {
	if other.Len() == 0 {
		return ns
	}
	if ns.Len() == 0 {
		return other
	}
	result := ns.clone()
	for n := range other.set {
		result.set[n] = struct{}{}
	}
	return result
}

// Equal reports whether both sets hold the same names.
func (ns Names) Equal(other Names) bool {
	if ns.Len() != other.Len() {
		return false
	}
	for n := range ns.set {
		if !other.Has(n) {
			return false
		}
	}
	return true
}

// Sorted returns the names in lexical order.
func (ns Names) Sorted() []string {
	names := make([]string, 0, len(ns.set))
	for n := range ns.set {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func (ns Names) String() string {
	return "{" + strings.Join(ns.Sorted(), ", ") + "}"
}

// clone copies the set so the copy can be extended in place before it is
// handed out.
func (ns Names) clone() Names {
	result := Names{set: make(map[string]struct{}, len(ns.set)+1)}
	for n := range ns.set {
		result.set[n] = struct{}{}
	}
	return result
}

// add extends a set that has not been shared yet.
func (ns Names) add(name string) {
	ns.set[name] = struct{}{}
}

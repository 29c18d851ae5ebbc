package abt

import (
	"fmt"
)

// UnboundError reports a variable that is neither bound nor among the names
// the caller declared to be in use.
type UnboundError struct {
	Op   string
	Name string
}

func (e *UnboundError) Error() string {
	return fmt.Sprintf("%s: '%s' not among the free variables", e.Op, e.Name)
}

// ArityError reports a substitution whose replacement count differs from the
// number of names bound at the substitution site.
type ArityError struct {
	Bound        int
	Replacements int
}

func (e *ArityError) Error() string {
	if e.Replacements > e.Bound {
		return fmt.Sprintf("subst: not enough bindings (%d bound, %d replacements)", e.Bound, e.Replacements)
	}
	return fmt.Sprintf("subst: too many bindings (%d bound, %d replacements)", e.Bound, e.Replacements)
}

// MalformedArgError reports an argument to Oper that cannot form a binder.
type MalformedArgError struct {
	Tag      string
	Position int
	Name     string
	Reason   string
}

func (e *MalformedArgError) Error() string {
	if e.Reason == missingBody {
		return fmt.Sprintf("oper %s: argument %d: %s", e.Tag, e.Position, e.Reason)
	}
	return fmt.Sprintf("oper %s: argument %d: %q in a bound-variable position is not an atomic name: %s",
		e.Tag, e.Position, e.Name, e.Reason)
}

const missingBody = "missing body"

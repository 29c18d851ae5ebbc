// Package abt implements abstract binding trees: terms built from variables
// and tagged operators whose arguments may bind names in their bodies.
//
// Trees never carry their own scope. Every operation that needs to know which
// names are in use takes them explicitly as a Names set, so the same value
// behaves identically wherever it is used.
package abt

import (
	"fmt"
	"strings"
)

// ABT is either a Var or a *Node.
type ABT interface {
	Arg
	fmt.Stringer
	isABT()
}

// Arg is anything that can be passed to Oper: a bare ABT, which binds no
// names, or a Binder.
type Arg interface {
	binder() Binder
}

// Var is a variable occurrence.
type Var string

func (Var) isABT() {}

func (v Var) binder() Binder {
	return Binder{body: v}
}

func (v Var) String() string {
	return string(v)
}

// Vars converts names to variable occurrences, e.g. for use as replacements
// in Subst.
func Vars(names ...string) []ABT {
	vs := make([]ABT, len(names))
	for i, n := range names {
		vs[i] = Var(n)
	}
	return vs
}

// Node is an operator applied to a sequence of binders. Nodes are created
// with Oper and never modified afterwards.
type Node struct {
	tag     string
	binders []Binder
}

func (*Node) isABT() {}

func (n *Node) binder() Binder {
	return Binder{body: n}
}

// Tag returns the operator name.
func (n *Node) Tag() string {
	return n.tag
}

// Len returns the number of binders.
func (n *Node) Len() int {
	return len(n.binders)
}

// Binders returns the node's binders as written, without any freshening.
// Consumers that intend to look under the binders should use Engine.Args.
func (n *Node) Binders() []Binder {
	return append([]Binder(nil), n.binders...)
}

// Arity returns the number of bound names of each binder.
func (n *Node) Arity() []int {
	arity := make([]int, len(n.binders))
	for i, b := range n.binders {
		arity[i] = len(b.bound)
	}
	return arity
}

func (n *Node) sameArity(other *Node) bool {
	if len(n.binders) != len(other.binders) {
		return false
	}
	for i, b := range n.binders {
		if len(b.bound) != len(other.binders[i].bound) {
			return false
		}
	}
	return true
}

// String prints the node with the default engine, treating its free
// variables as the names in use.
func (n *Node) String() string {
	s, err := Default.String(FreeVars(n), n)
	if err != nil {
		return fmt.Sprintf("%s(<%s>)", n.tag, err)
	}
	return s
}

// Binder scopes an ordered list of names over a body.
type Binder struct {
	bound []string
	body  ABT
}

// Bind scopes names over body. The names are validated when the binder is
// passed to Oper.
func Bind(names []string, body ABT) Binder {
	return Binder{
		bound: append([]string(nil), names...),
		body:  body,
	}
}

func (b Binder) binder() Binder {
	return b
}

// Bound returns the bound names.
func (b Binder) Bound() []string {
	return append([]string(nil), b.bound...)
}

// Body returns the term the names are scoped over.
func (b Binder) Body() ABT {
	return b.body
}

// Len returns the number of bound names.
func (b Binder) Len() int {
	return len(b.bound)
}

func (b Binder) String() string {
	var sb strings.Builder
	for _, x := range b.bound {
		sb.WriteString(x)
		sb.WriteByte('.')
	}
	if b.body != nil {
		sb.WriteString(b.body.String())
	}
	return sb.String()
}

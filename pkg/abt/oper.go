package abt

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Oper constructs a node. Each argument is either a bare ABT, binding no
// names, or a Binder created with Bind:
//
//	Oper("ap", e1, e2)
//	Oper("lam", Bind([]string{"x"}, body))
//	Oper("letrec", Bind([]string{"f", "x"}, e1), Bind([]string{"f"}, e2))
//
// No operator signature is checked; a node with an unexpected shape is only
// noticed by whoever consumes it.
func Oper(tag string, args ...Arg) (*Node, error) {
	binders := make([]Binder, len(args))
	for i, arg := range args {
		if arg == nil {
			return nil, errors.WithStack(&MalformedArgError{Tag: tag, Position: i, Reason: missingBody})
		}
		b := arg.binder()
		if b.body == nil || isNilNode(b.body) {
			return nil, errors.WithStack(&MalformedArgError{Tag: tag, Position: i, Reason: missingBody})
		}
		for _, x := range b.bound {
			if reason := checkAtomic(x); reason != "" {
				return nil, errors.WithStack(&MalformedArgError{Tag: tag, Position: i, Name: x, Reason: reason})
			}
		}
		binders[i] = Binder{bound: append([]string(nil), b.bound...), body: b.body}
	}
	return &Node{tag: tag, binders: binders}, nil
}

// MustOper is like Oper but panics if an argument is malformed.
func MustOper(tag string, args ...Arg) *Node {
	n, err := Oper(tag, args...)
	if err != nil {
		panic(err)
	}
	return n
}

func isNilNode(t ABT) bool {
	n, ok := t.(*Node)
	return ok && n == nil
}

// checkAtomic returns why name cannot be used as a bound name, or "" if it
// can. Names must survive a round trip through String.
func checkAtomic(name string) string {
	if name == "" {
		return "empty name"
	}
	if strings.ContainsAny(name, ".,()") {
		return "contains a delimiter"
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return "contains whitespace"
	}
	return ""
}

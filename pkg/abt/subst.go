package abt

import (
	"maps"
)

// Subs maps bound names to the terms replacing them.
type Subs map[string]ABT

// Subst simultaneously substitutes replacements for the names bound by b and
// returns the resulting body. Bound names inside the body are renamed as
// needed so that no free variable of a replacement is captured.
//
// used must contain every free variable of every replacement and of b's body,
// except the names bound by b itself.
func (e *Engine) Subst(used Names, replacements []ABT, b Binder) (ABT, error) {
	if len(replacements) != len(b.bound) {
		return nil, &ArityError{Bound: len(b.bound), Replacements: len(replacements)}
	}
	scope := used.clone()
	subs := make(Subs, len(b.bound))
	for i, x := range b.bound {
		scope.add(e.findFresh(scope, x))
		subs[x] = replacements[i]
	}
	return e.substTerm(scope, subs, b.body)
}

func (e *Engine) substTerm(used Names, subs Subs, t ABT) (ABT, error) {
	switch t := t.(type) {
	case Var:
		if r, ok := subs[string(t)]; ok {
			return r, nil
		}
		if !used.Has(string(t)) {
			return nil, &UnboundError{Op: "subst", Name: string(t)}
		}
		return t, nil
	case *Node:
		binders := make([]Binder, len(t.binders))
		for i, b := range t.binders {
			sb, err := e.substBinder(used, subs, b)
			if err != nil {
				return nil, err
			}
			binders[i] = sb
		}
		return &Node{tag: t.tag, binders: binders}, nil
	default:
		panic("unreachable")
	}
}

// substBinder renames the binder's names away from used and from each other,
// shadowing any outer substitution for the same names.
func (e *Engine) substBinder(used Names, subs Subs, b Binder) (Binder, error) {
	if len(b.bound) == 0 {
		body, err := e.substTerm(used, subs, b.body)
		if err != nil {
			return Binder{}, err
		}
		return Binder{body: body}, nil
	}
	scope, fresh, _ := e.freshenAll(used, b.bound)
	inner := maps.Clone(subs)
	for i, x := range b.bound {
		inner[x] = Var(fresh[i])
	}
	body, err := e.substTerm(scope, inner, b.body)
	if err != nil {
		return Binder{}, err
	}
	return Binder{bound: fresh, body: body}, nil
}

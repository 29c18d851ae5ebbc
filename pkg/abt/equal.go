package abt

import (
	"maps"
)

// canonicalRoot is the stale name canonical names are freshened from when
// comparing binders.
const canonicalRoot = "x"

// Equal reports whether t1 and t2 are alpha-equivalent, i.e. equal up to a
// consistent renaming of bound names. Every free variable of both terms must
// be in used; a variable that is not is an error. Terms that merely differ in
// shape (tag, arity, variable versus node) are unequal, not erroneous.
func (e *Engine) Equal(used Names, t1, t2 ABT) (bool, error) {
	return e.equal(used, map[string]string{}, t1, map[string]string{}, t2)
}

// equal compares t1 under rename map left with t2 under rename map right.
// Both maps send bound names to shared canonical names, which are added to
// used as binders are entered.
func (e *Engine) equal(used Names, left map[string]string, t1 ABT, right map[string]string, t2 ABT) (bool, error) {
	switch a := t1.(type) {
	case Var:
		b, ok := t2.(Var)
		if !ok {
			return false, nil
		}
		x1, err := resolve(used, left, a)
		if err != nil {
			return false, err
		}
		x2, err := resolve(used, right, b)
		if err != nil {
			return false, err
		}
		return x1 == x2, nil
	case *Node:
		b, ok := t2.(*Node)
		if !ok {
			return false, nil
		}
		if a.tag != b.tag || !a.sameArity(b) {
			return false, nil
		}
		for i, b1 := range a.binders {
			b2 := b.binders[i]
			scope, l, r := used, left, right
			if len(b1.bound) > 0 {
				scope = used.clone()
				l, r = maps.Clone(left), maps.Clone(right)
				for j, x1 := range b1.bound {
					canon := e.findFresh(scope, canonicalRoot)
					scope.add(canon)
					l[x1] = canon
					r[b2.bound[j]] = canon
				}
			}
			eq, err := e.equal(scope, l, b1.body, r, b2.body)
			if err != nil || !eq {
				return false, err
			}
		}
		return true, nil
	default:
		panic("unreachable")
	}
}

func resolve(used Names, renames map[string]string, v Var) (string, error) {
	x := string(v)
	if canon, ok := renames[x]; ok {
		x = canon
	}
	if !used.Has(x) {
		return "", &UnboundError{Op: "equal", Name: x}
	}
	return x, nil
}

package abt

import (
	"github.com/pkg/errors"
)

// Args exposes the binders of n with their bound names freshened away from
// used, so that a consumer matching on a known signature may extend its
// context with the returned names directly:
//
//	switch n.Tag() {
//	case "lam":
//		args, err := engine.Args(used, n)
//		x, body := args[0].Bound()[0], args[0].Body()
//		... used.With(x) ...
//	}
//
// A binder none of whose names are in use is returned unchanged.
func (e *Engine) Args(used Names, n *Node) ([]Binder, error) {
	args := make([]Binder, len(n.binders))
	for i, b := range n.binders {
		fb, err := e.freshenBinder(used, b)
		if err != nil {
			return nil, errors.Wrapf(err, "args of %s", n.tag)
		}
		args[i] = fb
	}
	return args, nil
}

func (e *Engine) freshenBinder(used Names, b Binder) (Binder, error) {
	if !collides(used, b.bound) {
		return b, nil
	}
	_, fresh, _ := e.freshenAll(used, b.bound)
	e.log().Debug("freshening bound names", "from", b.bound, "to", fresh)
	body, err := e.Subst(used, Vars(fresh...), b)
	if err != nil {
		return Binder{}, err
	}
	return Binder{bound: fresh, body: body}, nil
}

// collides reports whether any name is in used or repeats an earlier name.
func collides(used Names, names []string) bool {
	for i, x := range names {
		if used.Has(x) {
			return true
		}
		for _, y := range names[:i] {
			if x == y {
				return true
			}
		}
	}
	return false
}

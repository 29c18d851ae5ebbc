package abt

// FreeVars returns the variables occurring in t outside the scope of any
// binder for them. The result is recomputed on every call.
func FreeVars(t ABT) Names {
	fv := Names{set: map[string]struct{}{}}
	collectFree(fv, Names{}, t)
	return fv
}

// collectFree adds the free variables of t to fv, skipping names in bound.
func collectFree(fv, bound Names, t ABT) {
	switch t := t.(type) {
	case Var:
		if !bound.Has(string(t)) {
			fv.add(string(t))
		}
	case *Node:
		for _, b := range t.binders {
			collectFree(fv, bound.With(b.bound...), b.body)
		}
	}
}

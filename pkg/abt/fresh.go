package abt

import (
	"fmt"
	"strconv"
	"strings"
)

// Freshener chooses a replacement for a name that is already in use. Fresh
// is only called with a stale name that is a member of used, and must return
// a name that is not. Implementations must be deterministic and free of side
// effects; the engine relies on calling them repeatedly with the same
// arguments.
type Freshener interface {
	Fresh(used Names, stale string) string
}

// FreshenerFunc adapts a function to the Freshener interface.
type FreshenerFunc func(used Names, stale string) string

func (f FreshenerFunc) Fresh(used Names, stale string) string {
	return f(used, stale)
}

// DigitSuffix strips any trailing digits and prime marks from the stale name
// and appends the smallest positive integer that yields an unused name, so x,
// x1 and x' all freshen to x1, x2, ...
var DigitSuffix Freshener = FreshenerFunc(func(used Names, stale string) string {
	root := strings.TrimRight(stale, "0123456789'")
	for i := 1; ; i++ {
		name := root + strconv.Itoa(i)
		if !used.Has(name) {
			return name
		}
	}
})

// PrimeSuffix appends prime marks to the stale name until it is unused.
var PrimeSuffix Freshener = FreshenerFunc(func(used Names, stale string) string {
	name := stale + "'"
	for used.Has(name) {
		name += "'"
	}
	return name
})

// Strategies are the named freshening strategies accepted by StrategyByName.
var Strategies = map[string]Freshener{
	"digits": DigitSuffix,
	"primes": PrimeSuffix,
}

// StrategyByName looks up a freshening strategy by name. The empty name
// selects DigitSuffix.
func StrategyByName(name string) (Freshener, error) {
	if name == "" {
		return DigitSuffix, nil
	}
	f, ok := Strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown freshening strategy %q", name)
	}
	return f, nil
}

// findFresh returns stale unchanged when it is not in use.
func (e *Engine) findFresh(used Names, stale string) string {
	if !used.Has(stale) {
		return stale
	}
	fresh := e.fresh.Fresh(used, stale)
	if used.Has(fresh) {
		panic(fmt.Sprintf("freshening strategy returned %q for %q, which is still in use", fresh, stale))
	}
	return fresh
}

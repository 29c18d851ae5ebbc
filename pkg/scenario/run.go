package scenario

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/vito/abt/pkg/abt"
	"github.com/vito/abt/pkg/ioctx"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one check.
type Result struct {
	Check  Check
	Passed bool

	// Got is what the operation produced: the printed term, "equal" or
	// "unequal", the free variable set, or an error message.
	Got string

	// Err is an unexpected failure of the operation under test.
	Err error
}

// Run evaluates every check of doc against engine. Checks share no state, so
// they are evaluated concurrently; results are returned in document order.
func Run(ctx context.Context, doc *Document, engine *abt.Engine) ([]Result, error) {
	logger := ioctx.LoggerFromContext(ctx)
	results := make([]Result, len(doc.Checks))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range doc.Checks {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = runCheck(doc, engine, c)
			logger.Debug("ran check", "check", c.Name, "kind", c.Kind, "passed", results[i].Passed)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runCheck(doc *Document, engine *abt.Engine, c Check) Result {
	res := Result{Check: c}
	if c.Kind == KindError {
		got, err := evaluate(doc, engine, c.Op, c)
		switch {
		case err == nil:
			res.Got = "no error: " + got
		default:
			res.Got = err.Error()
			res.Passed = strings.Contains(err.Error(), c.Want)
		}
		return res
	}

	got, err := evaluate(doc, engine, c.Kind, c)
	if err != nil {
		res.Err = err
		return res
	}
	res.Got = got
	switch c.Kind {
	case KindEqual:
		res.Passed = got == "equal"
	case KindUnequal:
		res.Passed = got == "unequal"
	case KindFreeVars:
		res.Passed = got == abt.NewNames(c.Names...).String()
	default:
		res.Passed = got == c.Want
	}
	return res
}

// evaluate performs the operation of the given kind and renders its result.
func evaluate(doc *Document, engine *abt.Engine, kind Kind, c Check) (string, error) {
	used := doc.used(c)
	left, err := doc.Term(c.Left)
	if err != nil {
		return "", err
	}

	switch kind {
	case KindOper:
		return engine.String(abt.FreeVars(left), left)
	case KindPrint:
		return engine.String(used, left)
	case KindFreeVars:
		return abt.FreeVars(left).String(), nil
	case KindEqual, KindUnequal:
		right, err := doc.Term(c.Right)
		if err != nil {
			return "", err
		}
		eq, err := engine.Equal(used, left, right)
		if err != nil {
			return "", err
		}
		if eq {
			return "equal", nil
		}
		return "unequal", nil
	case KindSubst:
		n, ok := left.(*abt.Node)
		if !ok || n.Len() == 0 {
			return "", fmt.Errorf("subst: %s has no binders", c.Left)
		}
		replacements := make([]abt.ABT, len(c.With))
		for i, name := range c.With {
			replacements[i], err = doc.Term(name)
			if err != nil {
				return "", err
			}
		}
		result, err := engine.Subst(used, replacements, n.Binders()[0])
		if err != nil {
			return "", err
		}
		return engine.String(used, result)
	default:
		return "", fmt.Errorf("unknown kind %q", kind)
	}
}

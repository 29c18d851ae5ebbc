// Package scenario loads TOML documents describing terms and the results
// expected from engine operations on them, and checks those expectations.
//
// A document looks like:
//
//	freshen = "digits"
//	used = ["y"]
//
//	[terms.take]
//	tag = "lam"
//	args = [{ bind = ["x"], tag = "ap", args = [{ var = "x" }, { var = "y" }] }]
//
//	[[check]]
//	name = "prints with the context's names avoided"
//	kind = "print"
//	used = ["x", "y"]
//	left = "take"
//	want = "lam(x1.ap(x1,y))"
//
// Terms are a direct encoding of the tree, one table per node; they are not
// a concrete syntax.
package scenario

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/vito/abt/pkg/abt"
)

// EnvFreshen names the environment variable consulted for the freshening
// strategy when neither a flag nor the document picks one.
const EnvFreshen = "ABT_FRESHEN"

// Document is a decoded scenario file.
type Document struct {
	// Freshen names the freshening strategy; see abt.StrategyByName.
	Freshen string `toml:"freshen,omitempty"`

	// Used is the default set of names in use for every check.
	Used []string `toml:"used,omitempty"`

	// Terms are the named terms checks refer to.
	Terms map[string]Term `toml:"terms"`

	Checks []Check `toml:"check"`
}

// Term encodes a single ABT. Exactly one of Var, Ref and Tag is set.
type Term struct {
	// Var is a variable occurrence.
	Var string `toml:"var,omitempty"`

	// Ref refers to another entry in the document's terms table.
	Ref string `toml:"ref,omitempty"`

	// Tag and Args describe an operator node.
	Tag  string    `toml:"tag,omitempty"`
	Args []TermArg `toml:"args,omitempty"`
}

// TermArg is a node argument: a term, optionally binding names in it.
type TermArg struct {
	Bind []string `toml:"bind,omitempty"`
	Term
}

// Kind selects what a check does.
type Kind string

const (
	KindPrint    Kind = "print"
	KindEqual    Kind = "equal"
	KindUnequal  Kind = "unequal"
	KindFreeVars Kind = "freevars"
	KindSubst    Kind = "subst"
	KindError    Kind = "error"

	// KindOper is only valid as the Op of an error check: building the
	// left term must fail.
	KindOper Kind = "oper"
)

// Check is a single expectation.
type Check struct {
	Name string `toml:"name"`
	Kind Kind   `toml:"kind"`

	// Used overrides the document's names in use.
	Used []string `toml:"used,omitempty"`

	// Left and Right name the terms operated on.
	Left  string `toml:"left"`
	Right string `toml:"right,omitempty"`

	// With names the replacement terms for a subst check.
	With []string `toml:"with,omitempty"`

	// Want is the expected printed output, or for an error check a
	// substring of the expected error.
	Want string `toml:"want,omitempty"`

	// Names are the expected free variables of a freevars check.
	Names []string `toml:"names,omitempty"`

	// Op is the kind of operation an error check expects to fail.
	Op Kind `toml:"op,omitempty"`
}

// Load decodes the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Decode reads a document and validates its checks.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (doc *Document) validate() error {
	for i, c := range doc.Checks {
		if c.Name == "" {
			return fmt.Errorf("check %d: missing name", i)
		}
		refs := append([]string{c.Left}, c.With...)
		switch c.Kind {
		case KindPrint, KindFreeVars:
		case KindEqual, KindUnequal:
			refs = append(refs, c.Right)
		case KindSubst:
		case KindError:
			switch c.Op {
			case KindPrint, KindSubst:
			case KindEqual:
				refs = append(refs, c.Right)
			case KindOper:
			default:
				return fmt.Errorf("check %q: unknown op %q", c.Name, c.Op)
			}
		default:
			return fmt.Errorf("check %q: unknown kind %q", c.Name, c.Kind)
		}
		for _, ref := range refs {
			if _, ok := doc.Terms[ref]; !ok {
				return fmt.Errorf("check %q: unknown term %q", c.Name, ref)
			}
		}
	}
	return nil
}

// Engine creates the engine a document's checks run against. A non-empty
// override wins over the document's setting, which wins over $ABT_FRESHEN.
func (doc *Document) Engine(override string, opts ...abt.Option) (*abt.Engine, error) {
	name := override
	if name == "" {
		name = doc.Freshen
	}
	if name == "" {
		name = os.Getenv(EnvFreshen)
	}
	fresh, err := abt.StrategyByName(name)
	if err != nil {
		return nil, err
	}
	return abt.New(fresh, opts...), nil
}

// Term builds the named term.
func (doc *Document) Term(name string) (abt.ABT, error) {
	return doc.resolve(name, map[string]bool{})
}

func (doc *Document) resolve(name string, visiting map[string]bool) (abt.ABT, error) {
	t, ok := doc.Terms[name]
	if !ok {
		return nil, fmt.Errorf("unknown term %q", name)
	}
	if visiting[name] {
		return nil, fmt.Errorf("term %q refers to itself", name)
	}
	visiting[name] = true
	defer delete(visiting, name)
	built, err := doc.build(t, visiting)
	if err != nil {
		return nil, fmt.Errorf("term %q: %w", name, err)
	}
	return built, nil
}

func (doc *Document) build(t Term, visiting map[string]bool) (abt.ABT, error) {
	set := 0
	for _, s := range []string{t.Var, t.Ref, t.Tag} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("exactly one of var, ref and tag must be set")
	}
	switch {
	case t.Var != "":
		if len(t.Args) > 0 {
			return nil, fmt.Errorf("variable %s has args", t.Var)
		}
		return abt.Var(t.Var), nil
	case t.Ref != "":
		if len(t.Args) > 0 {
			return nil, fmt.Errorf("reference to %s has args", t.Ref)
		}
		return doc.resolve(t.Ref, visiting)
	default:
		args := make([]abt.Arg, len(t.Args))
		for i, arg := range t.Args {
			body, err := doc.build(arg.Term, visiting)
			if err != nil {
				return nil, err
			}
			args[i] = abt.Bind(arg.Bind, body)
		}
		n, err := abt.Oper(t.Tag, args...)
		if err != nil {
			return nil, err
		}
		return n, nil
	}
}

func (doc *Document) used(c Check) abt.Names {
	if c.Used != nil {
		return abt.NewNames(c.Used...)
	}
	return abt.NewNames(doc.Used...)
}

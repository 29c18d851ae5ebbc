package abt

import (
	"strings"
)

// String renders t as tag(x.y.body,body2), freshening bound names the same
// way Args does so that no printed binder shadows a name in used or an
// enclosing printed binder. The output is deterministic for a given used
// set, but may change when more names are in use.
func (e *Engine) String(used Names, t ABT) (string, error) {
	var sb strings.Builder
	if err := e.write(&sb, used, t); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (e *Engine) write(sb *strings.Builder, used Names, t ABT) error {
	switch t := t.(type) {
	case Var:
		sb.WriteString(string(t))
		return nil
	case *Node:
		args, err := e.Args(used, t)
		if err != nil {
			return err
		}
		sb.WriteString(t.tag)
		sb.WriteByte('(')
		for i, arg := range args {
			if i > 0 {
				sb.WriteByte(',')
			}
			for _, x := range arg.bound {
				sb.WriteString(x)
				sb.WriteByte('.')
			}
			if err := e.write(sb, used.With(arg.bound...), arg.body); err != nil {
				return err
			}
		}
		sb.WriteByte(')')
		return nil
	default:
		panic("unreachable")
	}
}

package ast

import (
	"strings"

	"github.com/loop-lang/loop/lang/token"
	"github.com/loop-lang/loop/lang/value"
)

// Tuple evaluates its children left-to-right into a value.Tuple (spec.md
// §4.3 "Tuple.eval").
type Tuple struct {
	At    token.Pos
	Elems []Node
}

func (n *Tuple) Children() []Node { return n.Elems }
func (n *Tuple) Pos() token.Pos   { return n.At }

func (n *Tuple) Clone() Node {
	c := &Tuple{At: n.At, Elems: make([]Node, len(n.Elems))}
	for i, e := range n.Elems {
		c.Elems[i] = e.Clone()
	}
	return c
}

func (n *Tuple) Print(indent int) string {
	var sb strings.Builder
	sb.WriteString(pad(indent) + "Tuple\n")
	for _, e := range n.Elems {
		sb.WriteString(e.Print(indent + 1))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (n *Tuple) Eval(env value.Env) (value.Value, error) {
	elems := make([]value.Value, len(n.Elems))
	for i, e := range n.Elems {
		v, err := e.Eval(env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return value.Tuple{Elems: elems}, nil
}

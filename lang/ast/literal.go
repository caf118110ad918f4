package ast

import (
	"fmt"

	"github.com/loop-lang/loop/lang/token"
	"github.com/loop-lang/loop/lang/value"
)

// Literal is a scalar or none value written directly in the source.
type Literal struct {
	At    token.Pos
	Value value.Value
}

func (n *Literal) Children() []Node { return nil }
func (n *Literal) Pos() token.Pos   { return n.At }
func (n *Literal) Clone() Node      { c := *n; return &c }

func (n *Literal) Print(indent int) string {
	return fmt.Sprintf("%sLiteral(%s)", pad(indent), n.Value)
}

// Eval returns the literal's value; non-raw strings run through
// Environment.Interpolate so embedded {expr} spans are re-evaluated on every
// read (spec.md §4.3).
func (n *Literal) Eval(env value.Env) (value.Value, error) {
	s, ok := n.Value.(value.String)
	if !ok || s.Raw {
		return n.Value, nil
	}
	rendered, err := env.Interpolate(s.Text, s.Raw)
	if err != nil {
		return nil, err
	}
	return value.String{Text: rendered}, nil
}

// Identifier looks up a name in the environment.
type Identifier struct {
	At   token.Pos
	Name string
}

func (n *Identifier) Children() []Node { return nil }
func (n *Identifier) Pos() token.Pos   { return n.At }
func (n *Identifier) Clone() Node      { c := *n; return &c }

func (n *Identifier) Print(indent int) string {
	return fmt.Sprintf("%sIdentifier(%s)", pad(indent), n.Name)
}

func (n *Identifier) Eval(env value.Env) (value.Value, error) {
	return env.Lookup(n.Name)
}

package ast

import (
	"strings"

	"github.com/loop-lang/loop/lang/token"
	"github.com/loop-lang/loop/lang/value"
)

// Scope is a block: `{ ... }`. It evaluates in a child environment and frees
// its local bindings on every exit path, success or error (spec.md §4.3
// "Scope.eval", §4.4 "Scope frees").
type Scope struct {
	At       token.Pos
	Children_ []Node
}

func (n *Scope) Children() []Node { return n.Children_ }
func (n *Scope) Pos() token.Pos   { return n.At }

func (n *Scope) Clone() Node {
	c := &Scope{At: n.At, Children_: make([]Node, len(n.Children_))}
	for i, ch := range n.Children_ {
		c.Children_[i] = ch.Clone()
	}
	return c
}

func (n *Scope) Print(indent int) string {
	var sb strings.Builder
	sb.WriteString(pad(indent) + "Scope\n")
	for _, ch := range n.Children_ {
		sb.WriteString(ch.Print(indent + 1))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (n *Scope) Eval(env value.Env) (value.Value, error) {
	child := env.NewChild()
	defer child.Free()

	var last value.Value = value.None{}
	for _, ch := range n.Children_ {
		v, err := ch.Eval(child)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}

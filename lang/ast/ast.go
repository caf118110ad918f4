// Package ast defines the tree-walking interpreter's node types. Every node
// conforms to the uniform Node contract: Children, Eval, Clone and Print.
// Cloning whole subtrees is required by the parser, which re-parses a
// trimmed token slice and needs to splice the resulting subtree back into a
// larger expression without the two trees ever aliasing mutable state.
package ast

import (
	"strings"

	"github.com/loop-lang/loop/lang/token"
	"github.com/loop-lang/loop/lang/value"
)

// Node is implemented by every AST variant.
type Node interface {
	// Children returns the node's direct subexpressions, in evaluation order.
	Children() []Node
	// Eval evaluates the node against env.
	Eval(env value.Env) (value.Value, error)
	// Clone returns a deep, independent copy of the node.
	Clone() Node
	// Print renders the node as an indented, human-readable tree, primarily
	// for debugging; it is not expected to round-trip through the parser.
	Print(indent int) string
	// Pos returns the node's source position, for error reporting.
	Pos() token.Pos
}

func pad(indent int) string { return strings.Repeat("  ", indent) }

// EmptyNode represents the absence of an expression, e.g. an empty `()` or
// a trimmed slice with nothing left to parse.
type EmptyNode struct {
	At token.Pos
}

func (n *EmptyNode) Children() []Node { return nil }
func (n *EmptyNode) Pos() token.Pos   { return n.At }
func (n *EmptyNode) Clone() Node      { c := *n; return &c }
func (n *EmptyNode) Print(indent int) string {
	return pad(indent) + "EmptyNode"
}
func (n *EmptyNode) Eval(value.Env) (value.Value, error) {
	return value.None{}, nil
}

// MultiExpression is the root node produced by Parse: a sequence of
// top-level expressions, evaluated in order. Its value is the value of the
// last child, or None if it has none.
type MultiExpression struct {
	At       token.Pos
	Children_ []Node
}

func (n *MultiExpression) Children() []Node { return n.Children_ }
func (n *MultiExpression) Pos() token.Pos   { return n.At }

func (n *MultiExpression) Clone() Node {
	c := &MultiExpression{At: n.At, Children_: make([]Node, len(n.Children_))}
	for i, ch := range n.Children_ {
		c.Children_[i] = ch.Clone()
	}
	return c
}

func (n *MultiExpression) Print(indent int) string {
	var sb strings.Builder
	sb.WriteString(pad(indent) + "MultiExpression\n")
	for _, ch := range n.Children_ {
		sb.WriteString(ch.Print(indent + 1))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (n *MultiExpression) Eval(env value.Env) (value.Value, error) {
	var last value.Value = value.None{}
	for _, ch := range n.Children_ {
		v, err := ch.Eval(env)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}

package ast

import (
	"fmt"

	"github.com/loop-lang/loop/lang/token"
	"github.com/loop-lang/loop/lang/value"
)

// UnaryOp implements `-` on Int/Float, `~` (bitwise not) on Int, `not` on
// Bool (spec.md §4.3).
type UnaryOp struct {
	At      token.Pos
	Op      token.Kind
	Operand Node
}

func (n *UnaryOp) Children() []Node { return []Node{n.Operand} }
func (n *UnaryOp) Pos() token.Pos   { return n.At }
func (n *UnaryOp) Clone() Node      { return &UnaryOp{At: n.At, Op: n.Op, Operand: n.Operand.Clone()} }

func (n *UnaryOp) Print(indent int) string {
	return fmt.Sprintf("%sUnaryOp(%s)\n%s", pad(indent), n.Op, n.Operand.Print(indent+1))
}

func (n *UnaryOp) Eval(env value.Env) (value.Value, error) {
	v, err := n.Operand.Eval(env)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case token.MINUS:
		switch v := v.(type) {
		case value.Int:
			return -v, nil
		case value.Float:
			return -v, nil
		}
	case token.CIRCUMFLEX:
		if i, ok := v.(value.Int); ok {
			return ^i, nil
		}
	case token.NOT:
		if b, ok := v.(value.Bool); ok {
			return !b, nil
		}
	}
	return nil, &value.UnaryOperationError{Op: n.Op.String(), Operand: v}
}

// Abs implements the `abs` unary keyword: absolute value of an Int or Float.
type Abs struct {
	At      token.Pos
	Operand Node
}

func (n *Abs) Children() []Node { return []Node{n.Operand} }
func (n *Abs) Pos() token.Pos   { return n.At }
func (n *Abs) Clone() Node      { return &Abs{At: n.At, Operand: n.Operand.Clone()} }

func (n *Abs) Print(indent int) string {
	return fmt.Sprintf("%sAbs\n%s", pad(indent), n.Operand.Print(indent+1))
}

func (n *Abs) Eval(env value.Env) (value.Value, error) {
	v, err := n.Operand.Eval(env)
	if err != nil {
		return nil, err
	}
	switch v := v.(type) {
	case value.Int:
		if v < 0 {
			return -v, nil
		}
		return v, nil
	case value.Float:
		if v < 0 {
			return -v, nil
		}
		return v, nil
	default:
		return nil, &value.UnaryOperationError{Op: "abs", Operand: v}
	}
}

// Dbg implements the `dbg` keyword: evaluates its operand, asks the
// environment to emit a debug trace of it (a no-op unless debug mode is
// configured), and returns the value unchanged.
type Dbg struct {
	At      token.Pos
	Operand Node
}

func (n *Dbg) Children() []Node { return []Node{n.Operand} }
func (n *Dbg) Pos() token.Pos   { return n.At }
func (n *Dbg) Clone() Node      { return &Dbg{At: n.At, Operand: n.Operand.Clone()} }

func (n *Dbg) Print(indent int) string {
	return fmt.Sprintf("%sDbg\n%s", pad(indent), n.Operand.Print(indent+1))
}

func (n *Dbg) Eval(env value.Env) (value.Value, error) {
	v, err := n.Operand.Eval(env)
	if err != nil {
		return nil, err
	}
	env.Debug(v)
	return v, nil
}

package ast

import (
	"fmt"
	"math"

	"github.com/loop-lang/loop/lang/token"
	"github.com/loop-lang/loop/lang/value"
)

// BinaryOp evaluates both operands and dispatches by concrete value pair
// (spec.md §4.3). Operator identity is carried as the token.Kind that
// introduced it in source, so error messages can print the original symbol.
type BinaryOp struct {
	At          token.Pos
	Op          token.Kind
	Left, Right Node
}

func (n *BinaryOp) Children() []Node { return []Node{n.Left, n.Right} }
func (n *BinaryOp) Pos() token.Pos   { return n.At }

func (n *BinaryOp) Clone() Node {
	return &BinaryOp{At: n.At, Op: n.Op, Left: n.Left.Clone(), Right: n.Right.Clone()}
}

func (n *BinaryOp) Print(indent int) string {
	return fmt.Sprintf("%sBinaryOp(%s)\n%s\n%s", pad(indent), n.Op, n.Left.Print(indent+1), n.Right.Print(indent+1))
}

func (n *BinaryOp) Eval(env value.Env) (value.Value, error) {
	l, err := n.Left.Eval(env)
	if err != nil {
		return nil, err
	}
	r, err := n.Right.Eval(env)
	if err != nil {
		return nil, err
	}

	switch lv := l.(type) {
	case value.Int:
		if rv, ok := r.(value.Int); ok {
			return evalIntOp(n.Op, lv, rv)
		}
	case value.Float:
		if rv, ok := r.(value.Float); ok {
			return evalFloatOp(n.Op, lv, rv)
		}
	case value.String:
		if rv, ok := r.(value.String); ok {
			return evalStringOp(n.Op, lv, rv)
		}
	case value.Bool:
		if rv, ok := r.(value.Bool); ok {
			return evalBoolOp(n.Op, lv, rv)
		}
	}
	return nil, &value.BinaryOperationError{Op: n.Op.String(), Left: l, Right: r}
}

func evalIntOp(op token.Kind, l, r value.Int) (value.Value, error) {
	switch op {
	case token.PLUS:
		return l + r, nil
	case token.MINUS:
		return l - r, nil
	case token.STAR:
		return l * r, nil
	case token.SLASH:
		if r == 0 {
			return nil, &value.BinaryOperationError{Op: "/", Left: l, Right: r}
		}
		return l / r, nil
	case token.PERCENT:
		if r == 0 {
			return nil, &value.BinaryOperationError{Op: "%", Left: l, Right: r}
		}
		return l % r, nil
	case token.STARSTAR:
		return value.Int(math.Pow(float64(l), float64(r))), nil
	case token.AMP:
		return l & r, nil
	case token.PIPE:
		return l | r, nil
	case token.LTLT:
		return l << uint(r), nil
	case token.GTGT:
		return l >> uint(r), nil
	case token.EQL:
		return value.Bool(l == r), nil
	case token.NEQ:
		return value.Bool(l != r), nil
	case token.GT:
		return value.Bool(l > r), nil
	case token.LT:
		return value.Bool(l < r), nil
	case token.GE:
		return value.Bool(l >= r), nil
	case token.LE:
		return value.Bool(l <= r), nil
	default:
		return nil, &value.BinaryOperationError{Op: op.String(), Left: l, Right: r}
	}
}

func evalFloatOp(op token.Kind, l, r value.Float) (value.Value, error) {
	switch op {
	case token.PLUS:
		return l + r, nil
	case token.MINUS:
		return l - r, nil
	case token.STAR:
		return l * r, nil
	case token.SLASH:
		return l / r, nil
	case token.STARSTAR:
		return value.Float(math.Pow(float64(l), float64(r))), nil
	case token.EQL:
		return value.Bool(l == r), nil
	case token.NEQ:
		return value.Bool(l != r), nil
	case token.GT:
		return value.Bool(l > r), nil
	case token.LT:
		return value.Bool(l < r), nil
	case token.GE:
		return value.Bool(l >= r), nil
	case token.LE:
		return value.Bool(l <= r), nil
	default:
		return nil, &value.BinaryOperationError{Op: op.String(), Left: l, Right: r}
	}
}

func evalStringOp(op token.Kind, l, r value.String) (value.Value, error) {
	switch op {
	case token.PLUS:
		return value.String{Text: l.Text + r.Text}, nil
	case token.EQL:
		return value.Bool(l.Text == r.Text), nil
	case token.NEQ:
		return value.Bool(l.Text != r.Text), nil
	default:
		return nil, &value.BinaryOperationError{Op: op.String(), Left: l, Right: r}
	}
}

func evalBoolOp(op token.Kind, l, r value.Bool) (value.Value, error) {
	switch op {
	case token.AND:
		return value.Bool(bool(l) && bool(r)), nil
	case token.OR:
		return value.Bool(bool(l) || bool(r)), nil
	case token.EQL:
		return value.Bool(l == r), nil
	case token.NEQ:
		return value.Bool(l != r), nil
	default:
		return nil, &value.BinaryOperationError{Op: op.String(), Left: l, Right: r}
	}
}

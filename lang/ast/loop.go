package ast

import (
	"fmt"

	"github.com/loop-lang/loop/lang/token"
	"github.com/loop-lang/loop/lang/value"
)

// Loop is the unbounded `loop { body }` form, terminated only by `break`
// (spec.md §4.3, §9 open question).
type Loop struct {
	At   token.Pos
	Body *Scope
	// MaxIterations, when non-zero, bounds iteration count as a safety valve
	// (internal/config LOOP_MAX_LOOP_ITERATIONS); 0 means unbounded.
	MaxIterations int
}

func (n *Loop) Children() []Node { return []Node{n.Body} }
func (n *Loop) Pos() token.Pos   { return n.At }
func (n *Loop) Clone() Node      { return &Loop{At: n.At, Body: n.Body.Clone().(*Scope), MaxIterations: n.MaxIterations} }
func (n *Loop) Print(indent int) string {
	return fmt.Sprintf("%sLoop\n%s", pad(indent), n.Body.Print(indent+1))
}

func (n *Loop) Eval(env value.Env) (value.Value, error) {
	var last value.Value = value.None{}
	for i := 0; n.MaxIterations == 0 || i < n.MaxIterations; i++ {
		v, err := n.Body.Eval(env)
		if err != nil {
			if _, ok := err.(value.BreakSignal); ok {
				return last, nil
			}
			if _, ok := err.(value.ContinueSignal); ok {
				continue
			}
			return nil, err
		}
		last = v
	}
	return last, nil
}

// While re-evaluates Cond before each iteration and returns the last body
// value (spec.md §4.3).
type While struct {
	At   token.Pos
	Cond Node
	Body *Scope
}

func (n *While) Children() []Node { return []Node{n.Cond, n.Body} }
func (n *While) Pos() token.Pos   { return n.At }
func (n *While) Clone() Node {
	return &While{At: n.At, Cond: n.Cond.Clone(), Body: n.Body.Clone().(*Scope)}
}
func (n *While) Print(indent int) string {
	return fmt.Sprintf("%sWhile\n%s\n%s", pad(indent), n.Cond.Print(indent+1), n.Body.Print(indent+1))
}

func (n *While) Eval(env value.Env) (value.Value, error) {
	var last value.Value = value.None{}
	for {
		cv, err := n.Cond.Eval(env)
		if err != nil {
			return nil, err
		}
		if !cv.Truth() {
			return last, nil
		}
		v, err := n.Body.Eval(env)
		if err != nil {
			if _, ok := err.(value.BreakSignal); ok {
				return last, nil
			}
			if _, ok := err.(value.ContinueSignal); ok {
				continue
			}
			return nil, err
		}
		last = v
	}
}

// RangeExpr is the `a..b` bound pair of a for-loop header, resolved per
// spec.md §9's suggested contract: integer bounds, half-open a <= x < b.
type RangeExpr struct {
	At         token.Pos
	From, To Node
}

func (n *RangeExpr) Children() []Node { return []Node{n.From, n.To} }
func (n *RangeExpr) Pos() token.Pos   { return n.At }
func (n *RangeExpr) Clone() Node      { return &RangeExpr{At: n.At, From: n.From.Clone(), To: n.To.Clone()} }
func (n *RangeExpr) Print(indent int) string {
	return fmt.Sprintf("%sRangeExpr\n%s\n%s", pad(indent), n.From.Print(indent+1), n.To.Print(indent+1))
}

// Eval returns a value.Tuple{From, To} as the raw bound pair; For.Eval
// unwraps it rather than relying on a generic iterator protocol, since
// spec.md explicitly excludes an iterator protocol (Non-goals).
func (n *RangeExpr) Eval(env value.Env) (value.Value, error) {
	from, err := n.From.Eval(env)
	if err != nil {
		return nil, err
	}
	to, err := n.To.Eval(env)
	if err != nil {
		return nil, err
	}
	return value.Tuple{Elems: []value.Value{from, to}}, nil
}

// For binds Var fresh in the body's child scope on each iteration, ranging
// over integer bounds a <= x < b (spec.md §9 "For-loops").
type For struct {
	At    token.Pos
	Var   string
	Range *RangeExpr
	Body  *Scope
}

func (n *For) Children() []Node { return []Node{n.Range, n.Body} }
func (n *For) Pos() token.Pos   { return n.At }
func (n *For) Clone() Node {
	return &For{At: n.At, Var: n.Var, Range: n.Range.Clone().(*RangeExpr), Body: n.Body.Clone().(*Scope)}
}
func (n *For) Print(indent int) string {
	return fmt.Sprintf("%sFor(%s)\n%s\n%s", pad(indent), n.Var, n.Range.Print(indent+1), n.Body.Print(indent+1))
}

func (n *For) Eval(env value.Env) (value.Value, error) {
	rv, err := n.Range.Eval(env)
	if err != nil {
		return nil, err
	}
	bounds, ok := rv.(value.Tuple)
	if !ok || len(bounds.Elems) != 2 {
		return nil, &value.UnaryOperationError{Op: "for-range", Operand: rv}
	}
	from, ok1 := bounds.Elems[0].(value.Int)
	to, ok2 := bounds.Elems[1].(value.Int)
	if !ok1 || !ok2 {
		return nil, &value.ValueNotOfTypeError{Name: n.Var, Type: value.I32Type, Value: rv}
	}

	var last value.Value = value.None{}
	for i := from; i < to; i++ {
		iterScope := env.NewChild()
		if err := iterScope.DeclareAssign(n.Var, i, false, nil); err != nil {
			iterScope.Free()
			return nil, err
		}
		v, err := n.Body.Eval(iterScope)
		iterScope.Free()
		if err != nil {
			if _, ok := err.(value.BreakSignal); ok {
				return last, nil
			}
			if _, ok := err.(value.ContinueSignal); ok {
				continue
			}
			return nil, err
		}
		last = v
	}
	return last, nil
}

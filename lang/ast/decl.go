package ast

import (
	"fmt"

	"github.com/loop-lang/loop/lang/token"
	"github.com/loop-lang/loop/lang/tuple"
	"github.com/loop-lang/loop/lang/value"
)

// VariableDeclaration declares one or more names without an initializer,
// e.g. `let mut a: i32` (spec.md §3, §4.2 "Destructuring assignment /
// declaration").
type VariableDeclaration struct {
	At      token.Pos
	Mutable bool
	Type    tuple.Tuple[value.Type]
	Names   tuple.Tuple[string]
}

func (n *VariableDeclaration) Children() []Node { return nil }
func (n *VariableDeclaration) Pos() token.Pos   { return n.At }
func (n *VariableDeclaration) Clone() Node      { c := *n; return &c }

func (n *VariableDeclaration) Print(indent int) string {
	return fmt.Sprintf("%sVariableDeclaration(mut=%v, %s)", pad(indent), n.Mutable, n.Names.PrintStructure())
}

func (n *VariableDeclaration) Eval(env value.Env) (value.Value, error) {
	pairs, err := tuple.PairUp(n.Names, n.Type)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		if err := env.Declare(p.Left, n.Mutable, p.Right); err != nil {
			return nil, err
		}
	}
	return value.None{}, nil
}

// VariableAssignment assigns expr's value to one or more already-declared
// names, destructuring if Names has tuple structure.
type VariableAssignment struct {
	At    token.Pos
	Names tuple.Tuple[string]
	Expr  Node
}

func (n *VariableAssignment) Children() []Node { return []Node{n.Expr} }
func (n *VariableAssignment) Pos() token.Pos   { return n.At }
func (n *VariableAssignment) Clone() Node {
	return &VariableAssignment{At: n.At, Names: n.Names, Expr: n.Expr.Clone()}
}

func (n *VariableAssignment) Print(indent int) string {
	return fmt.Sprintf("%sVariableAssignment(%s)\n%s", pad(indent), n.Names.PrintStructure(), n.Expr.Print(indent+1))
}

func (n *VariableAssignment) Eval(env value.Env) (value.Value, error) {
	v, err := n.Expr.Eval(env)
	if err != nil {
		return nil, err
	}
	return assignTuple(env, n.Names, v)
}

// VariableDeclarationAssignment declares and initializes in one step, e.g.
// `let (x, y) := (1, 2)` or `mut a: i32 = 1`.
type VariableDeclarationAssignment struct {
	At      token.Pos
	Mutable bool
	Type    *tuple.Tuple[value.Type] // nil when the type is inferred
	Names   tuple.Tuple[string]
	Expr    Node
}

func (n *VariableDeclarationAssignment) Children() []Node { return []Node{n.Expr} }
func (n *VariableDeclarationAssignment) Pos() token.Pos   { return n.At }
func (n *VariableDeclarationAssignment) Clone() Node {
	c := &VariableDeclarationAssignment{At: n.At, Mutable: n.Mutable, Names: n.Names, Expr: n.Expr.Clone()}
	if n.Type != nil {
		t := *n.Type
		c.Type = &t
	}
	return c
}

func (n *VariableDeclarationAssignment) Print(indent int) string {
	return fmt.Sprintf("%sVariableDeclarationAssignment(mut=%v, %s)\n%s", pad(indent), n.Mutable, n.Names.PrintStructure(), n.Expr.Print(indent+1))
}

func (n *VariableDeclarationAssignment) Eval(env value.Env) (value.Value, error) {
	v, err := n.Expr.Eval(env)
	if err != nil {
		return nil, err
	}
	vt := value.ToTuple(v)

	var typeTuple tuple.Tuple[value.Type]
	if n.Type != nil {
		typeTuple = *n.Type
	}

	pairs, err := tuple.PairUpLeft(n.Names, vt)
	if err != nil {
		return nil, err
	}
	typePairs, err := tuple.PairUpLeft(n.Names, typeTuple)
	hasTypes := n.Type != nil && err == nil

	for i, p := range pairs {
		leaves := p.Right.Leaves()
		var leafVal value.Value
		if len(leaves) == 1 {
			leafVal = leaves[0]
		} else {
			leafVal = value.Tuple{Elems: leaves}
		}
		var declaredType *value.Type
		if hasTypes {
			tleaves := typePairs[i].Right.Leaves()
			if len(tleaves) == 1 {
				declaredType = &tleaves[0]
			}
		}
		if err := env.DeclareAssign(p.Left, leafVal, n.Mutable, declaredType); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// assignTuple pairs names against v's tuple structure and assigns each leaf.
func assignTuple(env value.Env, names tuple.Tuple[string], v value.Value) (value.Value, error) {
	vt := value.ToTuple(v)
	pairs, err := tuple.PairUpLeft(names, vt)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		leaves := p.Right.Leaves()
		var leafVal value.Value
		if len(leaves) == 1 {
			leafVal = leaves[0]
		} else {
			leafVal = value.Tuple{Elems: leaves}
		}
		if _, err := env.Assign(p.Left, leafVal); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Ret raises a ReturnSignal carrying Expr's value, intercepted by the
// nearest enclosing function call frame (spec.md §9 open question).
type Ret struct {
	At   token.Pos
	Expr Node
}

func (n *Ret) Children() []Node { return []Node{n.Expr} }
func (n *Ret) Pos() token.Pos   { return n.At }
func (n *Ret) Clone() Node      { return &Ret{At: n.At, Expr: n.Expr.Clone()} }
func (n *Ret) Print(indent int) string {
	return fmt.Sprintf("%sRet\n%s", pad(indent), n.Expr.Print(indent+1))
}

func (n *Ret) Eval(env value.Env) (value.Value, error) {
	v, err := n.Expr.Eval(env)
	if err != nil {
		return nil, err
	}
	return nil, value.ReturnSignal{Value: v}
}

// Break raises a BreakSignal, intercepted by the nearest enclosing loop.
type Break struct{ At token.Pos }

func (n *Break) Children() []Node            { return nil }
func (n *Break) Pos() token.Pos              { return n.At }
func (n *Break) Clone() Node                 { c := *n; return &c }
func (n *Break) Print(indent int) string     { return pad(indent) + "Break" }
func (n *Break) Eval(value.Env) (value.Value, error) {
	return nil, value.BreakSignal{}
}

// Continue raises a ContinueSignal, intercepted by the nearest enclosing
// loop to skip directly to the next iteration.
type Continue struct{ At token.Pos }

func (n *Continue) Children() []Node        { return nil }
func (n *Continue) Pos() token.Pos          { return n.At }
func (n *Continue) Clone() Node             { c := *n; return &c }
func (n *Continue) Print(indent int) string { return pad(indent) + "Continue" }
func (n *Continue) Eval(value.Env) (value.Value, error) {
	return nil, value.ContinueSignal{}
}

package ast

import (
	"fmt"
	"strings"

	"github.com/loop-lang/loop/lang/token"
	"github.com/loop-lang/loop/lang/value"
)

// FnDeclaration declares a function, anonymous or named (spec.md §3, §4.7).
// Name is empty for an anonymous (expression-level) declaration, which
// evaluates to a value.Fn instead of registering anything.
type FnDeclaration struct {
	At     token.Pos
	Name   string
	Sig    value.Signature
	Body   *Scope
}

func (n *FnDeclaration) Children() []Node { return []Node{n.Body} }
func (n *FnDeclaration) Pos() token.Pos   { return n.At }

func (n *FnDeclaration) Clone() Node {
	return &FnDeclaration{At: n.At, Name: n.Name, Sig: n.Sig, Body: n.Body.Clone().(*Scope)}
}

func (n *FnDeclaration) Print(indent int) string {
	return fmt.Sprintf("%sFnDeclaration(%s%s)\n%s", pad(indent), n.Name, n.Sig, n.Body.Print(indent+1))
}

func (n *FnDeclaration) Eval(env value.Env) (value.Value, error) {
	fn := value.Fn{Sig: n.Sig, Body: n.Body}
	if n.Name == "" {
		return fn, nil
	}
	if err := env.DeclareFunction(n.Name, n.Sig, n.Body); err != nil {
		return nil, err
	}
	return fn, nil
}

// CallArg is one argument expression at a call site, either named
// (`name: expr`) or positional (`expr`).
type CallArg struct {
	Name string // "" for positional
	Expr Node
}

// FnCall calls a previously declared function by name (spec.md §4.7).
type FnCall struct {
	At   token.Pos
	Name string
	Args []CallArg
}

func (n *FnCall) Children() []Node {
	children := make([]Node, len(n.Args))
	for i, a := range n.Args {
		children[i] = a.Expr
	}
	return children
}
func (n *FnCall) Pos() token.Pos { return n.At }

func (n *FnCall) Clone() Node {
	args := make([]CallArg, len(n.Args))
	for i, a := range n.Args {
		args[i] = CallArg{Name: a.Name, Expr: a.Expr.Clone()}
	}
	return &FnCall{At: n.At, Name: n.Name, Args: args}
}

func (n *FnCall) Print(indent int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%sFnCall(%s)\n", pad(indent), n.Name))
	for _, a := range n.Args {
		label := a.Name
		if label == "" {
			label = "_"
		}
		sb.WriteString(fmt.Sprintf("%s%s:\n%s\n", pad(indent+1), label, a.Expr.Print(indent+2)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Eval resolves each argument through env.GetReference where possible (so
// non-basic values pass by reference) then delegates the full call
// procedure — prefix-name resolution, child-scope construction, type
// checking and body evaluation — to env.CallFunction (spec.md §4.7).
func (n *FnCall) Eval(env value.Env) (value.Value, error) {
	args := make([]value.Arg, len(n.Args))
	for i, a := range n.Args {
		arg := value.Arg{Name: a.Name}
		if ident, ok := a.Expr.(*Identifier); ok {
			arg.VarName = ident.Name
			if ref, ok := env.GetReference(ident.Name); ok {
				arg.Ref = &ref
				args[i] = arg
				continue
			}
		}
		v, err := a.Expr.Eval(env)
		if err != nil {
			return nil, err
		}
		arg.Val = v
		args[i] = arg
	}
	// env.CallFunction intercepts a ReturnSignal raised while evaluating the
	// body and turns it into a normal return value, so a propagated error here
	// is always a genuine failure.
	return env.CallFunction(n.Name, args)
}

package ast

import (
	"fmt"

	"github.com/loop-lang/loop/lang/token"
	"github.com/loop-lang/loop/lang/value"
)

// Conditional is the common shape of IfBlock/ElifBlock/ElseBlock: a
// condition (constant-true for ElseBlock), a body, and a forward pointer to
// the next link in the chain (spec.md §3, §9 "Conditional chain"). Encoding
// all three keywords as one node type with an IsElse flag keeps the chain
// walk in Eval uniform, the way the teacher's own linked-list AST nodes
// share one walk for similar keyword families.
type Conditional struct {
	At     token.Pos
	IsElse bool
	Cond   Node // nil when IsElse
	Body   *Scope
	Next   *Conditional // nil at the end of the chain
}

func (n *Conditional) Children() []Node {
	children := []Node{n.Body}
	if n.Cond != nil {
		children = append([]Node{n.Cond}, children...)
	}
	if n.Next != nil {
		children = append(children, n.Next)
	}
	return children
}
func (n *Conditional) Pos() token.Pos { return n.At }

func (n *Conditional) Clone() Node {
	c := &Conditional{At: n.At, IsElse: n.IsElse, Body: n.Body.Clone().(*Scope)}
	if n.Cond != nil {
		c.Cond = n.Cond.Clone()
	}
	if n.Next != nil {
		c.Next = n.Next.Clone().(*Conditional)
	}
	return c
}

func (n *Conditional) Print(indent int) string {
	kw := "If"
	if n.IsElse {
		kw = "Else"
	}
	s := fmt.Sprintf("%s%sBlock\n%s", pad(indent), kw, n.Body.Print(indent+1))
	if n.Next != nil {
		s += "\n" + n.Next.Print(indent)
	}
	return s
}

// Eval walks the chain, evaluating each condition until one is true,
// executing that branch's scope and returning its value; returns None if no
// branch matches (spec.md §4.3 "Conditional chain").
func (n *Conditional) Eval(env value.Env) (value.Value, error) {
	for link := n; link != nil; link = link.Next {
		if link.IsElse {
			return link.Body.Eval(env)
		}
		cv, err := link.Cond.Eval(env)
		if err != nil {
			return nil, err
		}
		if cv.Truth() {
			return link.Body.Eval(env)
		}
	}
	return value.None{}, nil
}

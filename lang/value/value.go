// Package value defines the runtime value and static type model shared
// by lang/ast and lang/environment. It sits below both of them (mirroring
// the teacher's lang/types package sitting below lang/ast and lang/machine)
// so that ast nodes can call back into the environment through the Env
// interface defined here without either package importing the other.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/loop-lang/loop/lang/tuple"
)

// Value is the interface implemented by every runtime value (spec.md §3).
type Value interface {
	String() string
	TypeName() string
	Truth() bool
}

// Int is the integer value variant.
type Int int64

func (i Int) String() string   { return strconv.FormatInt(int64(i), 10) }
func (i Int) TypeName() string { return "int" }
func (i Int) Truth() bool      { return i != 0 }

// Float is the floating point value variant.
type Float float64

func (f Float) String() string   { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (f Float) TypeName() string { return "float" }
func (f Float) Truth() bool      { return f != 0 }

// Bool is the boolean value variant.
type Bool bool

func (b Bool) String() string   { return strconv.FormatBool(bool(b)) }
func (b Bool) TypeName() string { return "bool" }
func (b Bool) Truth() bool      { return bool(b) }

// String is the string value variant. Raw records whether the literal was
// introduced with the r"..."/r'...' prefix, which disables interpolation
// re-evaluation on every read (spec.md §4.1, §4.3).
type String struct {
	Text string
	Raw  bool
}

func (s String) String() string   { return s.Text }
func (s String) TypeName() string { return "string" }
func (s String) Truth() bool      { return s.Text != "" }

// None is the unit/absent value.
type None struct{}

func (None) String() string   { return "none" }
func (None) TypeName() string { return "none" }
func (None) Truth() bool      { return false }

// Tuple is the runtime tuple value variant: an ordered, possibly-empty list
// of values. Per spec.md §3, a length-1 tuple collapses to its element when
// flattened with ToTuple, and a length-0 tuple is the Empty tuple.
type Tuple struct {
	Elems []Value
}

func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (t Tuple) TypeName() string { return "tuple" }
func (t Tuple) Truth() bool      { return len(t.Elems) != 0 }

// ToTuple converts a Value into the generic tuple.Tuple[Value] structure
// used for structural destructuring: a Value::Tuple becomes a List (or
// Element if length 1, Empty if length 0); any other value becomes a single
// Element leaf.
func ToTuple(v Value) tuple.Tuple[Value] {
	t, ok := v.(Tuple)
	if !ok {
		return tuple.NewElement(v)
	}
	switch len(t.Elems) {
	case 0:
		return tuple.NewEmpty[Value]()
	case 1:
		return tuple.NewElement(t.Elems[0])
	default:
		items := make([]tuple.Tuple[Value], len(t.Elems))
		for i, e := range t.Elems {
			items[i] = tuple.NewElement(e)
		}
		return tuple.NewList(items)
	}
}

// Fn is the function value variant: a signature plus an evaluable body.
// Body is an interface rather than a concrete *ast.Scope to avoid an ast <->
// value import cycle — lang/ast's Scope node satisfies Evaluable.
type Fn struct {
	Sig  Signature
	Body Evaluable
}

func (f Fn) String() string   { return "fn" + f.Sig.String() }
func (f Fn) TypeName() string { return "fn" }
func (f Fn) Truth() bool      { return true }

// ErrorValue is the Error(message) value variant: a runtime value (distinct
// from the Go `error` interface used for control flow) that a function body
// may produce and that callers can inspect with `is_error`-style checks. It
// exists to round out spec.md's Value variant list; the core's own
// operations never construct one (interpolation and the `abs` builtin
// report failures as Go errors instead).
type ErrorValue struct {
	Message string
}

func (e ErrorValue) String() string   { return fmt.Sprintf("error(%s)", e.Message) }
func (e ErrorValue) TypeName() string { return "error" }
func (e ErrorValue) Truth() bool      { return false }

// IsBasic reports whether v is a scalar (int/float/bool/string) value, which
// spec.md §3 defines as copy-semantic across scopes; non-basic values
// (tuple, fn) are reference-semantic and eligible for by-reference parameter
// passing (spec.md §4.7).
func IsBasic(v Value) bool {
	switch v.(type) {
	case Int, Float, Bool, String:
		return true
	default:
		return false
	}
}

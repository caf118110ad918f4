// Package environment implements the nested-scope runtime that lang/ast
// nodes evaluate against: the slot heap, scope chain, declaration and
// assignment rules, type inference and checking, string interpolation, and
// function declaration/call (spec.md §4.4, §4.7).
package environment

import (
	"io"

	"github.com/dolthub/swiss"

	"github.com/loop-lang/loop/lang/value"
)

// binding is a name in a scope's locals map: it names a heap slot and
// carries type, mutability and initialization status (spec.md GLOSSARY
// "Binding").
type binding struct {
	slot        int
	owned       bool // false if this binding aliases a slot owned by an ancestor (a Reference)
	mutable     bool
	typ         value.Type
	initialized bool
}

// funcDecl is a declared function: its signature and body.
type funcDecl struct {
	sig  value.Signature
	body value.Evaluable
}

// Environment is a single lexical scope: a locals map, a function table,
// and a parent pointer, all scopes descended from one root sharing one heap
// (spec.md §4.4 "Scope chain", §5 "Shared resources").
type Environment struct {
	parent    *Environment
	locals    *swiss.Map[string, *binding]
	functions *swiss.Map[string, *funcDecl]
	heap      *heap

	// root-only configuration, read through the parent chain by child scopes
	parseString    value.ParseFunc
	maxInterpDepth int
	debugWriter    io.Writer
	debugEnabled   bool
	interpDepth    *int // shared counter across one interpolation call chain
}

// New creates a root environment with a fresh heap. parse is used by
// Interpolate to re-enter the parser on embedded {expr} spans; maxInterpDepth
// bounds that recursion (spec.md §5 "Re-entrancy").
func New(parse value.ParseFunc, maxInterpDepth int, debugWriter io.Writer, debugEnabled bool) *Environment {
	depth := 0
	return &Environment{
		locals:         swiss.NewMap[string, *binding](8),
		functions:      swiss.NewMap[string, *funcDecl](4),
		heap:           newHeap(),
		parseString:    parse,
		maxInterpDepth: maxInterpDepth,
		debugWriter:    debugWriter,
		debugEnabled:   debugEnabled,
		interpDepth:    &depth,
	}
}

// NewChild creates a child scope sharing this environment's heap and root
// configuration.
func (e *Environment) NewChild() value.Env {
	return &Environment{
		parent:         e,
		locals:         swiss.NewMap[string, *binding](4),
		functions:      swiss.NewMap[string, *funcDecl](2),
		heap:           e.heap,
		parseString:    e.parseString,
		maxInterpDepth: e.maxInterpDepth,
		debugWriter:    e.debugWriter,
		debugEnabled:   e.debugEnabled,
		interpDepth:    e.interpDepth,
	}
}

// Free deallocates every binding declared directly in this scope (not
// aliased references), per spec.md §4.4 "Scope frees".
func (e *Environment) Free() {
	e.locals.Iter(func(_ string, b *binding) bool {
		if b.owned {
			e.heap.deallocate(b.slot)
		}
		return false
	})
}

// lookupBindingLocal finds a binding declared directly in this scope.
func (e *Environment) lookupBindingLocal(name string) (*binding, bool) {
	return e.locals.Get(name)
}

// lookupBinding walks the scope chain outward, returning the owning scope.
func (e *Environment) lookupBinding(name string) (*Environment, *binding, bool) {
	for env := e; env != nil; env = env.parent {
		if b, ok := env.locals.Get(name); ok {
			return env, b, true
		}
	}
	return nil, nil, false
}

// Declare allocates a slot holding None and marks the binding uninitialized
// (spec.md §4.4 "declare(name, mutable, type)").
func (e *Environment) Declare(name string, mutable bool, typ value.Type) error {
	if _, ok := e.lookupBindingLocal(name); ok {
		return &value.AssignmentError{Reason: "cannot redeclare " + name + " in the same scope"}
	}
	slot := e.heap.allocate(value.None{})
	e.locals.Put(name, &binding{slot: slot, owned: true, mutable: mutable, typ: typ})
	return nil
}

// DeclareAssign computes the type (explicit or inferred), type-checks the
// value, allocates a slot and inserts an initialized binding (spec.md §4.4
// "declare_assign"). typ may be nil to request inference.
func (e *Environment) DeclareAssign(name string, v value.Value, mutable bool, typ *value.Type) error {
	if _, ok := e.lookupBindingLocal(name); ok {
		return &value.AssignmentError{Reason: "cannot redeclare " + name + " in the same scope"}
	}
	var t value.Type
	if typ != nil {
		t = *typ
	} else {
		inferred, err := inferType(v)
		if err != nil {
			return err
		}
		t = inferred
	}
	if err := checkType(name, t, v); err != nil {
		return err
	}
	slot := e.heap.allocate(v)
	e.locals.Put(name, &binding{slot: slot, owned: true, mutable: mutable, typ: t, initialized: true})
	return nil
}

// Assign implements spec.md §4.4 "assign(name, value)": walks the chain to
// find the owning binding; rejects writes to an initialized immutable
// binding; initializes an uninitialized binding on first write; type-checks
// and writes the slot.
func (e *Environment) Assign(name string, v value.Value) (value.Value, error) {
	_, b, ok := e.lookupBinding(name)
	if !ok {
		return nil, &value.VariableNotFoundError{Name: name}
	}
	if b.initialized && !b.mutable {
		return nil, &value.CannotAssignToImmutableError{Name: name}
	}
	if err := checkType(name, b.typ, v); err != nil {
		return nil, err
	}
	b.initialized = true
	e.heap.set(b.slot, v)
	return v, nil
}

// Lookup implements spec.md §4.4 "lookup(name)".
func (e *Environment) Lookup(name string) (value.Value, error) {
	_, b, ok := e.lookupBinding(name)
	if !ok {
		return nil, &value.VariableNotFoundError{Name: name}
	}
	if !b.initialized {
		return nil, &value.VariableNotInitializedError{Name: name}
	}
	v, ok := e.heap.get(b.slot)
	if !ok {
		return nil, &value.NoVariableAtHeapIndexError{Index: b.slot}
	}
	return v, nil
}

// GetType returns the declared or inferred static type of name, for the
// #type debugging meta-command (spec.md §6).
func (e *Environment) GetType(name string) (value.Type, error) {
	_, b, ok := e.lookupBinding(name)
	if !ok {
		return value.Type{}, &value.VariableNotFoundError{Name: name}
	}
	return b.typ, nil
}

// GetReference reports whether name is bound to a non-basic value anywhere
// in the scope chain, returning a Reference to its heap slot (spec.md §4.7
// step 1).
func (e *Environment) GetReference(name string) (value.Reference, bool) {
	_, b, ok := e.lookupBinding(name)
	if !ok || !b.initialized {
		return value.Reference{}, false
	}
	v, ok := e.heap.get(b.slot)
	if !ok || value.IsBasic(v) {
		return value.Reference{}, false
	}
	return value.Reference{Slot: b.slot, Name: name}, true
}

// BindReference creates a local binding in this scope that aliases an
// existing heap slot rather than allocating a new one (spec.md §4.7 step 3,
// and GLOSSARY "Reference").
func (e *Environment) BindReference(name string, ref value.Reference, typ value.Type, mutable bool) error {
	e.locals.Put(name, &binding{slot: ref.Slot, owned: false, mutable: mutable, typ: typ, initialized: true})
	return nil
}

// HeapSnapshot returns every occupied heap slot, for the #heap
// introspection query (spec.md §6).
func (e *Environment) HeapSnapshot() []value.HeapEntry {
	return e.heap.snapshot()
}

// Debug writes a trace of v to the configured sink if debug mode is
// enabled.
func (e *Environment) Debug(v value.Value) {
	if e.debugEnabled && e.debugWriter != nil {
		io.WriteString(e.debugWriter, "dbg: "+v.String()+"\n")
	}
}

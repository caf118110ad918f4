package value

import "fmt"

// The runtime error taxonomy of spec.md §7. Each is a distinct Go type so
// callers can dispatch on kind with errors.As rather than string matching.

// VariableNotFoundError is returned by Lookup/Assign when no binding named
// Name exists anywhere in the scope chain.
type VariableNotFoundError struct{ Name string }

func (e *VariableNotFoundError) Error() string {
	return fmt.Sprintf("variable not found: %s", e.Name)
}

// VariableNotInitializedError is returned by Lookup when the binding exists
// but was only declare'd, never assigned.
type VariableNotInitializedError struct{ Name string }

func (e *VariableNotInitializedError) Error() string {
	return fmt.Sprintf("variable not initialized: %s", e.Name)
}

// ValueOutOfBoundsError is returned when a numeric value does not fit the
// declared width's range.
type ValueOutOfBoundsError struct {
	Name  string
	Type  Type
	Value Value
}

func (e *ValueOutOfBoundsError) Error() string {
	return fmt.Sprintf("value %s out of bounds for type %s (variable %s)", e.Value, e.Type, e.Name)
}

// ValueNotOfTypeError is returned when a value fails a structural type check.
type ValueNotOfTypeError struct {
	Name  string
	Type  Type
	Value Value
}

func (e *ValueNotOfTypeError) Error() string {
	return fmt.Sprintf("value %s is not of type %s (variable %s)", e.Value, e.Type, e.Name)
}

// TupleLengthMismatchError is returned by the type check when a tuple
// value's element count differs from the tuple type's leaf count.
type TupleLengthMismatchError struct {
	Want, Got int
}

func (e *TupleLengthMismatchError) Error() string {
	return fmt.Sprintf("tuple length mismatch: want %d leaves, got %d", e.Want, e.Got)
}

// CannotAssignToImmutableError is returned by Assign on an already
// initialized immutable binding.
type CannotAssignToImmutableError struct{ Name string }

func (e *CannotAssignToImmutableError) Error() string {
	return fmt.Sprintf("cannot assign to immutable variable: %s", e.Name)
}

// CannotInferTypeError is returned when a value has no inference rule
// (spec.md §4.4 "Type inference").
type CannotInferTypeError struct{ Value Value }

func (e *CannotInferTypeError) Error() string {
	return fmt.Sprintf("cannot infer type of value: %s", e.Value)
}

// TypeNotImplementedError describes a recognized-but-unsupported type
// position. No operation in this module returns it: the type check accepts
// a generic wherever a type is expected.
type TypeNotImplementedError struct{ Type Type }

func (e *TypeNotImplementedError) Error() string {
	return fmt.Sprintf("type not implemented: %s", e.Type)
}

// ValueNotOfTupleTypeError is returned when applying a tuple type's
// structure to a non-tuple value.
type ValueNotOfTupleTypeError struct{ Value Value }

func (e *ValueNotOfTupleTypeError) Error() string {
	return fmt.Sprintf("value is not of tuple type: %s", e.Value)
}

// BinaryOperationError::CannotPerform — an operator with no defined rule for
// the concrete pair of operand value types.
type BinaryOperationError struct {
	Op          string
	Left, Right Value
}

func (e *BinaryOperationError) Error() string {
	return fmt.Sprintf("cannot perform %s on %s and %s", e.Op, e.Left.TypeName(), e.Right.TypeName())
}

// UnaryOperationError::CannotPerform — a unary operator with no defined rule
// for the concrete operand value type.
type UnaryOperationError struct {
	Op      string
	Operand Value
}

func (e *UnaryOperationError) Error() string {
	return fmt.Sprintf("cannot perform %s on %s", e.Op, e.Operand.TypeName())
}

// NoVariableAtHeapIndexError is returned when dereferencing a stale or
// invalid heap slot index.
type NoVariableAtHeapIndexError struct{ Index int }

func (e *NoVariableAtHeapIndexError) Error() string {
	return fmt.Sprintf("no variable at heap index %d", e.Index)
}

// FunctionNotFoundError is returned by CallFunction/LookupFunction when no
// function with the given name is declared in the scope chain.
type FunctionNotFoundError struct{ Name string }

func (e *FunctionNotFoundError) Error() string {
	return fmt.Sprintf("function not found: %s", e.Name)
}

// InvalidFunctionCallError covers malformed call sites: ambiguous or absent
// prefix-name resolution, duplicate named arguments, arity mismatches that
// are not simply a missing parameter.
type InvalidFunctionCallError struct{ Reason string }

func (e *InvalidFunctionCallError) Error() string {
	return fmt.Sprintf("invalid function call: %s", e.Reason)
}

// CannotMakeTupleTypeError describes a type tuple that cannot be built to
// match an identifier tuple's structure (spec.md §4.2 "CannotBuildTupleType"
// surfaced at the type layer as CannotMakeTupleType, spec.md §7). No
// operation in this module returns it: a structure mismatch while applying a
// declared type is reported as tuple.ErrCannotPairUp.
type CannotMakeTupleTypeError struct{ Reason string }

func (e *CannotMakeTupleTypeError) Error() string {
	return fmt.Sprintf("cannot make tuple type: %s", e.Reason)
}

// AssignmentError is returned by Declare/DeclareAssign when a name is
// already bound in the same scope.
type AssignmentError struct{ Reason string }

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("assignment error: %s", e.Reason)
}

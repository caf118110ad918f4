package environment

import (
	"math"

	"github.com/loop-lang/loop/lang/tuple"
	"github.com/loop-lang/loop/lang/value"
)

// inferType implements spec.md §4.4's "Type inference" table: Int -> I32,
// Float -> F32, Bool -> Bool, String -> String, Tuple -> Tuple of inferred
// element types; anything else is an error.
func inferType(v value.Value) (value.Type, error) {
	switch v := v.(type) {
	case value.Int:
		return value.I32Type, nil
	case value.Float:
		return value.F32Type, nil
	case value.Bool:
		return value.BoolType, nil
	case value.String:
		return value.StringType, nil
	case value.Tuple:
		items := make([]tuple.Tuple[value.Type], len(v.Elems))
		for i, e := range v.Elems {
			t, err := inferType(e)
			if err != nil {
				return value.Type{}, err
			}
			items[i] = tuple.NewElement(t)
		}
		return value.TupleTypeOf(tuple.NewList(items)), nil
	default:
		return value.Type{}, &value.CannotInferTypeError{Value: v}
	}
}

type boundsEntry struct {
	min, max int64
}

// numericBounds is the per-width numeric range table of spec.md §4.4
// ("Bounds checking"). Widths not present here (F32, F64) accept any Float
// or Int value, with no range check, and are handled separately.
var numericBounds = map[value.TypeKind]boundsEntry{
	value.TU8:  {0, math.MaxUint8},
	value.TU16: {0, math.MaxUint16},
	value.TU32: {0, math.MaxUint32},
	value.TU64: {0, math.MaxInt64}, // conservative: Go's Int is signed 64-bit
	value.TI16: {math.MinInt16, math.MaxInt16},
	value.TI32: {math.MinInt32, math.MaxInt32},
	value.TI64: {math.MinInt64, math.MaxInt64},
}

// checkBounds verifies that an Int value fits within t's declared numeric
// width, or, when t is a float width, that v is a Float or Int (no range
// check is made; spec.md: "float widths also accept Int values").
func checkBounds(name string, t value.Type, v value.Value) error {
	if entry, ok := numericBounds[t.Kind]; ok {
		i, ok := v.(value.Int)
		if !ok {
			return &value.ValueNotOfTypeError{Name: name, Type: t, Value: v}
		}
		if int64(i) < entry.min || int64(i) > entry.max {
			return &value.ValueOutOfBoundsError{Name: name, Type: t, Value: v}
		}
		return nil
	}
	if t.Kind == value.TF32 || t.Kind == value.TF64 {
		switch v.(type) {
		case value.Float, value.Int:
			return nil
		default:
			return &value.ValueNotOfTypeError{Name: name, Type: t, Value: v}
		}
	}
	return nil
}

// checkType is the structural type checker of spec.md §4.4: Tuple(types)
// matches Value::Tuple(values) of equal length elementwise; Option(T)
// accepts None or a T; FnType accepts Fn; Any accepts anything; numeric
// widths and Bool/String check directly; out-of-range numerics defer to
// checkBounds.
func checkType(name string, t value.Type, v value.Value) error {
	switch t.Kind {
	case value.TAny:
		return nil
	case value.TOption:
		if _, ok := v.(value.None); ok {
			return nil
		}
		return checkType(name, *t.Elem, v)
	case value.TTuple:
		tv, ok := v.(value.Tuple)
		if !ok {
			return &value.ValueNotOfTupleTypeError{Value: v}
		}
		leaves := t.Tuple.Leaves()
		if len(leaves) != len(tv.Elems) {
			return &value.TupleLengthMismatchError{Want: len(leaves), Got: len(tv.Elems)}
		}
		for i, leaf := range leaves {
			if err := checkType(name, leaf, tv.Elems[i]); err != nil {
				return err
			}
		}
		return nil
	case value.TFn:
		if _, ok := v.(value.Fn); ok {
			return nil
		}
		return &value.ValueNotOfTypeError{Name: name, Type: t, Value: v}
	case value.TBool:
		if _, ok := v.(value.Bool); ok {
			return nil
		}
		return &value.ValueNotOfTypeError{Name: name, Type: t, Value: v}
	case value.TString:
		if _, ok := v.(value.String); ok {
			return nil
		}
		return &value.ValueNotOfTypeError{Name: name, Type: t, Value: v}
	case value.TGeneric, value.TUserDefined:
		// no user-defined type registry in this core (Non-goals); accept
		// anything structurally, mirroring Any.
		return nil
	default:
		return checkBounds(name, t, v)
	}
}

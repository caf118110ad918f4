package value

import (
	"fmt"
	"strings"

	"github.com/loop-lang/loop/lang/tuple"
)

// TypeKind is the closed set of static type variants (spec.md §3).
type TypeKind uint8

const (
	TU8 TypeKind = iota
	TU16
	TU32
	TU64
	TI16
	TI32
	TI64
	TF32
	TF64
	TBool
	TString
	TOption
	TTuple
	TFn
	TGeneric
	TUserDefined
	TAny
)

var typeKindNames = [...]string{
	TU8: "u8", TU16: "u16", TU32: "u32", TU64: "u64",
	TI16: "i16", TI32: "i32", TI64: "i64",
	TF32: "f32", TF64: "f64",
	TBool: "bool", TString: "string", TAny: "any",
}

// Type is the static type of a binding or value. It is a tagged union
// encoded as a struct rather than an interface so that it can be stored by
// value in Binding and compared structurally without type assertions.
type Type struct {
	Kind     TypeKind
	Elem     *Type              // set when Kind == TOption
	Tuple    *tuple.Tuple[Type] // set when Kind == TTuple
	Sig      *Signature         // set when Kind == TFn
	Generic  rune               // set when Kind == TGeneric
	UserName string             // set when Kind == TUserDefined
}

func (t Type) String() string {
	switch t.Kind {
	case TOption:
		return t.Elem.String() + "?"
	case TTuple:
		parts := make([]string, 0, t.Tuple.Len())
		for _, leaf := range t.Tuple.Leaves() {
			parts = append(parts, leaf.String())
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case TFn:
		return t.Sig.String()
	case TGeneric:
		return string(t.Generic)
	case TUserDefined:
		return t.UserName
	default:
		if int(t.Kind) < len(typeKindNames) {
			return typeKindNames[t.Kind]
		}
		return "?"
	}
}

// IsBasic reports whether t is one of the scalar numeric, boolean or string
// types (spec.md §3: "A type is basic iff it is scalar").
func (t Type) IsBasic() bool {
	switch t.Kind {
	case TU8, TU16, TU32, TU64, TI16, TI32, TI64, TF32, TF64, TBool, TString:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether t is one of the integer or float width types.
func (t Type) IsNumeric() bool {
	switch t.Kind {
	case TU8, TU16, TU32, TU64, TI16, TI32, TI64, TF32, TF64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether t is F32 or F64.
func (t Type) IsFloat() bool { return t.Kind == TF32 || t.Kind == TF64 }

func OptionOf(inner Type) Type { return Type{Kind: TOption, Elem: &inner} }
func TupleTypeOf(t tuple.Tuple[Type]) Type { return Type{Kind: TTuple, Tuple: &t} }
func FnTypeOf(sig Signature) Type          { return Type{Kind: TFn, Sig: &sig} }
func GenericOf(r rune) Type                { return Type{Kind: TGeneric, Generic: r} }
func UserDefinedOf(name string) Type       { return Type{Kind: TUserDefined, UserName: name} }

var (
	U8Type     = Type{Kind: TU8}
	U16Type    = Type{Kind: TU16}
	U32Type    = Type{Kind: TU32}
	U64Type    = Type{Kind: TU64}
	I16Type    = Type{Kind: TI16}
	I32Type    = Type{Kind: TI32}
	I64Type    = Type{Kind: TI64}
	F32Type    = Type{Kind: TF32}
	F64Type    = Type{Kind: TF64}
	BoolType   = Type{Kind: TBool}
	StringType = Type{Kind: TString}
	AnyType    = Type{Kind: TAny}
)

// Param is one (name, type) entry of a function signature, kept as an
// ordered slice (rather than a map) so that declaration order is preserved
// for positional-argument binding (spec.md §4.7).
type Param struct {
	Name string
	Type Type
}

// Signature is a function's parameter list plus optional return type.
type Signature struct {
	Params []Param
	Return *Type
}

func (s Signature) String() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = fmt.Sprintf("%s: %s", p.Name, p.Type)
	}
	ret := ""
	if s.Return != nil {
		ret = " -> " + s.Return.String()
	}
	return "(" + strings.Join(parts, ", ") + ")" + ret
}

// ParamNames returns the signature's parameter names in declaration order.
func (s Signature) ParamNames() []string {
	names := make([]string, len(s.Params))
	for i, p := range s.Params {
		names[i] = p.Name
	}
	return names
}

// ParamType returns the declared type of the named parameter.
func (s Signature) ParamType(name string) (Type, bool) {
	for _, p := range s.Params {
		if p.Name == name {
			return p.Type, true
		}
	}
	return Type{}, false
}

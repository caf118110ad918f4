package parser

import (
	"github.com/loop-lang/loop/lang/token"
	"github.com/loop-lang/loop/lang/tuple"
	"github.com/loop-lang/loop/lang/value"
)

// parseType parses a single type annotation: a base type (u8..f64, bool,
// string, any), a generic single-letter type parameter, a user-defined
// (capitalized-identifier) type, a parenthesized tuple type, or any of those
// suffixed with '?' for Option (spec.md §3 "Type").
func parseType(tokens []token.Token) (value.Type, error) {
	if len(tokens) == 0 {
		return value.Type{}, &ParseError{Kind: UnexpectedEndOfInput}
	}

	optional := false
	if tokens[len(tokens)-1].Kind == token.QUESTION {
		optional = true
		tokens = tokens[:len(tokens)-1]
	}

	t, err := parseTypeCore(tokens)
	if err != nil {
		return value.Type{}, err
	}
	if optional {
		return value.OptionOf(t), nil
	}
	return t, nil
}

func parseTypeCore(tokens []token.Token) (value.Type, error) {
	if len(tokens) == 0 {
		return value.Type{}, &ParseError{Kind: UnexpectedEndOfInput}
	}

	if isInParens(tokens) {
		return parseTupleType(tokens)
	}

	if idx, err := findFirstTokenSkipBrackets(token.COMMA, tokens); err == nil && idx != -1 {
		return parseTupleType(tokens)
	}

	if len(tokens) == 1 {
		tok := tokens[0]
		switch {
		case tok.Kind.IsBaseType():
			return baseTypeOf(tok.Kind), nil
		case tok.Kind == token.GENERIC:
			return value.GenericOf(rune(tok.Raw[0])), nil
		case tok.Kind == token.IDENT && len(tok.Raw) == 1 && tok.Raw[0] >= 'a' && tok.Raw[0] <= 'z':
			// the scanner emits a single lowercase letter as IDENT; in a type
			// position it is a generic type parameter.
			return value.GenericOf(rune(tok.Raw[0])), nil
		case tok.Kind == token.USERDEFINED:
			return value.UserDefinedOf(tok.Raw), nil
		}
		return value.Type{}, &ParseError{Kind: UnexpectedToken, Pos: tok.Pos, Tok: &tok}
	}

	if tokens[0].Kind == token.FN {
		sig, rest, err := parseSignature(tokens[1:])
		if err != nil {
			return value.Type{}, err
		}
		if len(rest) != 0 {
			return value.Type{}, &ParseError{Kind: InvalidExpression, Pos: tokens[0].Pos, Msg: "trailing tokens after fn type"}
		}
		return value.FnTypeOf(sig), nil
	}

	return value.Type{}, &ParseError{Kind: InvalidExpression, Pos: tokens[0].Pos, Msg: "cannot parse type"}
}

func baseTypeOf(k token.Kind) value.Type {
	switch k {
	case token.U8:
		return value.U8Type
	case token.U16:
		return value.U16Type
	case token.U32:
		return value.U32Type
	case token.U64:
		return value.U64Type
	case token.I16:
		return value.I16Type
	case token.I32:
		return value.I32Type
	case token.I64:
		return value.I64Type
	case token.F32:
		return value.F32Type
	case token.F64:
		return value.F64Type
	case token.TBOOL:
		return value.BoolType
	case token.TSTRING:
		return value.StringType
	default:
		return value.AnyType
	}
}

// parseTupleType parses a parenthesized, comma-separated type list into a
// nested tuple.Tuple[value.Type], recursing for nested parenthesized groups.
func parseTupleType(tokens []token.Token) (value.Type, error) {
	inner := stripOuterParens(tokens)
	if len(inner) == 0 {
		return value.TupleTypeOf(tuple.NewEmpty[value.Type]()), nil
	}
	t, err := parseTypeTuple(inner)
	if err != nil {
		return value.Type{}, err
	}
	return value.TupleTypeOf(t), nil
}

// parseTypeTuple builds the nested tuple.Tuple[value.Type] structure for a
// type annotation's comma-separated segments.
func parseTypeTuple(tokens []token.Token) (tuple.Tuple[value.Type], error) {
	segs := splitTopLevelCommas(tokens)
	if len(segs) == 1 {
		seg := stripOuterParens(segs[0])
		if isInParens(segs[0]) {
			sub, err := parseTypeTuple(seg)
			if err != nil {
				return tuple.Tuple[value.Type]{}, err
			}
			return sub, nil
		}
		t, err := parseTypeCore(segs[0])
		if err != nil {
			return tuple.Tuple[value.Type]{}, err
		}
		return tuple.NewElement(t), nil
	}
	items := make([]tuple.Tuple[value.Type], len(segs))
	for i, seg := range segs {
		if len(seg) == 0 {
			return tuple.Tuple[value.Type]{}, &ParseError{Kind: CannotBuildTupleType, Msg: "empty tuple type element"}
		}
		if isInParens(seg) {
			sub, err := parseTypeTuple(stripOuterParens(seg))
			if err != nil {
				return tuple.Tuple[value.Type]{}, err
			}
			items[i] = sub
			continue
		}
		t, err := parseTypeCore(seg)
		if err != nil {
			return tuple.Tuple[value.Type]{}, err
		}
		items[i] = tuple.NewElement(t)
	}
	return tuple.NewList(items), nil
}

// parseSignature parses a function signature's `(params) [-> type]` tail,
// where tokens begins right after the `fn` keyword (and any name). It
// returns the unconsumed remainder, which for a declaration is the `{ ... }`
// body and for a type annotation should be empty.
func parseSignature(tokens []token.Token) (value.Signature, []token.Token, error) {
	if len(tokens) == 0 || tokens[0].Kind != token.LPAREN {
		return value.Signature{}, nil, &ParseError{Kind: IncorrectFunctionCallSyntax, Msg: "expected ( after fn"}
	}
	close, err := findMatchingBracket(tokens, 0)
	if err != nil {
		return value.Signature{}, nil, err
	}
	paramToks := tokens[1:close]
	rest := tokens[close+1:]

	var params []value.Param
	seen := make(map[string]bool)
	if len(paramToks) > 0 {
		for _, seg := range splitTopLevelCommas(paramToks) {
			if len(seg) == 0 {
				continue
			}
			colon, err := findFirstTokenSkipBrackets(token.COLON, seg)
			if err != nil || colon == -1 {
				return value.Signature{}, nil, &ParseError{Kind: IncorrectFunctionCallSyntax, Pos: seg[0].Pos, Msg: "expected name: type in parameter list"}
			}
			if colon != 1 || seg[0].Kind != token.IDENT {
				return value.Signature{}, nil, &ParseError{Kind: IncorrectFunctionCallSyntax, Pos: seg[0].Pos, Msg: "expected single identifier before :"}
			}
			if seen[seg[0].Raw] {
				return value.Signature{}, nil, &ParseError{Kind: IncorrectFunctionCallSyntax, Pos: seg[0].Pos, Msg: "duplicate parameter name " + seg[0].Raw}
			}
			seen[seg[0].Raw] = true
			typ, err := parseType(seg[colon+1:])
			if err != nil {
				return value.Signature{}, nil, err
			}
			params = append(params, value.Param{Name: seg[0].Raw, Type: typ})
		}
	}

	var ret *value.Type
	if len(rest) > 0 && rest[0].Kind == token.ARROW {
		brace, err := findFirstTokenSkipBrackets(token.LBRACE, rest)
		end := len(rest)
		if err == nil && brace != -1 {
			end = brace
		}
		typ, err := parseType(rest[1:end])
		if err != nil {
			return value.Signature{}, nil, err
		}
		ret = &typ
		rest = rest[end:]
	}

	return value.Signature{Params: params, Return: ret}, rest, nil
}

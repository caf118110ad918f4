package parser

import (
	"github.com/loop-lang/loop/lang/ast"
	"github.com/loop-lang/loop/lang/token"
	"github.com/loop-lang/loop/lang/tuple"
	"github.com/loop-lang/loop/lang/value"
)

// parseIdentifierTuple builds the nested tuple.Tuple[string] structure for a
// destructuring target's comma-separated, possibly-nested-parenthesized
// identifier list. Every leaf must be a bare identifier (spec.md §4.2
// "assignment tuple must contain only identifiers").
func parseIdentifierTuple(tokens []token.Token) (tuple.Tuple[string], error) {
	tokens = stripOuterParens(tokens)
	if len(tokens) == 0 {
		return tuple.NewEmpty[string](), nil
	}
	segs := splitTopLevelCommas(tokens)
	if len(segs) == 1 && !isInParens(tokens) {
		if len(tokens) != 1 || tokens[0].Kind != token.IDENT {
			return tuple.Tuple[string]{}, &ParseError{Kind: AssignmentTupleNotIdentifier, Pos: tokens[0].Pos}
		}
		return tuple.NewElement(tokens[0].Raw), nil
	}
	items := make([]tuple.Tuple[string], len(segs))
	for i, seg := range segs {
		sub, err := parseIdentifierTuple(seg)
		if err != nil {
			return tuple.Tuple[string]{}, err
		}
		items[i] = sub
	}
	return tuple.NewList(items), nil
}

var compoundAssignOps = map[token.Kind]token.Kind{
	token.PLUSEQ:    token.PLUS,
	token.MINUSEQ:   token.MINUS,
	token.STAREQ:    token.STAR,
	token.SLASHEQ:   token.SLASH,
	token.PERCENTEQ: token.PERCENT,
}

var assignMarkers = []token.Kind{
	token.WALRUS, token.COLON, token.ASSIGN,
	token.PLUSEQ, token.MINUSEQ, token.STAREQ, token.SLASHEQ, token.PERCENTEQ,
}

// tryParseDeclarationOrAssignment recognizes the declaration/assignment
// family of forms (spec.md §4.2 "Destructuring assignment / declaration"):
//
//	let NAMES [: TYPES] [= EXPR]
//	mut NAMES [: TYPES] [= EXPR]
//	NAMES := EXPR
//	NAMES = EXPR
//	NAME += EXPR  (and -=, *=, /=, %=)
//
// It returns ok=false (with a nil error) when tokens does not begin with
// this family at all, so the caller can fall through to the rest of the
// dispatch chain.
func tryParseDeclarationOrAssignment(tokens []token.Token) (ast.Node, bool, error) {
	if len(tokens) == 0 {
		return nil, false, nil
	}

	at := tokens[0].Pos
	mutable := false
	isDeclare := false
	switch tokens[0].Kind {
	case token.LET:
		isDeclare = true
		tokens = tokens[1:]
		if len(tokens) > 0 && tokens[0].Kind == token.MUT {
			mutable = true
			tokens = tokens[1:]
		}
	case token.MUT:
		isDeclare = true
		mutable = true
		tokens = tokens[1:]
	}

	idx, marker, err := findFirstTokenAnyOfSkipBrackets(assignMarkers, tokens)
	if err != nil {
		return nil, false, err
	}
	if idx == -1 {
		if isDeclare {
			return nil, false, &ParseError{Kind: InvalidExpression, Pos: at, Msg: "declaration has no type or initializer"}
		}
		return nil, false, nil
	}

	namesToks := tokens[:idx]
	if len(namesToks) == 0 {
		return nil, false, nil
	}
	names, err := parseIdentifierTuple(namesToks)
	if err != nil {
		return nil, false, err
	}

	if op, ok := compoundAssignOps[marker]; ok {
		if isDeclare {
			return nil, false, &ParseError{Kind: InvalidExpression, Pos: at, Msg: "cannot use compound assignment in a declaration"}
		}
		rhs, err := parseExpr(tokens[idx+1:])
		if err != nil {
			return nil, false, err
		}
		if !names.IsElement() {
			return nil, false, &ParseError{Kind: AssignmentTupleNotIdentifier, Pos: at, Msg: "compound assignment requires a single name"}
		}
		name := names.Element()
		expr := &ast.BinaryOp{At: at, Op: op, Left: &ast.Identifier{At: at, Name: name}, Right: rhs}
		return &ast.VariableAssignment{At: at, Names: names, Expr: expr}, true, nil
	}

	switch marker {
	case token.WALRUS:
		expr, err := parseExpr(tokens[idx+1:])
		if err != nil {
			return nil, false, err
		}
		return &ast.VariableDeclarationAssignment{At: at, Mutable: mutable, Type: nil, Names: names, Expr: expr}, true, nil

	case token.ASSIGN:
		expr, err := parseExpr(tokens[idx+1:])
		if err != nil {
			return nil, false, err
		}
		if isDeclare {
			return &ast.VariableDeclarationAssignment{At: at, Mutable: mutable, Type: nil, Names: names, Expr: expr}, true, nil
		}
		return &ast.VariableAssignment{At: at, Names: names, Expr: expr}, true, nil

	case token.COLON:
		rest := tokens[idx+1:]
		eqIdx, err := findFirstTokenSkipBrackets(token.ASSIGN, rest)
		if err != nil {
			return nil, false, err
		}
		if eqIdx == -1 {
			if !isDeclare {
				return nil, false, &ParseError{Kind: InvalidExpression, Pos: at, Msg: "type annotation outside of a declaration"}
			}
			typeTuple, err := parseTypeTupleFor(names, rest)
			if err != nil {
				return nil, false, err
			}
			return &ast.VariableDeclaration{At: at, Mutable: mutable, Type: typeTuple, Names: names}, true, nil
		}
		typeTuple, err := parseTypeTupleFor(names, rest[:eqIdx])
		if err != nil {
			return nil, false, err
		}
		expr, err := parseExpr(rest[eqIdx+1:])
		if err != nil {
			return nil, false, err
		}
		return &ast.VariableDeclarationAssignment{At: at, Mutable: mutable, Type: &typeTuple, Names: names, Expr: expr}, true, nil
	}

	return nil, false, nil
}

// parseTypeTupleFor parses a declaration's type annotation and broadcasts it
// across names' structure via tuple.ApplyStructure, so a single declared
// type (e.g. `let (x, y): i32`) expands to match a multi-name destructuring
// target (spec.md tuple.ApplyStructure doc comment).
func parseTypeTupleFor(names tuple.Tuple[string], typeToks []token.Token) (tuple.Tuple[value.Type], error) {
	if len(typeToks) == 0 {
		return tuple.Tuple[value.Type]{}, &ParseError{Kind: CannotBuildTupleType, Msg: "missing type after :"}
	}
	raw, err := parseTypeTuple(typeToks)
	if err != nil {
		return tuple.Tuple[value.Type]{}, err
	}
	return tuple.ApplyStructure(names, raw)
}

// Package parser turns a cleaned token stream into an ast.Node tree. It
// implements spec.md §4.2's dispatch chain: a bracket-aware, left-to-right
// scan that never builds a formal grammar or precedence table, instead
// trying each construct in a fixed priority order and recursing on the
// pieces either side of whatever it finds first (spec.md §9 "Expression
// dispatch is order-sensitive, not precedence-based").
package parser

import (
	"github.com/loop-lang/loop/lang/ast"
	"github.com/loop-lang/loop/lang/scanner"
	"github.com/loop-lang/loop/lang/token"
	"github.com/loop-lang/loop/lang/value"
)

// Parse turns a cleaned (whitespace/comment-stripped) token stream into the
// program's root node. It repeatedly finds the next top-level expression's
// boundary and parses it, the way the teacher's own top-level driver walks
// a flat statement list.
func Parse(tokens []token.Token) (*ast.MultiExpression, error) {
	if n := len(tokens); n > 0 && tokens[n-1].Kind == token.EOF {
		tokens = tokens[:n-1]
	}
	if len(tokens) == 0 {
		return &ast.MultiExpression{}, nil
	}

	at := tokens[0].Pos
	var children []ast.Node
	for len(tokens) > 0 {
		boundary := findExprPossibleBoundary(tokens, true, true)
		if boundary == 0 {
			boundary = len(tokens)
		}
		node, err := parseExpr(tokens[:boundary])
		if err != nil {
			return nil, err
		}
		children = append(children, node)
		tokens = tokens[boundary:]
	}
	return &ast.MultiExpression{At: at, Children_: children}, nil
}

// ParseString tokenizes and parses source in one step. It is injected into
// environment.New as the value.ParseFunc callback string interpolation uses
// to re-parse each {expr} span (spec.md §4.4 "String interpolation").
func ParseString(source string) (value.Evaluable, error) {
	toks, err := scanner.Tokenize(source)
	if err != nil {
		return nil, err
	}
	toks = scanner.CleanTokens(toks)
	return Parse(toks)
}

// parseScope expects tokens to be a full `{ ... }` block and parses its
// contents as a sequence of top-level expressions.
func parseScope(tokens []token.Token) (*ast.Scope, error) {
	if len(tokens) < 2 || tokens[0].Kind != token.LBRACE || tokens[len(tokens)-1].Kind != token.RBRACE {
		return nil, &ParseError{Kind: UnexpectedBeginningOfBlock, Pos: posOf(tokens)}
	}
	at := tokens[0].Pos
	inner := tokens[1 : len(tokens)-1]

	var children []ast.Node
	for len(inner) > 0 {
		boundary := findExprPossibleBoundary(inner, true, true)
		if boundary == 0 {
			boundary = len(inner)
		}
		node, err := parseExpr(inner[:boundary])
		if err != nil {
			return nil, err
		}
		children = append(children, node)
		inner = inner[boundary:]
	}
	return &ast.Scope{At: at, Children_: children}, nil
}

// binaryPriority lists the individual operators parseExpr tries, in order.
// Each entry is tried alone: the first occurrence of that exact operator in
// binary position anywhere in tokens splits the expression into Left/Right
// and recurses, and the operator tried first becomes the outermost (hence
// lowest-binding) node. This is deliberately not a real precedence table
// (spec.md §9 "Open question: operator precedence") — it reproduces
// original_source/src/parser/binary.rs:60-91's two fixed lists verbatim:
// bool tokens (And, Or, Not, Eq, Neq, Gt, Gte, Lt, Lte) are tried before
// math tokens (Sub, Add, Div, Mul, Mod, Pow, BitAnd, BitOr, Shl, Shr),
// matching expr.rs's "any bool token present anywhere selects the bool
// list over the math list" dispatch. There is no bitwise-xor operator in
// this language's token set (`~` is unary-only, see token.CIRCUMFLEX), so
// the original's BitXor entry has no slot here. NOT is kept at its
// original list position for fidelity, but findBinarySplit's binary-
// position guard (previous token must end an expression) means it can
// never actually match, since `not` only ever appears as a unary prefix.
var binaryPriority = [][]token.Kind{
	{token.AND},
	{token.OR},
	{token.NOT},
	{token.EQL},
	{token.NEQ},
	{token.GT},
	{token.GE},
	{token.LT},
	{token.LE},
	{token.MINUS},
	{token.PLUS},
	{token.SLASH},
	{token.STAR},
	{token.PERCENT},
	{token.STARSTAR},
	{token.AMP},
	{token.PIPE},
	{token.LTLT},
	{token.GTGT},
}

// parseExpr is the single-expression dispatcher described by spec.md §4.2.
func parseExpr(tokens []token.Token) (ast.Node, error) {
	if len(tokens) == 0 {
		return &ast.EmptyNode{}, nil
	}

	if isInParens(tokens) {
		inner := tokens[1 : len(tokens)-1]
		if isTupleExpr(inner) || len(inner) == 0 {
			return parseTupleExpr(tokens[0].Pos, inner)
		}
		return parseExpr(inner)
	}

	if tokens[0].Kind == token.BREAK && len(tokens) == 1 {
		return &ast.Break{At: tokens[0].Pos}, nil
	}
	if tokens[0].Kind == token.CONTINUE && len(tokens) == 1 {
		return &ast.Continue{At: tokens[0].Pos}, nil
	}

	if len(tokens) == 1 {
		return parseAtom(tokens[0])
	}

	if tokens[0].Kind == token.IDENT && tokens[1].Kind == token.LPAREN {
		return parseFnCall(tokens)
	}

	if tokens[0].Kind == token.FN {
		return parseFnDeclaration(tokens)
	}

	if tokens[0].Kind.IsLoopKeyword() {
		return parseLoopExpr(tokens)
	}

	if tokens[0].Kind.IsConditionalKeyword() {
		return parseConditional(tokens)
	}

	if tokens[0].Kind == token.RET {
		expr, err := parseExprOrEmpty(tokens[1:])
		if err != nil {
			return nil, err
		}
		return &ast.Ret{At: tokens[0].Pos, Expr: expr}, nil
	}

	if node, ok, err := tryParseDeclarationOrAssignment(tokens); err != nil {
		return nil, err
	} else if ok {
		return node, nil
	}

	if isTupleExpr(tokens) {
		return parseTupleExpr(tokens[0].Pos, tokens)
	}

	for _, group := range binaryPriority {
		idx, kind, err := findBinarySplit(group, tokens)
		if err != nil {
			return nil, err
		}
		if idx == -1 || idx == len(tokens)-1 {
			continue
		}
		left, err := parseExpr(tokens[:idx])
		if err != nil {
			return nil, err
		}
		right, err := parseExpr(tokens[idx+1:])
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{At: tokens[idx].Pos, Op: kind, Left: left, Right: right}, nil
	}

	if node, err := tryParseUnary(tokens); node != nil || err != nil {
		return node, err
	}

	return nil, &ParseError{Kind: InvalidExpression, Pos: tokens[0].Pos, Msg: "no construct matched"}
}

func parseExprOrEmpty(tokens []token.Token) (ast.Node, error) {
	if len(tokens) == 0 {
		return &ast.EmptyNode{}, nil
	}
	return parseExpr(tokens)
}

// tryParseUnary handles the prefix unary forms: `-x`, `~x`, `not x`, `abs x`,
// `dbg x` (spec.md §4.3).
func tryParseUnary(tokens []token.Token) (ast.Node, error) {
	if len(tokens) < 2 {
		return nil, nil
	}
	head := tokens[0]
	switch head.Kind {
	case token.MINUS, token.CIRCUMFLEX, token.NOT:
		operand, err := parseExpr(tokens[1:])
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{At: head.Pos, Op: head.Kind, Operand: operand}, nil
	case token.ABS:
		operand, err := parseExpr(tokens[1:])
		if err != nil {
			return nil, err
		}
		return &ast.Abs{At: head.Pos, Operand: operand}, nil
	case token.DBG:
		operand, err := parseExpr(tokens[1:])
		if err != nil {
			return nil, err
		}
		return &ast.Dbg{At: head.Pos, Operand: operand}, nil
	}
	return nil, nil
}

// parseTupleExpr splits tokens on top-level commas and parses each segment
// independently, producing an ast.Tuple (spec.md §4.3 "Tuple.eval").
func parseTupleExpr(at token.Pos, tokens []token.Token) (ast.Node, error) {
	segs := splitTopLevelCommas(tokens)
	elems := make([]ast.Node, 0, len(segs))
	for _, seg := range segs {
		if len(seg) == 0 {
			continue
		}
		n, err := parseExpr(seg)
		if err != nil {
			return nil, err
		}
		elems = append(elems, n)
	}
	return &ast.Tuple{At: at, Elems: elems}, nil
}

// parseAtom parses a single token: a literal, `none`, or an identifier.
func parseAtom(tok token.Token) (ast.Node, error) {
	switch tok.Kind {
	case token.INT:
		return &ast.Literal{At: tok.Pos, Value: value.Int(tok.Value.Int)}, nil
	case token.FLOAT:
		return &ast.Literal{At: tok.Pos, Value: value.Float(tok.Value.Float)}, nil
	case token.BOOL:
		return &ast.Literal{At: tok.Pos, Value: value.Bool(tok.Value.Bool)}, nil
	case token.STRING:
		return &ast.Literal{At: tok.Pos, Value: value.String{Text: tok.Value.Str, Raw: tok.Value.RawStr}}, nil
	case token.NONE:
		return &ast.Literal{At: tok.Pos, Value: value.None{}}, nil
	case token.IDENT:
		return &ast.Identifier{At: tok.Pos, Name: tok.Raw}, nil
	default:
		return nil, &ParseError{Kind: UnexpectedToken, Pos: tok.Pos, Tok: &tok}
	}
}

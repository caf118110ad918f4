package parser

import (
	"github.com/loop-lang/loop/lang/ast"
	"github.com/loop-lang/loop/lang/token"
)

// parseLoopExpr parses `loop { }`, `while cond { }` and `for name in a..b { }`
// (spec.md §3 "Loop/While/For", §9 "For-loops").
func parseLoopExpr(tokens []token.Token) (ast.Node, error) {
	at := tokens[0].Pos
	switch tokens[0].Kind {
	case token.LOOP:
		body, rest, err := parseBracedBody(tokens[1:])
		if err != nil {
			return nil, err
		}
		if len(rest) != 0 {
			return nil, &ParseError{Kind: UnexpectedContentBeforeBlock, Pos: rest[0].Pos}
		}
		return &ast.Loop{At: at, Body: body}, nil

	case token.WHILE:
		brace, err := findFirstTokenSkipBrackets(token.LBRACE, tokens[1:])
		if err != nil {
			return nil, err
		}
		if brace == -1 {
			return nil, &ParseError{Kind: NoLoopFound, Pos: at}
		}
		cond, err := parseExpr(tokens[1 : 1+brace])
		if err != nil {
			return nil, err
		}
		body, rest, err := parseBracedBody(tokens[1+brace:])
		if err != nil {
			return nil, err
		}
		if len(rest) != 0 {
			return nil, &ParseError{Kind: UnexpectedContentBeforeBlock, Pos: rest[0].Pos}
		}
		return &ast.While{At: at, Cond: cond, Body: body}, nil

	case token.FOR:
		rest := tokens[1:]
		if len(rest) == 0 || rest[0].Kind != token.IDENT {
			return nil, &ParseError{Kind: NoLoopFound, Pos: at, Msg: "expected loop variable after for"}
		}
		varName := rest[0].Raw
		rest = rest[1:]
		if len(rest) == 0 || rest[0].Kind != token.IN {
			return nil, &ParseError{Kind: NoLoopFound, Pos: at, Msg: "expected in after for variable"}
		}
		rest = rest[1:]

		brace, err := findFirstTokenSkipBrackets(token.LBRACE, rest)
		if err != nil {
			return nil, err
		}
		if brace == -1 {
			return nil, &ParseError{Kind: NoLoopFound, Pos: at}
		}
		rangeExpr, err := parseRange(rest[:brace])
		if err != nil {
			return nil, err
		}
		body, tail, err := parseBracedBody(rest[brace:])
		if err != nil {
			return nil, err
		}
		if len(tail) != 0 {
			return nil, &ParseError{Kind: UnexpectedContentBeforeBlock, Pos: tail[0].Pos}
		}
		return &ast.For{At: at, Var: varName, Range: rangeExpr, Body: body}, nil
	}
	return nil, &ParseError{Kind: NoLoopFound, Pos: at}
}

// parseRange parses the `a..b` bound pair of a for-loop header. The scanner
// tokenizes ".." as two adjacent DOT tokens, since a single-dot field/method
// access operator is not otherwise part of this language's grammar.
func parseRange(tokens []token.Token) (*ast.RangeExpr, error) {
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Kind == token.DOT && tokens[i+1].Kind == token.DOT {
			from, err := parseExpr(tokens[:i])
			if err != nil {
				return nil, err
			}
			to, err := parseExpr(tokens[i+2:])
			if err != nil {
				return nil, err
			}
			return &ast.RangeExpr{At: tokens[0].Pos, From: from, To: to}, nil
		}
	}
	return nil, &ParseError{Kind: InvalidExpression, Pos: tokens[0].Pos, Msg: "expected a..b range in for loop"}
}

// parseBracedBody expects tokens to begin with a `{ ... }` block and returns
// the parsed Scope plus whatever follows the closing brace.
func parseBracedBody(tokens []token.Token) (*ast.Scope, []token.Token, error) {
	if len(tokens) == 0 || tokens[0].Kind != token.LBRACE {
		return nil, nil, &ParseError{Kind: UnexpectedBeginningOfBlock, Pos: posOf(tokens)}
	}
	close, err := findMatchingBracket(tokens, 0)
	if err != nil {
		return nil, nil, err
	}
	scope, err := parseScope(tokens[:close+1])
	if err != nil {
		return nil, nil, err
	}
	return scope, tokens[close+1:], nil
}

func posOf(tokens []token.Token) token.Pos {
	if len(tokens) == 0 {
		return 0
	}
	return tokens[0].Pos
}

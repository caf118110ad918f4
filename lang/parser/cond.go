package parser

import (
	"github.com/loop-lang/loop/lang/ast"
	"github.com/loop-lang/loop/lang/token"
)

// parseConditional parses an if/elif*/else? chain into a single linked
// ast.Conditional (spec.md §4.2 "Conditional chain", §4.3).
func parseConditional(tokens []token.Token) (ast.Node, error) {
	if len(tokens) == 0 || !tokens[0].Kind.IsConditionalKeyword() {
		return nil, &ParseError{Kind: NoConditionalFound}
	}

	link, rest, err := parseConditionalLink(tokens)
	if err != nil {
		return nil, err
	}
	head := link
	for len(rest) > 0 && rest[0].Kind.IsConditionalKeyword() {
		next, r, err := parseConditionalLink(rest)
		if err != nil {
			return nil, err
		}
		link.Next = next
		link = next
		rest = r
	}
	if len(rest) != 0 {
		return nil, &ParseError{Kind: UnexpectedContentBeforeBlock, Pos: rest[0].Pos}
	}
	return head, nil
}

// parseConditionalLink parses a single if/elif/else link and returns the
// unconsumed remainder, which is either empty or the start of the next
// elif/else link.
func parseConditionalLink(tokens []token.Token) (*ast.Conditional, []token.Token, error) {
	at := tokens[0].Pos
	isElse := tokens[0].Kind == token.ELSE
	rest := tokens[1:]

	var cond ast.Node
	if !isElse {
		brace, err := findFirstTokenSkipBrackets(token.LBRACE, rest)
		if err != nil {
			return nil, nil, err
		}
		if brace == -1 {
			return nil, nil, &ParseError{Kind: NoConditionForConditional, Pos: at}
		}
		c, err := parseExpr(rest[:brace])
		if err != nil {
			return nil, nil, err
		}
		cond = c
		rest = rest[brace:]
	}

	if len(rest) == 0 || rest[0].Kind != token.LBRACE {
		return nil, nil, &ParseError{Kind: UnexpectedBeginningOfBlock, Pos: at}
	}
	close, err := findMatchingBracket(rest, 0)
	if err != nil {
		return nil, nil, err
	}
	body, err := parseScope(rest[:close+1])
	if err != nil {
		return nil, nil, err
	}

	return &ast.Conditional{At: at, IsElse: isElse, Cond: cond, Body: body}, rest[close+1:], nil
}

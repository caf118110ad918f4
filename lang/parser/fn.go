package parser

import (
	"github.com/loop-lang/loop/lang/ast"
	"github.com/loop-lang/loop/lang/token"
)

// parseFnDeclaration parses `fn [name] (params) [-> type] { body }` (spec.md
// §3 "FnDeclaration", §4.7). The name is optional: an anonymous fn is a
// first-class value.
func parseFnDeclaration(tokens []token.Token) (ast.Node, error) {
	at := tokens[0].Pos
	rest := tokens[1:]

	name := ""
	if len(rest) > 0 && rest[0].Kind == token.IDENT {
		name = rest[0].Raw
		rest = rest[1:]
	}

	sig, rest, err := parseSignature(rest)
	if err != nil {
		return nil, err
	}

	body, rest, err := parseBracedBody(rest)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, &ParseError{Kind: UnexpectedContentBeforeBlock, Pos: rest[0].Pos}
	}

	return &ast.FnDeclaration{At: at, Name: name, Sig: sig, Body: body}, nil
}

// parseFnCall parses `name(args)`, where each arg is either named
// (`name: expr`) or positional (`expr`) (spec.md §4.7). tokens must begin
// with IDENT LPAREN.
func parseFnCall(tokens []token.Token) (ast.Node, error) {
	at := tokens[0].Pos
	name := tokens[0].Raw
	close, err := findMatchingBracket(tokens, 1)
	if err != nil {
		return nil, err
	}
	if close != len(tokens)-1 {
		return nil, &ParseError{Kind: IncorrectFunctionCallSyntax, Pos: at, Msg: "trailing tokens after function call"}
	}

	argToks := tokens[2:close]
	var args []ast.CallArg
	for _, seg := range splitTopLevelCommas(argToks) {
		if len(seg) == 0 {
			continue
		}
		argName := ""
		exprToks := seg
		if seg[0].Kind == token.IDENT {
			colon, err := findFirstTokenSkipBrackets(token.COLON, seg)
			if err == nil && colon == 1 {
				argName = seg[0].Raw
				exprToks = seg[2:]
			}
		}
		expr, err := parseExpr(exprToks)
		if err != nil {
			return nil, err
		}
		args = append(args, ast.CallArg{Name: argName, Expr: expr})
	}

	return &ast.FnCall{At: at, Name: name, Args: args}, nil
}

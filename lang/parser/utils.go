package parser

import "github.com/loop-lang/loop/lang/token"

// findFirstTokenSkipBrackets is the central primitive of spec.md §4.2: a
// left-to-right scan that jumps over balanced bracket regions as atomic
// units, returning the index of the first occurrence of kind at bracket
// depth zero, or -1 if none exists.
func findFirstTokenSkipBrackets(kind token.Kind, tokens []token.Token) (int, error) {
	i := 0
	for i < len(tokens) {
		if tokens[i].Kind == kind {
			return i, nil
		}
		if tokens[i].Kind.IsOpenBracket() {
			close, err := findMatchingBracket(tokens, i)
			if err != nil {
				return -1, err
			}
			i = close + 1
			continue
		}
		i++
	}
	return -1, nil
}

// findFirstTokenAnyOfSkipBrackets scans left-to-right for the first token
// whose kind is in kinds, skipping balanced bracket regions, returning both
// the index and which kind matched.
func findFirstTokenAnyOfSkipBrackets(kinds []token.Kind, tokens []token.Token) (int, token.Kind, error) {
	i := 0
	for i < len(tokens) {
		for _, k := range kinds {
			if tokens[i].Kind == k {
				return i, k, nil
			}
		}
		if tokens[i].Kind.IsOpenBracket() {
			close, err := findMatchingBracket(tokens, i)
			if err != nil {
				return -1, token.ILLEGAL, err
			}
			i = close + 1
			continue
		}
		i++
	}
	return -1, token.ILLEGAL, nil
}

// findBinarySplit scans left-to-right, skipping balanced bracket regions,
// for the first occurrence of a kind in kinds that sits in binary position
// — i.e. immediately preceded by a token that can end an expression (an
// identifier, literal, or closing paren/bracket). This distinguishes a
// genuine binary operator from the same symbol used as a unary prefix (e.g.
// the MINUS in `-x + 1` is skipped so the PLUS is found instead).
func findBinarySplit(kinds []token.Kind, tokens []token.Token) (int, token.Kind, error) {
	i := 0
	for i < len(tokens) {
		if tokens[i].Kind.IsOpenBracket() {
			close, err := findMatchingBracket(tokens, i)
			if err != nil {
				return -1, token.ILLEGAL, err
			}
			i = close + 1
			continue
		}
		for _, k := range kinds {
			if tokens[i].Kind == k && i > 0 && isExprEndKind(tokens[i-1].Kind) {
				return i, k, nil
			}
		}
		i++
	}
	return -1, token.ILLEGAL, nil
}

func isExprEndKind(k token.Kind) bool {
	switch k {
	case token.IDENT, token.INT, token.FLOAT, token.BOOL, token.STRING, token.NONE,
		token.RPAREN, token.RBRACK:
		return true
	}
	return false
}

// findMatchingBracket returns the index of the bracket that closes the
// opening bracket at tokens[loc].
func findMatchingBracket(tokens []token.Token, loc int) (int, error) {
	open := tokens[loc].Kind
	if !open.IsOpenBracket() {
		return -1, &ParseError{Kind: NoMatchingBracket, Pos: tokens[loc].Pos}
	}
	close := open.MatchingBracket()
	depth := 1
	for i := loc + 1; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return -1, &ParseError{Kind: NoMatchingBracket, Pos: tokens[loc].Pos}
}

// isInParens reports whether tokens is fully wrapped in a single outermost
// `( ... )` pair — i.e. the opening paren's match is the last token.
func isInParens(tokens []token.Token) bool {
	if len(tokens) < 2 || tokens[0].Kind != token.LPAREN {
		return false
	}
	close, err := findMatchingBracket(tokens, 0)
	return err == nil && close == len(tokens)-1
}

// isTupleExpr reports whether tokens, after stripping one layer of
// enclosing parens if fully wrapped, contains a top-level comma.
func isTupleExpr(tokens []token.Token) bool {
	if isInParens(tokens) {
		return isTupleExpr(tokens[1 : len(tokens)-1])
	}
	idx, err := findFirstTokenSkipBrackets(token.COMMA, tokens)
	return err == nil && idx != -1
}

// findExprPossibleBoundary is the bracket-aware trim described in spec.md
// §4.2: it stops the current token slice at the first token that cannot be
// part of the same expression, given assignMode and loopMode. Unlike the
// original, whitespace/newline tokens have already been stripped by
// scanner.CleanTokens, so the "two consecutive value tokens" and
// "newline-newline" stop rules collapse into one check: a literal,
// identifier or closed (...)/[...] group directly followed by a literal or
// identifier (no intervening operator/punctuation/bracket) ends the
// expression.
func findExprPossibleBoundary(tokens []token.Token, assignMode, loopMode bool) int {
	isTypeExpr := len(tokens) > 0 && tokens[0].Kind.IsBaseType()

	cursor := 0
	for cursor < len(tokens) {
		k := tokens[cursor].Kind
		switch {
		case k.IsLoopKeyword():
			if !loopMode && cursor != 0 {
				return cursor
			}
			cursor++
		case k == token.ELIF || k == token.ELSE:
			// always a continuation of a chain already in progress; a
			// leading elif/else with nothing before it is a parse error
			// caught later by parseConditional, not here.
			cursor++
		case k == token.IF || k == token.RET || k == token.BREAK || k == token.CONTINUE:
			if cursor != 0 {
				return cursor
			}
			cursor++
		case k == token.FN || k == token.MODULE || k == token.TYPEKW || k == token.COMP || k == token.IMPL || k == token.DBG || k == token.ABS:
			if cursor == 0 {
				cursor++
				continue
			}
			return cursor
		case k == token.LET || k == token.MUT:
			if !assignMode {
				return cursor
			}
			cursor++
		case k.IsBaseType() || k == token.USERDEFINED || k == token.GENERIC:
			if !isTypeExpr && !assignMode {
				return cursor
			}
			if !assignMode {
				if cursor+1 >= len(tokens) {
					return cursor + 1
				}
				next := tokens[cursor+1].Kind
				if next == token.COMMA || next.IsBracket() {
					cursor++
				} else {
					return cursor + 1
				}
			} else {
				cursor++
			}
		case k == token.IDENT || k == token.INT || k == token.FLOAT || k == token.BOOL || k == token.STRING || k == token.NONE:
			if cursor+1 < len(tokens) {
				next := tokens[cursor+1].Kind
				switch {
				case next.IsOperator() || next.IsPunctuation() || next.IsBracket() || next == token.IN:
					cursor++
				default:
					return cursor + 1
				}
			} else {
				cursor++
			}
		case k.IsBracket():
			if !k.IsOpenBracket() {
				return cursor
			}
			close, err := findMatchingBracket(tokens, cursor)
			if err != nil {
				return cursor
			}
			if k == token.LBRACE {
				// A `{ ... }` is always a block body (this grammar has no
				// brace-delimited literal), so closing one ends the current
				// construct unless it is chained by elif/else.
				if close+1 < len(tokens) && (tokens[close+1].Kind == token.ELIF || tokens[close+1].Kind == token.ELSE) {
					cursor = close + 1
				} else {
					return close + 1
				}
			} else {
				cursor = close + 1
				if cursor < len(tokens) {
					switch tokens[cursor].Kind {
					case token.IDENT, token.INT, token.FLOAT, token.BOOL, token.STRING, token.NONE:
						return cursor
					}
				}
			}
		case k.IsAssignFamily():
			if !assignMode {
				return cursor
			}
			cursor++
		default:
			cursor++
		}
	}
	return cursor
}

package parser

import "github.com/loop-lang/loop/lang/token"

// splitTopLevelCommas splits tokens on every COMMA found at bracket depth
// zero, the way the original's is_tuple_expr/tuple-building walk does. An
// empty input yields no segments.
func splitTopLevelCommas(tokens []token.Token) [][]token.Token {
	if len(tokens) == 0 {
		return nil
	}
	var segments [][]token.Token
	start := 0
	i := 0
	for i < len(tokens) {
		switch {
		case tokens[i].Kind.IsOpenBracket():
			close, err := findMatchingBracket(tokens, i)
			if err != nil {
				i++
				continue
			}
			i = close + 1
		case tokens[i].Kind == token.COMMA:
			segments = append(segments, tokens[start:i])
			i++
			start = i
		default:
			i++
		}
	}
	segments = append(segments, tokens[start:])
	return segments
}

// stripOuterParens removes one layer of enclosing parens if tokens is fully
// wrapped, otherwise returns tokens unchanged.
func stripOuterParens(tokens []token.Token) []token.Token {
	if isInParens(tokens) {
		return tokens[1 : len(tokens)-1]
	}
	return tokens
}

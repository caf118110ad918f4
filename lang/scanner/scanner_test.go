package scanner_test

import (
	"testing"

	"github.com/loop-lang/loop/lang/scanner"
	"github.com/loop-lang/loop/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(t *testing.T, toks []token.Token) []token.Kind {
	t.Helper()
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenizeLiterals(t *testing.T) {
	toks, err := scanner.Tokenize(`1 1.5 1e3 "hi" r'raw {x}' true false none`)
	require.NoError(t, err)
	toks = scanner.CleanTokens(toks)

	assert.Equal(t, []token.Kind{
		token.INT, token.FLOAT, token.FLOAT, token.STRING, token.STRING,
		token.BOOL, token.BOOL, token.NONE, token.EOF,
	}, kinds(t, toks))

	assert.Equal(t, int64(1), toks[0].Int)
	assert.InDelta(t, 1.5, toks[1].Float, 1e-9)
	assert.InDelta(t, 1000.0, toks[2].Float, 1e-9)
	assert.Equal(t, "hi", toks[3].Str)
	assert.True(t, toks[4].RawStr)
	assert.Equal(t, "raw {x}", toks[4].Str)
	assert.True(t, toks[5].Bool)
	assert.False(t, toks[6].Bool)
}

func TestTokenizeKeywordsAndIdentifiers(t *testing.T) {
	toks, err := scanner.Tokenize("let mut x := trueish")
	require.NoError(t, err)
	toks = scanner.CleanTokens(toks)

	assert.Equal(t, []token.Kind{
		token.LET, token.MUT, token.IDENT, token.WALRUS, token.IDENT, token.EOF,
	}, kinds(t, toks))
}

func TestTokenizeBaseTypesAndCustomTypes(t *testing.T) {
	toks, err := scanner.Tokenize("i32? Point")
	require.NoError(t, err)
	toks = scanner.CleanTokens(toks)

	require.Len(t, toks, 3)
	assert.Equal(t, token.I32, toks[0].Kind)
	assert.True(t, toks[0].Optional)
	assert.Equal(t, token.USERDEFINED, toks[1].Kind)
	assert.Equal(t, "Point", toks[1].Raw)
}

func TestTokenizeSymbolsLongestMatch(t *testing.T) {
	toks, err := scanner.Tokenize("a ** b >= c != d")
	require.NoError(t, err)
	toks = scanner.CleanTokens(toks)

	assert.Equal(t, []token.Kind{
		token.IDENT, token.STARSTAR, token.IDENT, token.GE, token.IDENT, token.NEQ, token.IDENT, token.EOF,
	}, kinds(t, toks))
}

func TestTokenizeComment(t *testing.T) {
	toks, err := scanner.Tokenize("x -- trailing comment\ny")
	require.NoError(t, err)

	var sawComment bool
	for _, tok := range toks {
		if tok.Kind == token.COMMENT {
			sawComment = true
			assert.Equal(t, "-- trailing comment", tok.Raw)
		}
	}
	assert.True(t, sawComment)

	toks = scanner.CleanTokens(toks)
	assert.Equal(t, []token.Kind{token.IDENT, token.IDENT, token.EOF}, kinds(t, toks))
}

func TestTokenizeUnterminatedStringIsError(t *testing.T) {
	_, err := scanner.Tokenize(`"unterminated`)
	require.Error(t, err)
	var lexErr *scanner.LexerError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, scanner.InvalidStringLiteral, lexErr.Kind)
}

func TestTokenizeIllegalSymbolIsError(t *testing.T) {
	_, err := scanner.Tokenize("@@@")
	require.Error(t, err)
	var lexErr *scanner.LexerError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, scanner.NoMatchingSymbol, lexErr.Kind)
}

func TestTokenizeBareTrailingDotIsInvalidFloat(t *testing.T) {
	_, err := scanner.Tokenize("1.")
	require.Error(t, err)
	var lexErr *scanner.LexerError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, scanner.InvalidFloatLiteral, lexErr.Kind)
}

func TestTokenizeRangeDotsNotMistakenForFloat(t *testing.T) {
	toks, err := scanner.Tokenize("0..10")
	require.NoError(t, err)
	toks = scanner.CleanTokens(toks)

	assert.Equal(t, []token.Kind{
		token.INT, token.DOT, token.DOT, token.INT, token.EOF,
	}, kinds(t, toks))
	assert.Equal(t, int64(0), toks[0].Int)
	assert.Equal(t, int64(10), toks[3].Int)
}

func TestTokenizeStringPreservesUnrecognizedBackslash(t *testing.T) {
	toks, err := scanner.Tokenize(`"a\zb"`)
	require.NoError(t, err)
	toks = scanner.CleanTokens(toks)
	require.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, `a\zb`, toks[0].Str)
}

func TestTokenizeStringEscapedClosingQuote(t *testing.T) {
	toks, err := scanner.Tokenize(`"a\"b"`)
	require.NoError(t, err)
	toks = scanner.CleanTokens(toks)
	require.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, `a"b`, toks[0].Str)
}

func TestGetStringInterpolations(t *testing.T) {
	spans := scanner.GetStringInterpolations(`hello {name}, you are {age + 1} years old`)
	require.Len(t, spans, 2)
	assert.Equal(t, "name", spans[0].Source)
	assert.Equal(t, "age + 1", spans[1].Source)
}

func TestGetStringInterpolationsNestedBraces(t *testing.T) {
	spans := scanner.GetStringInterpolations(`{ f({ 1 }) }`)
	require.Len(t, spans, 1)
	assert.Equal(t, " f({ 1 }) ", spans[0].Source)
}

// Package scanner tokenizes loop source text into a stream of
// lang/token.Token values, following the policy order of spec.md §4.1:
// whitespace, literal, comment, symbol, keyword, base type, identifier,
// custom (user-defined) type.
//
// Some of the scanner's cursor/advance structure is adapted from the
// teacher's lang/scanner package, itself adapted from the Go standard
// library's go/scanner; this scanner works over a single in-memory source
// string rather than a multi-file token.FileSet, since spec.md's core only
// ever tokenizes one source string at a time.
package scanner

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/loop-lang/loop/lang/token"
)

// ErrorKind classifies a LexerError, mirroring the teacher's tagged-error
// style so callers can switch on failure kind without string matching.
type ErrorKind uint8

const (
	NoMatchingSymbol ErrorKind = iota
	NoMatchingKeyword
	NoMatchingBaseType
	UnmatchedBracket
	InvalidFloatLiteral
	InvalidIntegerLiteral
	InvalidStringLiteral
	InvalidComment
	CouldNotTokenize
)

// LexerError is returned by Tokenize when the scanner cannot make progress.
type LexerError struct {
	Kind ErrorKind
	Pos  token.Pos
	Text string // the offending source prefix, truncated for display
}

func (e *LexerError) Error() string {
	preview := e.Text
	if len(preview) > 24 {
		preview = preview[:24] + "..."
	}
	switch e.Kind {
	case NoMatchingSymbol:
		return fmt.Sprintf("%s: no matching symbol near %q", e.Pos, preview)
	case NoMatchingKeyword:
		return fmt.Sprintf("%s: no matching keyword near %q", e.Pos, preview)
	case NoMatchingBaseType:
		return fmt.Sprintf("%s: no matching base type near %q", e.Pos, preview)
	case UnmatchedBracket:
		return fmt.Sprintf("%s: unmatched bracket near %q", e.Pos, preview)
	case InvalidFloatLiteral:
		return fmt.Sprintf("%s: invalid float literal %q", e.Pos, preview)
	case InvalidIntegerLiteral:
		return fmt.Sprintf("%s: invalid integer literal %q", e.Pos, preview)
	case InvalidStringLiteral:
		return fmt.Sprintf("%s: unterminated string literal %q", e.Pos, preview)
	case InvalidComment:
		return fmt.Sprintf("%s: invalid comment %q", e.Pos, preview)
	default:
		return fmt.Sprintf("%s: could not tokenize %q", e.Pos, preview)
	}
}

type scanner struct {
	src  string
	off  int // byte offset of the next unread byte
	line int
	col  int
}

// Tokenize scans source into a token slice terminated by a single EOF token.
// Whitespace and comment tokens are produced and then stripped by
// CleanTokens, mirroring the teacher's own tokenize-then-clean split.
func Tokenize(source string) ([]token.Token, error) {
	s := &scanner{src: source, line: 1, col: 1}
	var toks []token.Token
	for {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

// CleanTokens drops whitespace and comment tokens, the way the parser wants
// to see the stream (spec.md §4.1: "comments and whitespace are scanned ...
// then discarded before parsing").
func CleanTokens(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == token.WHITESPACE || t.Kind == token.COMMENT {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (s *scanner) rest() string { return s.src[s.off:] }
func (s *scanner) atEOF() bool  { return s.off >= len(s.src) }

func (s *scanner) pos() token.Pos { return token.MakePos(s.line, s.col) }

// advanceBytes moves the cursor forward n bytes of s.rest(), updating
// line/col bookkeeping as it crosses newlines.
func (s *scanner) advanceBytes(n int) {
	for i := 0; i < n; {
		r, w := utf8.DecodeRuneInString(s.src[s.off+i:])
		if r == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
		i += w
	}
	s.off += n
}

func (s *scanner) next() (token.Token, error) {
	if s.atEOF() {
		return token.Token{Kind: token.EOF, Pos: s.pos()}, nil
	}
	pos := s.pos()
	rest := s.rest()
	first, _ := utf8.DecodeRuneInString(rest)

	switch {
	case first == ' ' || first == '\t' || first == '\n' || first == '\r':
		return s.scanWhitespace(pos)
	case first == '"' || first == '\'' || strings.HasPrefix(rest, "r\"") || strings.HasPrefix(rest, "r'"):
		return s.scanString(pos)
	case strings.HasPrefix(rest, "true") && isWordBoundaryAfter(rest, 4):
		s.advanceBytes(4)
		return token.Token{Kind: token.BOOL, Pos: pos, Value: token.Value{Raw: "true", Bool: true}}, nil
	case strings.HasPrefix(rest, "false") && isWordBoundaryAfter(rest, 5):
		s.advanceBytes(5)
		return token.Token{Kind: token.BOOL, Pos: pos, Value: token.Value{Raw: "false", Bool: false}}, nil
	case strings.HasPrefix(rest, "none") && isWordBoundaryAfter(rest, 4):
		s.advanceBytes(4)
		return token.Token{Kind: token.NONE, Pos: pos, Value: token.Value{Raw: "none"}}, nil
	case unicode.IsDigit(first):
		return s.scanNumber(pos)
	case strings.HasPrefix(rest, "--"):
		return s.scanComment(pos)
	case isIdentStart(first):
		return s.scanWord(pos)
	default:
		return s.scanSymbol(pos)
	}
}

// isWordBoundaryAfter reports whether byte offset n of s is the end of the
// string or is followed by a non-identifier rune, so that e.g. "truest" is
// not mistaken for the keyword "true" followed by "st".
func isWordBoundaryAfter(s string, n int) bool {
	if n >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[n:])
	return !isIdentPart(r)
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (s *scanner) scanWhitespace(pos token.Pos) (token.Token, error) {
	start := s.off
	for !s.atEOF() {
		r, w := utf8.DecodeRuneInString(s.rest())
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			break
		}
		s.advanceBytes(w)
	}
	return token.Token{Kind: token.WHITESPACE, Pos: pos, Value: token.Value{Raw: s.src[start:s.off]}}, nil
}

func (s *scanner) scanComment(pos token.Pos) (token.Token, error) {
	start := s.off
	s.advanceBytes(2) // "--"
	for !s.atEOF() {
		r, w := utf8.DecodeRuneInString(s.rest())
		if r == '\n' {
			break
		}
		s.advanceBytes(w)
	}
	return token.Token{Kind: token.COMMENT, Pos: pos, Value: token.Value{Raw: s.src[start:s.off]}}, nil
}

func (s *scanner) scanWord(pos token.Pos) (token.Token, error) {
	start := s.off
	first, _ := utf8.DecodeRuneInString(s.rest())
	for !s.atEOF() {
		r, w := utf8.DecodeRuneInString(s.rest())
		if !isIdentPart(r) {
			break
		}
		s.advanceBytes(w)
	}
	lit := s.src[start:s.off]

	// spec.md §4.1 policy order: keyword before base-type before identifier
	// before custom (capitalized) type.
	if kw := token.LookupKeyword(lit); kw != token.ILLEGAL {
		return token.Token{Kind: kw, Pos: pos, Value: token.Value{Raw: lit}}, nil
	}
	if bt := token.LookupBaseType(lit); bt != token.ILLEGAL {
		return s.maybeOptional(token.Token{Kind: bt, Pos: pos, Value: token.Value{Raw: lit}}), nil
	}
	if unicode.IsUpper(first) {
		return s.maybeOptional(token.Token{Kind: token.USERDEFINED, Pos: pos, Value: token.Value{Raw: lit}}), nil
	}
	if len(lit) == 1 && unicode.IsLower(first) {
		// single lowercase letter used in a type position is disambiguated by
		// the parser (GENERIC vs IDENT) since the scanner has no type-position
		// context; emit IDENT and let the parser reclassify when it is parsing
		// a type (spec.md §4.1 generic type note).
		return token.Token{Kind: token.IDENT, Pos: pos, Value: token.Value{Raw: lit}}, nil
	}
	return token.Token{Kind: token.IDENT, Pos: pos, Value: token.Value{Raw: lit}}, nil
}

// maybeOptional consumes a trailing '?' right after a type token, marking it
// Optional (spec.md §3 option types, e.g. `i32?`).
func (s *scanner) maybeOptional(tok token.Token) token.Token {
	if !s.atEOF() {
		r, w := utf8.DecodeRuneInString(s.rest())
		if r == '?' {
			s.advanceBytes(w)
			tok.Optional = true
			tok.Raw += "?"
		}
	}
	return tok
}

func (s *scanner) scanSymbol(pos token.Pos) (token.Token, error) {
	kind, lit := token.LookupSymbol(s.rest())
	if kind == token.ILLEGAL {
		r, _ := utf8.DecodeRuneInString(s.rest())
		return token.Token{}, &LexerError{Kind: NoMatchingSymbol, Pos: pos, Text: string(r)}
	}
	s.advanceBytes(len(lit))
	return token.Token{Kind: kind, Pos: pos, Value: token.Value{Raw: lit}}, nil
}

func (s *scanner) scanNumber(pos token.Pos) (token.Token, error) {
	start := s.off
	isFloat := false
	for !s.atEOF() {
		r, w := utf8.DecodeRuneInString(s.rest())
		switch {
		case unicode.IsDigit(r):
			s.advanceBytes(w)
		case r == '.' && !isFloat:
			// A dot only continues the literal when followed by a fractional
			// digit (original_source/src/lexer/literal.rs:99's `\.[0-9]+`).
			// A second dot right after is range syntax ("0..10"): stop here
			// and leave both dots for the parser's DOT tokens. Anything else
			// following a bare dot, including end of input, is a malformed
			// float, e.g. "1." (spec.md §8).
			next, nw := utf8.DecodeRuneInString(s.rest()[w:])
			switch {
			case unicode.IsDigit(next):
				isFloat = true
				s.advanceBytes(w)
			case nw > 0 && next == '.':
				goto done
			default:
				s.advanceBytes(w)
				return token.Token{}, &LexerError{Kind: InvalidFloatLiteral, Pos: pos, Text: s.src[start:s.off]}
			}
		case (r == 'e' || r == 'E') && !strings.ContainsAny(s.src[start:s.off], "eE"):
			isFloat = true
			s.advanceBytes(w)
			if !s.atEOF() {
				if sign, sw := utf8.DecodeRuneInString(s.rest()); sign == '+' || sign == '-' {
					s.advanceBytes(sw)
				}
			}
		default:
			goto done
		}
	}
done:
	lit := s.src[start:s.off]
	if isFloat {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return token.Token{}, &LexerError{Kind: InvalidFloatLiteral, Pos: pos, Text: lit}
		}
		return token.Token{Kind: token.FLOAT, Pos: pos, Value: token.Value{Raw: lit, Float: f}}, nil
	}
	i, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return token.Token{}, &LexerError{Kind: InvalidIntegerLiteral, Pos: pos, Text: lit}
	}
	return token.Token{Kind: token.INT, Pos: pos, Value: token.Value{Raw: lit, Int: i}}, nil
}

func (s *scanner) scanString(pos token.Pos) (token.Token, error) {
	start := s.off
	raw := false
	if strings.HasPrefix(s.rest(), "r\"") || strings.HasPrefix(s.rest(), "r'") {
		raw = true
		s.advanceBytes(1) // the 'r' prefix
	}
	quote, qw := utf8.DecodeRuneInString(s.rest())
	s.advanceBytes(qw)

	var sb strings.Builder
	for {
		if s.atEOF() {
			return token.Token{}, &LexerError{Kind: InvalidStringLiteral, Pos: pos, Text: s.src[start:s.off]}
		}
		r, w := utf8.DecodeRuneInString(s.rest())
		if r == quote {
			s.advanceBytes(w)
			break
		}
		if r == '\\' && !raw {
			// spec.md §4.1's only backslash mechanic: `\` directly before the
			// closing quote escapes that quote so it is taken literally. Any
			// other `\X` is not a recognized escape and is copied through
			// unchanged, backslash included (original_source/src/lexer/literal.rs:72).
			if next, nw := utf8.DecodeRuneInString(s.rest()[w:]); nw > 0 && next == quote {
				sb.WriteRune(quote)
				s.advanceBytes(w + nw)
				continue
			}
			sb.WriteRune(r)
			s.advanceBytes(w)
			continue
		}
		sb.WriteRune(r)
		s.advanceBytes(w)
	}
	lit := s.src[start:s.off]
	return token.Token{Kind: token.STRING, Pos: pos, Value: token.Value{Raw: lit, Str: sb.String(), RawStr: raw}}, nil
}

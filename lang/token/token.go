// Package token defines the token kinds, literal payloads and position
// encoding shared by the scanner, parser and environment.
package token

import "sort"

// Kind is the closed set of token kinds recognized by the scanner. It plays
// the role of spec.md's tagged token variants (Literal, Operator, Type,
// Bracket, Punctuation, Keyword, Identifier, Comment, Whitespace), flattened
// into a single enum the way the teacher's own token package does, with
// Kind.Is* methods recovering the tag when callers need it.
type Kind uint8

//nolint:revive
const (
	ILLEGAL Kind = iota
	EOF

	IDENT // identifier
	INT   // 123
	FLOAT // 1.5e10
	BOOL  // true | false
	STRING
	NONE // none

	// operators
	opBegin
	PLUS       // +
	MINUS      // -
	STAR       // *
	SLASH      // /
	PERCENT    // %
	STARSTAR   // **
	EQL        // ==
	NEQ        // !=
	GT         // >
	LT         // <
	GE         // >=
	LE         // <=
	AND        // and
	OR         // or
	NOT        // not
	AMP        // &
	PIPE       // |
	CIRCUMFLEX // ~ (bitwise not, unary-only)
	LTLT       // <<
	GTGT       // >>
	WALRUS     // :=
	ASSIGN     // =
	PLUSEQ     // +=
	MINUSEQ    // -=
	STAREQ     // *=
	SLASHEQ    // /=
	PERCENTEQ  // %=
	opEnd

	// types
	typeBegin
	U8
	U16
	U32
	U64
	I16
	I32
	I64
	F32
	F64
	TBOOL
	TSTRING
	ANY
	GENERIC     // single lowercase-letter type parameter
	USERDEFINED // capitalized identifier used as a type
	typeEnd

	// brackets
	bracketBegin
	LBRACE
	RBRACE
	LPAREN
	RPAREN
	LBRACK
	RBRACK
	bracketEnd

	// punctuation
	punctBegin
	DOT
	COMMA
	COLON
	ARROW    // ->
	FATARROW // =>
	QUESTION // ?
	BANG     // !
	punctEnd

	// keywords
	kwBegin
	FN
	RET
	LET
	MUT
	IF
	ELIF
	ELSE
	MATCH
	FOR
	WHILE
	LOOP
	IN
	BREAK
	CONTINUE
	ASYNC
	AWAIT
	MODULE
	IMPORT
	FROM
	AS
	TYPEKW
	COMP
	IMPL
	ABS
	DBG
	kwEnd

	COMMENT
	WHITESPACE

	maxKind
)

var kindNames = [...]string{
	ILLEGAL: "illegal token", EOF: "end of file",
	IDENT: "identifier", INT: "int literal", FLOAT: "float literal",
	BOOL: "bool literal", STRING: "string literal", NONE: "none",
	PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", PERCENT: "%", STARSTAR: "**",
	EQL: "==", NEQ: "!=", GT: ">", LT: "<", GE: ">=", LE: "<=",
	AND: "and", OR: "or", NOT: "not",
	AMP: "&", PIPE: "|", CIRCUMFLEX: "~", LTLT: "<<", GTGT: ">>",
	WALRUS: ":=", ASSIGN: "=",
	PLUSEQ: "+=", MINUSEQ: "-=", STAREQ: "*=", SLASHEQ: "/=", PERCENTEQ: "%=",
	U8: "u8", U16: "u16", U32: "u32", U64: "u64",
	I16: "i16", I32: "i32", I64: "i64", F32: "f32", F64: "f64",
	TBOOL: "bool", TSTRING: "string", ANY: "any",
	GENERIC: "generic type", USERDEFINED: "user-defined type",
	LBRACE: "{", RBRACE: "}", LPAREN: "(", RPAREN: ")", LBRACK: "[", RBRACK: "]",
	DOT: ".", COMMA: ",", COLON: ":", ARROW: "->", FATARROW: "=>",
	QUESTION: "?", BANG: "!",
	FN: "fn", RET: "ret", LET: "let", MUT: "mut",
	IF: "if", ELIF: "elif", ELSE: "else", MATCH: "match",
	FOR: "for", WHILE: "while", LOOP: "loop", IN: "in",
	BREAK: "break", CONTINUE: "continue", ASYNC: "async", AWAIT: "await",
	MODULE: "module", IMPORT: "import", FROM: "from", AS: "as",
	TYPEKW: "type", COMP: "comp", IMPL: "impl", ABS: "abs", DBG: "dbg",
	COMMENT: "comment", WHITESPACE: "whitespace",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown token"
}

func (k Kind) IsOperator() bool    { return k > opBegin && k < opEnd }
func (k Kind) IsBaseType() bool    { return k > typeBegin && k < typeEnd }
func (k Kind) IsBracket() bool     { return k > bracketBegin && k < bracketEnd }
func (k Kind) IsPunctuation() bool { return k > punctBegin && k < punctEnd }
func (k Kind) IsKeyword() bool     { return k > kwBegin && k < kwEnd }

// IsAssignFamily reports whether k is one of the declaration/assignment
// operators that find_expr_possible_boundary treats specially.
func (k Kind) IsAssignFamily() bool {
	switch k {
	case WALRUS, ASSIGN, PLUSEQ, MINUSEQ, STAREQ, SLASHEQ, PERCENTEQ, COLON:
		return true
	}
	return false
}

// IsLoopKeyword reports whether k begins a loop construct.
func (k Kind) IsLoopKeyword() bool {
	switch k {
	case FOR, WHILE, LOOP:
		return true
	}
	return false
}

// IsConditionalKeyword reports whether k begins a conditional construct.
func (k Kind) IsConditionalKeyword() bool {
	switch k {
	case IF, ELIF, ELSE:
		return true
	}
	return false
}

// MatchingBracket maps one bracket kind to its pair.
func (k Kind) MatchingBracket() Kind {
	switch k {
	case LBRACE:
		return RBRACE
	case RBRACE:
		return LBRACE
	case LPAREN:
		return RPAREN
	case RPAREN:
		return LPAREN
	case LBRACK:
		return RBRACK
	case RBRACK:
		return LBRACK
	}
	return ILLEGAL
}

func (k Kind) IsOpenBracket() bool  { return k == LBRACE || k == LPAREN || k == LBRACK }
func (k Kind) IsCloseBracket() bool { return k == RBRACE || k == RPAREN || k == RBRACK }

// Value is the literal payload scanned along with a token, analogous to the
// teacher's token.Value.
type Value struct {
	Raw      string // uninterpreted source text
	Int      int64
	Float    float64
	Bool     bool
	Str      string // decoded string literal contents
	RawStr   bool   // true if the string used the r"..." / r'...' raw prefix
	Optional bool   // true if a Type token was suffixed with '?'
}

// Token is a single scanned lexeme.
type Token struct {
	Kind Kind
	Pos  Pos
	Value
}

func (t Token) String() string {
	if t.Raw != "" {
		return t.Raw
	}
	return t.Kind.String()
}

// symbol table, longest-match first (spec.md §4.1: "symbol (longest-match
// against the symbol table)").
var symbols = []struct {
	lit  string
	kind Kind
}{
	{"**", STARSTAR}, {"==", EQL}, {"!=", NEQ}, {">=", GE}, {"<=", LE},
	{":=", WALRUS}, {"+=", PLUSEQ}, {"-=", MINUSEQ}, {"*=", STAREQ},
	{"/=", SLASHEQ}, {"%=", PERCENTEQ}, {"<<", LTLT}, {">>", GTGT},
	{"->", ARROW}, {"=>", FATARROW},
	{"+", PLUS}, {"-", MINUS}, {"*", STAR}, {"/", SLASH}, {"%", PERCENT},
	{">", GT}, {"<", LT}, {"=", ASSIGN}, {"&", AMP}, {"|", PIPE}, {"~", CIRCUMFLEX},
	{".", DOT}, {",", COMMA}, {":", COLON}, {"?", QUESTION}, {"!", BANG},
	{"{", LBRACE}, {"}", RBRACE}, {"(", LPAREN}, {")", RPAREN}, {"[", LBRACK}, {"]", RBRACK},
}

func init() {
	sort.SliceStable(symbols, func(i, j int) bool {
		return len(symbols[i].lit) > len(symbols[j].lit)
	})
}

// LookupSymbol finds the longest symbol in src's prefix that matches the
// table above. It returns ILLEGAL, "" if none match.
func LookupSymbol(src string) (Kind, string) {
	for _, s := range symbols {
		if len(s.lit) <= len(src) && src[:len(s.lit)] == s.lit {
			return s.kind, s.lit
		}
	}
	return ILLEGAL, ""
}

var keywords = map[string]Kind{
	"fn": FN, "ret": RET, "let": LET, "mut": MUT,
	"if": IF, "elif": ELIF, "else": ELSE, "match": MATCH,
	"for": FOR, "while": WHILE, "loop": LOOP, "in": IN,
	"break": BREAK, "continue": CONTINUE,
	"async": ASYNC, "await": AWAIT,
	"module": MODULE, "import": IMPORT, "from": FROM, "as": AS,
	"type": TYPEKW, "comp": COMP, "impl": IMPL,
	"abs": ABS, "dbg": DBG,
	"and": AND, "or": OR, "not": NOT,
}

// LookupKeyword returns the keyword kind for lit, or ILLEGAL if lit is not a
// keyword.
func LookupKeyword(lit string) Kind {
	if k, ok := keywords[lit]; ok {
		return k
	}
	return ILLEGAL
}

var baseTypes = map[string]Kind{
	"u8": U8, "u16": U16, "u32": U32, "u64": U64,
	"i16": I16, "i32": I32, "i64": I64,
	"f32": F32, "f64": F64,
	"bool": TBOOL, "string": TSTRING, "any": ANY,
}

// LookupBaseType returns the base-type kind for lit, or ILLEGAL if lit is
// not one of the built-in type names.
func LookupBaseType(lit string) Kind {
	if k, ok := baseTypes[lit]; ok {
		return k
	}
	return ILLEGAL
}

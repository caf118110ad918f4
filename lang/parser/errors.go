package parser

import (
	"fmt"

	"github.com/loop-lang/loop/lang/token"
)

// ErrorKind is the closed set of parser failure kinds (spec.md §4.2
// "Failure kinds").
type ErrorKind uint8

const (
	EmptyTokens ErrorKind = iota
	InvalidExpression
	InvalidOperator
	UnexpectedToken
	UnexpectedEndOfInput
	NoMatchingBracket
	NoConditionalFound
	NoConditionForConditional
	NoLoopFound
	UnexpectedContentBeforeBlock
	UnexpectedBeginningOfBlock
	AssignmentTupleNotIdentifier
	CannotBuildTupleType
	IncorrectFunctionCallSyntax
	NoMatchingBraceForKeyword
	Unimplemented
)

// ParseError is returned by every parsing entry point on failure.
type ParseError struct {
	Kind ErrorKind
	Pos  token.Pos
	Tok  *token.Token // set for UnexpectedToken / NoMatchingBraceForKeyword
	Msg  string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case EmptyTokens:
		return "parser: no tokens to parse"
	case InvalidExpression:
		return fmt.Sprintf("%s: invalid expression: %s", e.Pos, e.Msg)
	case InvalidOperator:
		return fmt.Sprintf("%s: invalid operator: %s", e.Pos, e.Msg)
	case UnexpectedToken:
		if e.Tok != nil {
			return fmt.Sprintf("%s: unexpected token: %s", e.Pos, e.Tok)
		}
		return fmt.Sprintf("%s: unexpected token", e.Pos)
	case UnexpectedEndOfInput:
		return "parser: unexpected end of input"
	case NoMatchingBracket:
		return fmt.Sprintf("%s: no matching bracket", e.Pos)
	case NoConditionalFound:
		return fmt.Sprintf("%s: no conditional found", e.Pos)
	case NoConditionForConditional:
		return fmt.Sprintf("%s: no condition for conditional", e.Pos)
	case NoLoopFound:
		return fmt.Sprintf("%s: no loop found", e.Pos)
	case UnexpectedContentBeforeBlock:
		return fmt.Sprintf("%s: unexpected content before block", e.Pos)
	case UnexpectedBeginningOfBlock:
		return fmt.Sprintf("%s: unexpected beginning of block", e.Pos)
	case AssignmentTupleNotIdentifier:
		return fmt.Sprintf("%s: assignment tuple must contain only identifiers", e.Pos)
	case CannotBuildTupleType:
		return fmt.Sprintf("%s: cannot build tuple type: %s", e.Pos, e.Msg)
	case IncorrectFunctionCallSyntax:
		return fmt.Sprintf("%s: incorrect function call syntax: %s", e.Pos, e.Msg)
	case NoMatchingBraceForKeyword:
		if e.Tok != nil {
			return fmt.Sprintf("%s: no matching brace for keyword %s", e.Pos, e.Tok)
		}
		return fmt.Sprintf("%s: no matching brace for keyword", e.Pos)
	default:
		return fmt.Sprintf("%s: unimplemented: %s", e.Pos, e.Msg)
	}
}

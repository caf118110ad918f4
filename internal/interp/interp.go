// Package interp wires lang/scanner, lang/parser and lang/environment
// together behind the four core entry points spec.md §6 names —
// Tokenize, Parse, ParseString, Eval — plus the #type/#heap introspection
// queries used by interactive tooling (spec.md §6, §9 "Supplemented
// features"). Both cmd/loop and the package's own tests drive the
// interpreter exclusively through this surface, the way the teacher's own
// internal/maincmd never touches lang/machine directly but goes through a
// package boundary of its own.
package interp

import (
	"io"

	"github.com/loop-lang/loop/internal/config"
	"github.com/loop-lang/loop/lang/ast"
	"github.com/loop-lang/loop/lang/environment"
	"github.com/loop-lang/loop/lang/parser"
	"github.com/loop-lang/loop/lang/scanner"
	"github.com/loop-lang/loop/lang/token"
	"github.com/loop-lang/loop/lang/value"
)

// Interp holds one root environment and the configuration it was built
// with. A single Interp is meant to live for the lifetime of one script run
// or one REPL session: every Eval call runs against the same root scope, so
// declarations persist across calls the way a REPL's prompt expects.
type Interp struct {
	env *environment.Environment
	cfg config.Config
}

// New builds an Interp with a fresh root environment. diag receives output
// from the `dbg` keyword when cfg.Debug is set; it is typically stderr.
func New(cfg config.Config, diag io.Writer) *Interp {
	env := environment.New(parser.ParseString, cfg.MaxInterpolationDepth, diag, cfg.Debug)
	return &Interp{env: env, cfg: cfg}
}

// Tokenize runs the lexer alone, returning the raw (uncleaned) token stream
// including whitespace and comments (spec.md §6 "tokenize").
func (ip *Interp) Tokenize(source string) ([]token.Token, error) {
	return scanner.Tokenize(source)
}

// CleanTokens strips whitespace and comment tokens (spec.md §6
// "clean_tokens").
func (ip *Interp) CleanTokens(tokens []token.Token) []token.Token {
	return scanner.CleanTokens(tokens)
}

// Parse tokenizes, cleans and parses source into the program's root node
// (spec.md §6 "parse"). Every `loop { ... }` node in the resulting tree is
// stamped with this Interp's configured iteration bound, since the parser
// itself has no notion of configuration.
func (ip *Interp) Parse(source string) (*ast.MultiExpression, error) {
	tokens, err := scanner.Tokenize(source)
	if err != nil {
		return nil, err
	}
	tokens = scanner.CleanTokens(tokens)
	tree, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	applyLoopBound(tree, ip.cfg.MaxLoopIterations)
	return tree, nil
}

// applyLoopBound walks node and every descendant via ast.Walk, setting
// MaxIterations on each ast.Loop found (internal/config
// LOOP_MAX_LOOP_ITERATIONS).
func applyLoopBound(node ast.Node, max int) {
	var visit ast.VisitorFunc
	visit = func(n ast.Node, dir ast.VisitDirection) ast.Visitor {
		if dir != ast.VisitEnter {
			return visit
		}
		if l, ok := n.(*ast.Loop); ok {
			l.MaxIterations = max
		}
		return visit
	}
	ast.Walk(visit, node)
}

// ParseString is the same pipeline exposed as a value.Evaluable, matching
// the callback signature string interpolation re-enters the parser with
// (spec.md §6 "parse_string").
func (ip *Interp) ParseString(source string) (value.Evaluable, error) {
	return parser.ParseString(source)
}

// Eval parses source and evaluates it against this Interp's persistent root
// environment, returning the value of the last top-level expression (spec.md
// §6 "TreeNode.eval").
func (ip *Interp) Eval(source string) (value.Value, error) {
	tree, err := ip.Parse(source)
	if err != nil {
		return nil, err
	}
	return tree.Eval(ip.env)
}

// GetType answers the `#type name` introspection query: the static type of
// a currently-bound variable (spec.md §9 "Top-level #type/#heap
// introspection").
func (ip *Interp) GetType(name string) (value.Type, error) {
	return ip.env.GetType(name)
}

// HeapSnapshot answers the `#heap` introspection query: every occupied heap
// slot and its current value, in slot-index order.
func (ip *Interp) HeapSnapshot() []value.HeapEntry {
	return ip.env.HeapSnapshot()
}

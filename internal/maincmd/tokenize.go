package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/loop-lang/loop/internal/interp"
	"github.com/loop-lang/loop/lang/token"
)

// Tokenize runs the scanner phase alone over each file argument and prints
// the resulting tokens, one per line, position-prefixed (spec.md §6
// "tokenize"), in the style of the teacher's own tokenize subcommand.
func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	ip := interp.New(mustConfig(), stdio.Stderr)
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return printError(stdio, err)
		}
		toks, err := ip.Tokenize(string(src))
		if err != nil {
			return printError(stdio, fmt.Errorf("%s: %w", path, err))
		}
		for _, tok := range toks {
			fmt.Fprintf(stdio.Stdout, "%s: %s", tok.Pos, tok.Kind)
			if lit := literalOf(tok); lit != "" {
				fmt.Fprintf(stdio.Stdout, " %s", lit)
			}
			fmt.Fprintln(stdio.Stdout)
		}
	}
	return nil
}

// literalOf returns the raw source text of a literal or identifier token,
// and "" for every other token kind.
func literalOf(tok token.Token) string {
	switch tok.Kind {
	case token.INT, token.FLOAT, token.BOOL, token.STRING, token.IDENT:
		return tok.Raw
	default:
		return ""
	}
}

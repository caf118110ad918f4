package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/loop-lang/loop/internal/interp"
)

// Parse runs the scanner and parser phases over each file argument and
// prints the resulting syntax tree (spec.md §6 "parse").
func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	ip := interp.New(mustConfig(), stdio.Stderr)
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return printError(stdio, err)
		}
		tree, err := ip.Parse(string(src))
		if err != nil {
			return printError(stdio, fmt.Errorf("%s: %w", path, err))
		}
		fmt.Fprintln(stdio.Stdout, tree.Print(0))
	}
	return nil
}

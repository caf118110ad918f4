package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/loop-lang/loop/internal/config"
	"github.com/loop-lang/loop/internal/interp"
)

// Run parses and evaluates each file argument in turn, printing the value
// of its last top-level expression (spec.md §1 "cmd/loop... the
// file-execution... driver").
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return printError(stdio, err)
	}
	if c.Debug {
		cfg.Debug = true
	}

	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return printError(stdio, err)
		}

		ip := interp.New(cfg, stdio.Stderr)
		v, err := ip.Eval(string(src))
		if err != nil {
			return printError(stdio, fmt.Errorf("%s: %w", path, err))
		}
		fmt.Fprintln(stdio.Stdout, v.String())
	}
	return nil
}

func printError(stdio mainer.Stdio, err error) error {
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
	}
	return err
}

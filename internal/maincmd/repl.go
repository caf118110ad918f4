package maincmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/mna/mainer"

	"github.com/loop-lang/loop/internal/interp"
)

// REPL reads one statement per line from stdio.Stdin, evaluating each
// against a single persistent root environment so declarations made on one
// line are visible on the next. Two meta-commands, `#type <name>` and
// `#heap`, surface the introspection queries interp exposes (spec.md §9
// "Supplemented features", grounded in the original implementation's
// Heap::print).
func (c *Cmd) REPL(ctx context.Context, stdio mainer.Stdio, args []string) error {
	cfg := mustConfig()
	if c.Debug {
		cfg.Debug = true
	}
	ip := interp.New(cfg, stdio.Stderr)

	fmt.Fprintf(stdio.Stdout, "%s (type #heap or #type <name> to inspect state, Ctrl-D to exit)\n", binName)
	scanner := bufio.NewScanner(stdio.Stdin)
	for {
		fmt.Fprint(stdio.Stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(stdio.Stdout)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if handled := c.handleMeta(stdio, ip, line); handled {
			continue
		}

		v, err := ip.Eval(line)
		if err != nil {
			fmt.Fprintf(stdio.Stderr, "%s\n", err)
			continue
		}
		fmt.Fprintln(stdio.Stdout, v.String())
	}
}

// handleMeta recognizes the #type/#heap introspection commands. It reports
// whether line was a meta-command at all, handled or not.
func (c *Cmd) handleMeta(stdio mainer.Stdio, ip *interp.Interp, line string) bool {
	if !strings.HasPrefix(line, "#") {
		return false
	}

	switch {
	case line == "#heap":
		for _, entry := range ip.HeapSnapshot() {
			fmt.Fprintf(stdio.Stdout, "%d: %s\n", entry.Index, entry.Value.String())
		}
	case strings.HasPrefix(line, "#type "):
		name := strings.TrimSpace(strings.TrimPrefix(line, "#type "))
		typ, err := ip.GetType(name)
		if err != nil {
			fmt.Fprintf(stdio.Stderr, "%s\n", err)
			break
		}
		fmt.Fprintln(stdio.Stdout, typ.String())
	default:
		fmt.Fprintf(stdio.Stderr, "unrecognized meta-command: %s\n", line)
	}
	return true
}

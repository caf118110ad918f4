// Package maincmd implements the loop binary's command surface: flag
// parsing, subcommand dispatch and the bare REPL, mirroring the shape of
// the teacher's own internal/maincmd (mainer.Cmd with reflection-discovered
// subcommand methods).
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "loop"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] [<command>] [<path>]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] [<command>] [<path>]
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the %[1]s programming language. With no
command, reads a path (or starts an interactive REPL if none is given).

The <command> can be one of:
       run                       Parse and evaluate a file, printing the
                                 value of its last top-level expression.
       tokenize                  Run the scanner phase alone and print the
                                 resulting tokens.
       parse                     Run the parser phase and print the
                                 resulting syntax tree.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
       -d --debug                Enable dbg tracing output.

More information on the %[1]s language:
       https://github.com/loop-lang/loop
`, binName)
)

// Cmd is the loop binary's root command, populated by mainer.Parser from
// CLI flags and (per internal/config) LOOP_-prefixed environment variables.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`
	Debug   bool `flag:"d,debug"`

	args  []string
	flags map[string]bool
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string) {
	c.args = args
}

func (c *Cmd) SetFlags(flags map[string]bool) {
	c.flags = flags
}

// Validate resolves the subcommand, if any. Unlike the teacher, a missing
// command is not an error here: it means "start the REPL" (spec.md §1's
// CLI is file-execution-and-REPL, not compiler-phase-only).
func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	if len(c.args) == 0 {
		return nil
	}

	cmdName := c.args[0]
	commands := buildCmds(c)
	fn, ok := commands[cmdName]
	if !ok {
		// not a recognized subcommand name: treat the whole arg list as a
		// file path to run directly, e.g. `loop script.loop`.
		c.cmdFn = c.Run
		return nil
	}
	c.cmdFn = fn

	if (cmdName == "tokenize" || cmdName == "parse" || cmdName == "run") && len(c.args[1:]) == 0 {
		return errors.New(cmdName + ": a file path must be provided")
	}
	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   true,
		EnvPrefix: strings.ToUpper(binName) + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)

	if c.cmdFn == nil {
		if err := c.REPL(ctx, stdio, nil); err != nil {
			return mainer.Failure
		}
		return mainer.Success
	}

	rest := c.args
	if len(c.args) > 0 {
		if _, ok := buildCmds(c)[c.args[0]]; ok {
			rest = c.args[1:]
		}
	}
	if err := c.cmdFn(ctx, stdio, rest); err != nil {
		return mainer.Failure
	}
	return mainer.Success
}

// buildCmds discovers the subcommand methods on v by reflection: any method
// taking (context.Context, mainer.Stdio, []string) and returning error.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		name := strings.ToLower(m.Name)
		if name == "repl" {
			continue
		}
		cmds[name] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}

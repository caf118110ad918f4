// Package config loads the interpreter's runtime tunables from environment
// variables, the way the teacher's own binary reads CLI flags with
// optional env-var fallback (mainer.Parser's EnvVars/EnvPrefix) — here the
// equivalent ambient knobs (interpolation depth, loop bound, debug tracing)
// are sourced directly from the environment via caarlos0/env, since the
// core has no flags of its own (spec.md §1 "Out of scope").
package config

import "github.com/caarlos0/env/v6"

// Config holds the interpreter core's environment-configurable limits.
type Config struct {
	// MaxInterpolationDepth bounds re-entrant string interpolation recursion
	// (spec.md §5 "Re-entrancy", suggested default 32).
	MaxInterpolationDepth int `env:"LOOP_MAX_INTERPOLATION_DEPTH" envDefault:"32"`
	// MaxLoopIterations bounds `loop { ... }` iteration count as a safety
	// valve; 0 means unbounded, matching the unbounded semantics spec.md §4.3
	// describes for Loop.
	MaxLoopIterations int `env:"LOOP_MAX_LOOP_ITERATIONS" envDefault:"0"`
	// Debug enables the `dbg` keyword's trace output.
	Debug bool `env:"LOOP_DEBUG" envDefault:"false"`
}

// Load reads Config from the process environment, applying the defaults
// above for anything unset.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

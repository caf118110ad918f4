package maincmd

import "github.com/loop-lang/loop/internal/config"

// mustConfig loads internal/config, falling back to a Config whose only
// non-zero field is MaxInterpolationDepth (32) if the environment can't be
// parsed, so a malformed LOOP_* variable never stops the tokenize, parse or
// REPL commands.
func mustConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{MaxInterpolationDepth: 32}
	}
	return cfg
}

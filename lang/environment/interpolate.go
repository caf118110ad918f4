package environment

import (
	"strconv"
	"strings"

	"github.com/loop-lang/loop/lang/scanner"
)

// errMaxInterpolationDepth is returned when re-entrant interpolation would
// exceed the configured recursion cap (spec.md §5 "Re-entrancy").
type errMaxInterpolationDepth struct{ max int }

func (e *errMaxInterpolationDepth) Error() string {
	return "string interpolation recursion exceeded max depth of " + strconv.Itoa(e.max)
}

// Interpolate extracts every {expr} span from s, parses and evaluates each
// one against this environment, and splices the rendered text back in,
// walking byte offsets in source order so that a span whose rendering is a
// different length than its source does not corrupt later offsets (spec.md
// §4.4 "String interpolation"). raw strings are returned unchanged.
func (e *Environment) Interpolate(s string, raw bool) (string, error) {
	if raw || !scanner.HasInterpolation(s) {
		return s, nil
	}
	if e.parseString == nil {
		return s, nil
	}

	*e.interpDepth++
	defer func() { *e.interpDepth-- }()
	if *e.interpDepth > e.maxInterpDepth {
		return "", &errMaxInterpolationDepth{max: e.maxInterpDepth}
	}

	spans := scanner.GetStringInterpolations(s)
	if len(spans) == 0 {
		return s, nil
	}

	var sb strings.Builder
	cursor := 0
	for _, span := range spans {
		// span.Offset is the byte offset of the span's content (just past the
		// opening '{'); back up one byte to include it, and one more past the
		// closing '}' to consume the whole { ... } unit.
		braceStart := span.Offset - 1
		braceEnd := span.Offset + len(span.Source) + 1
		if braceStart < cursor || braceEnd > len(s) {
			continue
		}
		sb.WriteString(s[cursor:braceStart])

		tree, err := e.parseString(span.Source)
		if err != nil {
			return "", err
		}
		v, err := tree.Eval(e)
		if err != nil {
			return "", err
		}
		sb.WriteString(v.String())
		cursor = braceEnd
	}
	sb.WriteString(s[cursor:])
	return sb.String(), nil
}

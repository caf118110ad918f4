package scanner

import "strings"

// Span is one `{expr}` interpolation span found inside a string literal's
// decoded text: Source is the expression text (without braces), Offset is
// its byte offset within the surrounding text (spec.md §4.1).
type Span struct {
	Source string
	Offset int
}

// GetStringInterpolations walks text and, at every '{', extracts the
// matching '}' span using bracket counting, so that nested braces inside
// the expression (e.g. a literal tuple `{ (a, b) }`... note: braces are not
// loop tuple delimiters, but nested calls or blocks inside the
// interpolation still nest braces) do not truncate the span early.
func GetStringInterpolations(text string) []Span {
	var spans []Span
	depth := 0
	start := -1
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '{':
			if depth == 0 {
				start = i + 1
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start >= 0 {
					spans = append(spans, Span{Source: text[start:i], Offset: start})
					start = -1
				}
			}
		}
	}
	return spans
}

// HasInterpolation is a cheap pre-check used by the environment to skip the
// span walk for strings with no braces at all.
func HasInterpolation(text string) bool {
	return strings.ContainsRune(text, '{')
}

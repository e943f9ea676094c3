package combinator

import "fmt"

// ParseError is the only error kind the engine produces. It carries the
// residual unconsumed input at the point parsing could not proceed and
// nothing else: no line, no column, no expected/got taxonomy. Syntax
// errors, mismatched tags, and unexpected end of input all surface
// identically.
type ParseError struct {
	Input string // the suffix that could not be matched
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return "unexpected end of input"
	}
	return fmt.Sprintf("cannot parse input at %q", truncate(e.Input, 40))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// Back up to a rune boundary so the message never splits a character.
	for n > 0 && s[n]&0xc0 == 0x80 {
		n--
	}
	return s[:n] + "..."
}

// fail produces the canonical failure return: the input unchanged, a zero
// value, and a ParseError carrying that same input.
func fail[T any](input string) (string, T, error) {
	var zero T
	return input, zero, &ParseError{Input: input}
}

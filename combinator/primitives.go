package combinator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Literal matches expected as an exact, case-sensitive prefix of the input
// and yields it.
func Literal(expected string) Parser[string] {
	return func(input string) (string, string, error) {
		if strings.HasPrefix(input, expected) {
			return input[len(expected):], expected, nil
		}
		return fail[string](input)
	}
}

// AnyChar consumes exactly one Unicode scalar value, advancing by its full
// encoded width. It fails only on empty input.
func AnyChar() Parser[rune] {
	return func(input string) (string, rune, error) {
		r, size := utf8.DecodeRuneInString(input)
		if size == 0 {
			return fail[rune](input)
		}
		return input[size:], r, nil
	}
}

// Identifier greedily matches one or more characters from the token
// charset: Unicode letters and digits, '-', '&', and '.'. It fails on an
// empty match.
func Identifier() Parser[string] {
	return func(input string) (string, string, error) {
		n := 0
		for _, r := range input {
			if !isIdentRune(r) {
				break
			}
			n += utf8.RuneLen(r)
		}
		if n == 0 {
			return fail[string](input)
		}
		return input[n:], input[:n], nil
	}
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '&' || r == '.'
}

// WhitespaceChar matches a single Unicode whitespace character.
func WhitespaceChar() Parser[rune] {
	return Pred(AnyChar(), unicode.IsSpace)
}

// Space0 matches zero or more whitespace characters; it always succeeds.
func Space0() Parser[[]rune] {
	return ZeroOrMore(WhitespaceChar())
}

// Space1 matches one or more whitespace characters.
func Space1() Parser[[]rune] {
	return OneOrMore(WhitespaceChar())
}

// QuotedString matches a double-quoted run of characters and yields the
// run without the quotes. There is no escape syntax: the value is every
// character up to the next '"'.
func QuotedString() Parser[string] {
	inner := ZeroOrMore(Pred(AnyChar(), func(r rune) bool { return r != '"' }))
	return Map(
		Right(Literal(`"`), Left(inner, Literal(`"`))),
		func(rs []rune) string { return string(rs) },
	)
}

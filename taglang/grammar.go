package taglang

import (
	"github.com/anas-azouane/RustyParser/combinator"
)

// Parse parses a complete document: one or more whitespace-separated
// top-level elements. The whole input must be consumed; trailing content
// that is not whitespace and not a well-formed tag fails the parse. On
// failure the returned error is a *combinator.ParseError carrying the
// unconsumed suffix at the failure point.
func Parse(input string) ([]Element, error) {
	rest, elements, err := combinator.OneOrMore[Element](element)(input)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, &combinator.ParseError{Input: rest}
	}
	return elements, nil
}

// attributePair matches token="value".
func attributePair() combinator.Parser[Attr] {
	return combinator.Map(
		combinator.Both(
			combinator.Identifier(),
			combinator.Right(combinator.Literal("="), combinator.QuotedString()),
		),
		func(p combinator.Pair[string, string]) Attr {
			return Attr{Key: p.Left, Value: p.Right}
		},
	)
}

// attributes matches zero or more attribute pairs, each preceded by
// mandatory whitespace. The whitespace is the separator and is discarded.
func attributes() combinator.Parser[[]Attr] {
	return combinator.ZeroOrMore(
		combinator.Right(combinator.Space1(), attributePair()),
	)
}

// elementStart matches "<" name attributes, shared by both tag forms.
// The Element it produces has no children yet.
func elementStart() combinator.Parser[Element] {
	return combinator.Map(
		combinator.Right(
			combinator.Literal("<"),
			combinator.Both(combinator.Identifier(), attributes()),
		),
		func(p combinator.Pair[string, []Attr]) Element {
			return Element{Name: p.Left, Attrs: p.Right}
		},
	)
}

// selfClosingElement matches <name attrs/>.
func selfClosingElement() combinator.Parser[Element] {
	return combinator.Left(elementStart(), combinator.Literal("/>"))
}

// openTag matches <name attrs>, producing a provisional childless Element.
func openTag() combinator.Parser[Element] {
	return combinator.Left(elementStart(), combinator.Literal(">"))
}

// closeTag matches </name> where name must equal the expected name
// exactly, byte for byte. A mismatch is an ordinary parse failure on the
// close tag's own input.
func closeTag(expected string) combinator.Parser[string] {
	return combinator.Pred(
		combinator.Right(
			combinator.Literal("</"),
			combinator.Left(combinator.Identifier(), combinator.Literal(">")),
		),
		func(name string) bool { return name == expected },
	)
}

// parentElement matches <name attrs> children </name>. The name captured
// from the open tag is threaded into the close-tag parser via AndThen,
// and a fresh Element is built with the children attached.
func parentElement() combinator.Parser[Element] {
	return combinator.AndThen(openTag(), func(open Element) combinator.Parser[Element] {
		return combinator.Map(
			combinator.Left(
				combinator.ZeroOrMore[Element](element),
				closeTag(open.Name),
			),
			func(children []Element) Element {
				return Element{Name: open.Name, Attrs: open.Attrs, Children: children}
			},
		)
	})
}

// element matches a single element of either form, wrapped in optional
// whitespace. Self-closing is tried first; it requires "/>" immediately
// after the attributes, so a parent tag fails that branch without
// consuming and the parent branch retries from the same position.
//
// element is a plain function rather than a constructed Parser value so
// the grammar can recurse through parentElement without building an
// infinite parser at init time.
func element(input string) (string, Element, error) {
	p := whitespaceWrap(combinator.Either(selfClosingElement(), parentElement()))
	return p(input)
}

// whitespaceWrap allows and discards whitespace around p.
func whitespaceWrap[T any](p combinator.Parser[T]) combinator.Parser[T] {
	return combinator.Right(
		combinator.Space0(),
		combinator.Left(p, combinator.Space0()),
	)
}

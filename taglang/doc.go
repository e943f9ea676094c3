// Package taglang parses the tag command language.
//
// The language is a small self-closing/nested tag syntax, structurally
// resembling XML but much narrower: no text content between tags, no
// entities, no comments, no namespaces, no escaped quotes inside
// attribute values. A document is one or more whitespace-separated
// elements, each either self-closing (`<name attr="value"/>`) or an
// open/close pair possibly containing nested elements (`<name>...</name>`).
//
// The grammar is assembled from the combinator package:
//
//   - Primitives match literals, identifiers, whitespace, and quoted strings.
//   - Grammar rules compose them into attributes, tags, and elements.
//   - Element is the output tree, consumed by the dispatch package.
//
// Usage:
//
//	elements, err := taglang.Parse(`<ls/><-la/>`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Parsing is a pure synchronous descent; recursion depth equals the
// nesting depth of the input, with no artificial limit beyond the stack.
// Failures carry only the residual unconsumed input (*combinator.ParseError).
package taglang

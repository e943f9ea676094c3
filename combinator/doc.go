// Package combinator implements a generic parser combinator engine.
//
// A Parser consumes a prefix of its input string and produces a typed value
// together with the unconsumed remainder. Parsers compose through a small
// algebra (Map, Both, Left, Right, Either, AndThen, Pred, ZeroOrMore,
// OneOrMore) into recursive-descent grammars.
//
// The engine is built around a single structural guarantee: a parser that
// fails returns its input byte-identical to what it received, never a
// partially advanced remainder. Either relies on this to retry its second
// branch on the original input, which gives the whole engine unlimited
// backtracking without any save/restore bookkeeping.
//
// The package knows nothing about any particular grammar; primitives.go
// provides the character-level building blocks (Literal, AnyChar,
// Identifier, whitespace, QuotedString) that grammars are assembled from.
package combinator

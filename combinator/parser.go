package combinator

// Parser is the contract every parsing unit satisfies: given a suffix of
// the input, return the unconsumed remainder and a produced value, or an
// error. On error the returned rest is byte-identical to input; the
// *ParseError inside err records the residual at the point of failure,
// which for composed parsers may lie deeper than input.
type Parser[T any] func(input string) (rest string, value T, err error)

// Pair holds the two results of a sequenced parse.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// Map runs p and applies fn to its value. The remainder is untouched;
// failure passes through unchanged.
func Map[A, B any](p Parser[A], fn func(A) B) Parser[B] {
	return func(input string) (string, B, error) {
		rest, v, err := p(input)
		if err != nil {
			var zero B
			return input, zero, err
		}
		return rest, fn(v), nil
	}
}

// Both runs first, then second on first's remainder, and succeeds only if
// both succeed. Whichever failure occurred propagates.
func Both[A, B any](first Parser[A], second Parser[B]) Parser[Pair[A, B]] {
	return func(input string) (string, Pair[A, B], error) {
		rest, a, err := first(input)
		if err != nil {
			return input, Pair[A, B]{}, err
		}
		rest, b, err := second(rest)
		if err != nil {
			return input, Pair[A, B]{}, err
		}
		return rest, Pair[A, B]{Left: a, Right: b}, nil
	}
}

// Left sequences two parsers and keeps only the first value. Used to drop
// trailing delimiters.
func Left[A, B any](first Parser[A], second Parser[B]) Parser[A] {
	return Map(Both(first, second), func(p Pair[A, B]) A { return p.Left })
}

// Right sequences two parsers and keeps only the second value. Used to
// drop leading delimiters.
func Right[A, B any](first Parser[A], second Parser[B]) Parser[B] {
	return Map(Both(first, second), func(p Pair[A, B]) B { return p.Right })
}

// Either tries first; if it fails, tries second on the original input.
// Because failure never consumes input, no cursor save/restore is needed.
func Either[T any](first, second Parser[T]) Parser[T] {
	return func(input string) (string, T, error) {
		rest, v, err := first(input)
		if err == nil {
			return rest, v, nil
		}
		return second(input)
	}
}

// AndThen runs p, then feeds its value to fn to construct the next parser,
// which runs on the remainder. This is how context-dependent rules are
// built: a value captured earlier shapes what may legally follow.
func AndThen[A, B any](p Parser[A], fn func(A) Parser[B]) Parser[B] {
	return func(input string) (string, B, error) {
		rest, v, err := p(input)
		if err != nil {
			var zero B
			return input, zero, err
		}
		rest, b, err := fn(v)(rest)
		if err != nil {
			var zero B
			return input, zero, err
		}
		return rest, b, nil
	}
}

// Pred runs p and accepts its value only if predicate returns true.
// A rejected value fails on the original input: no consumed-but-rejected
// progress escapes the filter.
func Pred[T any](p Parser[T], predicate func(T) bool) Parser[T] {
	return func(input string) (string, T, error) {
		rest, v, err := p(input)
		if err == nil && predicate(v) {
			return rest, v, nil
		}
		return fail[T](input)
	}
}

// ZeroOrMore applies p repeatedly until it fails, collecting the values.
// It always succeeds, possibly with an empty slice, and stops cleanly at
// the first failure without consuming past it.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(input string) (string, []T, error) {
		var result []T
		for {
			rest, v, err := p(input)
			if err != nil {
				return input, result, nil
			}
			result = append(result, v)
			input = rest
		}
	}
}

// OneOrMore behaves like ZeroOrMore but fails if p never succeeds.
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(input string) (string, []T, error) {
		rest, first, err := p(input)
		if err != nil {
			return input, nil, err
		}
		result := []T{first}
		input = rest
		for {
			rest, v, err := p(input)
			if err != nil {
				return input, result, nil
			}
			result = append(result, v)
			input = rest
		}
	}
}

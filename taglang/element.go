package taglang

import (
	"fmt"
	"strings"
)

// Attr is a key="value" pair from a tag. Values are always raw text;
// there is no numeric or boolean coercion.
type Attr struct {
	Key   string
	Value string
}

// Element is the parsed unit: a name, its attributes in source order
// (duplicates kept), and its children in source order. A self-closing
// element has no children. Elements are immutable once constructed.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []Element
}

// Attr looks up an attribute by key. Returns the value and true if found;
// with duplicate keys the last occurrence wins.
func (e *Element) Attr(key string) (string, bool) {
	for i := len(e.Attrs) - 1; i >= 0; i-- {
		if e.Attrs[i].Key == key {
			return e.Attrs[i].Value, true
		}
	}
	return "", false
}

// String renders the element back in tag syntax, mainly for logs and
// dry-run output. It is not a parse-faithful serializer: whitespace is
// normalized.
func (e Element) String() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.Name)
	for _, a := range e.Attrs {
		fmt.Fprintf(&b, " %s=%q", a.Key, a.Value)
	}
	if len(e.Children) == 0 {
		b.WriteString("/>")
		return b.String()
	}
	b.WriteByte('>')
	for _, c := range e.Children {
		b.WriteString(c.String())
	}
	fmt.Fprintf(&b, "</%s>", e.Name)
	return b.String()
}

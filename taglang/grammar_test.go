package taglang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anas-azouane/RustyParser/combinator"
)

func TestParseSelfClosingElement(t *testing.T) {
	elements, err := Parse(`<ls/>`)
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, "ls", elements[0].Name)
	assert.Empty(t, elements[0].Attrs)
	assert.Empty(t, elements[0].Children)
}

func TestParseSelfClosingWithAttributes(t *testing.T) {
	elements, err := Parse(`<div class="float" id="main"/>`)
	require.NoError(t, err)
	require.Len(t, elements, 1)

	el := elements[0]
	assert.Equal(t, "div", el.Name)
	require.Len(t, el.Attrs, 2)
	assert.Equal(t, Attr{Key: "class", Value: "float"}, el.Attrs[0])
	assert.Equal(t, Attr{Key: "id", Value: "main"}, el.Attrs[1])
	assert.Empty(t, el.Children)
}

func TestParseDuplicateAttributeKeysKept(t *testing.T) {
	elements, err := Parse(`<x k="1" k="2"/>`)
	require.NoError(t, err)

	el := elements[0]
	require.Len(t, el.Attrs, 2)
	assert.Equal(t, "1", el.Attrs[0].Value)
	assert.Equal(t, "2", el.Attrs[1].Value)

	// Lookup helper: last occurrence wins.
	v, ok := el.Attr("k")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestParseNestedElements(t *testing.T) {
	elements, err := Parse(`<a><b/></a>`)
	require.NoError(t, err)
	require.Len(t, elements, 1)

	a := elements[0]
	assert.Equal(t, "a", a.Name)
	require.Len(t, a.Children, 1)
	assert.Equal(t, "b", a.Children[0].Name)
	assert.Empty(t, a.Children[0].Children)
}

func TestParseDeeplyNested(t *testing.T) {
	elements, err := Parse(`
		<top label="Top">
			<semi-bottom label="Bottom"/>
			<middle>
				<bottom label="Another bottom"/>
			</middle>
		</top>`)
	require.NoError(t, err)
	require.Len(t, elements, 1)

	top := elements[0]
	assert.Equal(t, "top", top.Name)
	label, ok := top.Attr("label")
	assert.True(t, ok)
	assert.Equal(t, "Top", label)

	require.Len(t, top.Children, 2)
	assert.Equal(t, "semi-bottom", top.Children[0].Name)

	middle := top.Children[1]
	assert.Equal(t, "middle", middle.Name)
	require.Len(t, middle.Children, 1)
	assert.Equal(t, "bottom", middle.Children[0].Name)
}

func TestParseMismatchedCloseTag(t *testing.T) {
	_, err := Parse(`<a></b>`)
	require.Error(t, err)

	// The residual is the suffix where close-tag matching was attempted.
	var perr *combinator.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "</b>", perr.Input)
}

func TestParseCloseTagNameIsCaseSensitive(t *testing.T) {
	_, err := Parse(`<a></A>`)
	require.Error(t, err)
}

func TestParseWhitespaceInsensitiveBetweenElements(t *testing.T) {
	one, err := Parse("<a/>  <b/>")
	require.NoError(t, err)
	two, err2 := Parse("<a/> <b/>")
	require.NoError(t, err2)
	three, err3 := Parse("\n\t<a/>\n<b/>\n")
	require.NoError(t, err3)

	assert.Equal(t, one, two)
	assert.Equal(t, one, three)
	require.Len(t, one, 2)
	assert.Equal(t, "a", one[0].Name)
	assert.Equal(t, "b", one[1].Name)
}

func TestParseWhitespaceMandatoryBeforeAttribute(t *testing.T) {
	_, err := Parse(`<a k="v" j="w"/>`)
	require.NoError(t, err)

	// No separator between attributes: the attribute list stops at the
	// first pair and the tag cannot close.
	_, err = Parse(`<a k="v"j="w"/>`)
	require.Error(t, err)
}

func TestParseMultiByteAttributeValue(t *testing.T) {
	elements, err := Parse(`<msg text="héllo wörld 日本語"/>`)
	require.NoError(t, err)

	v, ok := elements[0].Attr("text")
	assert.True(t, ok)
	assert.Equal(t, "héllo wörld 日本語", v)
}

func TestParseTokenCharset(t *testing.T) {
	elements, err := Parse(`<my-tag&v1.2/>`)
	require.NoError(t, err)
	assert.Equal(t, "my-tag&v1.2", elements[0].Name)
}

func TestParseCommandSequence(t *testing.T) {
	elements, err := Parse(`<ls/><-la/>`)
	require.NoError(t, err)
	require.Len(t, elements, 2)
	assert.Equal(t, "ls", elements[0].Name)
	assert.Equal(t, "-la", elements[1].Name)
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse("")
	require.Error(t, err)
}

func TestParseWhitespaceOnlyInput(t *testing.T) {
	// One-or-more elements required: whitespace alone is not a document.
	_, err := Parse("   \n")
	require.Error(t, err)
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := Parse(`<a/> garbage`)
	require.Error(t, err)

	var perr *combinator.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "garbage", perr.Input)
}

func TestParseRejectsTextContent(t *testing.T) {
	// No text-content model: words between tags fail the parse.
	_, err := Parse(`<a>hello</a>`)
	require.Error(t, err)
}

func TestParseUnterminatedTag(t *testing.T) {
	_, err := Parse(`<a`)
	require.Error(t, err)
}

func TestParseQuoteInAttributeValueUnsupported(t *testing.T) {
	// No escape syntax: a quote ends the value and the rest cannot parse.
	_, err := Parse(`<a k="va\"lue"/>`)
	require.Error(t, err)
}

func TestElementStringRendering(t *testing.T) {
	elements, err := Parse(`<a k="v"><b/></a>`)
	require.NoError(t, err)
	assert.Equal(t, `<a k="v"><b/></a>`, elements[0].String())
}

func TestAttrLookupMissingKey(t *testing.T) {
	el := Element{Name: "x"}
	_, ok := el.Attr("missing")
	assert.False(t, ok)
}

package markdown

import (
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/markpad/markpad/engine/blocks"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func roundTrip(t *testing.T, markup string) {
	t.Helper()
	root, err := Render(markup)
	if err != nil {
		t.Fatalf("cannot render %q: %v", markup, err)
	}
	out, err := Serialize(root)
	if err != nil {
		t.Fatalf("cannot serialize: %v", err)
	}
	if !Equivalent(markup, out) {
		t.Errorf("round trip changed markup:\n in: %q\nout: %q", markup, out)
	}
}

func query(root *html.Node, selector string) *html.Node {
	return cascadia.MustCompile(selector).MatchFirst(root)
}

func TestRenderBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.input")
	defer teardown()
	//
	root, err := Render("# Title\n\nSome text.\n\n> quoted")
	assert.NoError(t, err)
	assert.NotNil(t, query(root, "h1"))
	assert.NotNil(t, query(root, "blockquote > p"))
	assert.Equal(t, "Some text.", blocks.Text(query(root, "div > p")))
}

func TestRenderGivesEmptyBlocksPlaceholders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.input")
	defer teardown()
	//
	root, err := Render("#  ")
	assert.NoError(t, err)
	h1 := query(root, "h1")
	if assert.NotNil(t, h1) {
		assert.NotNil(t, h1.FirstChild, "empty blocks carry a placeholder")
	}
}

func TestRoundTripParagraphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.input")
	defer teardown()
	//
	roundTrip(t, "First paragraph.\n\nSecond paragraph.")
}

func TestRoundTripInlineStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.input")
	defer teardown()
	//
	roundTrip(t, "Text with *emphasis*, **strong words**, `code` and ~~gone~~.")
}

func TestRoundTripHeadingsAndQuote(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.input")
	defer teardown()
	//
	roundTrip(t, "# Top\n\n## Second\n\n> a quoted line")
}

func TestRoundTripLists(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.input")
	defer teardown()
	//
	roundTrip(t, "- one\n- two\n- three")
	roundTrip(t, "1. first\n2. second")
}

func TestRoundTripFence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.input")
	defer teardown()
	//
	roundTrip(t, "```go\nx := 1\n```")
}

func TestRoundTripUnderline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.input")
	defer teardown()
	//
	// underline has no markdown form and travels as literal inline HTML
	roundTrip(t, "with <u>underlined</u> words")
}

func TestRoundTripLink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.input")
	defer teardown()
	//
	roundTrip(t, "See [the docs](https://example.org/docs).")
}

func TestSerializeStyledSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.input")
	defer teardown()
	//
	root, err := Render("plain")
	assert.NoError(t, err)
	p := query(root, "p")
	span := &html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}
	span.Attr = []html.Attribute{{Key: "style", Val: "font-weight:bold"}}
	span.AppendChild(&html.Node{Type: html.TextNode, Data: "loud"})
	p.AppendChild(span)
	out, err := Serialize(root)
	assert.NoError(t, err)
	assert.Equal(t, "plain**loud**", out)
}

func TestSerializeEscapesMarkers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.input")
	defer teardown()
	//
	root, err := Render("plain")
	assert.NoError(t, err)
	p := query(root, "p")
	p.FirstChild.Data = "2 * 3 [sic]"
	out, err := Serialize(root)
	assert.NoError(t, err)
	assert.Equal(t, `2 \* 3 \[sic\]`, out)
}

func TestSerializeDropsEmptyParagraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.input")
	defer teardown()
	//
	root, err := Render("before\n\nafter")
	assert.NoError(t, err)
	p := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
	p.AppendChild(blocks.NewPlaceholder())
	root.AppendChild(p)
	out, err := Serialize(root)
	assert.NoError(t, err)
	assert.Equal(t, "before\n\nafter", out)
}

func TestEquivalent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.input")
	defer teardown()
	//
	assert.True(t, Equivalent("a  b\nc", "a b c"))
	assert.True(t, Equivalent("a b", "a b"))
	assert.False(t, Equivalent("a b", "a c"))
	//
	// blank lines separate blocks and are significant
	assert.False(t, Equivalent("first\n\nsecond", "first second"))
	assert.True(t, Equivalent("first\n\nsecond", "first\n\n\nsecond"))
	assert.False(t, Equivalent("one\n\ntwo\n\nthree", "one\n\ntwo three"))
}

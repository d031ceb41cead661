package blockedit

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBackspaceMergesBlocksInContainer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.edit")
	defer teardown()
	//
	ed, surf := editor(t, `<blockquote><p>abc</p><p>def</p></blockquote>`)
	surf.CaretAtStart(mustQuery(t, surf, "p:nth-child(2)"))
	assert.True(t, ed.HandleKey(KeyBackspace))
	assert.Equal(t, `<blockquote><p>abcdef</p></blockquote>`, surf.InnerHTML())
	assert.Equal(t, 3, surf.AbsoluteCaretOffset(), "caret sits on the merge seam")
}

func TestBackspaceMergeKeepsInnerWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.edit")
	defer teardown()
	//
	ed, surf := editor(t, `<p>one</p><p> two </p>`)
	surf.CaretAtStart(mustQuery(t, surf, "p:nth-child(2)"))
	assert.True(t, ed.HandleKey(KeyBackspace))
	assert.Equal(t, `<p>one two </p>`, surf.InnerHTML(),
		"spaces of the absorbed block survive the merge")
	assert.Equal(t, 3, surf.AbsoluteCaretOffset())
}

func TestBackspaceExitsContainerOnFirstBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.edit")
	defer teardown()
	//
	ed, surf := editor(t, `<blockquote><p>abc</p></blockquote>`)
	surf.CaretAtStart(mustQuery(t, surf, "p"))
	assert.True(t, ed.HandleKey(KeyBackspace))
	assert.Equal(t, `<p>abc</p>`, surf.InnerHTML(),
		"first block steps out of its container instead of merging")
}

func TestBackspaceExitSplitsContainer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.edit")
	defer teardown()
	//
	// a list's first item exits as a paragraph before the remaining list
	ed, surf := editor(t, `<ul><li>one</li><li>two</li></ul>`)
	surf.CaretAtStart(mustQuery(t, surf, "li"))
	assert.True(t, ed.HandleKey(KeyBackspace))
	assert.Equal(t, `<p>one</p><ul><li>two</li></ul>`, surf.InnerHTML())
}

func TestBackspaceMergesIntoPrecedingContainer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.edit")
	defer teardown()
	//
	ed, surf := editor(t, `<blockquote><p>abc</p></blockquote><p>def</p>`)
	surf.CaretAtStart(mustQuery(t, surf, "div > p"))
	assert.True(t, ed.HandleKey(KeyBackspace))
	assert.Equal(t, `<blockquote><p>abcdef</p></blockquote>`, surf.InnerHTML())
	assert.Equal(t, 3, surf.AbsoluteCaretOffset())
}

func TestBackspaceMergeFusesTwinContainers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.edit")
	defer teardown()
	//
	ed, surf := editor(t,
		`<blockquote><p>a</p></blockquote><p>x</p><blockquote><p>b</p></blockquote>`)
	surf.CaretAtStart(mustQuery(t, surf, "div > p"))
	assert.True(t, ed.HandleKey(KeyBackspace))
	assert.Equal(t, `<blockquote><p>ax</p><p>b</p></blockquote>`, surf.InnerHTML(),
		"pulling the separator into the quote fuses the twins")
}

func TestBackspaceCoalescesAroundEmptyParagraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.edit")
	defer teardown()
	//
	ed, surf := editor(t,
		`<blockquote><p>a</p></blockquote><p><br/></p><blockquote><p>b</p></blockquote>`)
	surf.CaretAtStart(mustQuery(t, surf, "div > p"))
	assert.True(t, ed.HandleKey(KeyBackspace))
	assert.Equal(t, `<blockquote><p>a</p><p>b</p></blockquote>`, surf.InnerHTML())
	assert.Equal(t, 1, surf.AbsoluteCaretOffset(), "caret lands on the seam")
}

func TestCoalescingIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.edit")
	defer teardown()
	//
	ed, surf := editor(t,
		`<blockquote><p>a</p></blockquote><p><br/></p><blockquote><p>b</p></blockquote>`)
	surf.CaretAtStart(mustQuery(t, surf, "div > p"))
	assert.True(t, ed.HandleKey(KeyBackspace))
	fused := surf.InnerHTML()
	// the caret now sits mid-text, a second backspace is plain character
	// editing and not ours to handle
	assert.False(t, ed.HandleKey(KeyBackspace))
	assert.Equal(t, fused, surf.InnerHTML())
}

func TestBackspaceRevertsHeadingToParagraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.edit")
	defer teardown()
	//
	ed, surf := editor(t, `<p>x</p><h2>abc</h2>`)
	surf.CaretAtStart(mustQuery(t, surf, "h2"))
	assert.True(t, ed.HandleKey(KeyBackspace))
	assert.Equal(t, `<p>x</p><p>abc</p>`, surf.InnerHTML(),
		"a heading reverts to a paragraph instead of merging")
}

func TestBackspaceOnSoleHeading(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.edit")
	defer teardown()
	//
	ed, surf := editor(t, `<h2>Title</h2>`)
	surf.CaretAtStart(mustQuery(t, surf, "h2"))
	assert.True(t, ed.HandleKey(KeyBackspace))
	assert.Equal(t, `<p>Title</p>`, surf.InnerHTML())
	assert.Equal(t, 0, surf.AbsoluteCaretOffset())
}

func TestBackspaceIntoCodeBlockAbsorbed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.edit")
	defer teardown()
	//
	ed, surf := editor(t, `<pre><code>x := 1</code></pre><p>def</p>`)
	surf.CaretAtStart(mustQuery(t, surf, "p"))
	before := surf.InnerHTML()
	assert.True(t, ed.HandleKey(KeyBackspace),
		"a non-mergeable pair absorbs the key as a handled no-op")
	assert.Equal(t, before, surf.InnerHTML())
}

func TestBackspaceMidTextNotHandled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.edit")
	defer teardown()
	//
	ed, surf := editor(t, `<p>abc</p>`)
	p := mustQuery(t, surf, "p")
	surf.CaretAtTextOffset(p, 2)
	assert.False(t, ed.HandleKey(KeyBackspace))
}

func TestBackspaceOnFirstBlockNotHandled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.edit")
	defer teardown()
	//
	ed, surf := editor(t, `<p>abc</p>`)
	surf.CaretAtStart(mustQuery(t, surf, "p"))
	assert.False(t, ed.HandleKey(KeyBackspace),
		"nothing precedes the first paragraph")
}

func TestBackspaceMergesTopLevelParagraphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.edit")
	defer teardown()
	//
	ed, surf := editor(t, `<p>abc</p><p>def</p>`)
	surf.CaretAtStart(mustQuery(t, surf, "p:nth-child(2)"))
	assert.True(t, ed.HandleKey(KeyBackspace))
	assert.Equal(t, `<p>abcdef</p>`, surf.InnerHTML())
	assert.Equal(t, 3, surf.AbsoluteCaretOffset())
}

func TestBackspaceWithRangeSelectionNotHandled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.edit")
	defer teardown()
	//
	ed, surf := editor(t, `<p>abc</p>`)
	tn := mustQuery(t, surf, "p").FirstChild
	surf.SelectRange(tn, 0, tn, 2)
	assert.False(t, ed.HandleKey(KeyBackspace),
		"range deletion is the host's default behavior")
}

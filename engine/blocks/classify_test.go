package blocks

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBlockStartAndEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.blocks")
	defer teardown()
	//
	root := parse(t, `<p>abc</p>`)
	tn := firstText(t, find(t, root, "p"))
	assert.True(t, IsAtBlockStart(tn, 0))
	assert.False(t, IsAtBlockStart(tn, 1))
	assert.True(t, IsAtBlockEnd(tn, 3))
	assert.False(t, IsAtBlockEnd(tn, 2))
}

func TestBlockStartAfterInlineStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.blocks")
	defer teardown()
	//
	root := parse(t, `<p><b>abc</b>def</p>`)
	b := find(t, root, "b")
	assert.True(t, IsAtBlockStart(firstText(t, b), 0),
		"start of styled run at block start counts as block start")
	def := b.NextSibling
	assert.False(t, IsAtBlockStart(def, 0))
	assert.True(t, IsAtBlockEnd(def, 3))
}

func TestEnclosingBlockAndContainer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.blocks")
	defer teardown()
	//
	root := parse(t, `<blockquote><p><i>abc</i></p></blockquote>`)
	tn := firstText(t, root)
	block := EnclosingBlock(tn)
	assert.NotNil(t, block)
	assert.Equal(t, Paragraph, KindOf(block))
	cont := EnclosingContainer(root, block)
	assert.NotNil(t, cont)
	assert.Equal(t, Blockquote, KindOf(cont))
	assert.Nil(t, EnclosingContainer(root, cont))
}

func TestEnclosingBlockLikePre(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.blocks")
	defer teardown()
	//
	root := parse(t, `<pre><code>x := 1</code></pre>`)
	tn := firstText(t, root)
	block := EnclosingBlockLike(root, tn)
	assert.NotNil(t, block)
	assert.Equal(t, Preformatted, KindOf(block))
}

func TestPreviousBlockEntersContainer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.blocks")
	defer teardown()
	//
	root := parse(t, `<blockquote><p>abc</p><p>def</p></blockquote><p>ghi</p>`)
	last := LastBlockIn(root)
	assert.Equal(t, "ghi", Text(last))
	prev := PreviousBlock(last)
	assert.NotNil(t, prev)
	assert.Equal(t, "def", Text(prev))
	prev = PreviousBlock(prev)
	assert.NotNil(t, prev)
	assert.Equal(t, "abc", Text(prev))
	assert.Nil(t, PreviousBlock(prev))
}

func TestNextBlockLeavesContainer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.blocks")
	defer teardown()
	//
	root := parse(t, `<ul><li>one</li><li>two</li></ul><p>after</p>`)
	first := FirstBlockIn(root)
	assert.Equal(t, "one", Text(first))
	next := NextBlock(first)
	assert.Equal(t, "two", Text(next))
	next = NextBlock(next)
	assert.Equal(t, "after", Text(next))
	assert.Nil(t, NextBlock(next))
}

func TestFindEmptyBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.blocks")
	defer teardown()
	//
	root := parse(t, `<blockquote><p><br/></p></blockquote>`)
	p := find(t, root, "p")
	block, cont := FindEmptyBlock(root, p)
	assert.Equal(t, p, block)
	assert.Equal(t, find(t, root, "blockquote"), cont)
	//
	root = parse(t, `<p>abc</p>`)
	tn := firstText(t, root)
	block, _ = FindEmptyBlock(root, tn)
	assert.Nil(t, block, "a block with text is not empty")
}

func TestFindBlockInContainer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.blocks")
	defer teardown()
	//
	root := parse(t, `<ul><li>one</li></ul><p>two</p>`)
	li := find(t, root, "li")
	block, cont := FindBlockInContainer(root, firstText(t, li))
	assert.Equal(t, li, block)
	assert.Equal(t, find(t, root, "ul"), cont)
	//
	block, cont = FindBlockInContainer(root, firstText(t, find(t, root, "p")))
	assert.Nil(t, block, "top-level block lives in no container")
	assert.Nil(t, cont)
}

func TestEndOfInlineStyleRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.blocks")
	defer teardown()
	//
	root := parse(t, `<p>abc<b>def</b></p>`)
	b := find(t, root, "b")
	tn := firstText(t, b)
	assert.True(t, IsAtEndOfInlineStyleRun(tn, 3))
	assert.False(t, IsAtEndOfInlineStyleRun(tn, 2))
	plain := firstText(t, root)
	assert.False(t, IsAtEndOfInlineStyleRun(plain, 3),
		"plain text never ends a styled run")
}

func TestTextBeforeAndCompare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markpad.blocks")
	defer teardown()
	//
	root := parse(t, `<p>ab<b>cd</b>ef</p>`)
	p := find(t, root, "p")
	b := find(t, root, "b")
	bt := firstText(t, b)
	assert.Equal(t, "abc", TextBefore(p, bt, 1))
	assert.Equal(t, "abcdef", Text(p))
	assert.Equal(t, 6, TextLength(p))
	//
	first := firstText(t, p)
	assert.Equal(t, -1, Compare(first, 0, bt, 0))
	assert.Equal(t, 1, Compare(bt, 2, first, 2))
	assert.Equal(t, 0, Compare(bt, 1, bt, 1))
	// an element position encloses positions inside the child it points at
	assert.Equal(t, -1, Compare(p, 1, bt, 0))
}

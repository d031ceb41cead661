package blockedit

import (
	"strings"

	"github.com/markpad/markpad/engine/blocks"
	"github.com/markpad/markpad/engine/dom"
	"golang.org/x/net/html"
)

// backspace handles a Backspace press at a block start. Anywhere else
// the key is not handled and falls through to plain character deletion.
func (ed *Editor) backspace() bool {
	surf := ed.surf
	sel := surf.Selection()
	if sel == nil || !sel.Collapsed() {
		return false
	}
	pos := sel.Focus
	root := surf.Root()
	block := blocks.EnclosingBlockLike(root, pos.Node)
	if block == nil {
		tracer().Debugf("backspace outside any block not handled")
		return false
	}
	if !blocks.IsAtBlockStart(pos.Node, pos.Offset) {
		return false
	}
	if ed.coalesceAround(block) {
		return true
	}
	cont := blocks.EnclosingContainer(root, block)
	if cont != nil {
		prev := blocks.PreviousBlock(block)
		if prev != nil && blocks.EnclosingContainer(root, prev) == cont {
			if !canMerge(blocks.BlockTypeOf(prev), blocks.BlockTypeOf(block)) {
				return true // absorbed, keeps the structure intact
			}
			ed.mergeBlocks(prev, block)
			return true
		}
		// first block of its container: step out instead of merging
		ed.exitToParagraph(block)
		ed.coalesceAround(block)
		return true
	}
	switch blocks.BlockTypeOf(block) {
	case blocks.TypeParagraph:
		return ed.mergeWithPrevious(block)
	case blocks.TypeUnknown:
		return false
	default:
		// heading or stray list item at top level reverts to a paragraph
		ed.exitToParagraph(block)
		surf.CaretAtStart(block)
		return true
	}
}

// mergeWithPrevious merges a top-level paragraph into the block before
// it, entering a preceding container when there is one.
func (ed *Editor) mergeWithPrevious(block *html.Node) bool {
	surf := ed.surf
	root := surf.Root()
	prev := blocks.PreviousBlock(block)
	if prev == nil {
		return false // nothing before the first block
	}
	prevCont := blocks.EnclosingContainer(root, prev)
	if prevCont == nil && blocks.KindOf(prev) == blocks.Preformatted {
		prevCont = prev
	}
	if prevCont == nil {
		ed.mergeBlocks(prev, block)
		return true
	}
	if !canMerge(blocks.BlockTypeOf(prev), blocks.BlockTypeOf(block)) {
		return true // absorbed, the paragraph stays where it is
	}
	boundary := blocks.TextLength(prev)
	ed.mergeBlocks(prev, block)
	// removing the paragraph may leave twin containers side by side
	if next := blocks.NextElement(prevCont); next != nil &&
		sameContainerKind(prevCont, next) {
		surf.SelectRange(prevCont, blocks.ChildCount(prevCont), next, 0)
		surf.Exec(dom.CmdDelete, "")
	}
	surf.CaretAtTextOffset(prev, boundary)
	return true
}

// mergeBlocks pulls the inline content of block into the end of prev
// and removes block. The caret ends up at the junction.
func (ed *Editor) mergeBlocks(prev, block *html.Node) {
	surf := ed.surf
	boundary := blocks.TextLength(prev)
	if !blocks.IsBlockEmpty(block) {
		// newlines between inline nodes are markup artifacts; spaces are
		// genuine text and survive the merge
		txt := strings.Trim(blocks.Text(blocks.ExtractInlineContent(block)), "\n")
		surf.CaretAtEnd(prev)
		surf.Exec(dom.CmdInsertText, txt)
	}
	surf.SelectNode(block)
	surf.Exec(dom.CmdDelete, "")
	surf.CaretAtTextOffset(prev, boundary)
}

// exitToParagraph lifts a block out of its container and turns it into
// a paragraph. The two commands act on the same node, so the block
// pointer stays valid afterwards.
func (ed *Editor) exitToParagraph(block *html.Node) {
	surf := ed.surf
	surf.CaretAtStart(block)
	surf.Exec(dom.CmdOutdent, "")
	surf.Exec(dom.CmdFormatBlock, "p")
}

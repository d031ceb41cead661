package blockedit

import (
	"github.com/markpad/markpad/engine/blocks"
	"github.com/markpad/markpad/engine/dom"
	"golang.org/x/net/html"
)

// coalesceAround joins two same-kind containers that are separated only
// by the given block, when that block is an empty top-level paragraph.
// Deleting the range between the containers makes the delete command
// fuse them; the caret lands on the seam. Running it again is a no-op,
// since the fused tree no longer matches the pattern.
func (ed *Editor) coalesceAround(block *html.Node) bool {
	surf := ed.surf
	root := surf.Root()
	if block.Parent != root {
		return false
	}
	if blocks.BlockTypeOf(block) != blocks.TypeParagraph || !blocks.IsBlockEmpty(block) {
		return false
	}
	prev := blocks.PrevElement(block)
	next := blocks.NextElement(block)
	if prev == nil || next == nil || !sameContainerKind(prev, next) {
		return false
	}
	caretBlock := blocks.LastBlockIn(prev)
	off := blocks.TextLength(caretBlock)
	surf.SelectRange(prev, blocks.ChildCount(prev), next, 0)
	surf.Exec(dom.CmdDelete, "")
	surf.CaretAtTextOffset(caretBlock, off)
	return true
}

func sameContainerKind(a, b *html.Node) bool {
	ca, cb := blocks.Classify(a), blocks.Classify(b)
	return ca.IsContainer && cb.IsContainer && blocks.KindOf(a) == blocks.KindOf(b)
}

// canMerge says whether the content of a block of type src may be
// merged backwards into a block of type dst. Code blocks never accept
// foreign content, and nothing merges into an unknown block.
func canMerge(dst, src blocks.BlockType) bool {
	if dst == blocks.TypeUnknown || src == blocks.TypeUnknown {
		return false
	}
	if dst == blocks.TypeCode || src == blocks.TypeCode {
		return false
	}
	return true
}

package blockedit

import (
	"github.com/markpad/markpad/engine/blocks"
	"github.com/markpad/markpad/engine/dom"
)

// enter handles an Enter press. Three cursor contexts get block
// semantics; everywhere else the key falls through to the host's plain
// line splitting.
func (ed *Editor) enter() bool {
	surf := ed.surf
	sel := surf.Selection()
	if sel == nil || !sel.Collapsed() {
		return false
	}
	pos := sel.Focus
	root := surf.Root()

	// pressing Enter on an empty block escapes its context: out of the
	// container, or from heading back to paragraph
	if block, cont := blocks.FindEmptyBlock(root, pos.Node); block != nil {
		if cont != nil || blocks.BlockTypeOf(block) != blocks.TypeParagraph {
			ed.exitToParagraph(block)
			surf.CaretAtStart(block)
			return true
		}
	}

	block := blocks.EnclosingBlock(pos.Node)
	if block == nil {
		return false
	}

	// at the end of a styled run, break out of the styling into a fresh
	// paragraph rather than extending the run
	if blocks.IsAtEndOfInlineStyleRun(pos.Node, pos.Offset) {
		surf.CaretAfter(block)
		if !surf.Exec(dom.CmdInsertFragment, "<p><br></p>") {
			return false
		}
		if next := blocks.NextElement(block); next != nil {
			surf.CaretAtStart(next)
		}
		return true
	}

	// at the end of a container block, continue the container with a
	// fresh block of the same tag
	cont := blocks.EnclosingContainer(root, block)
	if cont != nil && !blocks.IsBlockEmpty(block) &&
		blocks.IsAtBlockEnd(pos.Node, pos.Offset) {
		surf.CaretAfter(block)
		tag := block.Data
		if !surf.Exec(dom.CmdInsertFragment, "<"+tag+"><br></"+tag+">") {
			return false
		}
		if next := blocks.NextElement(block); next != nil {
			surf.CaretAtStart(next)
		}
		return true
	}
	return false
}

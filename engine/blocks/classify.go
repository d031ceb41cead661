package blocks

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// IsBlockEmpty reports whether a block holds no visible text. A block
// containing only the placeholder line break counts as empty.
func IsBlockEmpty(block *html.Node) bool {
	return strings.TrimSpace(Text(block)) == ""
}

// EnclosingBlock walks up from n (inclusive) to the nearest block node.
func EnclosingBlock(n *html.Node) *html.Node {
	for ; n != nil; n = n.Parent {
		if Classify(n).IsBlock {
			return n
		}
	}
	return nil
}

// EnclosingBlockLike returns the nearest block ancestor of n, or the
// enclosing preformatted container when n sits inside a code fence: a
// fence has no inner block structure, so the fence itself plays the block
// role. root bounds the walk and may be nil.
func EnclosingBlockLike(root, n *html.Node) *html.Node {
	if b := EnclosingBlock(n); b != nil {
		return b
	}
	for p := n; p != nil && p != root; p = p.Parent {
		if KindOf(p) == Preformatted {
			return p
		}
	}
	return nil
}

// EnclosingContainer walks up from n (exclusive) to the nearest container
// node, stopping at root. Root-level nodes yield nil.
func EnclosingContainer(root, n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for p := n.Parent; p != nil && p != root; p = p.Parent {
		if Classify(p).IsContainer {
			return p
		}
	}
	return nil
}

// IsAtBlockStart reports whether the position (container, offset) sits at
// the very start of its enclosing block: all text accumulated before it
// is whitespace. A positive offset into a text run holding non-whitespace
// short-circuits to false without walking the block.
func IsAtBlockStart(container *html.Node, offset int) bool {
	if container == nil {
		return false
	}
	if container.Type == html.TextNode && offset > 0 && strings.TrimSpace(container.Data) != "" {
		return false
	}
	block := EnclosingBlockLike(nil, container)
	if block == nil {
		return false
	}
	return strings.TrimSpace(TextBefore(block, container, offset)) == ""
}

// IsAtBlockEnd reports whether the position (container, offset) sits at
// the end of its enclosing block: the text accumulated up to and
// including the position covers the block's whole text.
func IsAtBlockEnd(container *html.Node, offset int) bool {
	if container == nil {
		return false
	}
	block := EnclosingBlockLike(nil, container)
	if block == nil {
		return false
	}
	return utf8.RuneCountInString(TextBefore(block, container, offset)) == TextLength(block)
}

// IsAtEndOfInlineStyleRun reports whether the caret sits at the end of
// the last text node of its nearest enclosing inline-style node, bounded
// by the enclosing block.
func IsAtEndOfInlineStyleRun(container *html.Node, offset int) bool {
	if container == nil || container.Type != html.TextNode {
		return false
	}
	block := EnclosingBlock(container)
	if block == nil {
		return false
	}
	var run *html.Node
	for p := container.Parent; p != nil && p != block; p = p.Parent {
		if Classify(p).IsInlineStyle {
			run = p
			break
		}
	}
	if run == nil {
		return false
	}
	var last *html.Node
	WalkText(run, func(tn *html.Node) bool {
		last = tn
		return true
	})
	return last == container && offset == utf8.RuneCountInString(container.Data)
}

// PreviousBlock returns the block preceding block among its siblings.
// Traversal is container-transparent: non-block, non-container siblings
// are skipped, and a container sibling contributes its last block.
func PreviousBlock(block *html.Node) *html.Node {
	if block == nil {
		return nil
	}
	for s := block.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type != html.ElementNode {
			continue
		}
		cl := Classify(s)
		if cl.IsBlock {
			return s
		}
		if cl.IsContainer {
			if b := LastBlockIn(s); b != nil {
				return b
			}
		}
	}
	return nil
}

// NextBlock is the mirror image of PreviousBlock.
func NextBlock(block *html.Node) *html.Node {
	if block == nil {
		return nil
	}
	for s := block.NextSibling; s != nil; s = s.NextSibling {
		if s.Type != html.ElementNode {
			continue
		}
		cl := Classify(s)
		if cl.IsBlock {
			return s
		}
		if cl.IsContainer {
			if b := FirstBlockIn(s); b != nil {
				return b
			}
		}
	}
	return nil
}

// LastBlockIn returns the last block inside a container, descending into
// nested containers. A preformatted container is its own block.
func LastBlockIn(cont *html.Node) *html.Node {
	if KindOf(cont) == Preformatted {
		return cont
	}
	for c := cont.LastChild; c != nil; c = c.PrevSibling {
		if c.Type != html.ElementNode {
			continue
		}
		cl := Classify(c)
		if cl.IsBlock {
			return c
		}
		if cl.IsContainer {
			if b := LastBlockIn(c); b != nil {
				return b
			}
		}
	}
	return nil
}

// FirstBlockIn is the mirror image of LastBlockIn.
func FirstBlockIn(cont *html.Node) *html.Node {
	if KindOf(cont) == Preformatted {
		return cont
	}
	for c := cont.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		cl := Classify(c)
		if cl.IsBlock {
			return c
		}
		if cl.IsContainer {
			if b := FirstBlockIn(c); b != nil {
				return b
			}
		}
	}
	return nil
}

// FindEmptyBlock returns the empty block enclosing the selection
// container together with its enclosing container (nil at root level).
// It returns nil when the enclosing block has visible content.
func FindEmptyBlock(root, container *html.Node) (*html.Node, *html.Node) {
	block := EnclosingBlockLike(root, container)
	if block == nil || !IsBlockEmpty(block) {
		return nil, nil
	}
	return block, EnclosingContainer(root, block)
}

// FindBlockInContainer returns the block enclosing the selection
// container when — and only when — that block lives inside a container.
func FindBlockInContainer(root, container *html.Node) (*html.Node, *html.Node) {
	block := EnclosingBlockLike(root, container)
	if block == nil {
		return nil, nil
	}
	cont := EnclosingContainer(root, block)
	if cont == nil {
		return nil, nil
	}
	return block, cont
}

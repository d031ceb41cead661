package dom

import (
	"unicode/utf8"

	"github.com/markpad/markpad/engine/blocks"
	"golang.org/x/net/html"
)

func childIndex(n *html.Node) int {
	i := 0
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		i++
	}
	return i
}

func childCount(n *html.Node) int {
	cnt := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		cnt++
	}
	return cnt
}

func childAt(n *html.Node, i int) *html.Node {
	c := n.FirstChild
	for ; c != nil && i > 0; c = c.NextSibling {
		i--
	}
	return c
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// positionAtTextOffset locates the text node under el containing the
// given rune offset, counting over all descendant text in document
// order. The boolean is false if el holds no text at all.
func positionAtTextOffset(el *html.Node, offset int) (Position, bool) {
	var found Position
	acc := 0
	blocks.WalkText(el, func(tn *html.Node) bool {
		l := blocks.TextLength(tn)
		if acc+l >= offset {
			found = Position{Node: tn, Offset: clamp(offset-acc, 0, l)}
			return false
		}
		acc += l
		return true
	})
	if found.IsZero() {
		return endPosition(el), acc > 0
	}
	return found, true
}

// endPosition is the last addressable point inside el.
func endPosition(el *html.Node) Position {
	var last *html.Node
	blocks.WalkText(el, func(tn *html.Node) bool {
		last = tn
		return true
	})
	if last != nil {
		return Position{Node: last, Offset: blocks.TextLength(last)}
	}
	return Position{Node: el, Offset: childCount(el)}
}

// textOffsetOf converts a position into a rune offset over the text
// content of root.
func textOffsetOf(root *html.Node, pos Position) int {
	if pos.Node.Type == html.TextNode {
		return utf8.RuneCountInString(blocks.TextBefore(root, pos.Node, pos.Offset))
	}
	acc := 0
	blocks.WalkText(root, func(tn *html.Node) bool {
		if blocks.Compare(tn, 0, pos.Node, pos.Offset) >= 0 {
			return false
		}
		acc += blocks.TextLength(tn)
		return true
	})
	return acc
}

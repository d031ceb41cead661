package dom

import (
	"golang.org/x/net/html"
)

// Position addresses a point in the node tree. For text nodes the offset
// counts runes into the node's text; for element nodes it counts
// children, so offset i sits before the i-th child.
type Position struct {
	Node   *html.Node
	Offset int
}

// IsZero reports whether p addresses nothing.
func (p Position) IsZero() bool {
	return p.Node == nil
}

// Selection is a pair of positions. Anchor is where the selection
// started, focus where it currently ends; the two may be in either
// document order. A collapsed selection is a caret.
type Selection struct {
	Anchor Position
	Focus  Position
}

// Collapsed reports whether the selection is a caret.
func (s Selection) Collapsed() bool {
	return s.Anchor == s.Focus
}

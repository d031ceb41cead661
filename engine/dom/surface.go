package dom

import (
	"strings"

	"github.com/markpad/markpad/core"
	"github.com/markpad/markpad/engine/blocks"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Surface is the editing surface: a live node tree plus the current
// selection. All structural mutations run through Exec; caret movement
// is plain navigation and never touches the command channel.
type Surface struct {
	root     *html.Node
	sel      *Selection
	observer CommandFunc
	settled  []func()
}

// NewSurface wraps an existing element node as an editing surface.
func NewSurface(root *html.Node) (*Surface, error) {
	if root == nil || root.Type != html.ElementNode {
		return nil, core.Error(core.EINVALID, "editing surface needs an element root")
	}
	return &Surface{root: root}, nil
}

// FromHTML parses an HTML fragment and wraps it in a fresh surface. The
// fragment's top-level nodes become children of a synthetic div root.
func FromHTML(fragment string) (*Surface, error) {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse surface fragment")
	}
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	surf := &Surface{root: root}
	surf.normalize()
	return surf, nil
}

// Root exposes the surface's root element for read access.
func (surf *Surface) Root() *html.Node {
	return surf.root
}

// Selection returns a copy of the current selection, or nil when the
// surface holds none. Edit commands degrade to not-handled without one.
func (surf *Surface) Selection() *Selection {
	if surf.sel == nil {
		return nil
	}
	sel := *surf.sel
	return &sel
}

// ClearSelection drops the current selection.
func (surf *Surface) ClearSelection() {
	surf.sel = nil
}

// Observe registers fn to be called after every successfully executed
// command, receiving the command and its value. Hosts use this to feed
// an undo journal.
func (surf *Surface) Observe(fn CommandFunc) {
	surf.observer = fn
}

// AfterSettle queues fn to run at the next Settle call, after pending
// structural work is done.
func (surf *Surface) AfterSettle(fn func()) {
	surf.settled = append(surf.settled, fn)
}

// Settle runs all queued AfterSettle callbacks in order.
func (surf *Surface) Settle() {
	fns := surf.settled
	surf.settled = nil
	for _, fn := range fns {
		fn()
	}
}

func (surf *Surface) contains(n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == surf.root {
			return true
		}
	}
	return false
}

func (surf *Surface) setCaret(n *html.Node, offset int) {
	pos := Position{Node: n, Offset: offset}
	surf.sel = &Selection{Anchor: pos, Focus: pos}
}

// SelectNode selects exactly n, anchor before and focus after it.
func (surf *Surface) SelectNode(n *html.Node) {
	if n == nil || n.Parent == nil || !surf.contains(n) {
		tracer().Debugf("select node outside surface ignored")
		return
	}
	i := childIndex(n)
	surf.sel = &Selection{
		Anchor: Position{Node: n.Parent, Offset: i},
		Focus:  Position{Node: n.Parent, Offset: i + 1},
	}
}

// SelectRange sets an explicit anchor/focus pair.
func (surf *Surface) SelectRange(anchor *html.Node, aoff int, focus *html.Node, foff int) {
	if !surf.contains(anchor) || !surf.contains(focus) {
		tracer().Debugf("select range outside surface ignored")
		return
	}
	surf.sel = &Selection{
		Anchor: Position{Node: anchor, Offset: aoff},
		Focus:  Position{Node: focus, Offset: foff},
	}
}

// CaretBefore places the caret immediately before n.
func (surf *Surface) CaretBefore(n *html.Node) {
	if n == nil || n.Parent == nil {
		return
	}
	surf.setCaret(n.Parent, childIndex(n))
}

// CaretAfter places the caret immediately after n.
func (surf *Surface) CaretAfter(n *html.Node) {
	if n == nil || n.Parent == nil {
		return
	}
	surf.setCaret(n.Parent, childIndex(n)+1)
}

// CaretAtStart places the caret at the first text position inside el,
// or before el's first child when el has no text.
func (surf *Surface) CaretAtStart(el *html.Node) {
	var first *html.Node
	blocks.WalkText(el, func(tn *html.Node) bool {
		first = tn
		return false
	})
	if first != nil {
		surf.setCaret(first, 0)
		return
	}
	surf.setCaret(el, 0)
}

// CaretAtEnd places the caret behind the last text inside el, or after
// el's last child when el has no text.
func (surf *Surface) CaretAtEnd(el *html.Node) {
	pos := endPosition(el)
	surf.setCaret(pos.Node, pos.Offset)
}

// CaretAtTextOffset places the caret at a rune offset into el's text.
func (surf *Surface) CaretAtTextOffset(el *html.Node, offset int) {
	pos, _ := positionAtTextOffset(el, offset)
	surf.setCaret(pos.Node, pos.Offset)
}

// AbsoluteCaretOffset returns the caret as a rune offset over the whole
// surface text, or -1 when there is no collapsed selection. Together
// with SetAbsoluteCaretOffset it lets hosts stash the cursor across
// serialization round trips.
func (surf *Surface) AbsoluteCaretOffset() int {
	if surf.sel == nil || !surf.sel.Collapsed() {
		return -1
	}
	return textOffsetOf(surf.root, surf.sel.Focus)
}

// SetAbsoluteCaretOffset restores a caret previously captured with
// AbsoluteCaretOffset.
func (surf *Surface) SetAbsoluteCaretOffset(n int) {
	if n < 0 {
		surf.sel = nil
		return
	}
	pos, _ := positionAtTextOffset(surf.root, n)
	surf.setCaret(pos.Node, pos.Offset)
}

// InnerHTML renders the surface's children back to markup.
func (surf *Surface) InnerHTML() string {
	var sb strings.Builder
	for c := surf.root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			tracer().Errorf("render of surface failed: %v", err)
			return ""
		}
	}
	return sb.String()
}

package dom

import (
	"strings"

	"github.com/markpad/markpad/engine/blocks"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parseFragment parses markup as it would appear inside a div.
func parseFragment(fragment string) ([]*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	return html.ParseFragment(strings.NewReader(fragment), ctx)
}

// A boundary is a cut point between siblings: it sits inside parent,
// immediately before ref. A nil ref marks the end of parent.
type boundary struct {
	parent *html.Node
	ref    *html.Node
}

// splitBoundary turns a position into a boundary between siblings,
// splitting a text node in two when the position falls inside one.
func splitBoundary(pos Position) boundary {
	n := pos.Node
	if n.Type != html.TextNode {
		return boundary{parent: n, ref: childAt(n, pos.Offset)}
	}
	runes := []rune(n.Data)
	off := clamp(pos.Offset, 0, len(runes))
	switch off {
	case 0:
		return boundary{parent: n.Parent, ref: n}
	case len(runes):
		return boundary{parent: n.Parent, ref: n.NextSibling}
	}
	tail := &html.Node{Type: html.TextNode, Data: string(runes[off:])}
	n.Data = string(runes[:off])
	n.Parent.InsertBefore(tail, n.NextSibling)
	return boundary{parent: n.Parent, ref: tail}
}

func commonAncestor(a, b *html.Node) *html.Node {
	seen := map[*html.Node]bool{}
	for n := a; n != nil; n = n.Parent {
		seen[n] = true
	}
	for n := b; n != nil; n = n.Parent {
		if seen[n] {
			return n
		}
	}
	return nil
}

func hasElementChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return true
		}
	}
	return false
}

func solePlaceholder(el *html.Node) *html.Node {
	c := el.FirstChild
	if c != nil && c == el.LastChild && blocks.IsPlaceholder(c) {
		return c
	}
	return nil
}

func insertChildAt(parent, n *html.Node, i int) {
	parent.InsertBefore(n, childAt(parent, i))
}

func shallowClone(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if n.Attr != nil {
		c.Attr = append([]html.Attribute(nil), n.Attr...)
	}
	return c
}

// liftChildren replaces n with its children.
func liftChildren(n *html.Node) {
	p := n.Parent
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		n.RemoveChild(c)
		p.InsertBefore(c, n)
	}
	p.RemoveChild(n)
}

// --- insertText ---------------------------------------------------------

func (surf *Surface) insertText(val string) bool {
	if !surf.sel.Collapsed() {
		if !surf.deleteSelection() {
			return false
		}
	}
	pos := surf.sel.Focus
	if pos.Node.Type == html.TextNode {
		runes := []rune(pos.Node.Data)
		off := clamp(pos.Offset, 0, len(runes))
		pos.Node.Data = string(runes[:off]) + val + string(runes[off:])
		surf.setCaret(pos.Node, off+len([]rune(val)))
		return true
	}
	if pos.Node.Type != html.ElementNode {
		return false
	}
	el, off := pos.Node, pos.Offset
	if ph := solePlaceholder(el); ph != nil {
		el.RemoveChild(ph)
		off = 0
	}
	tn := &html.Node{Type: html.TextNode, Data: val}
	insertChildAt(el, tn, off)
	surf.setCaret(tn, len([]rune(val)))
	return true
}

// --- deleteSelection ----------------------------------------------------

func (surf *Surface) deleteSelection() bool {
	sel := *surf.sel
	if sel.Collapsed() {
		tracer().Debugf("delete with collapsed selection not handled")
		return false
	}
	start, end := sel.Anchor, sel.Focus
	if blocks.Compare(start.Node, start.Offset, end.Node, end.Offset) > 0 {
		start, end = end, start
	}
	// fast path: both ends in the same text node
	if start.Node == end.Node && start.Node.Type == html.TextNode {
		runes := []rune(start.Node.Data)
		s := clamp(start.Offset, 0, len(runes))
		e := clamp(end.Offset, s, len(runes))
		start.Node.Data = string(runes[:s]) + string(runes[e:])
		surf.setCaret(start.Node, s)
		surf.normalize()
		return true
	}
	// the caret lands at the start position after removal
	caretNode, caretOff := start.Node, start.Offset
	if start.Node.Type == html.TextNode && start.Offset == 0 {
		caretNode, caretOff = start.Node.Parent, childIndex(start.Node)
	}

	endB := splitBoundary(end) // end first, so start offsets stay valid
	startB := splitBoundary(start)
	ca := commonAncestor(startB.parent, endB.parent)
	if ca == nil || !surf.contains(ca) {
		tracer().Errorf("selection endpoints have no common ancestor in surface")
		return false
	}

	// climb the start side, dropping everything after the boundary
	node, ref := startB.parent, startB.ref
	var startTop *html.Node
	for node != ca {
		var next *html.Node
		for c := ref; c != nil; c = next {
			next = c.NextSibling
			node.RemoveChild(c)
		}
		startTop = node
		ref = node.NextSibling
		node = node.Parent
	}
	startRef := ref

	// climb the end side, dropping everything before the boundary
	node, ref = endB.parent, endB.ref
	var endTop *html.Node
	for node != ca {
		var next *html.Node
		for c := node.FirstChild; c != nil && c != ref; c = next {
			next = c.NextSibling
			node.RemoveChild(c)
		}
		endTop = node
		node = node.Parent
	}
	endRef := endB.ref
	if endTop != nil {
		endRef = endTop
	}

	// drop whole subtrees strictly between the two boundaries
	for c := startRef; c != nil && c != endRef; {
		next := c.NextSibling
		ca.RemoveChild(c)
		c = next
	}

	// when the cut leaves two half blocks (or two same-kind containers)
	// side by side, join them
	if startTop != nil && endTop != nil && joinable(startTop, endTop) {
		k := childCount(startTop)
		var next *html.Node
		for c := endTop.FirstChild; c != nil; c = next {
			next = c.NextSibling
			endTop.RemoveChild(c)
			startTop.AppendChild(c)
		}
		ca.RemoveChild(endTop)
		caretNode, caretOff = startTop, k
	}

	surf.placeCaret(caretNode, caretOff)
	surf.normalize()
	if surf.sel == nil || !surf.contains(surf.sel.Focus.Node) {
		surf.setCaret(surf.root, 0)
	}
	return true
}

// joinable reports whether two nodes left adjacent by a range removal
// should be merged into one: two blocks always, two containers only
// when they are of the same kind.
func joinable(a, b *html.Node) bool {
	if a.Type != html.ElementNode || b.Type != html.ElementNode {
		return false
	}
	ca, cb := blocks.Classify(a), blocks.Classify(b)
	if ca.IsContainer && cb.IsContainer {
		return blocks.KindOf(a) == blocks.KindOf(b)
	}
	return ca.IsBlock && cb.IsBlock
}

// placeCaret sets the caret with offsets clamped to the node's extent.
func (surf *Surface) placeCaret(n *html.Node, off int) {
	if n == nil || !surf.contains(n) {
		surf.setCaret(surf.root, 0)
		return
	}
	if n.Type == html.TextNode {
		off = clamp(off, 0, blocks.TextLength(n))
	} else {
		off = clamp(off, 0, childCount(n))
	}
	surf.setCaret(n, off)
}

// --- structural invariants ----------------------------------------------

// normalize re-establishes the structural invariants after a mutation:
// containers are never empty, blocks never render as zero-height, and
// the surface always holds at least one block.
func (surf *Surface) normalize() {
	surf.sweep(surf.root)
	if !hasElementChild(surf.root) {
		p := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
		p.AppendChild(blocks.NewPlaceholder())
		surf.root.AppendChild(p)
	}
}

func (surf *Surface) sweep(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		surf.sweep(c)
	}
	if n.Type != html.ElementNode || n == surf.root || n.Parent == nil {
		return
	}
	cls := blocks.Classify(n)
	switch {
	case blocks.KindOf(n) == blocks.Preformatted:
		// block-like despite being an element wrapper: keep as long as
		// it holds anything at all
		if n.FirstChild == nil {
			surf.hoistCaret(n)
			n.Parent.RemoveChild(n)
		}
	case cls.IsContainer && !hasElementChild(n):
		surf.hoistCaret(n)
		n.Parent.RemoveChild(n)
	case cls.IsBlock && !hasElementChild(n) && blocks.IsBlockEmpty(n):
		n.AppendChild(blocks.NewPlaceholder())
	}
}

// hoistCaret moves selection endpoints that sit inside n up to n's slot
// in its parent, so removing n leaves the selection valid.
func (surf *Surface) hoistCaret(n *html.Node) {
	if surf.sel == nil || n.Parent == nil {
		return
	}
	fix := func(p *Position) {
		for a := p.Node; a != nil; a = a.Parent {
			if a == n {
				p.Node, p.Offset = n.Parent, childIndex(n)
				return
			}
		}
	}
	fix(&surf.sel.Anchor)
	fix(&surf.sel.Focus)
}

// --- formatBlock ----------------------------------------------------------

// formatBlock retags the block around the caret in place, so node
// identity and with it the selection survive the conversion.
func (surf *Surface) formatBlock(tag string) bool {
	block := blocks.EnclosingBlockLike(surf.root, surf.sel.Focus.Node)
	if block == nil {
		tracer().Debugf("formatBlock %q outside any block", tag)
		return false
	}
	if blocks.KindOf(block) == blocks.Preformatted {
		c := blocks.FirstElement(block)
		if c != nil && c.DataAtom == atom.Code && c == blocks.LastElement(block) {
			liftChildren(c)
		}
	}
	block.DataAtom = atom.Lookup([]byte(tag))
	block.Data = tag
	block.Attr = nil
	return true
}

// --- outdent --------------------------------------------------------------

// outdent lifts the block around the caret out of its container, to the
// container's level. Lifting an interior block splits the container.
func (surf *Surface) outdent() bool {
	block := blocks.EnclosingBlockLike(surf.root, surf.sel.Focus.Node)
	if block == nil {
		tracer().Debugf("outdent outside any block")
		return false
	}
	cont := blocks.EnclosingContainer(surf.root, block)
	if cont == nil {
		return true // already at top level
	}
	top := block
	for top.Parent != cont {
		top = top.Parent
	}
	parent := cont.Parent
	switch {
	case blocks.PrevElement(top) == nil:
		cont.RemoveChild(top)
		parent.InsertBefore(top, cont)
	case blocks.NextElement(top) == nil:
		cont.RemoveChild(top)
		parent.InsertBefore(top, cont.NextSibling)
	default:
		shell := shallowClone(cont)
		var next *html.Node
		for s := top.NextSibling; s != nil; s = next {
			next = s.NextSibling
			cont.RemoveChild(s)
			shell.AppendChild(s)
		}
		cont.RemoveChild(top)
		parent.InsertBefore(top, cont.NextSibling)
		parent.InsertBefore(shell, top.NextSibling)
	}
	if !hasElementChild(cont) {
		surf.hoistCaret(cont)
		parent.RemoveChild(cont)
	}
	return true
}

// --- insertFragment ---------------------------------------------------------

func (surf *Surface) insertFragment(val string) bool {
	nodes, err := parseFragment(val)
	if err != nil || len(nodes) == 0 {
		tracer().Debugf("unusable fragment %q: %v", val, err)
		return false
	}
	if !surf.sel.Collapsed() {
		if !surf.deleteSelection() {
			return false
		}
	}
	pos := surf.sel.Focus
	blockLevel := false
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			if cls := blocks.Classify(n); cls.IsBlock || cls.IsContainer {
				blockLevel = true
			}
		}
	}
	if blockLevel {
		surf.insertBlocks(nodes, pos)
	} else {
		surf.insertInline(nodes, pos)
	}
	surf.normalize()
	return true
}

// insertBlocks splices block-level nodes in at the block seam nearest to
// pos, splitting the surrounding block when pos falls in its middle.
func (surf *Surface) insertBlocks(nodes []*html.Node, pos Position) {
	block := blocks.EnclosingBlockLike(surf.root, pos.Node)
	if block == nil {
		// caret sits between blocks already
		el, ref := surf.root, (*html.Node)(nil)
		if pos.Node.Type == html.ElementNode {
			el, ref = pos.Node, childAt(pos.Node, pos.Offset)
		}
		for _, n := range nodes {
			el.InsertBefore(n, ref)
		}
		surf.CaretAtStart(nodes[len(nodes)-1])
		return
	}
	parent := block.Parent
	var ref *html.Node
	switch {
	case blocks.IsAtBlockStart(pos.Node, pos.Offset):
		ref = block
	case blocks.IsAtBlockEnd(pos.Node, pos.Offset):
		ref = block.NextSibling
	default:
		ref = splitBlock(block, pos)
	}
	for _, n := range nodes {
		parent.InsertBefore(n, ref)
	}
	surf.CaretAtStart(nodes[len(nodes)-1])
}

// splitBlock cuts block in two at pos and returns the second half, a
// sibling following block. Inline ancestors between pos and the block
// are split along the way.
func splitBlock(block *html.Node, pos Position) *html.Node {
	b := splitBoundary(pos)
	node, ref := b.parent, b.ref
	for node != block {
		shell := shallowClone(node)
		var next *html.Node
		for c := ref; c != nil; c = next {
			next = c.NextSibling
			node.RemoveChild(c)
			shell.AppendChild(c)
		}
		node.Parent.InsertBefore(shell, node.NextSibling)
		ref = shell
		node = node.Parent
	}
	half := shallowClone(block)
	var next *html.Node
	for c := ref; c != nil; c = next {
		next = c.NextSibling
		block.RemoveChild(c)
		half.AppendChild(c)
	}
	block.Parent.InsertBefore(half, block.NextSibling)
	return half
}

// insertInline splices phrasing content in at pos.
func (surf *Surface) insertInline(nodes []*html.Node, pos Position) {
	b := splitBoundary(pos)
	el := b.parent
	if ph := solePlaceholder(el); ph != nil {
		el.RemoveChild(ph)
		b.ref = nil
	}
	for _, n := range nodes {
		el.InsertBefore(n, b.ref)
	}
	surf.CaretAfter(nodes[len(nodes)-1])
}

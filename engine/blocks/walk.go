package blocks

import (
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/stacks/arraystack"
	"golang.org/x/net/html"
)

// WalkText visits every text node under el in document order. The walk
// stops early when f returns false; the return value reports whether it
// ran to completion.
func WalkText(el *html.Node, f func(*html.Node) bool) bool {
	if el == nil {
		return true
	}
	stack := arraystack.New()
	for c := el.LastChild; c != nil; c = c.PrevSibling {
		stack.Push(c)
	}
	for {
		v, ok := stack.Pop()
		if !ok {
			return true
		}
		n := v.(*html.Node)
		if n.Type == html.TextNode {
			if !f(n) {
				return false
			}
			continue
		}
		for c := n.LastChild; c != nil; c = c.PrevSibling {
			stack.Push(c)
		}
	}
}

// Text returns the concatenated text content of n's subtree.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	WalkText(n, func(tn *html.Node) bool {
		sb.WriteString(tn.Data)
		return true
	})
	return sb.String()
}

// TextLength returns the number of runes in n's text content.
func TextLength(n *html.Node) int {
	return utf8.RuneCountInString(Text(n))
}

// TextBefore returns the text content of scope preceding the position
// (n, off). Offsets count runes inside text nodes and children inside
// elements.
func TextBefore(scope, n *html.Node, off int) string {
	var sb strings.Builder
	WalkText(scope, func(tn *html.Node) bool {
		if tn == n {
			r := []rune(tn.Data)
			if off > len(r) {
				off = len(r)
			}
			if off > 0 {
				sb.WriteString(string(r[:off]))
			}
			return false
		}
		if Compare(tn, 0, n, off) < 0 {
			sb.WriteString(tn.Data)
			return true
		}
		return false
	})
	return sb.String()
}

// Compare orders two positions of one tree in document order, returning
// -1, 0 or +1. Positions are (node, offset) pairs: a rune offset for text
// nodes, a child index for elements.
func Compare(n1 *html.Node, o1 int, n2 *html.Node, o2 int) int {
	if n1 == n2 {
		switch {
		case o1 < o2:
			return -1
		case o1 > o2:
			return 1
		}
		return 0
	}
	p1, p2 := pathTo(n1, o1), pathTo(n2, o2)
	for i := 0; i < len(p1) && i < len(p2); i++ {
		if p1[i] != p2[i] {
			if p1[i] < p2[i] {
				return -1
			}
			return 1
		}
	}
	// an enclosing boundary sits before any position inside the child it
	// points at
	switch {
	case len(p1) < len(p2):
		return -1
	case len(p1) > len(p2):
		return 1
	}
	return 0
}

func pathTo(n *html.Node, off int) []int {
	path := []int{off}
	for ; n != nil && n.Parent != nil; n = n.Parent {
		idx := 0
		for s := n.PrevSibling; s != nil; s = s.PrevSibling {
			idx++
		}
		path = append(path, idx)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PrevElement returns the nearest preceding element sibling of n.
func PrevElement(n *html.Node) *html.Node {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// NextElement returns the nearest following element sibling of n.
func NextElement(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// FirstElement returns the first element child of n.
func FirstElement(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// LastElement returns the last element child of n.
func LastElement(n *html.Node) *html.Node {
	for c := n.LastChild; c != nil; c = c.PrevSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// ChildCount returns the number of children of n.
func ChildCount(n *html.Node) int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	return count
}

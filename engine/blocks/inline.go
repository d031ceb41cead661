package blocks

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Style properties that constitute genuine inline styling. Everything
// else in a style attribute is block-level presentation (heading sizes,
// blockquote coloring, margins) and must not leak into a merge target.
var inlineProperties = map[string]bool{
	"font-weight":          true,
	"font-style":           true,
	"text-decoration":      true,
	"text-decoration-line": true,
}

func styleAttr(n *html.Node) string {
	for _, a := range n.Attr {
		if a.Key == "style" {
			return a.Val
		}
	}
	return ""
}

func setStyleAttr(n *html.Node, val string) {
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != "style" {
			attrs = append(attrs, a)
		}
	}
	if val != "" {
		attrs = append(attrs, html.Attribute{Key: "style", Val: val})
	}
	n.Attr = attrs
}

// hasInlineStyle reports whether a generic wrapper carries at least one
// inline style declaration.
func hasInlineStyle(n *html.Node) bool {
	style := styleAttr(n)
	if style == "" {
		return false
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		tracer().Debugf("unparsable style attribute %q: %v", style, err)
		return false
	}
	for _, d := range decls {
		if inlineProperties[strings.ToLower(d.Property)] {
			return true
		}
	}
	return false
}

// InlineStyles inspects a node's style declarations and reports which
// inline text styles they carry.
func InlineStyles(n *html.Node) (bold, italic, underline, strike bool) {
	style := styleAttr(n)
	if style == "" {
		return
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		return
	}
	for _, d := range decls {
		val := strings.ToLower(d.Value)
		switch strings.ToLower(d.Property) {
		case "font-weight":
			if val == "bold" || val == "bolder" || val == "600" || val == "700" ||
				val == "800" || val == "900" {
				bold = true
			}
		case "font-style":
			if val == "italic" || val == "oblique" {
				italic = true
			}
		case "text-decoration", "text-decoration-line":
			if strings.Contains(val, "underline") {
				underline = true
			}
			if strings.Contains(val, "line-through") {
				strike = true
			}
		}
	}
	return
}

// ExtractInlineContent returns a deep copy of block in which wrappers
// whose style declarations are exclusively block-presentational are
// unwrapped, and block-presentational declarations are stripped from
// mixed wrappers. Only genuinely inline styling survives.
func ExtractInlineContent(block *html.Node) *html.Node {
	clone := CloneTree(block)
	stripPresentation(clone)
	return clone
}

// CloneTree deep-copies a node subtree. The copy is detached.
func CloneTree(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if n.Attr != nil {
		c.Attr = append([]html.Attribute(nil), n.Attr...)
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.AppendChild(CloneTree(ch))
	}
	return c
}

func stripPresentation(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		stripPresentation(c)
	}
	if n.Type != html.ElementNode || n.Parent == nil {
		return // the copied root itself stays
	}
	var kept []string
	if style := styleAttr(n); style != "" {
		if decls, err := parser.ParseDeclarations(style); err == nil {
			for _, d := range decls {
				if inlineProperties[strings.ToLower(d.Property)] {
					kept = append(kept, d.String())
				}
			}
		}
		setStyleAttr(n, strings.Join(kept, " "))
	}
	switch n.DataAtom {
	case atom.Span, atom.Font:
		if len(kept) == 0 {
			unwrap(n)
		}
	}
}

// unwrap replaces n with its children.
func unwrap(n *html.Node) {
	p := n.Parent
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		n.RemoveChild(c)
		p.InsertBefore(c, n)
	}
	p.RemoveChild(n)
}

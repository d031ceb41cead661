package markdown

import (
	"fmt"
	"strings"

	"github.com/markpad/markpad/core"
	"github.com/markpad/markpad/engine/blocks"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Serialize walks a block tree and emits the corresponding markup.
// Empty paragraphs have no markup representation and are dropped, which
// is exactly why adjacent same-kind containers have to coalesce once
// the paragraph between them empties out.
func Serialize(root *html.Node) (string, error) {
	if root == nil {
		return "", core.Error(core.EINVALID, "cannot serialize a nil block tree")
	}
	return strings.Join(childBlockLines(root), "\n"), nil
}

// childBlockLines serializes n's element children, separated by blank
// lines.
func childBlockLines(n *html.Node) []string {
	var out []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		lines := blockLines(c)
		if lines == nil {
			continue
		}
		if len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, lines...)
	}
	return out
}

func blockLines(n *html.Node) []string {
	switch blocks.KindOf(n) {
	case blocks.Paragraph:
		s := inlineMarkup(n)
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return strings.Split(s, "\n")
	case blocks.Heading:
		return []string{strings.Repeat("#", blocks.HeadingLevel(n)) + " " + inlineMarkup(n)}
	case blocks.Blockquote:
		return quoteLines(n)
	case blocks.UnorderedList:
		return listLines(n, false)
	case blocks.OrderedList:
		return listLines(n, true)
	case blocks.Preformatted:
		return fenceLines(n)
	case blocks.ListItem:
		// a stray item outside a list becomes a one-item list
		return listLines(wrapInList(n), false)
	}
	tracer().Debugf("serializing unclassified element <%s> as paragraph", n.Data)
	s := inlineMarkup(n)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func wrapInList(li *html.Node) *html.Node {
	ul := &html.Node{Type: html.ElementNode, Data: "ul", DataAtom: atom.Ul}
	ul.AppendChild(blocks.CloneTree(li))
	return ul
}

func quoteLines(quote *html.Node) []string {
	inner := childBlockLines(quote)
	out := make([]string, 0, len(inner))
	for _, line := range inner {
		if line == "" {
			out = append(out, ">")
		} else {
			out = append(out, "> "+line)
		}
	}
	return out
}

func listLines(list *html.Node, ordered bool) []string {
	var out []string
	i := 0
	for c := list.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		i++
		marker := "- "
		if ordered {
			marker = fmt.Sprintf("%d. ", i)
		}
		pad := strings.Repeat(" ", len(marker))
		for j, line := range itemLines(c) {
			if j == 0 {
				out = append(out, marker+line)
			} else if line == "" {
				out = append(out, "")
			} else {
				out = append(out, pad+line)
			}
		}
	}
	return out
}

// itemLines serializes a list item: leading inline content first, then
// any nested blocks or containers indented under the item marker.
func itemLines(li *html.Node) []string {
	var lines []string
	var sb strings.Builder
	flush := func() {
		if strings.TrimSpace(sb.String()) != "" {
			lines = append(lines, strings.Split(sb.String(), "\n")...)
		}
		sb.Reset()
	}
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			if cls := blocks.Classify(c); cls.IsBlock || cls.IsContainer {
				flush()
				lines = append(lines, blockLines(c)...)
				continue
			}
		}
		sb.WriteString(inlineNode(c))
	}
	flush()
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func fenceLines(pre *html.Node) []string {
	info := ""
	if c := blocks.FirstElement(pre); c != nil && c.DataAtom == atom.Code {
		for _, a := range c.Attr {
			if a.Key == "class" && strings.HasPrefix(a.Val, "language-") {
				info = strings.TrimPrefix(a.Val, "language-")
			}
		}
	}
	body := strings.TrimSuffix(blocks.Text(pre), "\n")
	lines := []string{"```" + info}
	if body != "" {
		lines = append(lines, strings.Split(body, "\n")...)
	}
	return append(lines, "```")
}

// --- inline content -------------------------------------------------------

func inlineMarkup(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.NextSibling == nil && blocks.IsPlaceholder(c) {
			break // trailing placeholder renders as nothing
		}
		sb.WriteString(inlineNode(c))
	}
	return sb.String()
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
)

func inlineNode(n *html.Node) string {
	if n.Type == html.TextNode {
		return escaper.Replace(n.Data)
	}
	if n.Type != html.ElementNode {
		return ""
	}
	switch blocks.KindOf(n) {
	case blocks.Bold:
		return "**" + inlineMarkup(n) + "**"
	case blocks.Italic:
		return "*" + inlineMarkup(n) + "*"
	case blocks.Code:
		return "`" + blocks.Text(n) + "`"
	case blocks.Underline:
		return "<u>" + inlineMarkup(n) + "</u>"
	case blocks.Strike:
		return "~~" + inlineMarkup(n) + "~~"
	case blocks.StyledSpan:
		return spanMarkup(n)
	}
	switch n.DataAtom {
	case atom.Br:
		return "\n"
	case atom.A:
		return "[" + inlineMarkup(n) + "](" + attrVal(n, "href") + ")"
	case atom.Img:
		return "![" + attrVal(n, "alt") + "](" + attrVal(n, "src") + ")"
	}
	return inlineMarkup(n)
}

// spanMarkup renders a style-attributed span with the markup markers
// matching its inline styles.
func spanMarkup(n *html.Node) string {
	s := inlineMarkup(n)
	bold, italic, underline, strike := blocks.InlineStyles(n)
	if strike {
		s = "~~" + s + "~~"
	}
	if underline {
		s = "<u>" + s + "</u>"
	}
	if italic {
		s = "*" + s + "*"
	}
	if bold {
		s = "**" + s + "**"
	}
	return s
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

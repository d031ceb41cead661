package markdown

import (
	"bytes"
	"strings"

	"github.com/markpad/markpad/core"
	"github.com/markpad/markpad/engine/blocks"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
	goldmark.WithRendererOptions(ghtml.WithUnsafe()),
)

// Render parses markup into a block tree, rooted at a detached div
// element suitable for wrapping in an editing surface.
func Render(markup string) (*html.Node, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markup), &buf); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot convert markup")
	}
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(&buf, ctx)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse converted markup")
	}
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, n := range nodes {
		if n.Type == html.TextNode && strings.TrimSpace(n.Data) == "" {
			continue // inter-block whitespace from the converter
		}
		root.AppendChild(n)
	}
	ensurePlaceholders(root)
	tracer().Debugf("rendered %d top-level blocks", blocks.ChildCount(root))
	return root, nil
}

// ensurePlaceholders gives every empty block a <br> placeholder so it
// keeps a caret position.
func ensurePlaceholders(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		ensurePlaceholders(c)
	}
	if n.Type != html.ElementNode {
		return
	}
	if blocks.Classify(n).IsBlock && n.FirstChild == nil {
		n.AppendChild(blocks.NewPlaceholder())
	}
}

// Equivalent compares two pieces of markup modulo insignificant
// whitespace: within a block, runs of spaces collapse and non-breaking
// spaces count as plain spaces; blank lines separating blocks are
// significant and must match. Text is normalized to NFC. Round trips
// through Render and Serialize are stable under this comparison.
func Equivalent(a, b string) bool {
	return canonical(a) == canonical(b)
}

func canonical(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, " ", " ")
	var chunks []string
	for _, block := range strings.Split(s, "\n\n") {
		block = strings.Join(strings.Fields(block), " ")
		if block == "" {
			continue
		}
		chunks = append(chunks, block)
	}
	return strings.Join(chunks, "\n\n")
}

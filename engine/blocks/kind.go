package blocks

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Kind enumerates the closed tag taxonomy the engine recognizes. Every
// node is either a block, a container, an inline style, or unknown; the
// state machine switches exhaustively over these variants instead of
// doing ad hoc tag-name checks.
type Kind uint8

const (
	Unknown Kind = iota
	// blocks: the smallest units the markup recognizes as standalone
	Paragraph
	Heading
	ListItem
	// containers: styling wrappers without markup-level semantics
	Blockquote
	OrderedList
	UnorderedList
	Preformatted
	// inline styles
	Bold
	Italic
	Code
	Underline
	Strike
	StyledSpan
)

func (k Kind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case ListItem:
		return "list-item"
	case Blockquote:
		return "blockquote"
	case OrderedList:
		return "ordered-list"
	case UnorderedList:
		return "unordered-list"
	case Preformatted:
		return "preformatted"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	case Underline:
		return "underline"
	case Strike:
		return "strike"
	case StyledSpan:
		return "styled-span"
	}
	return "unknown"
}

// Class tells which structural role a node plays.
type Class struct {
	IsBlock       bool
	IsContainer   bool
	IsInlineStyle bool
}

// KindOf classifies a node by tag membership. A generic span (or font
// wrapper) counts as an inline style only if it carries at least one
// genuinely inline style declaration; purely presentational wrappers are
// unknown and thus transparent.
func KindOf(n *html.Node) Kind {
	if n == nil || n.Type != html.ElementNode {
		return Unknown
	}
	switch n.DataAtom {
	case atom.P:
		return Paragraph
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return Heading
	case atom.Li:
		return ListItem
	case atom.Blockquote:
		return Blockquote
	case atom.Ol:
		return OrderedList
	case atom.Ul:
		return UnorderedList
	case atom.Pre:
		return Preformatted
	case atom.B, atom.Strong:
		return Bold
	case atom.I, atom.Em:
		return Italic
	case atom.Code:
		return Code
	case atom.U:
		return Underline
	case atom.S, atom.Strike, atom.Del:
		return Strike
	case atom.Span, atom.Font:
		if hasInlineStyle(n) {
			return StyledSpan
		}
	}
	return Unknown
}

// Classify reports the structural role of a node.
func Classify(n *html.Node) Class {
	switch KindOf(n) {
	case Paragraph, Heading, ListItem:
		return Class{IsBlock: true}
	case Blockquote, OrderedList, UnorderedList, Preformatted:
		return Class{IsContainer: true}
	case Bold, Italic, Code, Underline, Strike, StyledSpan:
		return Class{IsInlineStyle: true}
	}
	return Class{}
}

// HeadingLevel returns 1–6 for heading nodes and 0 for everything else.
func HeadingLevel(n *html.Node) int {
	if n == nil || n.Type != html.ElementNode {
		return 0
	}
	switch n.DataAtom {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	return 0
}

// BlockType is the markup-level type of a block node.
type BlockType uint8

const (
	TypeUnknown BlockType = iota
	TypeParagraph
	TypeHeading
	TypeBlockquote
	TypeCode
	TypeListItem
)

func (t BlockType) String() string {
	switch t {
	case TypeParagraph:
		return "paragraph"
	case TypeHeading:
		return "heading"
	case TypeBlockquote:
		return "blockquote"
	case TypeCode:
		return "codeblock"
	case TypeListItem:
		return "list-item"
	}
	return "unknown"
}

// BlockTypeOf maps a node's tag to its markup-level block type.
func BlockTypeOf(n *html.Node) BlockType {
	if n == nil || n.Type != html.ElementNode {
		return TypeUnknown
	}
	switch n.DataAtom {
	case atom.P:
		return TypeParagraph
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return TypeHeading
	case atom.Blockquote:
		return TypeBlockquote
	case atom.Pre:
		return TypeCode
	case atom.Li:
		return TypeListItem
	}
	return TypeUnknown
}

// IsPlaceholder reports whether n is the line-break marker that keeps an
// empty block selectable.
func IsPlaceholder(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && n.DataAtom == atom.Br
}

// NewPlaceholder creates the line-break marker for empty blocks.
func NewPlaceholder() *html.Node {
	return &html.Node{Type: html.ElementNode, Data: "br", DataAtom: atom.Br}
}

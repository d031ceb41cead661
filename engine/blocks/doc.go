/*
Package blocks is the block model of the editing engine: stateless
classification and traversal logic over the live node tree.

The markup language underneath the editor knows only a flat sequence of
blocks (paragraphs, headings, list items). The editable surface, however,
is free to nest those blocks in styling wrappers (lists, blockquotes, code
fences) and inline style runs. This package decides which role a node
plays — block, container or inline style — and answers the positional
questions the key-press state machine asks: is the caret at the start of
its block, is the block empty, which block precedes this one when
containers are transparent.

All functions are pure reads of the tree; nothing in this package mutates
a node.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The markpad authors.
*/
package blocks

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markpad.blocks'.
func tracer() tracing.Trace {
	return tracing.Select("markpad.blocks")
}

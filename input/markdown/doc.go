/*
Package markdown converts between lightweight markup and the node trees
the editing surface works on.

Render parses markup into a block tree; Serialize walks a block tree
back to markup. The two directions are inverses up to whitespace
normalization, which Equivalent papers over.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The markpad authors.
*/
package markdown

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markpad.input'.
func tracer() tracing.Trace {
	return tracing.Select("markpad.input")
}

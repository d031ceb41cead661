/*
Package blockedit implements the key-press state machine on top of an
editing surface.

Backspace, Enter and Tab get block-semantic behavior: merging blocks,
exiting containers, coalescing split containers, splitting off fresh
paragraphs. Keys the machine does not recognize in the current cursor
context are reported as not handled, leaving them to the host's default
text editing.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The markpad authors.
*/
package blockedit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markpad.edit'.
func tracer() tracing.Trace {
	return tracing.Select("markpad.edit")
}

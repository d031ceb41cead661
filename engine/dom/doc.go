/*
Package dom provides the surface adapter for block-semantic editing.

A Surface wraps a live HTML node tree together with the current
selection and funnels every structural mutation through a small set of
edit commands. Hosts observe executed commands to drive their own undo
journal; caret placement is considered navigation and bypasses the
command channel.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The markpad authors.
*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markpad.dom'.
func tracer() tracing.Trace {
	return tracing.Select("markpad.dom")
}

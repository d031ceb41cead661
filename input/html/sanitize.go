/*
Package html cleans up foreign HTML before it enters an editing
surface, as happens on paste. Everything outside the small vocabulary
of block, container and inline elements the block model understands is
stripped, and style attributes are reduced to the inline text styles
the serializer can express.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The markpad authors.
*/
package html

import (
	"github.com/microcosm-cc/bluemonday"
)

var policy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "h1", "h2", "h3", "h4", "h5", "h6",
		"li", "ul", "ol", "blockquote", "pre", "br",
		"strong", "b", "em", "i", "code", "u", "s", "del", "span", "a")
	p.AllowAttrs("href").OnElements("a")
	p.AllowStandardURLs()
	p.AllowAttrs("style").OnElements("span")
	p.AllowStyles("font-weight", "font-style", "text-decoration").OnElements("span")
	return p
}()

// Clean reduces foreign markup to the element vocabulary of the block
// model. Scripts, event handlers and all layout markup are dropped,
// only their text content survives.
func Clean(foreign string) string {
	return policy.Sanitize(foreign)
}

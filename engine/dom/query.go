package dom

import (
	"github.com/andybalholm/cascadia"
	"github.com/markpad/markpad/core"
	"golang.org/x/net/html"
)

// Query returns all nodes under the surface root matching a CSS
// selector.
func (surf *Surface) Query(selector string) ([]*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid selector %q", selector)
	}
	return sel.MatchAll(surf.root), nil
}

// QueryFirst returns the first node under the surface root matching a
// CSS selector, or nil.
func (surf *Surface) QueryFirst(selector string) (*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid selector %q", selector)
	}
	return sel.MatchFirst(surf.root), nil
}

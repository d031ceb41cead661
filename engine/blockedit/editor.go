package blockedit

import (
	"strings"

	"github.com/markpad/markpad/core"
	"github.com/markpad/markpad/engine/dom"
)

// Key identifies a key press the editor may handle.
type Key uint8

// Keys with block-semantic behavior.
const (
	KeyBackspace Key = iota
	KeyEnter
	KeyTab
)

func (k Key) String() string {
	switch k {
	case KeyBackspace:
		return "Backspace"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	}
	return "key-?"
}

// Editor is the block-level key-press state machine for a surface.
type Editor struct {
	surf   *dom.Surface
	indent int // rune count of a Tab indent
}

// Option configures an editor.
type Option func(*Editor)

// WithIndent sets the number of non-breaking spaces a Tab inserts.
func WithIndent(width int) Option {
	return func(ed *Editor) {
		if width > 0 {
			ed.indent = width
		}
	}
}

// New creates an editor over a surface.
func New(surf *dom.Surface, opts ...Option) (*Editor, error) {
	if surf == nil {
		return nil, core.Error(core.EMISSING, "block editor needs an editing surface")
	}
	ed := &Editor{surf: surf, indent: 4}
	for _, opt := range opts {
		opt(ed)
	}
	return ed, nil
}

// Surface returns the editing surface the editor operates on.
func (ed *Editor) Surface() *dom.Surface {
	return ed.surf
}

// HandleKey runs the block-semantic behavior for a key press. It
// reports whether the key was handled; an unhandled key falls through
// to the host's default character editing.
func (ed *Editor) HandleKey(key Key) bool {
	tracer().Debugf("key press %s", key)
	switch key {
	case KeyBackspace:
		return ed.backspace()
	case KeyEnter:
		return ed.enter()
	case KeyTab:
		return ed.tab()
	}
	return false
}

// tab inserts a fixed-width indent of non-breaking spaces, so the
// indent survives HTML whitespace collapsing.
func (ed *Editor) tab() bool {
	sel := ed.surf.Selection()
	if sel == nil {
		return false
	}
	return ed.surf.Exec(dom.CmdInsertText, strings.Repeat(" ", ed.indent))
}

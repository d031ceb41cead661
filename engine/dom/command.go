package dom

// Command identifies a structural edit command. The set is closed:
// every mutation of the surface is one of these, which keeps the host's
// undo journal complete.
type Command uint8

// The structural edit commands.
const (
	CmdInsertFragment Command = iota // value is an HTML fragment
	CmdInsertText                    // value is plain text
	CmdDelete                        // removes the selected range
	CmdFormatBlock                   // value is the target block tag
	CmdOutdent                       // lifts a block out of its container
)

func (cmd Command) String() string {
	switch cmd {
	case CmdInsertFragment:
		return "insertFragment"
	case CmdInsertText:
		return "insertText"
	case CmdDelete:
		return "delete"
	case CmdFormatBlock:
		return "formatBlock"
	case CmdOutdent:
		return "outdent"
	}
	return "command-?"
}

// CommandFunc observes executed commands.
type CommandFunc func(cmd Command, value string)

// Exec executes a structural edit command against the current
// selection. It reports whether the command was handled; commands
// without a selection are not an error, they simply do nothing.
func (surf *Surface) Exec(cmd Command, value string) bool {
	if surf.sel == nil {
		tracer().Debugf("command %s without selection not handled", cmd)
		return false
	}
	tracer().Debugf("exec %s %q", cmd, value)
	var ok bool
	switch cmd {
	case CmdInsertFragment:
		ok = surf.insertFragment(value)
	case CmdInsertText:
		ok = surf.insertText(value)
	case CmdDelete:
		ok = surf.deleteSelection()
	case CmdFormatBlock:
		ok = surf.formatBlock(value)
	case CmdOutdent:
		ok = surf.outdent()
	default:
		tracer().Errorf("unknown edit command %d", cmd)
		return false
	}
	if ok && surf.observer != nil {
		surf.observer(cmd, value)
	}
	return ok
}

// InsertFragment inserts an HTML fragment at the selection.
func (surf *Surface) InsertFragment(fragment string) bool {
	return surf.Exec(CmdInsertFragment, fragment)
}

// InsertText inserts plain text at the selection.
func (surf *Surface) InsertText(text string) bool {
	return surf.Exec(CmdInsertText, text)
}

// DeleteSelection removes the selected range.
func (surf *Surface) DeleteSelection() bool {
	return surf.Exec(CmdDelete, "")
}

// ConvertBlockType retags the block around the caret.
func (surf *Surface) ConvertBlockType(tag string) bool {
	return surf.Exec(CmdFormatBlock, tag)
}

// Outdent lifts the block around the caret out of its container.
func (surf *Surface) Outdent() bool {
	return surf.Exec(CmdOutdent, "")
}

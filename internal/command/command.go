package command

// Command is an abstract user action.
type Command uint16

// Commands. The zero value is not a command.
const (
	Invalid Command = iota

	Accept
	Cancel
	HotKey

	Up
	Down
	Left
	Right
	PageUp
	PageDown
	Start
	End
	LeftStart
	RightEnd
	ScrollUp
	ScrollDown

	NextView
	PreviousView
	NextViewOrTop
	PreviousViewOrTop
	NextMdiChild
	PreviousMdiChild

	QuitToplevel
	Suspend
	Refresh

	Select
	ToggleChecked
	SelectAll
	Copy
	Cut
	Paste
	Undo
	Redo
	DeleteCharLeft
	DeleteCharRight
	Expand
	Collapse
	Search

	numCommands
)

var commandNames = [numCommands]string{
	Invalid:           "Invalid",
	Accept:            "Accept",
	Cancel:            "Cancel",
	HotKey:            "HotKey",
	Up:                "Up",
	Down:              "Down",
	Left:              "Left",
	Right:             "Right",
	PageUp:            "PageUp",
	PageDown:          "PageDown",
	Start:             "Start",
	End:               "End",
	LeftStart:         "LeftStart",
	RightEnd:          "RightEnd",
	ScrollUp:          "ScrollUp",
	ScrollDown:        "ScrollDown",
	NextView:          "NextView",
	PreviousView:      "PreviousView",
	NextViewOrTop:     "NextViewOrTop",
	PreviousViewOrTop: "PreviousViewOrTop",
	NextMdiChild:      "NextMdiChild",
	PreviousMdiChild:  "PreviousMdiChild",
	QuitToplevel:      "QuitToplevel",
	Suspend:           "Suspend",
	Refresh:           "Refresh",
	Select:            "Select",
	ToggleChecked:     "ToggleChecked",
	SelectAll:         "SelectAll",
	Copy:              "Copy",
	Cut:               "Cut",
	Paste:             "Paste",
	Undo:              "Undo",
	Redo:              "Redo",
	DeleteCharLeft:    "DeleteCharLeft",
	DeleteCharRight:   "DeleteCharRight",
	Expand:            "Expand",
	Collapse:          "Collapse",
	Search:            "Search",
}

var commandsByName = func() map[string]Command {
	m := make(map[string]Command, numCommands)
	for c := Accept; c < numCommands; c++ {
		m[commandNames[c]] = c
	}
	return m
}()

// String returns the command name.
func (c Command) String() string {
	if c < numCommands {
		return commandNames[c]
	}
	return "Invalid"
}

// IsValid reports whether c is a defined command.
func (c Command) IsValid() bool {
	return c > Invalid && c < numCommands
}

// Parse returns the command with the given name. Names are case
// sensitive and match String.
func Parse(name string) (Command, bool) {
	c, ok := commandsByName[name]
	return c, ok
}

// Commands returns every defined command in declaration order.
func Commands() []Command {
	out := make([]Command, 0, numCommands-1)
	for c := Accept; c < numCommands; c++ {
		out = append(out, c)
	}
	return out
}

// Equal reports whether two command lists hold the same commands in the
// same order.
func Equal(a, b []Command) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

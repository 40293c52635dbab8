package models

import "github.com/charmbracelet/lipgloss"

// NoteState describes where a note stands. It is purely descriptive: any
// state can be set from any other state.
type NoteState string

const (
	NoteStatePending       NoteState = "pending"
	NoteStateStarted       NoteState = "started"
	NoteStateFinished      NoteState = "finished"
	NoteStateDeprioritised NoteState = "deprioritised"
)

// AllNoteStates lists every state in menu order.
var AllNoteStates = []NoteState{
	NoteStatePending,
	NoteStateStarted,
	NoteStateFinished,
	NoteStateDeprioritised,
}

var (
	pendingStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	startedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	finishedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	deprioritisedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	overdueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Valid reports whether s is one of the known states.
func (s NoteState) Valid() bool {
	switch s {
	case NoteStatePending, NoteStateStarted, NoteStateFinished, NoteStateDeprioritised:
		return true
	}
	return false
}

// Title is the human-readable form of the state.
func (s NoteState) Title() string {
	switch s {
	case NoteStatePending:
		return "Pending"
	case NoteStateStarted:
		return "Started"
	case NoteStateFinished:
		return "Finished"
	case NoteStateDeprioritised:
		return "Deprioritised"
	}
	return string(s)
}

// Label is the styled form of the state used in note labels and menus.
func (s NoteState) Label() string {
	switch s {
	case NoteStatePending:
		return pendingStyle.Render(s.Title())
	case NoteStateStarted:
		return startedStyle.Render(s.Title())
	case NoteStateFinished:
		return finishedStyle.Render(s.Title())
	case NoteStateDeprioritised:
		return deprioritisedStyle.Render(s.Title())
	}
	return s.Title()
}

// Package models defines the note variants and their interactive create,
// update, and render operations.
package models

import (
	"fmt"

	"github.com/cjsmith-dev/notetree/pkg/prompt"
	"github.com/cjsmith-dev/notetree/pkg/tree"
)

// Note is one entry in a collection: either a ShortNote or a LongNote. All
// operations dispatch on the concrete variant.
type Note interface {
	tree.Item

	// Update runs the variant's interactive update menu, mutating the note
	// in place. A cancellation anywhere leaves the note unchanged and is
	// reported via the prompt sentinels.
	Update(p prompt.Prompter, editSubNotes SubNoteEditor) error

	// Clone returns a deep copy. Sub-notes are always copied by value, so a
	// note can never become its own ancestor.
	Clone() Note
}

// SubNoteEditor runs an interactive editing session over a long note's
// sub-notes and returns the resulting collection. It is supplied by the view
// layer, which owns the render loop the session recurses into.
type SubNoteEditor func(parentLabel string, notes []Note) ([]Note, error)

var noteTypeOptions = []string{"Shorthand note", "Detailed note"}

// NewNote asks for a note type and runs that variant's creation sequence.
// Cancellation at any step aborts the whole creation: no partial note is
// ever returned.
func NewNote(p prompt.Prompter) (Note, error) {
	choice, err := p.Select("Choose note type:", noteTypeOptions)
	if err != nil {
		return nil, err
	}
	switch choice {
	case 0:
		return NewShortNote(p)
	case 1:
		return NewLongNote(p)
	}
	return nil, fmt.Errorf("unknown note type choice %d", choice)
}

// CloneNotes deep-copies a collection.
func CloneNotes(notes []Note) []Note {
	if len(notes) == 0 {
		return nil
	}
	clones := make([]Note, len(notes))
	for i, n := range notes {
		clones[i] = n.Clone()
	}
	return clones
}

// noteLabel builds the shared "<state>: <title>: <created>" label, appending
// the due date when present. An overdue date (strictly before today) is
// flagged in red; the comparison happens here, at render time.
func noteLabel(state NoteState, title string, created Date, due *Date, today Date) string {
	label := fmt.Sprintf("%s: %s: %s", state.Label(), title, created)
	if due == nil {
		return label
	}
	dueStr := due.String()
	if due.Before(today) {
		dueStr = overdueStyle.Render(dueStr)
	}
	return fmt.Sprintf("%s due: %s", label, dueStr)
}

// promptState asks for a new note state.
func promptState(p prompt.Prompter) (NoteState, error) {
	labels := make([]string, len(AllNoteStates))
	for i, s := range AllNoteStates {
		labels[i] = s.Label()
	}
	choice, err := p.Select("Choose new state", labels)
	if err != nil {
		return "", err
	}
	return AllNoteStates[choice], nil
}

// promptDue asks whether the note has a due date and, if so, for the date.
// Answering no clears any existing due date.
func promptDue(p prompt.Prompter) (*Date, error) {
	withDue, err := p.Confirm("Have due date?")
	if err != nil {
		return nil, err
	}
	if !withDue {
		return nil, nil
	}
	picked, err := p.PickDate("Choose due date:")
	if err != nil {
		return nil, err
	}
	due := DateOf(picked)
	return &due, nil
}

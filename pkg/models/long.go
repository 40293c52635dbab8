package models

import (
	"fmt"
	"os"

	"github.com/cjsmith-dev/notetree/pkg/prompt"
	"github.com/cjsmith-dev/notetree/pkg/tree"
)

// LongNote extends ShortNote with an optional description and an optional
// collection of nested sub-notes. SubNotes is nil exactly when the nested
// collection is empty; the sub-note editor normalizes it on exit.
type LongNote struct {
	Title       string
	Description *string
	CreatedAt   Date
	DueAt       *Date
	State       NoteState
	SubNotes    []Note
}

var longUpdateOptions = []string{
	"Change Title",
	"View Description",
	"Update or Set Description",
	"Update or Set Due",
	"Update State",
	"View and Update sub Notes",
}

// NewLongNote runs the long note creation sequence: title, optional
// description, optional due date.
func NewLongNote(p prompt.Prompter) (*LongNote, error) {
	title, err := p.Input("Enter note title:")
	if err != nil {
		return nil, err
	}
	description, err := maybeDescription(p)
	if err != nil {
		return nil, err
	}
	due, err := maybeDue(p)
	if err != nil {
		return nil, err
	}
	return &LongNote{
		Title:       title,
		Description: description,
		CreatedAt:   Today(),
		DueAt:       due,
		State:       NoteStatePending,
	}, nil
}

func maybeDescription(p prompt.Prompter) (*string, error) {
	withDescription, err := p.Confirm("Add description?")
	if err != nil {
		return nil, err
	}
	if !withDescription {
		return nil, nil
	}
	text, err := p.Editor("Enter description", "")
	if err != nil {
		return nil, err
	}
	return normalizeDescription(text), nil
}

func maybeDue(p prompt.Prompter) (*Date, error) {
	withDue, err := p.Confirm("Add due date?")
	if err != nil {
		return nil, err
	}
	if !withDue {
		return nil, nil
	}
	picked, err := p.PickDate("Select due date")
	if err != nil {
		return nil, err
	}
	due := DateOf(picked)
	return &due, nil
}

// normalizeDescription maps empty text to no description.
func normalizeDescription(text string) *string {
	if len(text) == 0 {
		return nil
	}
	return &text
}

func (n *LongNote) Label() string {
	return n.LabelAt(Today())
}

// LabelAt renders the label as of the given day.
func (n *LongNote) LabelAt(today Date) string {
	return noteLabel(n.State, n.Title, n.CreatedAt, n.DueAt, today)
}

// Overdue reports whether the due date has passed as of today.
func (n *LongNote) Overdue(today Date) bool {
	return n.DueAt != nil && n.DueAt.Before(today)
}

// Children returns the nested sub-notes, if any.
func (n *LongNote) Children() []tree.Item {
	items := make([]tree.Item, len(n.SubNotes))
	for i, sub := range n.SubNotes {
		items[i] = sub
	}
	return items
}

func (n *LongNote) Update(p prompt.Prompter, editSubNotes SubNoteEditor) error {
	choice, err := p.Select("Choose option", longUpdateOptions)
	if err != nil {
		return err
	}
	switch choice {
	case 0:
		return n.updateTitle(p)
	case 1:
		return n.viewDescription()
	case 2:
		return n.updateDescription(p)
	case 3:
		return n.updateDue(p)
	case 4:
		return n.updateState(p)
	case 5:
		return n.updateSubNotes(editSubNotes)
	}
	return nil
}

func (n *LongNote) updateTitle(p prompt.Prompter) error {
	title, err := p.Input("Enter new title")
	if err != nil {
		return err
	}
	n.Title = title
	return nil
}

func (n *LongNote) updateDescription(p prompt.Prompter) error {
	var prefill string
	if n.Description != nil {
		prefill = *n.Description
	}
	text, err := p.Editor("Update description", prefill)
	if err != nil {
		return err
	}
	n.Description = normalizeDescription(text)
	return nil
}

func (n *LongNote) updateDue(p prompt.Prompter) error {
	due, err := promptDue(p)
	if err != nil {
		return err
	}
	n.DueAt = due
	return nil
}

func (n *LongNote) updateState(p prompt.Prompter) error {
	state, err := promptState(p)
	if err != nil {
		return err
	}
	n.State = state
	return nil
}

func (n *LongNote) viewDescription() error {
	if n.Description != nil {
		fmt.Fprintf(os.Stdout, "%s\n%s\n", n.Label(), *n.Description)
	} else {
		fmt.Fprintln(os.Stdout, n.Label())
	}
	return nil
}

// updateSubNotes hands a deep copy of the sub-notes to the editor and writes
// the result back, mapping an empty collection to nil. The editor runs a
// full nested render loop; its error return is only ever a gateway failure,
// never a cancellation.
func (n *LongNote) updateSubNotes(editSubNotes SubNoteEditor) error {
	if editSubNotes == nil {
		return fmt.Errorf("no sub-note editor available")
	}
	edited, err := editSubNotes(n.Label(), CloneNotes(n.SubNotes))
	if err != nil {
		return err
	}
	if len(edited) > 0 {
		n.SubNotes = edited
	} else {
		n.SubNotes = nil
	}
	return nil
}

func (n *LongNote) Clone() Note {
	clone := *n
	if n.Description != nil {
		description := *n.Description
		clone.Description = &description
	}
	if n.DueAt != nil {
		due := *n.DueAt
		clone.DueAt = &due
	}
	clone.SubNotes = CloneNotes(n.SubNotes)
	return &clone
}

package models

import (
	"github.com/cjsmith-dev/notetree/pkg/prompt"
	"github.com/cjsmith-dev/notetree/pkg/tree"
)

// ShortNote is the leaf variant: a one-line note with no description and no
// sub-notes. CreatedAt is set once at creation and never changes.
type ShortNote struct {
	Title     string
	CreatedAt Date
	DueAt     *Date
	State     NoteState
}

var shortUpdateOptions = []string{
	"Change Title",
	"Update or Set Due",
	"Update State",
}

// NewShortNote runs the short note creation sequence: text, then an optional
// due date.
func NewShortNote(p prompt.Prompter) (*ShortNote, error) {
	title, err := p.Input("Enter note text:")
	if err != nil {
		return nil, err
	}
	withDue, err := p.Confirm("With due date?")
	if err != nil {
		return nil, err
	}
	note := &ShortNote{
		Title:     title,
		CreatedAt: Today(),
		State:     NoteStatePending,
	}
	if withDue {
		picked, err := p.PickDate("Choose due date:")
		if err != nil {
			return nil, err
		}
		due := DateOf(picked)
		note.DueAt = &due
	}
	return note, nil
}

func (n *ShortNote) Label() string {
	return n.LabelAt(Today())
}

// LabelAt renders the label as of the given day.
func (n *ShortNote) LabelAt(today Date) string {
	return noteLabel(n.State, n.Title, n.CreatedAt, n.DueAt, today)
}

// Overdue reports whether the due date has passed as of today.
func (n *ShortNote) Overdue(today Date) bool {
	return n.DueAt != nil && n.DueAt.Before(today)
}

// Children always returns nil: short notes are leaves.
func (n *ShortNote) Children() []tree.Item {
	return nil
}

func (n *ShortNote) Update(p prompt.Prompter, _ SubNoteEditor) error {
	choice, err := p.Select("Choose how to update", shortUpdateOptions)
	if err != nil {
		return err
	}
	switch choice {
	case 0:
		return n.updateTitle(p)
	case 1:
		return n.updateDue(p)
	case 2:
		return n.updateState(p)
	}
	return nil
}

func (n *ShortNote) updateTitle(p prompt.Prompter) error {
	title, err := p.Input("Enter new title:")
	if err != nil {
		return err
	}
	n.Title = title
	return nil
}

func (n *ShortNote) updateDue(p prompt.Prompter) error {
	due, err := promptDue(p)
	if err != nil {
		return err
	}
	n.DueAt = due
	return nil
}

func (n *ShortNote) updateState(p prompt.Prompter) error {
	state, err := promptState(p)
	if err != nil {
		return err
	}
	n.State = state
	return nil
}

func (n *ShortNote) Clone() Note {
	clone := *n
	if n.DueAt != nil {
		due := *n.DueAt
		clone.DueAt = &due
	}
	return &clone
}

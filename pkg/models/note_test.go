package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjsmith-dev/notetree/pkg/prompt"
	"github.com/cjsmith-dev/notetree/pkg/prompt/prompttest"
)

func TestNewShortNote(t *testing.T) {
	script := prompttest.New(t,
		prompttest.Text("buy milk"),
		prompttest.No(),
	)

	note, err := NewShortNote(script)
	require.NoError(t, err)
	script.Done()

	assert.Equal(t, "buy milk", note.Title)
	assert.Nil(t, note.DueAt)
	assert.Equal(t, NoteStatePending, note.State)
	assert.True(t, note.CreatedAt.Equal(Today()))
	assert.Empty(t, note.Children())
}

func TestNewShortNoteWithDueDate(t *testing.T) {
	due := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	script := prompttest.New(t,
		prompttest.Text("file taxes"),
		prompttest.Yes(),
		prompttest.Date(due),
	)

	note, err := NewShortNote(script)
	require.NoError(t, err)
	script.Done()

	require.NotNil(t, note.DueAt)
	assert.Equal(t, "2026-09-01", note.DueAt.String())
}

func TestNewShortNoteCancellationAbortsWholeCreation(t *testing.T) {
	tests := []struct {
		name  string
		steps []prompttest.Step
	}{
		{"cancel at title", []prompttest.Step{prompttest.Cancel()}},
		{"cancel at due confirm", []prompttest.Step{prompttest.Text("x"), prompttest.Cancel()}},
		{"cancel at due date", []prompttest.Step{prompttest.Text("x"), prompttest.Yes(), prompttest.Cancel()}},
		{"interrupt at title", []prompttest.Step{prompttest.Interrupt()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := prompttest.New(t, tt.steps...)
			note, err := NewShortNote(script)
			assert.Nil(t, note)
			assert.True(t, prompt.Canceled(err))
			script.Done()
		})
	}
}

func TestNewLongNote(t *testing.T) {
	script := prompttest.New(t,
		prompttest.Text("plan trip"),
		prompttest.Yes(),
		prompttest.Lines("pack bags\nbook hotel"),
		prompttest.No(),
	)

	note, err := NewLongNote(script)
	require.NoError(t, err)
	script.Done()

	assert.Equal(t, "plan trip", note.Title)
	require.NotNil(t, note.Description)
	assert.Equal(t, "pack bags\nbook hotel", *note.Description)
	assert.Nil(t, note.DueAt)
	assert.Nil(t, note.SubNotes)
	assert.Equal(t, NoteStatePending, note.State)
}

func TestNewLongNoteEmptyDescriptionNormalizesToNil(t *testing.T) {
	script := prompttest.New(t,
		prompttest.Text("plan trip"),
		prompttest.Yes(),
		prompttest.Lines(""),
		prompttest.No(),
	)

	note, err := NewLongNote(script)
	require.NoError(t, err)
	assert.Nil(t, note.Description)
}

func TestNewNoteDispatchesOnType(t *testing.T) {
	script := prompttest.New(t,
		prompttest.Choose("Shorthand note"),
		prompttest.Text("quick"),
		prompttest.No(),
	)

	note, err := NewNote(script)
	require.NoError(t, err)
	script.Done()
	assert.IsType(t, &ShortNote{}, note)

	script = prompttest.New(t,
		prompttest.Choose("Detailed note"),
		prompttest.Text("detailed"),
		prompttest.No(),
		prompttest.No(),
	)

	note, err = NewNote(script)
	require.NoError(t, err)
	script.Done()
	assert.IsType(t, &LongNote{}, note)
}

func TestLabelFormat(t *testing.T) {
	created := NewDate(2026, time.August, 20)
	note := &ShortNote{
		Title:     "buy milk",
		CreatedAt: created,
		State:     NoteStateStarted,
	}

	today := NewDate(2026, time.August, 23)
	assert.Contains(t, note.LabelAt(today), "Started: buy milk: 2026-08-20")

	due := NewDate(2026, time.August, 25)
	note.DueAt = &due
	assert.Contains(t, note.LabelAt(today), " due: 2026-08-25")
}

func TestOverdueIsEvaluatedAgainstToday(t *testing.T) {
	today := Today()
	yesterday := today.AddDays(-1)
	tomorrow := today.AddDays(1)

	note := &ShortNote{Title: "x", CreatedAt: today, State: NoteStatePending}

	assert.False(t, note.Overdue(today), "no due date is never overdue")

	note.DueAt = &yesterday
	assert.True(t, note.Overdue(today), "due yesterday must be flagged")

	note.DueAt = &tomorrow
	assert.False(t, note.Overdue(today), "due tomorrow must not be flagged")

	// Due today is not strictly before today.
	note.DueAt = &today
	assert.False(t, note.Overdue(today))

	long := &LongNote{Title: "y", CreatedAt: today, State: NoteStatePending, DueAt: &yesterday}
	assert.True(t, long.Overdue(today))
}

func TestShortNoteUpdateTitle(t *testing.T) {
	note := &ShortNote{Title: "old", CreatedAt: Today(), State: NoteStatePending}
	script := prompttest.New(t,
		prompttest.Choose("Change Title"),
		prompttest.Text("new"),
	)

	require.NoError(t, note.Update(script, nil))
	script.Done()
	assert.Equal(t, "new", note.Title)
}

func TestShortNoteUpdateClearsDue(t *testing.T) {
	due := Today().AddDays(3)
	note := &ShortNote{Title: "x", CreatedAt: Today(), DueAt: &due, State: NoteStatePending}
	script := prompttest.New(t,
		prompttest.Choose("Update or Set Due"),
		prompttest.No(),
	)

	require.NoError(t, note.Update(script, nil))
	assert.Nil(t, note.DueAt)
}

func TestShortNoteUpdateState(t *testing.T) {
	note := &ShortNote{Title: "x", CreatedAt: Today(), State: NoteStatePending}
	script := prompttest.New(t,
		prompttest.Choose("Update State"),
		prompttest.Pick(1),
	)

	require.NoError(t, note.Update(script, nil))
	assert.Equal(t, NoteStateStarted, note.State)
}

func TestUpdateCancellationLeavesNoteUnchanged(t *testing.T) {
	due := Today().AddDays(3)
	note := &ShortNote{Title: "keep", CreatedAt: Today(), DueAt: &due, State: NoteStateStarted}
	before := *note

	script := prompttest.New(t,
		prompttest.Choose("Change Title"),
		prompttest.Cancel(),
	)

	err := note.Update(script, nil)
	assert.True(t, prompt.Canceled(err))
	assert.Equal(t, before.Title, note.Title)
	assert.Equal(t, before.State, note.State)
	require.NotNil(t, note.DueAt)
	assert.True(t, before.DueAt.Equal(*note.DueAt))
}

func TestLongNoteUpdateDescriptionEmptyNormalizesToNil(t *testing.T) {
	description := "something"
	note := &LongNote{Title: "x", CreatedAt: Today(), Description: &description, State: NoteStatePending}

	script := prompttest.New(t,
		prompttest.Choose("Update or Set Description"),
		prompttest.Lines(""),
	)

	require.NoError(t, note.Update(script, nil))
	assert.Nil(t, note.Description)
}

func TestLongNoteSubNoteEditingNormalizesEmptyToNil(t *testing.T) {
	note := &LongNote{Title: "parent", CreatedAt: Today(), State: NoteStatePending}

	added := &ShortNote{Title: "child", CreatedAt: Today(), State: NoteStatePending}
	editor := func(parentLabel string, notes []Note) ([]Note, error) {
		assert.Empty(t, notes)
		return []Note{added}, nil
	}
	script := prompttest.New(t, prompttest.Choose("View and Update sub Notes"))
	require.NoError(t, note.Update(script, editor))
	require.Len(t, note.SubNotes, 1)

	// Removing the only sub-note must leave nil, never an empty slice.
	editor = func(parentLabel string, notes []Note) ([]Note, error) {
		assert.Len(t, notes, 1)
		return nil, nil
	}
	script = prompttest.New(t, prompttest.Choose("View and Update sub Notes"))
	require.NoError(t, note.Update(script, editor))
	assert.Nil(t, note.SubNotes)
}

func TestLongNoteSubNoteEditorGetsACopy(t *testing.T) {
	child := &ShortNote{Title: "child", CreatedAt: Today(), State: NoteStatePending}
	note := &LongNote{Title: "parent", CreatedAt: Today(), State: NoteStatePending, SubNotes: []Note{child}}

	editor := func(parentLabel string, notes []Note) ([]Note, error) {
		notes[0].(*ShortNote).Title = "mutated"
		return nil, fmt.Errorf("abandon session")
	}
	script := prompttest.New(t, prompttest.Choose("View and Update sub Notes"))

	err := note.Update(script, editor)
	assert.Error(t, err)
	// The editor mutated its copy; the failed session must not have touched
	// the original.
	assert.Equal(t, "child", note.SubNotes[0].(*ShortNote).Title)
}

func TestCloneIsDeep(t *testing.T) {
	due := Today().AddDays(1)
	description := "desc"
	child := &ShortNote{Title: "child", CreatedAt: Today(), DueAt: &due, State: NoteStatePending}
	note := &LongNote{
		Title:       "parent",
		Description: &description,
		CreatedAt:   Today(),
		DueAt:       &due,
		State:       NoteStateStarted,
		SubNotes:    []Note{child},
	}

	clone := note.Clone().(*LongNote)
	clone.Title = "changed"
	*clone.Description = "changed"
	clone.SubNotes[0].(*ShortNote).Title = "changed"

	assert.Equal(t, "parent", note.Title)
	assert.Equal(t, "desc", *note.Description)
	assert.Equal(t, "child", note.SubNotes[0].(*ShortNote).Title)
}

func TestNoteStates(t *testing.T) {
	for _, state := range AllNoteStates {
		assert.True(t, state.Valid())
		assert.NotEmpty(t, state.Title())
	}
	assert.False(t, NoteState("bogus").Valid())
	assert.Equal(t, "Deprioritised", NoteStateDeprioritised.Title())
}

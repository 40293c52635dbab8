package view

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/cjsmith-dev/notetree/pkg/models"
	"github.com/cjsmith-dev/notetree/pkg/prompt"
	"github.com/cjsmith-dev/notetree/pkg/tree"
)

// Session carries the interactive dependencies of a render loop. The same
// session drives the top-level view and every nested sub-note view.
type Session struct {
	Prompter prompt.Prompter
	Log      *logrus.Logger
	Out      io.Writer
}

func NewSession(p prompt.Prompter, log *logrus.Logger) *Session {
	return &Session{
		Prompter: p,
		Log:      log,
		Out:      os.Stdout,
	}
}

// Main menu entries. View and Tree are only offered when the collection has
// notes to show.
type menuEntry struct {
	label  string
	screen Screen
}

var (
	notesMenuEntries = []menuEntry{
		{"View notes", ScreenView},
		{"View note tree", ScreenTree},
	}
	alwaysMenuEntries = []menuEntry{
		{"Add note", ScreenAdd},
		{"Delete note", ScreenRemove},
		{"Exit", ScreenExit},
	}
)

// Run drives the view's screen transitions until the loop terminates: either
// the user picks Exit, or cancels out of the main menu (which is not an
// error). Each step is an ordinary function call, so a nested sub-note
// session simply suspends this loop until it returns. Any non-cancellation
// prompt failure aborts the loop and propagates.
func (s *Session) Run(v *View) error {
	if s.Out == nil {
		s.Out = os.Stdout
	}
	// A session never resumes mid-operation.
	v.Screen = ScreenMain

	for v.Screen != ScreenExit {
		var err error
		switch v.Screen {
		case ScreenMain:
			err = s.runMain(v)
		case ScreenAdd:
			err = s.runAdd(v)
		case ScreenView:
			err = s.runView(v)
		case ScreenRemove:
			err = s.runRemove(v)
		case ScreenUpdate:
			err = s.runUpdate(v)
		case ScreenTree:
			err = s.runTree(v)
		default:
			if s.Log != nil {
				s.Log.WithField("screen", v.Screen).Warn("unknown screen, returning to main menu")
			}
			v.Screen = ScreenMain
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) runMain(v *View) error {
	var entries []menuEntry
	if len(v.Notes) > 0 {
		entries = append(entries, notesMenuEntries...)
	}
	entries = append(entries, alwaysMenuEntries...)

	labels := make([]string, len(entries))
	for i, entry := range entries {
		labels[i] = entry.label
	}

	choice, err := s.Prompter.Select("Choose action", labels)
	if prompt.Canceled(err) {
		// Cancelling the main menu ends the loop cleanly; the caller
		// persists and stops.
		v.Screen = ScreenExit
		return nil
	}
	if err != nil {
		return err
	}
	v.Screen = entries[choice].screen
	return nil
}

func (s *Session) runAdd(v *View) error {
	note, err := models.NewNote(s.Prompter)
	if prompt.Canceled(err) {
		v.Screen = ScreenMain
		return nil
	}
	if err != nil {
		return err
	}
	v.Notes = append(v.Notes, note)
	v.Screen = ScreenMain
	return nil
}

func (s *Session) runView(v *View) error {
	choice, err := s.Prompter.Select(
		"Select Note to update or press esc to return",
		s.noteLabels(v),
	)
	if prompt.Canceled(err) {
		v.Screen = ScreenMain
		return nil
	}
	if err != nil {
		return err
	}
	// The selection carries the position directly, so the label can never
	// be matched against the wrong note.
	v.Screen = ScreenUpdate
	v.updateIndex = choice
	return nil
}

func (s *Session) runRemove(v *View) error {
	choice, err := s.Prompter.Select(
		"Select Note to remove or press esc to return",
		s.noteLabels(v),
	)
	if prompt.Canceled(err) {
		v.Screen = ScreenMain
		return nil
	}
	if err != nil {
		return err
	}
	v.Notes = append(v.Notes[:choice], v.Notes[choice+1:]...)
	v.Screen = ScreenMain
	return nil
}

func (s *Session) runUpdate(v *View) error {
	index := v.updateIndex
	if index < 0 || index >= len(v.Notes) {
		if s.Log != nil {
			s.Log.WithFields(logrus.Fields{
				"index": index,
				"notes": len(v.Notes),
			}).Warn("update index out of range, returning to main menu")
		}
		v.Screen = ScreenMain
		return nil
	}

	err := v.Notes[index].Update(s.Prompter, s.editSubNotes)
	if err != nil && !prompt.Canceled(err) {
		return err
	}
	// Update always returns to the main menu; cancellation inside the
	// update is swallowed here.
	v.Screen = ScreenMain
	return nil
}

func (s *Session) runTree(v *View) error {
	fmt.Fprintln(s.Out, tree.Render(v))
	v.Screen = ScreenMain
	return nil
}

// editSubNotes is the recursion point: it wraps a long note's sub-notes in a
// transient view named after the parent and runs a full nested render loop
// over it. The parent loop is suspended until the nested one exits.
func (s *Session) editSubNotes(parentLabel string, notes []models.Note) ([]models.Note, error) {
	sub := New(fmt.Sprintf("Sub notes of %s", parentLabel), notes)

	fmt.Fprintf(s.Out, "Viewing sub notes of: %s\n", parentLabel)
	if err := s.Run(sub); err != nil {
		return nil, err
	}
	fmt.Fprintf(s.Out, "Exiting sub note view of: %s\n", parentLabel)

	return sub.Notes, nil
}

func (s *Session) noteLabels(v *View) []string {
	labels := make([]string, len(v.Notes))
	for i, n := range v.Notes {
		labels[i] = n.Label()
	}
	return labels
}

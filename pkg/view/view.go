// Package view implements the menu-driven navigation over a note collection:
// a View holds the notes and the active screen, and a Session drives the
// screen transitions until the user exits.
package view

import (
	"github.com/cjsmith-dev/notetree/pkg/models"
	"github.com/cjsmith-dev/notetree/pkg/tree"
)

// Screen identifies which part of the menu flow is active.
type Screen string

const (
	ScreenMain   Screen = "main"
	ScreenAdd    Screen = "add"
	ScreenView   Screen = "view"
	ScreenTree   Screen = "tree"
	ScreenRemove Screen = "remove"
	ScreenUpdate Screen = "update"
	ScreenExit   Screen = "exit"
)

// View is a navigable container of notes. It is either the persisted
// top-level collection or a transient container over a long note's
// sub-notes; a Session cannot tell the difference.
type View struct {
	Name   string
	Notes  []models.Note
	Screen Screen

	// updateIndex is the target of ScreenUpdate. It is only meaningful for
	// the transition that set it and is never persisted.
	updateIndex int
}

// New creates a view at the main menu.
func New(name string, notes []models.Note) *View {
	return &View{
		Name:   name,
		Notes:  notes,
		Screen: ScreenMain,
	}
}

// Label implements tree.Item: a view is the root of its tree.
func (v *View) Label() string {
	return v.Name
}

// Children implements tree.Item.
func (v *View) Children() []tree.Item {
	items := make([]tree.Item, len(v.Notes))
	for i, n := range v.Notes {
		items[i] = n
	}
	return items
}

// Package app wires the gateways together and owns the program lifecycle:
// load or create the collection, run the interactive session, persist.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/cjsmith-dev/notetree/pkg/prompt"
	"github.com/cjsmith-dev/notetree/pkg/store"
	"github.com/cjsmith-dev/notetree/pkg/view"
)

// DefaultName is used for a fresh collection when the user declines to name
// it.
const DefaultName = "notes"

// App runs one interactive notetree session.
type App struct {
	Store    *store.FileStore
	Prompter prompt.Prompter
	Log      *logrus.Logger
	Out      io.Writer
}

// Run performs a full session: load-or-create, render loop, save. The save
// is attempted even when the loop failed, so a prompt failure never loses
// completed edits.
func (a *App) Run() error {
	if a.Out == nil {
		a.Out = os.Stdout
	}

	v, err := a.loadOrCreate()
	if err != nil {
		return err
	}

	session := view.NewSession(a.Prompter, a.Log)
	session.Out = a.Out

	runErr := session.Run(v)
	if runErr != nil && a.Log != nil {
		a.Log.WithError(runErr).Error("interactive session failed, attempting to save")
	}

	if err := a.Store.Save(v); err != nil {
		if runErr != nil {
			// The session failure is the root cause; report the save
			// failure alongside it.
			if a.Log != nil {
				a.Log.WithError(err).Error("saving notes after session failure")
			}
			return runErr
		}
		return fmt.Errorf("save notes: %w", err)
	}
	return runErr
}

// loadOrCreate loads the persisted collection, or creates a fresh named one
// on first run. Cancelling the name prompt falls back to the default name.
func (a *App) loadOrCreate() (*view.View, error) {
	v, err := a.Store.Load()
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	name, err := a.Prompter.Input("Enter name for notes:")
	if prompt.Canceled(err) {
		name = ""
	} else if err != nil {
		return nil, err
	}
	if name == "" {
		name = DefaultName
	}
	return view.New(name, nil), nil
}

package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjsmith-dev/notetree/pkg/models"
	"github.com/cjsmith-dev/notetree/pkg/prompt/prompttest"
	"github.com/cjsmith-dev/notetree/pkg/store"
	"github.com/cjsmith-dev/notetree/pkg/view"
)

func newTestApp(t *testing.T, path string, script *prompttest.Script) *App {
	t.Helper()
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	return &App{
		Store:    store.NewFileStore(path, log),
		Prompter: script,
		Log:      log,
		Out:      &bytes.Buffer{},
	}
}

func TestFirstRunNamesCollectionAndSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	script := prompttest.New(t,
		prompttest.Text("T1"), // name for the fresh collection
		prompttest.Pick(2),    // Exit (empty collection menu)
	)

	require.NoError(t, newTestApp(t, path, script).Run())
	script.Done()

	loaded, err := store.NewFileStore(path, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, "T1", loaded.Name)
	assert.Empty(t, loaded.Notes)
}

func TestFirstRunNameCancellationFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	script := prompttest.New(t,
		prompttest.Cancel(), // decline to name it
		prompttest.Pick(2),  // Exit
	)

	require.NoError(t, newTestApp(t, path, script).Run())

	loaded, err := store.NewFileStore(path, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultName, loaded.Name)
}

func TestSecondRunLoadsExistingCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	seed := view.New("existing", []models.Note{
		&models.ShortNote{Title: "kept", CreatedAt: models.Today(), State: models.NoteStatePending},
	})
	require.NoError(t, store.NewFileStore(path, nil).Save(seed))

	// No name prompt on an existing collection; the menu offers the
	// viewing entries because a note exists.
	script := prompttest.New(t, prompttest.Choose("Exit"))
	require.NoError(t, newTestApp(t, path, script).Run())
	script.Done()

	loaded, err := store.NewFileStore(path, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, "existing", loaded.Name)
	require.Len(t, loaded.Notes, 1)
}

func TestFatalPromptFailureStillSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	boom := errors.New("stdin closed")
	script := prompttest.New(t,
		prompttest.Text("T1"),
		prompttest.Fail(boom), // main menu blows up
	)

	err := newTestApp(t, path, script).Run()
	assert.ErrorIs(t, err, boom)

	// Best-effort save still happened.
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestCorruptDataFileIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	script := prompttest.New(t) // no prompts expected
	err := newTestApp(t, path, script).Run()
	assert.Error(t, err)
	script.Done()
}

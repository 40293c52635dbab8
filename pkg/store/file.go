// Package store persists the whole note collection as a single structured
// blob at one configured path, with an optional sqlite archive of past saves.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/cjsmith-dev/notetree/pkg/models"
	"github.com/cjsmith-dev/notetree/pkg/view"
)

// ErrNotFound is returned by Load when nothing has been saved yet.
var ErrNotFound = errors.New("no saved notes found")

// record is the on-disk shape of a view: name, notes, and the active screen.
// The screen is written as "main" unconditionally; a view must never resume
// mid-operation after a restart.
type record struct {
	Name  string              `json:"name" yaml:"name"`
	Notes []models.NoteRecord `json:"notes,omitempty" yaml:"notes,omitempty"`
	State string              `json:"state" yaml:"state"`
}

// FileStore loads and saves one collection at a fixed path. The encoding is
// chosen by file extension: JSON by default, YAML for .yaml/.yml.
type FileStore struct {
	path    string
	log     *logrus.Logger
	history *History
}

func NewFileStore(path string, log *logrus.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// WithHistory attaches a snapshot archive; every successful save is also
// recorded there.
func (s *FileStore) WithHistory(h *History) *FileStore {
	s.history = h
	return s
}

// Path returns the configured data file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the collection. The loaded screen state is always coerced to
// the main menu, whatever was stored.
func (s *FileStore) Load() (*view.View, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var rec record
	if s.yamlEncoded() {
		err = yaml.Unmarshal(data, &rec)
	} else {
		err = json.Unmarshal(data, &rec)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	notes, err := models.DecodeNotes(rec.Notes)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return view.New(rec.Name, notes), nil
}

// Save writes the collection, creating the parent directory if needed.
func (s *FileStore) Save(v *view.View) error {
	data, err := s.encode(v)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}

	if s.history != nil {
		if err := s.history.Record(v.Name, s.encodingName(), data); err != nil {
			// The archive is best effort; a failed snapshot must not fail
			// the save.
			if s.log != nil {
				s.log.WithError(err).Warn("recording save snapshot")
			}
		}
	}
	return nil
}

// Close releases the snapshot archive, if any.
func (s *FileStore) Close() error {
	if s.history == nil {
		return nil
	}
	return s.history.Close()
}

func (s *FileStore) encode(v *view.View) ([]byte, error) {
	rec := record{
		Name:  v.Name,
		Notes: models.EncodeNotes(v.Notes),
		State: string(view.ScreenMain),
	}
	if s.yamlEncoded() {
		data, err := yaml.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("encode notes: %w", err)
		}
		return data, nil
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode notes: %w", err)
	}
	return data, nil
}

func (s *FileStore) yamlEncoded() bool {
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func (s *FileStore) encodingName() string {
	if s.yamlEncoded() {
		return "yaml"
	}
	return "json"
}

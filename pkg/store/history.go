package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// History is an append-only sqlite archive of saved collections. Every
// successful save adds a snapshot; nothing ever reads one back during normal
// operation. It exists so a user can see (and manually recover) past states
// of the data file.
type History struct {
	db *sql.DB
}

// Snapshot describes one archived save.
type Snapshot struct {
	ID       int64
	SavedAt  time.Time
	Name     string
	Encoding string
	Size     int
}

// OpenHistory opens (or creates) the archive database at path.
func OpenHistory(path string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	h := &History{db: db}
	if err := h.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize history: %w", err)
	}
	return h, nil
}

func (h *History) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		saved_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		name TEXT NOT NULL,
		encoding TEXT NOT NULL,
		payload BLOB NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_saved_at ON snapshots(saved_at);
	`
	_, err := h.db.Exec(schema)
	return err
}

// Record appends one snapshot.
func (h *History) Record(name, encoding string, payload []byte) error {
	_, err := h.db.Exec(
		`INSERT INTO snapshots (name, encoding, payload) VALUES (?, ?, ?)`,
		name, encoding, payload,
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// List returns all snapshots, newest first.
func (h *History) List() ([]Snapshot, error) {
	rows, err := h.db.Query(
		`SELECT id, saved_at, name, encoding, length(payload) FROM snapshots ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var snap Snapshot
		if err := rows.Scan(&snap.ID, &snap.SavedAt, &snap.Name, &snap.Encoding, &snap.Size); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, rows.Err()
}

// Payload returns the archived blob of one snapshot.
func (h *History) Payload(id int64) ([]byte, error) {
	var payload []byte
	err := h.db.QueryRow(`SELECT payload FROM snapshots WHERE id = ?`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("snapshot %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %d: %w", id, err)
	}
	return payload, nil
}

func (h *History) Close() error {
	return h.db.Close()
}

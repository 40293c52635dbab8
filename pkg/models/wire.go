package models

import "fmt"

// Note kinds as stored on disk.
const (
	kindShort = "short"
	kindLong  = "long"
)

// NoteRecord is the serialized form of a Note. One record type covers both
// variants, discriminated by Kind; fields that only the long variant carries
// are omitted for short notes. The record round-trips every optional field
// losslessly.
type NoteRecord struct {
	Kind        string       `json:"kind" yaml:"kind"`
	Title       string       `json:"title" yaml:"title"`
	Description *string      `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedAt   Date         `json:"created_at" yaml:"created_at"`
	DueAt       *Date        `json:"due_at,omitempty" yaml:"due_at,omitempty"`
	State       NoteState    `json:"state" yaml:"state"`
	SubNotes    []NoteRecord `json:"sub_notes,omitempty" yaml:"sub_notes,omitempty"`
}

// EncodeNotes converts a collection into its serialized form.
func EncodeNotes(notes []Note) []NoteRecord {
	if len(notes) == 0 {
		return nil
	}
	records := make([]NoteRecord, len(notes))
	for i, n := range notes {
		records[i] = encodeNote(n)
	}
	return records
}

func encodeNote(n Note) NoteRecord {
	switch note := n.(type) {
	case *ShortNote:
		return NoteRecord{
			Kind:      kindShort,
			Title:     note.Title,
			CreatedAt: note.CreatedAt,
			DueAt:     copyDate(note.DueAt),
			State:     note.State,
		}
	case *LongNote:
		return NoteRecord{
			Kind:        kindLong,
			Title:       note.Title,
			Description: copyString(note.Description),
			CreatedAt:   note.CreatedAt,
			DueAt:       copyDate(note.DueAt),
			State:       note.State,
			SubNotes:    EncodeNotes(note.SubNotes),
		}
	}
	panic(fmt.Sprintf("unknown note variant %T", n))
}

// DecodeNotes rebuilds a collection from its serialized form. Unknown kinds
// or states mean the data is malformed, which is fatal.
func DecodeNotes(records []NoteRecord) ([]Note, error) {
	if len(records) == 0 {
		return nil, nil
	}
	notes := make([]Note, len(records))
	for i, record := range records {
		note, err := decodeNote(record)
		if err != nil {
			return nil, err
		}
		notes[i] = note
	}
	return notes, nil
}

func decodeNote(record NoteRecord) (Note, error) {
	if !record.State.Valid() {
		return nil, fmt.Errorf("note %q: unknown state %q", record.Title, record.State)
	}
	switch record.Kind {
	case kindShort:
		return &ShortNote{
			Title:     record.Title,
			CreatedAt: record.CreatedAt,
			DueAt:     copyDate(record.DueAt),
			State:     record.State,
		}, nil
	case kindLong:
		subNotes, err := DecodeNotes(record.SubNotes)
		if err != nil {
			return nil, err
		}
		return &LongNote{
			Title:       record.Title,
			Description: copyString(record.Description),
			CreatedAt:   record.CreatedAt,
			DueAt:       copyDate(record.DueAt),
			State:       record.State,
			SubNotes:    subNotes,
		}, nil
	}
	return nil, fmt.Errorf("note %q: unknown kind %q", record.Title, record.Kind)
}

func copyDate(d *Date) *Date {
	if d == nil {
		return nil
	}
	clone := *d
	return &clone
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

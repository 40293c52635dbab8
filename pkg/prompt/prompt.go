// Package prompt defines the interactive boundary of notetree: every question
// the program asks the user goes through a Prompter, and every answer is
// either a value, a cancellation, or a genuine failure.
package prompt

import (
	"errors"
	"time"
)

// ErrCanceled is returned when the user explicitly cancels a prompt
// (typically by pressing esc).
var ErrCanceled = errors.New("operation canceled")

// ErrInterrupted is returned when the prompt is interrupted (ctrl+c).
var ErrInterrupted = errors.New("operation interrupted")

// Canceled reports whether err is one of the two user-initiated abort
// signals. Both are handled identically everywhere: the in-progress
// operation is abandoned without error. Anything else coming out of a
// Prompter is a fatal failure.
func Canceled(err error) bool {
	return errors.Is(err, ErrCanceled) || errors.Is(err, ErrInterrupted)
}

// Prompter asks the user for a single value. Implementations block until the
// user answers or aborts.
type Prompter interface {
	// Input asks for one line of free text.
	Input(title string) (string, error)

	// Editor asks for multi-line text, pre-filled with prefill.
	Editor(title, prefill string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(title string) (bool, error)

	// PickDate asks for a calendar date. Only the date part of the
	// returned time is meaningful.
	PickDate(title string) (time.Time, error)

	// Select asks the user to choose one of options and returns its index.
	Select(title string, options []string) (int, error)
}

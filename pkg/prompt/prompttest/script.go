// Package prompttest provides a scripted Prompter for tests: a fixed
// sequence of answers played back one prompt at a time.
package prompttest

import (
	"testing"
	"time"

	"github.com/cjsmith-dev/notetree/pkg/prompt"
)

type stepKind int

const (
	kindText stepKind = iota
	kindLines
	kindConfirm
	kindDate
	kindPick
	kindAbort
)

// Step is one scripted answer.
type Step struct {
	kind stepKind
	text string
	ok   bool
	date time.Time
	pick int
	err  error
}

// Text answers the next Input prompt.
func Text(s string) Step { return Step{kind: kindText, text: s} }

// Lines answers the next Editor prompt.
func Lines(s string) Step { return Step{kind: kindLines, text: s} }

// Yes and No answer the next Confirm prompt.
func Yes() Step { return Step{kind: kindConfirm, ok: true} }
func No() Step  { return Step{kind: kindConfirm, ok: false} }

// Date answers the next PickDate prompt.
func Date(t time.Time) Step { return Step{kind: kindDate, date: t} }

// Pick answers the next Select prompt with the option at index i.
func Pick(i int) Step { return Step{kind: kindPick, pick: i} }

// Choose answers the next Select prompt with the option whose label equals
// label. Fails the test if no option matches.
func Choose(label string) Step { return Step{kind: kindPick, text: label, pick: -1} }

// Cancel aborts whichever prompt comes next, as an explicit user cancel.
func Cancel() Step { return Step{kind: kindAbort, err: prompt.ErrCanceled} }

// Interrupt aborts whichever prompt comes next, as an interrupt.
func Interrupt() Step { return Step{kind: kindAbort, err: prompt.ErrInterrupted} }

// Fail makes the next prompt return err, simulating a gateway failure.
func Fail(err error) Step { return Step{kind: kindAbort, err: err} }

// Script plays back a sequence of Steps. Any prompt beyond the end of the
// script, or of the wrong kind for the next step, fails the test.
type Script struct {
	t     *testing.T
	steps []Step
	pos   int

	// Titles records every prompt title asked, in order.
	Titles []string
}

func New(t *testing.T, steps ...Step) *Script {
	return &Script{t: t, steps: steps}
}

func (s *Script) next(kind stepKind, title string) (Step, error) {
	s.t.Helper()
	s.Titles = append(s.Titles, title)
	if s.pos >= len(s.steps) {
		s.t.Fatalf("unexpected prompt %q: script exhausted after %d steps", title, len(s.steps))
	}
	step := s.steps[s.pos]
	s.pos++
	if step.kind == kindAbort {
		return Step{}, step.err
	}
	if step.kind != kind {
		s.t.Fatalf("prompt %q asked for step kind %d, script has kind %d at position %d", title, kind, step.kind, s.pos-1)
	}
	return step, nil
}

func (s *Script) Input(title string) (string, error) {
	step, err := s.next(kindText, title)
	return step.text, err
}

func (s *Script) Editor(title, prefill string) (string, error) {
	step, err := s.next(kindLines, title)
	if err != nil {
		return "", err
	}
	return step.text, nil
}

func (s *Script) Confirm(title string) (bool, error) {
	step, err := s.next(kindConfirm, title)
	return step.ok, err
}

func (s *Script) PickDate(title string) (time.Time, error) {
	step, err := s.next(kindDate, title)
	return step.date, err
}

func (s *Script) Select(title string, options []string) (int, error) {
	step, err := s.next(kindPick, title)
	if err != nil {
		return 0, err
	}
	if step.text != "" {
		for i, option := range options {
			if option == step.text {
				return i, nil
			}
		}
		s.t.Fatalf("prompt %q: no option labeled %q among %v", title, step.text, options)
	}
	if step.pick < 0 || step.pick >= len(options) {
		s.t.Fatalf("prompt %q: scripted pick %d out of range for %d options %v", title, step.pick, len(options), options)
	}
	return step.pick, nil
}

// Done fails the test if any scripted steps were left unconsumed.
func (s *Script) Done() {
	s.t.Helper()
	if s.pos != len(s.steps) {
		s.t.Fatalf("script not exhausted: %d of %d steps consumed", s.pos, len(s.steps))
	}
}

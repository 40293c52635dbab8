package prompt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
)

const dateLayout = "2006-01-02"

// Terminal is the production Prompter, backed by huh forms on the
// controlling terminal.
type Terminal struct{}

func NewTerminal() *Terminal {
	return &Terminal{}
}

func (t *Terminal) Input(title string) (string, error) {
	var value string
	err := huh.NewInput().
		Title(title).
		Value(&value).
		Run()
	if err != nil {
		return "", mapAbort(err)
	}
	return value, nil
}

func (t *Terminal) Editor(title, prefill string) (string, error) {
	value := prefill
	err := huh.NewText().
		Title(title).
		CharLimit(0).
		Value(&value).
		Run()
	if err != nil {
		return "", mapAbort(err)
	}
	return value, nil
}

func (t *Terminal) Confirm(title string) (bool, error) {
	var value bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value).
		Run()
	if err != nil {
		return false, mapAbort(err)
	}
	return value, nil
}

func (t *Terminal) PickDate(title string) (time.Time, error) {
	var value string
	err := huh.NewInput().
		Title(title).
		Placeholder(time.Now().Format(dateLayout)).
		Validate(func(s string) error {
			if _, err := time.Parse(dateLayout, strings.TrimSpace(s)); err != nil {
				return fmt.Errorf("enter a date as YYYY-MM-DD")
			}
			return nil
		}).
		Value(&value).
		Run()
	if err != nil {
		return time.Time{}, mapAbort(err)
	}
	return time.Parse(dateLayout, strings.TrimSpace(value))
}

func (t *Terminal) Select(title string, options []string) (int, error) {
	opts := make([]huh.Option[int], len(options))
	for i, label := range options {
		opts[i] = huh.NewOption(label, i)
	}
	var index int
	err := huh.NewSelect[int]().
		Title(title).
		Options(opts...).
		Value(&index).
		Run()
	if err != nil {
		return 0, mapAbort(err)
	}
	return index, nil
}

// mapAbort translates huh's abort signal into the package's cancellation
// sentinel. All other errors are real prompt failures and pass through.
func mapAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCanceled
	}
	return err
}

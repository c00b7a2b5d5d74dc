// Package uitest drives a running TUI model through its accessibility tree,
// the way a user would: tapping labelled elements, typing into the focused
// field and waiting for the screen to settle.
package uitest

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/readmode/internal/presentation/tui/a11y"
)

var (
	// ErrNotFound is returned when no element carries the label.
	ErrNotFound = errors.New("element not found")
	// ErrNotTappable is returned when the element exists but is disabled or inert.
	ErrNotTappable = errors.New("element not tappable")
	// ErrNotFocused is returned when typing into an element without focus.
	ErrNotFocused = errors.New("element not focused")
	// ErrNotSwipeable is returned when the element cannot be dismissed.
	ErrNotSwipeable = errors.New("element cannot be swiped")
	// ErrStillPresent is returned when an element does not disappear in time.
	ErrStillPresent = errors.New("element still present")
)

// DefaultTimeout bounds every implicit wait.
const DefaultTimeout = 5 * time.Second

// App is a model that exposes its accessibility tree.
type App interface {
	tea.Model
	Accessibility() []a11y.Element
}

// Driver addresses the UI by accessibility label.
type Driver interface {
	Tap(label string) error
	EnterText(identifier, text string) error
	WaitFor(label string, timeout time.Duration) (a11y.Element, error)
	WaitForAbsence(label string, timeout time.Duration) error
	Exists(label string) bool
	Count(label string) (int, error)
	Value(label string) (string, error)
	Swipe(label string) error
	TryFindTappable(label string) error
}

// ModelDriver runs an App in-process. Commands execute on their own
// goroutines and their messages are applied only while the driver waits,
// so the model is only ever touched from the caller's goroutine.
type ModelDriver struct {
	app     App
	msgs    chan tea.Msg
	ctx     context.Context
	cancel  context.CancelFunc
	quit    bool
	Timeout time.Duration
}

var _ Driver = (*ModelDriver)(nil)

// NewModelDriver starts driving app.
func NewModelDriver(app App) *ModelDriver {
	ctx, cancel := context.WithCancel(context.Background())
	return &ModelDriver{
		app:     app,
		msgs:    make(chan tea.Msg, 64),
		ctx:     ctx,
		cancel:  cancel,
		Timeout: DefaultTimeout,
	}
}

// Close stops delivering command results.
func (d *ModelDriver) Close() {
	d.cancel()
}

// App returns the current model.
func (d *ModelDriver) App() App {
	return d.app
}

// Quit reports whether the app asked to exit.
func (d *ModelDriver) Quit() bool {
	return d.quit
}

// Send applies msg to the model and schedules the returned command.
func (d *ModelDriver) Send(msg tea.Msg) {
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, cmd := range msg {
			d.run(cmd)
		}
		return
	case tea.QuitMsg:
		d.quit = true
		return
	}

	next, cmd := d.app.Update(msg)
	if app, ok := next.(App); ok {
		d.app = app
	}
	d.run(cmd)
}

func (d *ModelDriver) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	go func() {
		msg := cmd()
		if msg == nil {
			return
		}
		select {
		case d.msgs <- msg:
		case <-d.ctx.Done():
		}
	}()
}

// pump applies command results until cond holds or timeout elapses.
func (d *ModelDriver) pump(timeout time.Duration, cond func([]a11y.Element) bool) bool {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for {
		if cond(d.app.Accessibility()) {
			return true
		}
		select {
		case msg := <-d.msgs:
			d.Send(msg)
		case <-deadline.C:
			return cond(d.app.Accessibility())
		case <-d.ctx.Done():
			return false
		}
	}
}

// drain applies every command result that is already available.
func (d *ModelDriver) drain() {
	for {
		select {
		case msg := <-d.msgs:
			d.Send(msg)
		default:
			return
		}
	}
}

// Elements returns the current accessibility tree.
func (d *ModelDriver) Elements() []a11y.Element {
	d.drain()
	return d.app.Accessibility()
}

// WaitFor blocks until an element with label (or identifier) is present.
func (d *ModelDriver) WaitFor(label string, timeout time.Duration) (a11y.Element, error) {
	var found a11y.Element
	ok := d.pump(timeout, func(elements []a11y.Element) bool {
		e, ok := a11y.Lookup(elements, label)
		found = e
		return ok
	})
	if !ok {
		return a11y.Element{}, fmt.Errorf("wait for %q after %s: %w", label, timeout, ErrNotFound)
	}
	return found, nil
}

// WaitForAbsence blocks until no element carries label.
func (d *ModelDriver) WaitForAbsence(label string, timeout time.Duration) error {
	ok := d.pump(timeout, func(elements []a11y.Element) bool {
		_, found := a11y.Lookup(elements, label)
		return !found
	})
	if !ok {
		return fmt.Errorf("wait for absence of %q after %s: %w", label, timeout, ErrStillPresent)
	}
	return nil
}

// Exists reports whether an element with label is on screen now.
func (d *ModelDriver) Exists(label string) bool {
	_, ok := a11y.Lookup(d.Elements(), label)
	return ok
}

// Tap waits for a tappable element and activates it.
func (d *ModelDriver) Tap(label string) error {
	var target a11y.Element
	ok := d.pump(d.Timeout, func(elements []a11y.Element) bool {
		e, ok := a11y.Lookup(elements, label)
		target = e
		return ok && e.Tappable()
	})
	if !ok {
		if _, found := a11y.Lookup(d.app.Accessibility(), label); found {
			return fmt.Errorf("tap %q: %w", label, ErrNotTappable)
		}
		return fmt.Errorf("tap %q: %w", label, ErrNotFound)
	}
	d.Send(target.Activate)
	return nil
}

// TryFindTappable checks, without waiting, that label can be tapped.
func (d *ModelDriver) TryFindTappable(label string) error {
	e, ok := a11y.Lookup(d.Elements(), label)
	if !ok {
		return fmt.Errorf("find %q: %w", label, ErrNotFound)
	}
	if !e.Tappable() {
		return fmt.Errorf("find %q: %w", label, ErrNotTappable)
	}
	return nil
}

// EnterText clears the focused field identified by identifier and types text.
// A newline submits the field.
func (d *ModelDriver) EnterText(identifier, text string) error {
	e, err := d.WaitFor(identifier, d.Timeout)
	if err != nil {
		return err
	}
	if !e.Focused {
		return fmt.Errorf("enter text into %q: %w", identifier, ErrNotFocused)
	}

	d.Send(a11y.KeyPress("ctrl+e"))
	d.Send(a11y.KeyPress("ctrl+u"))
	for _, r := range text {
		if r == '\n' {
			d.Send(tea.KeyMsg{Type: tea.KeyEnter})
			continue
		}
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return nil
}

// Count returns the row count of the list container label.
func (d *ModelDriver) Count(label string) (int, error) {
	e, err := d.WaitFor(label, d.Timeout)
	if err != nil {
		return 0, err
	}
	return e.Count, nil
}

// Value returns the displayed value of label.
func (d *ModelDriver) Value(label string) (string, error) {
	e, err := d.WaitFor(label, d.Timeout)
	if err != nil {
		return "", err
	}
	return e.Value, nil
}

// Children returns the elements held by container.
func (d *ModelDriver) Children(container string) []a11y.Element {
	return a11y.Children(d.Elements(), container)
}

// Swipe dismisses the element with label.
func (d *ModelDriver) Swipe(label string) error {
	e, err := d.WaitFor(label, d.Timeout)
	if err != nil {
		return err
	}
	if e.Dismiss == nil {
		return fmt.Errorf("swipe %q: %w", label, ErrNotSwipeable)
	}
	d.Send(e.Dismiss)
	return nil
}

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/readmode/internal/presentation/tui/intent"
	"github.com/tesso57/readmode/internal/presentation/tui/state"
)

func TestQuitDialog(t *testing.T) {
	env := newTestEnv(t)
	m := env.model

	// 1. Initial State
	if m.state.Session != state.BrowseView {
		t.Error("Initial state should be BrowseView")
	}

	// 2. Press 'q' -> quit view, not an immediate quit
	tm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = tm.(*Model)
	if m.state.Session != state.QuitView {
		t.Error("Should switch to QuitView on 'q'")
	}
	if cmd != nil {
		t.Error("Should not return tea.Quit command yet")
	}

	// 3. Press 'n' -> back to browsing
	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = tm.(*Model)
	if m.state.Session != state.BrowseView {
		t.Error("Should return to BrowseView on 'n'")
	}

	// 4. From the tab tray, 'esc' returns to the tray
	m.state.Session = state.TabTrayView
	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = tm.(*Model)
	if m.state.Previous != state.TabTrayView {
		t.Error("Should remember TabTrayView as previous session")
	}
	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = tm.(*Model)
	if m.state.Session != state.TabTrayView {
		t.Error("Should return to TabTrayView on 'esc'")
	}
	m.state.Session = state.BrowseView

	// 5. Confirm with 'y'
	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = tm.(*Model)
	if !strings.Contains(m.View(), "Are you sure") {
		t.Error("Quit dialog should be rendered")
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if cmd == nil {
		t.Fatal("Should return command on 'y'")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("'y' should quit")
	}
}

func TestQuitDialogByIntent(t *testing.T) {
	env := newTestEnv(t)
	m := env.model

	_, _ = m.Update(intent.Intent{Type: intent.Quit})
	if m.state.Session != state.QuitView {
		t.Fatal("Quit intent should open the quit dialog")
	}

	_, _ = m.Update(intent.Intent{Type: intent.Back})
	if m.state.Session != state.BrowseView {
		t.Error("Back intent should cancel the quit dialog")
	}

	_, _ = m.Update(intent.Intent{Type: intent.Quit})
	_, cmd := m.Update(intent.Intent{Type: intent.ConfirmQuit})
	if cmd == nil {
		t.Fatal("ConfirmQuit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ConfirmQuit should quit")
	}
}

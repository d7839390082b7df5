package views

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// newTestScreen returns a screen whose clock starts at 1000ms
func newTestScreen(t *testing.T) *TaskScreen {
	t.Helper()
	return NewTaskScreen(Options{
		Now: func() time.Time { return time.UnixMilli(1000) },
	})
}

// press sends a key and returns the command without running it
func press(s *TaskScreen, msg tea.KeyMsg) tea.Cmd {
	_, cmd := s.Update(msg)
	return cmd
}

// deliver runs cmd and feeds the resulting message back into the screen,
// the way the bubbletea runtime would
func deliver(t *testing.T, s *TaskScreen, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	msg := cmd()
	s.Update(msg)
	return msg
}

// titles lists the titles of the current tasks in order
func titles(s *TaskScreen) []string {
	var out []string
	for _, task := range s.Tasks() {
		out = append(out, task.Title)
	}
	return out
}

// focusList moves focus from the add input to the task list
func focusList(t *testing.T, s *TaskScreen) {
	t.Helper()
	press(s, keyTab)
	if s.Focus() != FocusTaskList {
		t.Fatalf("focus: got %v, want FocusTaskList", s.Focus())
	}
}

package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/todo/internal/logging"
)

func TestAppDelegatesToScreen(t *testing.T) {
	var buf bytes.Buffer
	app := NewApp(logging.NewTestLogger(&buf), 50)

	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if app.width != 100 || app.height != 30 {
		t.Errorf("size: got %dx%d, want 100x30", app.width, app.height)
	}

	app.Screen().AddTask("Buy milk")
	app.Screen().AddTask("Buy milk")
	if app.Screen().Count() != 1 {
		t.Errorf("Count: got %d, want 1", app.Screen().Count())
	}
	if !strings.Contains(app.View(), "Task already registered") {
		t.Error("duplicate alert not rendered")
	}

	app.Summary()
	out := buf.String()
	for _, want := range []string{"task added", "duplicate task title", "session ended"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q: %s", want, out)
		}
	}
}

package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/todo/internal/ui/styles"
)

// AddInput is the new-task field. On enter it emits AddTaskMsg and clears itself.
type AddInput struct {
	input textinput.Model
}

// NewAddInput creates the field with the given character limit
func NewAddInput(charLimit int) *AddInput {
	ti := textinput.New()
	ti.Placeholder = "Add a new to-do..."
	ti.Prompt = "+ "
	ti.CharLimit = charLimit
	return &AddInput{input: ti}
}

func (a *AddInput) Focus() tea.Cmd { return a.input.Focus() }
func (a *AddInput) Blur()          { a.input.Blur() }
func (a *AddInput) Focused() bool  { return a.input.Focused() }
func (a *AddInput) Value() string  { return a.input.Value() }

// Update handles typing and submission
func (a *AddInput) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEnter {
		title := strings.TrimSpace(a.input.Value())
		if title == "" {
			return nil
		}
		a.input.Reset()
		return emit(AddTaskMsg{Title: title})
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return cmd
}

// View renders the field in a box
func (a *AddInput) View(s *styles.Styles, width int) string {
	style := s.Input
	if a.input.Focused() {
		style = s.InputFocused
	}
	return style.Width(max(width-2, 10)).Render(a.input.View())
}

package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/todo/internal/ui/keys"
	"github.com/tgienger/todo/internal/ui/styles"
)

// PromptKind distinguishes single-button alerts from two-button confirmations
type PromptKind int

const (
	PromptAlert PromptKind = iota
	PromptConfirm
)

// Prompt is a modal dialog. While one is open the screen sends it every key.
type Prompt struct {
	Kind    PromptKind
	Title   string
	Message string
	Cancel  string // empty for alerts
	Confirm string

	onConfirm tea.Msg
	selected  int // 0=cancel, 1=confirm
}

// NewAlert creates a dialog with a single dismiss button
func NewAlert(title, message string) *Prompt {
	return &Prompt{
		Kind:     PromptAlert,
		Title:    title,
		Message:  message,
		Confirm:  "OK",
		selected: 1,
	}
}

// NewConfirm creates a two-button dialog. onConfirm is emitted only when
// the confirm button is chosen; the cancel button is selected initially.
func NewConfirm(title, message, cancel, confirm string, onConfirm tea.Msg) *Prompt {
	return &Prompt{
		Kind:      PromptConfirm,
		Title:     title,
		Message:   message,
		Cancel:    cancel,
		Confirm:   confirm,
		onConfirm: onConfirm,
	}
}

// Selected returns the label of the highlighted button
func (p *Prompt) Selected() string {
	if p.selected == 0 {
		return p.Cancel
	}
	return p.Confirm
}

// Update handles a key. done reports that the prompt resolved and should close.
func (p *Prompt) Update(msg tea.KeyMsg, k keys.KeyMap) (done bool, cmd tea.Cmd) {
	if p.Kind == PromptAlert {
		switch {
		case key.Matches(msg, k.Enter), key.Matches(msg, k.Back):
			return true, nil
		}
		return false, nil
	}

	switch {
	case key.Matches(msg, k.Yes):
		return true, p.resolve(true)
	case key.Matches(msg, k.No), key.Matches(msg, k.Back):
		return true, nil
	case key.Matches(msg, k.Left), key.Matches(msg, k.Right),
		key.Matches(msg, k.Tab), key.Matches(msg, k.BackTab):
		p.selected = 1 - p.selected
		return false, nil
	case key.Matches(msg, k.Enter):
		return true, p.resolve(p.selected == 1)
	}
	return false, nil
}

func (p *Prompt) resolve(confirmed bool) tea.Cmd {
	if !confirmed || p.onConfirm == nil {
		return nil
	}
	return emit(p.onConfirm)
}

// View renders the dialog box
func (p *Prompt) View(s *styles.Styles) string {
	button := func(label string, selected bool) string {
		if selected {
			return s.ButtonFocused.Render(label)
		}
		return s.Button.Render(label)
	}

	var buttons string
	if p.Kind == PromptAlert {
		buttons = button(p.Confirm, true)
	} else {
		buttons = lipgloss.JoinHorizontal(lipgloss.Center,
			button(p.Cancel, p.selected == 0),
			"  ",
			button(p.Confirm, p.selected == 1),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.DialogTitle.Render(p.Title),
		"",
		p.Message,
		"",
		buttons,
	)
	return s.Dialog.Render(content)
}

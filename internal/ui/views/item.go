package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/todo/internal/models"
	"github.com/tgienger/todo/internal/ui/styles"
)

// ItemMode is the edit state of a single task row
type ItemMode int

const (
	ItemViewing ItemMode = iota
	ItemEditing
)

func (m ItemMode) String() string {
	if m == ItemEditing {
		return "editing"
	}
	return "viewing"
}

// TaskItem holds the per-row state: its mode and the draft title.
// The draft only matters while editing; otherwise the row shows the
// stored title of the task it is rendered with.
type TaskItem struct {
	id    int64
	mode  ItemMode
	draft textinput.Model
}

// NewTaskItem creates a viewing item for task
func NewTaskItem(task models.Task, charLimit int) *TaskItem {
	draft := textinput.New()
	draft.Prompt = ""
	draft.CharLimit = charLimit
	draft.SetValue(task.Title)

	return &TaskItem{
		id:    task.ID,
		draft: draft,
	}
}

func (it *TaskItem) ID() int64      { return it.id }
func (it *TaskItem) Mode() ItemMode { return it.mode }
func (it *TaskItem) Editing() bool  { return it.mode == ItemEditing }

// CanDelete reports whether the remove action is available
func (it *TaskItem) CanDelete() bool { return it.mode == ItemViewing }

// CanEdit reports whether the start-edit action is available
func (it *TaskItem) CanEdit() bool { return it.mode == ItemViewing }

// Draft returns the text currently in the edit field
func (it *TaskItem) Draft() string { return it.draft.Value() }

// StartEdit switches to editing with the draft set to the stored title
func (it *TaskItem) StartEdit(task models.Task) tea.Cmd {
	if it.mode == ItemEditing {
		return nil
	}
	it.mode = ItemEditing
	it.draft.SetValue(task.Title)
	it.draft.CursorEnd()
	return it.draft.Focus()
}

// Cancel drops the draft and returns to viewing
func (it *TaskItem) Cancel(task models.Task) {
	it.mode = ItemViewing
	it.draft.SetValue(task.Title)
	it.draft.Blur()
}

// Submit returns to viewing and emits an EditTaskMsg with the draft.
// A blank draft is treated as a cancel.
func (it *TaskItem) Submit(task models.Task) tea.Cmd {
	if it.mode != ItemEditing {
		return nil
	}

	title := strings.TrimSpace(it.draft.Value())
	if title == "" {
		it.Cancel(task)
		return nil
	}

	it.mode = ItemViewing
	it.draft.Blur()
	return emit(EditTaskMsg{ID: it.id, Title: title})
}

// Update forwards input to the draft while editing
func (it *TaskItem) Update(msg tea.Msg) tea.Cmd {
	if it.mode != ItemEditing {
		return nil
	}
	var cmd tea.Cmd
	it.draft, cmd = it.draft.Update(msg)
	return cmd
}

// Title is the text shown for task: the draft while editing, the stored
// title otherwise
func (it *TaskItem) Title(task models.Task) string {
	if it.mode == ItemEditing {
		return it.draft.Value()
	}
	return task.Title
}

// View renders the row
func (it *TaskItem) View(task models.Task, s *styles.Styles, selected bool, width int) string {
	marker := s.TaskMarker.Render("☐")
	text := s.TaskText.Render(it.Title(task))
	if task.Done {
		marker = s.TaskMarkerDone.Render("☑")
		text = s.TaskTextDone.Render(it.Title(task))
	}
	if it.mode == ItemEditing {
		text = it.draft.View()
	}

	editIcon := s.Icon.Render("✎")
	deleteIcon := s.Icon.Render("🗑")
	if it.mode == ItemEditing {
		editIcon = s.Icon.Render("✕")
		deleteIcon = s.IconDisabled.Render("🗑")
	}
	icons := editIcon + s.TitleMuted.Render(" │ ") + deleteIcon

	rowStyle := s.ListItem
	if selected {
		rowStyle = s.ListSelected
	}

	left := marker + " " + text
	gap := width - lipgloss.Width(left) - lipgloss.Width(icons) - rowStyle.GetHorizontalPadding()
	if gap < 1 {
		gap = 1
	}
	return rowStyle.Render(left + strings.Repeat(" ", gap) + icons)
}

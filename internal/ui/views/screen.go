package views

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/tgienger/todo/internal/models"
	"github.com/tgienger/todo/internal/store"
	"github.com/tgienger/todo/internal/ui/keys"
	"github.com/tgienger/todo/internal/ui/styles"
)

// Dialog texts
const (
	duplicateTitle   = "Task already registered"
	duplicateMessage = "You cannot register two tasks with the same name."
	removeTitle      = "Remove item"
	removeMessage    = "Are you sure you want to remove this item?"
	removeCancel     = "No"
	removeConfirm    = "Yes"
)

// FocusArea represents which part of the UI has focus
type FocusArea int

const (
	FocusAddInput FocusArea = iota
	FocusTaskList
)

// Options configures a TaskScreen
type Options struct {
	Logger     *log.Logger
	TitleLimit int
	Now        func() time.Time
}

// TaskScreen owns the task list and dispatches every user action to the store
type TaskScreen struct {
	tasks  []models.Task
	items  map[int64]*TaskItem
	input  *AddInput
	prompt *Prompt

	styles *styles.Styles
	keys   keys.KeyMap
	help   help.Model
	logger *log.Logger
	now    func() time.Time
	limit  int

	width  int
	height int

	focus   FocusArea
	cursor  int
	scrollY int
}

// NewTaskScreen creates an empty screen with the add input focused
func NewTaskScreen(opts Options) *TaskScreen {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TitleLimit <= 0 {
		opts.TitleLimit = 200
	}

	s := &TaskScreen{
		items:  make(map[int64]*TaskItem),
		input:  NewAddInput(opts.TitleLimit),
		styles: styles.NewStyles(),
		keys:   keys.DefaultKeyMap(),
		help:   help.New(),
		logger: opts.Logger,
		now:    opts.Now,
		limit:  opts.TitleLimit,
		focus:  FocusAddInput,
	}
	s.input.Focus()
	return s
}

// Tasks returns a copy of the current sequence
func (s *TaskScreen) Tasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Count is the number shown by the header
func (s *TaskScreen) Count() int { return len(s.tasks) }

// Prompt returns the open dialog, or nil
func (s *TaskScreen) Prompt() *Prompt { return s.prompt }

// Item returns the row state for a task
func (s *TaskScreen) Item(id int64) *TaskItem { return s.items[id] }

func (s *TaskScreen) Focus() FocusArea { return s.focus }
func (s *TaskScreen) Cursor() int      { return s.cursor }

// AddTask appends a task, or opens the duplicate alert if the title is taken
func (s *TaskScreen) AddTask(title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}

	id := store.NextID(s.tasks, s.now())
	next, err := store.Add(s.tasks, title, id)
	if errors.Is(err, store.ErrDuplicateTitle) {
		s.logger.Warn("duplicate task title", "title", title)
		s.prompt = NewAlert(duplicateTitle, duplicateMessage)
		return
	}

	s.setTasks(next)
	s.logger.Debug("task added", "id", id, "title", title, "count", len(s.tasks))
}

// ToggleTaskDone flips a task's done flag
func (s *TaskScreen) ToggleTaskDone(id int64) {
	s.setTasks(store.ToggleDone(s.tasks, id))
	if t, ok := store.Find(s.tasks, id); ok {
		s.logger.Debug("task toggled", "id", id, "done", t.Done)
	}
}

// RemoveTask asks for confirmation before removing a task.
// Nothing changes until the prompt resolves.
func (s *TaskScreen) RemoveTask(id int64) {
	if _, ok := store.Find(s.tasks, id); !ok {
		return
	}
	if item := s.items[id]; item != nil && !item.CanDelete() {
		s.logger.Debug("remove ignored while editing", "id", id)
		return
	}
	s.prompt = NewConfirm(removeTitle, removeMessage, removeCancel, removeConfirm, removeConfirmedMsg{id: id})
}

// EditTask renames a task
func (s *TaskScreen) EditTask(id int64, title string) {
	s.setTasks(store.Edit(s.tasks, id, title))
	s.logger.Debug("task edited", "id", id, "title", title)
}

func (s *TaskScreen) removeConfirmed(id int64) {
	s.setTasks(store.Remove(s.tasks, id))
	s.logger.Info("task removed", "id", id, "count", len(s.tasks))
}

// setTasks replaces the sequence and reconciles row states with it
func (s *TaskScreen) setTasks(next []models.Task) {
	s.tasks = next

	seen := make(map[int64]bool, len(next))
	for _, t := range next {
		seen[t.ID] = true
		if _, ok := s.items[t.ID]; !ok {
			s.items[t.ID] = NewTaskItem(t, s.limit)
		}
	}
	for id := range s.items {
		if !seen[id] {
			delete(s.items, id)
		}
	}

	if s.cursor >= len(s.tasks) {
		s.cursor = max(0, len(s.tasks)-1)
	}
	s.ensureVisible()
}

// Init initializes the view
func (s *TaskScreen) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (s *TaskScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.help.Width = styles.ContentWidth(msg.Width)
		s.ensureVisible()
		return s, nil

	case AddTaskMsg:
		s.AddTask(msg.Title)
		return s, nil

	case ToggleTaskMsg:
		s.ToggleTaskDone(msg.ID)
		return s, nil

	case RemoveTaskMsg:
		s.RemoveTask(msg.ID)
		return s, nil

	case removeConfirmedMsg:
		s.removeConfirmed(msg.id)
		return s, nil

	case EditTaskMsg:
		s.EditTask(msg.ID, msg.Title)
		return s, nil

	case tea.KeyMsg:
		if key.Matches(msg, s.keys.ForceQuit) {
			return s, tea.Quit
		}

		// The prompt is modal
		if s.prompt != nil {
			return s.updatePrompt(msg)
		}

		if item := s.editingItem(); item != nil {
			return s.updateEditing(item, msg)
		}

		if s.focus == FocusAddInput {
			return s.updateInput(msg)
		}

		return s.updateList(msg)
	}

	// Cursor blinks and the like go to whichever field is focused
	if item := s.editingItem(); item != nil {
		return s, item.Update(msg)
	}
	return s, s.input.Update(msg)
}

func (s *TaskScreen) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	done, cmd := s.prompt.Update(msg, s.keys)
	if done {
		s.prompt = nil
	}
	return s, cmd
}

func (s *TaskScreen) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Tab), key.Matches(msg, s.keys.BackTab):
		return s, s.cycleFocus()
	case key.Matches(msg, s.keys.Back):
		if len(s.tasks) > 0 {
			return s, s.cycleFocus()
		}
		return s, nil
	}
	return s, s.input.Update(msg)
}

func (s *TaskScreen) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Quit):
		return s, tea.Quit

	case key.Matches(msg, s.keys.Tab), key.Matches(msg, s.keys.BackTab):
		return s, s.cycleFocus()

	case key.Matches(msg, s.keys.Help):
		s.help.ShowAll = !s.help.ShowAll
		return s, nil

	case key.Matches(msg, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
			s.ensureVisible()
		}
		return s, nil

	case key.Matches(msg, s.keys.Down):
		if s.cursor < len(s.tasks)-1 {
			s.cursor++
			s.ensureVisible()
		}
		return s, nil
	}

	task, ok := s.selected()
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(msg, s.keys.Toggle):
		return s, emit(ToggleTaskMsg{ID: task.ID})

	case key.Matches(msg, s.keys.Delete):
		if s.items[task.ID].CanDelete() {
			return s, emit(RemoveTaskMsg{ID: task.ID})
		}

	case key.Matches(msg, s.keys.Edit):
		return s, s.items[task.ID].StartEdit(task)
	}

	return s, nil
}

func (s *TaskScreen) updateEditing(item *TaskItem, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	task, ok := store.Find(s.tasks, item.ID())
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(msg, s.keys.Enter):
		return s, item.Submit(task)
	case key.Matches(msg, s.keys.Back):
		item.Cancel(task)
		return s, nil
	}
	return s, item.Update(msg)
}

// editingItem returns the row under the cursor if it is being edited
func (s *TaskScreen) editingItem() *TaskItem {
	task, ok := s.selected()
	if !ok {
		return nil
	}
	if item := s.items[task.ID]; item != nil && item.Editing() {
		return item
	}
	return nil
}

func (s *TaskScreen) selected() (models.Task, bool) {
	if s.focus != FocusTaskList || s.cursor >= len(s.tasks) {
		return models.Task{}, false
	}
	return s.tasks[s.cursor], true
}

func (s *TaskScreen) cycleFocus() tea.Cmd {
	if s.focus == FocusAddInput {
		s.focus = FocusTaskList
		s.input.Blur()
		return nil
	}
	s.focus = FocusAddInput
	return s.input.Focus()
}

// visibleItems is how many rows fit below the header and input
func (s *TaskScreen) visibleItems() int {
	if s.height == 0 {
		return len(s.tasks)
	}
	return max(s.height-14, 1)
}

func (s *TaskScreen) ensureVisible() {
	visible := s.visibleItems()
	if s.cursor < s.scrollY {
		s.scrollY = s.cursor
	} else if s.cursor >= s.scrollY+visible {
		s.scrollY = s.cursor - visible + 1
	}
	if s.scrollY > max(len(s.tasks)-visible, 0) {
		s.scrollY = max(len(s.tasks)-visible, 0)
	}
}

// View renders the view
func (s *TaskScreen) View() string {
	contentWidth := styles.ContentWidth(s.width)
	if contentWidth == 0 {
		contentWidth = styles.MaxWidth
	}

	if s.prompt != nil {
		centered := lipgloss.Place(contentWidth, max(s.height, 10),
			lipgloss.Center, lipgloss.Center,
			s.prompt.View(s.styles),
		)
		return styles.CenterView(centered, s.width, s.height)
	}

	done, _ := store.Count(s.tasks)

	var b strings.Builder
	b.WriteString(renderHeader(s.styles, len(s.tasks), done, contentWidth))
	b.WriteString("\n\n")
	b.WriteString(s.input.View(s.styles, contentWidth))
	b.WriteString("\n\n")
	b.WriteString(s.renderTaskList(contentWidth))
	b.WriteString("\n")
	b.WriteString(s.renderHelp())

	return styles.CenterView(b.String(), s.width, s.height)
}

func (s *TaskScreen) renderTaskList(width int) string {
	if len(s.tasks) == 0 {
		return s.styles.TitleMuted.Render("  Nothing to do yet. Type a task above and press enter.")
	}

	end := min(s.scrollY+s.visibleItems(), len(s.tasks))
	rows := make([]string, 0, end-s.scrollY)
	for i := s.scrollY; i < end; i++ {
		task := s.tasks[i]
		selected := s.focus == FocusTaskList && i == s.cursor
		rows = append(rows, s.items[task.ID].View(task, s.styles, selected, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (s *TaskScreen) renderHelp() string {
	if s.editingItem() != nil {
		return s.styles.Help.Render(s.help.ShortHelpView(s.keys.EditingHelp()))
	}
	return s.styles.Help.Render(s.help.View(s.keys))
}

package views

import tea "github.com/charmbracelet/bubbletea"

// AddTaskMsg asks the screen to add a task with the given title
type AddTaskMsg struct {
	Title string
}

// ToggleTaskMsg asks the screen to flip a task's done flag
type ToggleTaskMsg struct {
	ID int64
}

// RemoveTaskMsg asks the screen to remove a task. The screen confirms first.
type RemoveTaskMsg struct {
	ID int64
}

// EditTaskMsg asks the screen to rename a task
type EditTaskMsg struct {
	ID    int64
	Title string
}

// removeConfirmedMsg is emitted by the removal prompt's confirm button
type removeConfirmedMsg struct {
	id int64
}

// emit wraps msg in a command
func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

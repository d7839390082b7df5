package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/tgienger/todo/internal/store"
	"github.com/tgienger/todo/internal/ui/views"
)

// App is the root model handed to the bubbletea program
type App struct {
	screen *views.TaskScreen
	logger *log.Logger
	width  int
	height int
}

// Creates a new application
func NewApp(logger *log.Logger, titleLimit int) *App {
	return &App{
		screen: views.NewTaskScreen(views.Options{
			Logger:     logger,
			TitleLimit: titleLimit,
		}),
		logger: logger,
	}
}

// Screen returns the task screen
func (a *App) Screen() *views.TaskScreen { return a.screen }

func (a *App) Init() tea.Cmd {
	a.logger.Debug("app started")
	return a.screen.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.logger.Debug("window resized", "width", msg.Width, "height", msg.Height)
	}

	_, cmd := a.screen.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	return a.screen.View()
}

// Summary logs the final state of the list
func (a *App) Summary() {
	tasks := a.screen.Tasks()
	done, pending := store.Count(tasks)
	a.logger.Info("session ended", "tasks", len(tasks), "done", done, "pending", pending)
}

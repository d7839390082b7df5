package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/todo/internal/ui/styles"
)

// CountLabel renders the header counter, e.g. "You have 3 tasks"
func CountLabel(count int) string {
	noun := "tasks"
	if count == 1 {
		noun = "task"
	}
	return fmt.Sprintf("You have %d %s", count, noun)
}

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := min(done*width/total, width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3d%%", bar, done*100/total)
}

// renderHeader draws the title bar with the task counter
func renderHeader(s *styles.Styles, count, done, width int) string {
	title := lipgloss.NewStyle().Bold(true).Render("to.do")
	counter := CountLabel(count)

	gap := max(width-lipgloss.Width(title)-lipgloss.Width(counter)-s.Header.GetHorizontalPadding()-1, 1)
	top := title + strings.Repeat(" ", gap) + counter

	line := top
	if count > 0 {
		line = lipgloss.JoinVertical(lipgloss.Left,
			top,
			s.HeaderCount.Render(ProgressBar(done, count, 20)),
		)
	}
	return s.Header.Width(width).Render(line)
}

package styles

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color scheme for the application
type Theme struct {
	Name string

	// Base colors
	Background    lipgloss.Color
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	// Accent colors
	Primary lipgloss.Color
	Header  lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// UI element colors
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color
	Marker      lipgloss.Color
}

// TokyoNight is the default color theme
var TokyoNight = Theme{
	Name: "tokyo-night",

	Background:    lipgloss.Color("#1a1b26"),
	Foreground:    lipgloss.Color("#c0caf5"),
	ForegroundDim: lipgloss.Color("#565f89"),

	Primary: lipgloss.Color("#7aa2f7"),
	Header:  lipgloss.Color("#bb9af7"),

	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),

	Border:      lipgloss.Color("#3b4261"),
	BorderFocus: lipgloss.Color("#7aa2f7"),
	Selection:   lipgloss.Color("#33467c"),
	Marker:      lipgloss.Color("#565f89"),
}

// Classic mirrors the palette of the mobile to-do screen
var Classic = Theme{
	Name: "classic",

	Background:    lipgloss.Color("#EBEBEB"),
	Foreground:    lipgloss.Color("#666666"),
	ForegroundDim: lipgloss.Color("#B2B2B2"),

	Primary: lipgloss.Color("#8257E5"),
	Header:  lipgloss.Color("#8257E5"),

	Success: lipgloss.Color("#1DB863"),
	Warning: lipgloss.Color("#E0A526"),
	Error:   lipgloss.Color("#E83F5B"),

	Border:      lipgloss.Color("#C4C4C4"),
	BorderFocus: lipgloss.Color("#8257E5"),
	Selection:   lipgloss.Color("#DCDCDC"),
	Marker:      lipgloss.Color("#B2B2B2"),
}

var themes = map[string]Theme{
	TokyoNight.Name: TokyoNight,
	Classic.Name:    Classic,
}

// Current holds the active theme
var Current = TokyoNight

// Use makes the named theme current
func Use(name string) error {
	t, ok := themes[name]
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	Current = t
	return nil
}

// Names returns the available theme names, sorted
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Known reports whether a theme with that name exists
func Known(name string) bool {
	_, ok := themes[name]
	return ok
}

// MaxWidth is the maximum content width for the app (classic terminal width)
const MaxWidth = 80

// ContentWidth returns the actual content width to use (min of terminal width and MaxWidth)
func ContentWidth(terminalWidth int) int {
	if terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

// CenterView wraps content and centers it horizontally if terminal is wider than MaxWidth
func CenterView(content string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= MaxWidth {
		return content
	}
	return lipgloss.Place(terminalWidth, terminalHeight,
		lipgloss.Center, lipgloss.Top,
		content,
	)
}

// Styles holds all the pre-computed styles for the UI
type Styles struct {
	// Header
	Header      lipgloss.Style
	HeaderCount lipgloss.Style

	Title      lipgloss.Style
	TitleMuted lipgloss.Style

	// Lists
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style

	// Task item
	TaskText       lipgloss.Style
	TaskTextDone   lipgloss.Style
	TaskMarker     lipgloss.Style
	TaskMarkerDone lipgloss.Style
	Icon           lipgloss.Style
	IconDisabled   lipgloss.Style

	// Buttons
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	// Dialogs
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Input fields
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Help text
	Help lipgloss.Style
}

// NewStyles creates styles based on the current theme
func NewStyles() *Styles {
	t := Current

	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(t.Header).
			Padding(1, 2).
			Bold(true),

		HeaderCount: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(t.Header),

		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		TitleMuted: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 2),

		ListSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Padding(0, 2).
			Bold(true),

		TaskText: lipgloss.NewStyle().
			Foreground(t.Foreground),

		TaskTextDone: lipgloss.NewStyle().
			Foreground(t.Success).
			Strikethrough(true),

		TaskMarker: lipgloss.NewStyle().
			Foreground(t.Marker),

		TaskMarkerDone: lipgloss.NewStyle().
			Foreground(t.Success).
			Bold(true),

		Icon: lipgloss.NewStyle().
			Foreground(t.Foreground),

		IconDisabled: lipgloss.NewStyle().
			Foreground(t.Border).
			Faint(true),

		Button: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(t.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 2).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Padding(1, 3).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus),

		DialogTitle: lipgloss.NewStyle().
			Foreground(t.Warning).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(1, 2),
	}
}

package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/valter-silva-au/todo/pkg/models"
)

// palette holds the colors of one theme.
type palette struct {
	background     lipgloss.Color
	foreground     lipgloss.Color
	itemBackground lipgloss.Color
	border         lipgloss.Color
	accent         lipgloss.Color
	danger         lipgloss.Color
	muted          lipgloss.Color
}

var (
	lightPalette = palette{
		background:     lipgloss.Color("#F3F4F6"), // gray-100
		foreground:     lipgloss.Color("#1F2937"), // gray-800
		itemBackground: lipgloss.Color("#FFFFFF"),
		border:         lipgloss.Color("#D1D5DB"), // gray-300
		accent:         lipgloss.Color("#3B82F6"), // blue-500
		danger:         lipgloss.Color("#EF4444"), // red-500
		muted:          lipgloss.Color("#6B7280"),
	}

	darkPalette = palette{
		background:     lipgloss.Color("#1F2937"), // gray-800
		foreground:     lipgloss.Color("#FFFFFF"),
		itemBackground: lipgloss.Color("#374151"), // gray-700
		border:         lipgloss.Color("#4B5563"), // gray-600
		accent:         lipgloss.Color("#2563EB"), // blue-600
		danger:         lipgloss.Color("#EF4444"),
		muted:          lipgloss.Color("#9CA3AF"),
	}
)

func paletteFor(theme models.Theme) palette {
	if theme == models.ThemeDark {
		return darkPalette
	}
	return lightPalette
}

// boardStyles are the lipgloss styles of the board for one theme.
type boardStyles struct {
	app          lipgloss.Style
	title        lipgloss.Style
	hint         lipgloss.Style
	input        lipgloss.Style
	inputFocused lipgloss.Style
	item         lipgloss.Style
	selectedItem lipgloss.Style
	taskID       lipgloss.Style
	errorText    lipgloss.Style
	status       lipgloss.Style
	help         lipgloss.Style
}

func newBoardStyles(theme models.Theme) boardStyles {
	p := paletteFor(theme)

	return boardStyles{
		app: lipgloss.NewStyle().
			Background(p.background).
			Foreground(p.foreground).
			Padding(1, 4),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground),
		hint: lipgloss.NewStyle().
			Foreground(p.muted),
		input: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		inputFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),
		item: lipgloss.NewStyle().
			Background(p.itemBackground).
			Foreground(p.foreground).
			Padding(0, 1),
		selectedItem: lipgloss.NewStyle().
			Background(p.itemBackground).
			Foreground(p.accent).
			Bold(true).
			Padding(0, 1),
		taskID: lipgloss.NewStyle().
			Foreground(p.muted),
		errorText: lipgloss.NewStyle().
			Foreground(p.danger).
			Bold(true),
		status: lipgloss.NewStyle().
			Foreground(p.accent),
		help: lipgloss.NewStyle().
			Foreground(p.muted),
	}
}

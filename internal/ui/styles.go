package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	colorDanger  = lipgloss.Color("#FF6B6B") // Red for errors
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorInverse = lipgloss.Color("#FFFFFF")

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorInverse)
)

// theme is the palette for one of the two visual modes
type theme struct {
	title       lipgloss.Style
	card        lipgloss.Style
	searchBox   lipgloss.Style
	temperature lipgloss.Style
	unitActive  lipgloss.Style
	unitIdle    lipgloss.Style
	suggestion  lipgloss.Style
	highlight   lipgloss.Style
}

func newTheme(primary, border lipgloss.Color) theme {
	return theme{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2).
			Width(64),
		searchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Width(64),
		temperature: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			MarginRight(2),
		unitActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorInverse).
			Background(primary).
			Padding(0, 1),
		unitIdle: lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1),
		suggestion: lipgloss.NewStyle().
			Padding(0, 2),
		highlight: lipgloss.NewStyle().
			Foreground(colorInverse).
			Background(border).
			Padding(0, 2),
	}
}

var (
	dayTheme   = newTheme(lipgloss.Color("#00BFFF"), lipgloss.Color("#4A90E2")) // sky blue
	nightTheme = newTheme(lipgloss.Color("#B39DDB"), lipgloss.Color("#5C6BC0")) // lavender / indigo
)

func themeFor(night bool) theme {
	if night {
		return nightTheme
	}
	return dayTheme
}

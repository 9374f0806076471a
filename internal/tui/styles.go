package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles, errors
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - subtitles, prompt
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - input text, tabs
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text, empty fields
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - copied notice
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorLabel     = lipgloss.Color("#a8dadc") // Label color
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBgAlt     = lipgloss.Color("#2d3436") // Alt background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	tabStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 2).
			Margin(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Background(ColorBgAlt).
			Padding(0, 2).
			Margin(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true).
			Width(20)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	emptyStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

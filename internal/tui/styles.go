package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorPrimary = "#FF0033"
	colorText    = "#F8F8F2"
	colorMuted   = "#6272A4"
	colorError   = "#FF5555"
	colorWarning = "#FFB86C"
	colorHelp    = "#626262"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorPrimary)).
			Bold(true).
			MarginBottom(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorMuted)).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color(colorPrimary))

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorText)).
			Bold(true)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorError)).
			Bold(true)

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorWarning)).
			Bold(true)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorHelp)).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorHelp))
)

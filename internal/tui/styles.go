package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.AdaptiveColor{Light: "63", Dark: "99"}
	subtleColor = lipgloss.AdaptiveColor{Light: "245", Dark: "241"}
	dangerColor = lipgloss.Color("203")

	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	helpStyle  = lipgloss.NewStyle().Foreground(subtleColor)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(dangerColor)

	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(1, 2)
)

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	// accentStyle marks offline and locally cached data.
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	noticeStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	noticeFailureStyle = noticeStyle.BorderForeground(lipgloss.Color("9"))
)

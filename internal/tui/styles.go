package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	selectedStyle   = lipgloss.NewStyle().Reverse(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	// toast colours follow the web console: green for success, red for errors.
	toastSuccessStyle = lipgloss.NewStyle().Padding(0, 1).
				Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#138808"))
	toastErrorStyle = lipgloss.NewStyle().Padding(0, 1).
			Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#DC3545"))
)

package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeRegionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("16")).
				Background(lipgloss.Color("220")).
				Padding(0, 1).
				Bold(true)

	inactiveRegionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	dividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

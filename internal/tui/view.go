package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ezauto/internal/constants"
)

var regionTitles = []string{"Page", "FAQ", "Form"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.navbar.View(),
		m.viewport.View(),
		m.statusView(),
	)
}

func (m Model) statusView() string {
	var regions []string
	for i, title := range regionTitles {
		if m.focus == constants.SessionFocus(i) {
			regions = append(regions, activeRegionStyle.Render(title))
		} else {
			regions = append(regions, inactiveRegionStyle.Render(title))
		}
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, regions...),
		m.help.View(m),
	)
}

// Package sections renders the static regions of the page. Every renderer
// prints the strings it is given unmodified.
package sections

import "github.com/charmbracelet/lipgloss"

var (
	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("160")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	checkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true)

	ctaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("220")).
			Bold(true).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	sectionStyle = lipgloss.NewStyle().
			Padding(1, 2)
)

// textWidth returns the usable text width inside a section, or 0 for no wrapping
func textWidth(width int) int {
	if width <= 8 {
		return 0
	}
	return width - 4
}

func wrap(width int) lipgloss.Style {
	s := lipgloss.NewStyle()
	if w := textWidth(width); w > 0 {
		s = s.Width(w)
	}
	return s
}

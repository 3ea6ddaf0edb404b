package sections

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ezauto/internal/models"
)

func Hero(h models.Hero, cta models.NavLink, width int) string {
	var b strings.Builder
	b.WriteString(badgeStyle.Render("● " + h.Badge))
	b.WriteString("\n\n")
	b.WriteString(wrap(width).Inherit(headingStyle).Render(h.Title))
	b.WriteString("\n")
	b.WriteString(accentStyle.Render(h.Highlight))
	b.WriteString("\n\n")
	b.WriteString(wrap(width).Inherit(mutedStyle).Render(h.Subtitle))
	b.WriteString("\n\n")

	var checks []string
	for _, item := range h.Highlights {
		checks = append(checks, checkStyle.Render("✔ ")+item)
	}
	b.WriteString(strings.Join(checks, "   "))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		ctaStyle.Render(cta.Name),
		"   ",
		accentStyle.Render(h.StatValue),
		" ",
		mutedStyle.Render(h.StatLabel),
	))
	return sectionStyle.Render(b.String())
}

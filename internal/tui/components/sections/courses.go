package sections

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ezauto/internal/constants"
	"github.com/julianstephens/ezauto/internal/models"
)

// CourseIcon picks the card glyph for a course code
func CourseIcon(code models.Course) string {
	switch code {
	case models.CourseTDC:
		return "🛡"
	case models.CoursePDC:
		return "🏍"
	default:
		return "•"
	}
}

// Courses renders one card per descriptor, in input order. Cards sit side by
// side on the desktop layout and stack on mobile.
func Courses(intro string, courses []models.CourseDescriptor, layout constants.Layout, width int) string {
	cardWidth := 0
	if w := textWidth(width); w > 0 {
		cardWidth = w
		if layout == constants.LayoutDesktop && len(courses) > 1 {
			cardWidth = w/len(courses) - 1
		}
	}

	cards := make([]string, 0, len(courses))
	for _, c := range courses {
		cards = append(cards, courseCard(c, cardWidth))
	}

	var body string
	if layout == constants.LayoutDesktop {
		body = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	header := headingStyle.Render("Our Courses") + "\n" + wrap(width).Inherit(mutedStyle).Render(intro)
	return sectionStyle.Render(header + "\n\n" + body)
}

func courseCard(c models.CourseDescriptor, width int) string {
	var b strings.Builder
	b.WriteString(CourseIcon(c.Code) + "  " + headingStyle.Render(c.Title))
	b.WriteString("\n\n")
	b.WriteString(c.Description)
	b.WriteString("\n\n")
	for _, p := range c.Points {
		b.WriteString(checkStyle.Render("✔ ") + p + "\n")
	}
	b.WriteString("\n")
	b.WriteString(ctaStyle.Render(c.CTA + " →"))

	style := cardStyle
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(b.String())
}

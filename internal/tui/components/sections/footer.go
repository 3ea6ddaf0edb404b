package sections

import (
	"fmt"
	"strings"

	"github.com/julianstephens/ezauto/internal/models"
)

type FooterContent struct {
	Brand       string
	Tagline     string
	Blurb       string
	Contact     models.ContactInfo
	QuickLinks  []models.NavLink
	OfficeHours []models.OfficeHours
	Year        int
}

func Footer(f FooterContent, width int) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(f.Brand) + " " + mutedStyle.Render(f.Tagline))
	b.WriteString("\n")
	b.WriteString(wrap(width).Inherit(mutedStyle).Render(f.Blurb))
	b.WriteString("\n\n")

	b.WriteString(accentStyle.Render("Quick Links"))
	b.WriteString("\n")
	for _, l := range f.QuickLinks {
		b.WriteString("  " + l.Name + " " + mutedStyle.Render(l.Anchor) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(accentStyle.Render("Contact Us"))
	b.WriteString("\n")
	b.WriteString("  ☎ " + f.Contact.Phone + "  " + linkStyle.Render(f.Contact.DialURL) + "\n")
	b.WriteString("  ✉ " + f.Contact.Email + "\n")
	b.WriteString("  ⌂ " + f.Contact.ShortAddress + "\n")
	b.WriteString("\n")

	b.WriteString(accentStyle.Render("Office Hours"))
	b.WriteString("\n")
	for _, h := range f.OfficeHours {
		b.WriteString(fmt.Sprintf("  %-16s %s\n", h.Days, h.Hours))
	}
	b.WriteString("\n")

	b.WriteString(mutedStyle.Render(fmt.Sprintf("© %d %s %s. All rights reserved.", f.Year, f.Brand, f.Tagline)))
	return sectionStyle.Render(b.String())
}

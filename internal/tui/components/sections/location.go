package sections

import (
	"strings"

	"github.com/julianstephens/ezauto/internal/models"
)

// Location prints the address block and the map targets. A terminal cannot
// embed the map, so the embed URL is printed alongside the other links.
func Location(loc models.LocationInfo, width int) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Visit Our Office"))
	b.WriteString("\n")
	b.WriteString(wrap(width).Inherit(accentStyle).Render(loc.Headline))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Address"))
	b.WriteString("\n")
	b.WriteString(wrap(width).Render(loc.Address))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Office Hours"))
	b.WriteString("\n")
	b.WriteString(loc.Hours)
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(loc.HoursNote))
	b.WriteString("\n\n")
	b.WriteString("Open in Google Maps: " + linkStyle.Render(loc.MapsSearchURL))
	b.WriteString("\n")
	b.WriteString("Get Directions:      " + linkStyle.Render(loc.DirectionsURL))
	b.WriteString("\n")
	b.WriteString("Map:                 " + linkStyle.Render(loc.MapEmbedURL))
	return sectionStyle.Render(b.String())
}

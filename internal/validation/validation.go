package validation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/julianstephens/ezauto/internal/content"
	"github.com/julianstephens/ezauto/internal/models"
)

// ConflictType represents the type of content conflict
type ConflictType string

const (
	ConflictDuplicateFAQID  ConflictType = "duplicate_faq_id"
	ConflictEmptyFAQ        ConflictType = "empty_faq"
	ConflictEmptyCourse     ConflictType = "empty_course"
	ConflictDuplicateCourse ConflictType = "duplicate_course"
	ConflictDuplicateAnchor ConflictType = "duplicate_anchor"
	ConflictInvalidAnchor   ConflictType = "invalid_anchor"
	ConflictInvalidURL      ConflictType = "invalid_url"
)

// Required enrollment field names, in form order
const (
	FieldName   = "name"
	FieldMobile = "mobile"
	FieldCourse = "course"
)

// Conflict represents a detected problem in the static content table
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

func (vr *ValidationResult) add(t ConflictType, desc string, items ...string) {
	vr.Conflicts = append(vr.Conflicts, Conflict{Type: t, Description: desc, Items: items})
}

// ValidationError is returned when required enrollment fields are missing
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Hint implements errors.Hinter
func (e *ValidationError) Hint() string {
	return "full name, mobile number and course are required"
}

// ExitCode implements errors.Coder; a rejected form is a usage error
func (e *ValidationError) ExitCode() int {
	return 2
}

// Missing reports whether field is among the missing fields
func (e *ValidationError) Missing(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// ValidateEnrollment checks the required fields of an enrollment form.
// Only presence is checked; the mobile number format is not.
func ValidateEnrollment(form models.EnrollmentForm) error {
	var missing []string
	if strings.TrimSpace(form.Name) == "" {
		missing = append(missing, FieldName)
	}
	if strings.TrimSpace(form.Mobile) == "" {
		missing = append(missing, FieldMobile)
	}
	if form.Course != models.CourseTDC && form.Course != models.CoursePDC {
		missing = append(missing, FieldCourse)
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// RequiredText is a huh-compatible validator for a required free-text field
func RequiredText(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

// RequiredCourse is a huh-compatible validator for the course select
func RequiredCourse(c models.Course) error {
	if c != models.CourseTDC && c != models.CoursePDC {
		return fmt.Errorf("please choose a course")
	}
	return nil
}

// ValidateContent checks the static page content for conflicts
func ValidateContent(p content.Page) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	seenFAQ := make(map[string]bool)
	for i, f := range p.FAQs {
		if f.ID == "" {
			result.add(ConflictEmptyFAQ, fmt.Sprintf("FAQ #%d has no ID", i+1), f.Question)
		} else if seenFAQ[f.ID] {
			result.add(ConflictDuplicateFAQID, fmt.Sprintf("Duplicate FAQ ID: %q", f.ID), f.ID)
		}
		seenFAQ[f.ID] = true
		if strings.TrimSpace(f.Question) == "" || strings.TrimSpace(f.Answer) == "" {
			result.add(ConflictEmptyFAQ, fmt.Sprintf("FAQ %q is missing its question or answer", f.ID), f.ID)
		}
	}

	seenCourse := make(map[models.Course]bool)
	for i, c := range p.Courses {
		if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.CTA) == "" {
			result.add(ConflictEmptyCourse, fmt.Sprintf("Course #%d is missing its title or call to action", i+1), string(c.Code))
		}
		if seenCourse[c.Code] {
			result.add(ConflictDuplicateCourse, fmt.Sprintf("Duplicate course code: %s", c.Code), string(c.Code))
		}
		seenCourse[c.Code] = true
	}

	seenAnchor := make(map[string]bool)
	for _, l := range p.Nav {
		if !strings.HasPrefix(l.Anchor, "#") || len(l.Anchor) < 2 {
			result.add(ConflictInvalidAnchor, fmt.Sprintf("Nav link %q has invalid anchor %q", l.Name, l.Anchor), l.Name)
		}
		if seenAnchor[l.Anchor] {
			result.add(ConflictDuplicateAnchor, fmt.Sprintf("Duplicate nav anchor: %s", l.Anchor), l.Anchor)
		}
		seenAnchor[l.Anchor] = true
	}

	urls := map[string]string{
		"maps search":     p.Location.MapsSearchURL,
		"maps directions": p.Location.DirectionsURL,
		"map embed":       p.Location.MapEmbedURL,
		"dial link":       p.Contact.DialURL,
	}
	for _, name := range []string{"maps search", "maps directions", "map embed", "dial link"} {
		if err := checkURL(urls[name]); err != nil {
			result.add(ConflictInvalidURL, fmt.Sprintf("Invalid %s URL: %v", name, err), name)
		}
	}

	return result
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	switch u.Scheme {
	case "https", "http":
		if u.Host == "" {
			return fmt.Errorf("missing host in %q", raw)
		}
	case "tel":
		if u.Opaque == "" {
			return fmt.Errorf("missing number in %q", raw)
		}
	default:
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	return nil
}

package models

import (
	"fmt"
	"strings"
)

// Course is the closed set of courses a student can enroll in
type Course string

const (
	CourseUnset Course = ""
	CourseTDC   Course = "TDC"
	CoursePDC   Course = "PDC"
)

// Label returns the human-readable course name used in the form select
func (c Course) Label() string {
	switch c {
	case CourseTDC:
		return "Theoretical Driving Course (TDC)"
	case CoursePDC:
		return "Practical Driving Course (PDC)"
	default:
		return "-- Choose Course --"
	}
}

// ParseCourse parses a course code, case-insensitively. The empty string yields CourseUnset.
func ParseCourse(s string) (Course, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return CourseUnset, nil
	case string(CourseTDC):
		return CourseTDC, nil
	case string(CoursePDC):
		return CoursePDC, nil
	default:
		return CourseUnset, fmt.Errorf("invalid course: %q (want TDC or PDC)", s)
	}
}

// EnrollmentForm holds the enrollment inquiry fields
type EnrollmentForm struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Course   Course `json:"course"`
	Schedule string `json:"schedule"`
	Message  string `json:"message"`
}

// Clear resets every field to its empty/unset default
func (f *EnrollmentForm) Clear() {
	*f = EnrollmentForm{}
}

// IsZero reports whether every field is at its default
func (f EnrollmentForm) IsZero() bool {
	return f == EnrollmentForm{}
}

package models

// NavLink is an in-page navigation target
type NavLink struct {
	Name   string
	Anchor string // e.g. "#courses"
}

// CourseDescriptor describes one course card
type CourseDescriptor struct {
	Code        Course
	Title       string
	Description string
	Points      []string
	CTA         string
}

// FAQItem is a question/answer pair. ID is a stable slug used to key disclosure state.
type FAQItem struct {
	ID       string
	Question string
	Answer   string
}

// LocationInfo is the address, hours and map targets of the school
type LocationInfo struct {
	Headline      string
	Address       string
	Hours         string
	HoursNote     string
	MapsSearchURL string
	DirectionsURL string
	MapEmbedURL   string
}

// ContactInfo holds the outbound contact targets
type ContactInfo struct {
	Phone        string
	DialURL      string // tel: link
	Email        string
	ShortAddress string
}

// OfficeHours is one row of the footer office hours table
type OfficeHours struct {
	Days  string
	Hours string
}

// Hero is the banner copy at the top of the page
type Hero struct {
	Badge      string
	Title      string
	Highlight  string
	Subtitle   string
	Highlights []string
	StatValue  string
	StatLabel  string
}

// Trust is the accreditation block shown beside the FAQ
type Trust struct {
	Label   string
	Title   string
	Body    string
	Badges  []string
	Closing string
}

// Package content holds the fixed copy of the landing page.
package content

import (
	"github.com/julianstephens/ezauto/internal/constants"
	"github.com/julianstephens/ezauto/internal/models"
)

// Page is the complete static content table
type Page struct {
	Brand        string
	Tagline      string
	Category     string
	Nav          []models.NavLink
	CTA          models.NavLink
	Hero         models.Hero
	Courses      []models.CourseDescriptor
	CoursesIntro string
	FAQs         []models.FAQItem
	Location     models.LocationInfo
	Contact      models.ContactInfo
	Trust        models.Trust
	QuickLinks   []models.NavLink
	OfficeHours  []models.OfficeHours
	FooterBlurb  string
	PrivacyNote  string
	Confirmation string
}

// Default returns a fresh copy of the page content. Callers may not share slices across copies.
func Default() Page {
	return Page{
		Brand:    "EZ AUTO",
		Tagline:  "Motorcycle Driving School",
		Category: "Page · Traffic School",
		Nav: []models.NavLink{
			{Name: "Home", Anchor: constants.AnchorHome},
			{Name: "Courses", Anchor: constants.AnchorCourses},
			{Name: "Enroll", Anchor: constants.AnchorEnroll},
			{Name: "Location", Anchor: constants.AnchorLocation},
			{Name: "Contact", Anchor: constants.AnchorContact},
		},
		CTA: models.NavLink{Name: "Enroll Now", Anchor: constants.AnchorEnroll},
		Hero: models.Hero{
			Badge:     "Now Enrolling for Batch 2024",
			Title:     "EZ Auto Motorcycle Driving School",
			Highlight: "East Ave, QC",
			Subtitle:  "Offers the most affordable Theoretical Driving Course (TDC) and Practical Driving Course (PDC) in Quezon City.",
			Highlights: []string{
				"Affordable Rates",
				"DTI/LTO-aligned",
				"Motorcycle Focus",
			},
			StatValue: "100%",
			StatLabel: "Pass Rate",
		},
		CoursesIntro: "We provide comprehensive training modules designed to make you a safer, more responsible rider on the road.",
		Courses: []models.CourseDescriptor{
			{
				Code:        models.CourseTDC,
				Title:       "Theoretical Driving Course (TDC)",
				Description: "Classroom-style foundational road safety and regulations. Ideal for beginners starting their driving journey.",
				Points: []string{
					"LTO-aligned modules (15-hour session)",
					"Flexible morning & afternoon schedules",
					"Official Certificate upon completion",
					"Comprehensive road sign training",
				},
				CTA: "Inquire about TDC",
			},
			{
				Code:        models.CoursePDC,
				Title:       "Practical Driving Course (PDC)",
				Description: "Hands-on motorcycle riding skills focused on technical proficiency and safe maneuvering on the road.",
				Points: []string{
					"Direct skill assessment by experts",
					"Multiple practice session options",
					"Safety equipment guidance included",
					"One-on-one professional coaching",
				},
				CTA: "Inquire about PDC",
			},
		},
		FAQs: []models.FAQItem{
			{
				ID:       "prior-experience",
				Question: "Do I need prior riding experience?",
				Answer:   "Not required for TDC; our instructors provide classroom safety knowledge first. For PDC, we offer guided instruction suitable for various skill levels.",
			},
			{
				ID:       "certificates",
				Question: "Are certificates provided?",
				Answer:   "Yes, we provide the required certificates upon successful completion of your courses, which are valid for LTO licensing requirements.",
			},
			{
				ID:       "scheduling",
				Question: "How do I schedule my sessions?",
				Answer:   "Scheduling is easy! You can use the enrollment form below, message us via SMS, or call us at 0912 937 4825 to secure your preferred slot.",
			},
		},
		Location: models.LocationInfo{
			Headline:      "ADDRESS: 2ND FLOOR PMHA BLDG. EAST AVE. QUEZON CITY.",
			Address:       "PMHA Bldg. 2, Unit 209A, East Avenue, Diliman, Quezon City, Philippines",
			Hours:         "Mon–Sat: 9:00 AM – 6:00 PM",
			HoursNote:     "Closed on Sundays and Public Holidays.",
			MapsSearchURL: "https://www.google.com/maps/search/?api=1&query=PMHA+Building+2+East+Avenue+Diliman+Quezon+City",
			DirectionsURL: "https://www.google.com/maps/dir/?api=1&destination=PMHA+Building+2+East+Avenue+Diliman+Quezon+City",
			MapEmbedURL:   "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3860.31298877549!2d121.04781707510103!3d14.638118085854743!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x3397b7a951c73f33%3A0xe67145781604a8b!2sPhilippine%20Mental%20Health%20Association%2C%20Inc.%20(PMHA)!5e0!3m2!1sen!2sph!4v1709400000000!5m2!1sen!2sph",
		},
		Contact: models.ContactInfo{
			Phone:        "0912 937 4825",
			DialURL:      "tel:09129374825",
			Email:        "info@ezautomoto.example",
			ShortAddress: "PMHA Bldg. 2, East Avenue, QC",
		},
		Trust: models.Trust{
			Label:   "Page · Traffic School",
			Title:   "Trusted Training Facility",
			Body:    "We are a recognized motorcycle training school dedicated to improving road safety across Quezon City and beyond.",
			Badges:  []string{"Accredited Curriculum", "Modern Equipment"},
			Closing: "Still have questions? We're here to help.",
		},
		QuickLinks: []models.NavLink{
			{Name: "Home", Anchor: constants.AnchorHome},
			{Name: "Courses Offered", Anchor: constants.AnchorCourses},
			{Name: "Enroll Today", Anchor: constants.AnchorEnroll},
			{Name: "Find Our Office", Anchor: constants.AnchorLocation},
		},
		OfficeHours: []models.OfficeHours{
			{Days: "Mon–Sat", Hours: "9:00 AM – 6:00 PM"},
			{Days: "Sun / Holidays", Hours: "Closed"},
		},
		FooterBlurb:  "Affordable TDC & PDC in East Ave, QC. Your trusted partner in road safety and motorcycle driving excellence.",
		PrivacyNote:  "Privacy Note: We respect your privacy and only use your details to confirm your enrollment.",
		Confirmation: "We've received your inquiry. Our coordinator will contact you at 0912 937 4825 shortly.",
	}
}

// FAQByID returns the FAQ entry with the given ID
func (p Page) FAQByID(id string) (models.FAQItem, bool) {
	for _, f := range p.FAQs {
		if f.ID == id {
			return f, true
		}
	}
	return models.FAQItem{}, false
}

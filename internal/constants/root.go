package constants

import "time"

// SessionFocus represents which region of the page receives key presses
type SessionFocus int

// Layout represents the responsive layout selected from the terminal width
type Layout int

const (
	AppName            = "ezauto"
	DefaultKeyringUser = "webhook-token"
	DefaultConfigPath  = "~/.config/ezauto/config.yaml"
	Version            = "v0.3.0"

	// ScrollThreshold is the viewport offset (in lines) past which the navbar switches to its solid treatment
	ScrollThreshold = 20

	// MobileBreakpoint is the terminal width below which the collapsed mobile menu is used
	MobileBreakpoint = 80

	// Enrollment lifecycle timings
	SubmitAckDelay      = 1500 * time.Millisecond
	SuccessDisplayDelay = 5000 * time.Millisecond

	// Submission modes
	SubmitModeSimulate = "simulate"
	SubmitModeWebhook  = "webhook"

	DefaultSubmitTimeout = 10 * time.Second

	// Section anchors
	AnchorHome     = "#home"
	AnchorCourses  = "#courses"
	AnchorEnroll   = "#enroll"
	AnchorLocation = "#location"
	AnchorFAQ      = "#faq"
	AnchorContact  = "#contact"
)

// Focus regions, in tab order
const (
	FocusPage SessionFocus = iota
	FocusFAQ
	FocusForm

	// FocusCount is the number of focusable regions cycled with tab
	FocusCount
)

const (
	LayoutDesktop Layout = iota
	LayoutMobile
)

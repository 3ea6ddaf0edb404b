package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ezauto/internal/constants"
	"github.com/julianstephens/ezauto/internal/content"
	"github.com/julianstephens/ezauto/internal/submit"
	"github.com/julianstephens/ezauto/internal/tui/components/enroll"
	"github.com/julianstephens/ezauto/internal/tui/components/faq"
	"github.com/julianstephens/ezauto/internal/tui/components/navbar"
	"github.com/julianstephens/ezauto/internal/tui/components/sections"
)

// SectionNames lists the page sections in display order
var SectionNames = []string{"home", "courses", "enroll", "location", "faq", "contact"}

type Model struct {
	page     content.Page
	keys     KeyMap
	help     help.Model
	viewport viewport.Model
	navbar   navbar.Model
	faq      faq.Model
	enroll   enroll.Model
	focus    constants.SessionFocus
	anchors  map[string]int
	cancel   context.CancelFunc
	year     int
	ready    bool
	quitting bool
	width    int
	height   int
}

func NewModel(page content.Page, s submit.Submitter) Model {
	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		page:    page,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		navbar:  navbar.New(page),
		faq:     faq.New(page.FAQs, page.Trust),
		enroll:  enroll.New(ctx, s, page.Courses, page.Confirmation, page.PrivacyNote),
		focus:   constants.FocusPage,
		anchors: make(map[string]int),
		cancel:  cancel,
		year:    time.Now().Year(),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab}
	switch m.focus {
	case constants.FocusPage:
		keys = append(keys, m.keys.Scroll, m.navbar.Keys.Links, m.navbar.Keys.CTA)
		if m.navbar.Layout() == constants.LayoutMobile {
			keys = append(keys, m.navbar.Keys.Menu)
		}
		keys = append(keys, m.keys.Quit)
	case constants.FocusFAQ:
		keys = append(keys, m.faq.Keys.Up, m.faq.Keys.Toggle, m.keys.Back, m.keys.Quit)
	case constants.FocusForm:
		keys = append(keys, m.enroll.ShortHelp()...)
		keys = append(keys, m.keys.Back, m.keys.ForceQuit)
	}
	return append(keys, m.keys.Help)
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Back, m.keys.Quit, m.keys.Help}
	page := []key.Binding{m.keys.Scroll, m.keys.Page, m.navbar.Keys.Links, m.navbar.Keys.CTA, m.navbar.Keys.Menu}
	regions := []key.Binding{m.faq.Keys.Up, m.faq.Keys.Down, m.faq.Keys.Toggle}
	regions = append(regions, m.enroll.ShortHelp()...)
	return [][]key.Binding{global, page, regions}
}

func (m Model) Init() tea.Cmd {
	return m.enroll.Init()
}

// Focus returns the region receiving keys
func (m Model) Focus() constants.SessionFocus {
	return m.focus
}

// Anchor returns the first viewport line of a section
func (m Model) Anchor(anchor string) (int, bool) {
	line, ok := m.anchors[anchor]
	return line, ok
}

type section struct {
	name   string
	anchor string
	render func() string
}

func (m Model) sections() []section {
	layout := navbar.LayoutFor(m.width)
	return []section{
		{"home", constants.AnchorHome, func() string { return sections.Hero(m.page.Hero, m.page.CTA, m.width) }},
		{"courses", constants.AnchorCourses, func() string {
			return sections.Courses(m.page.CoursesIntro, m.page.Courses, layout, m.width)
		}},
		{"enroll", constants.AnchorEnroll, m.enroll.View},
		{"location", constants.AnchorLocation, func() string { return sections.Location(m.page.Location, m.width) }},
		{"faq", constants.AnchorFAQ, func() string { return lipgloss.NewStyle().Padding(1, 2).Render(m.faq.View()) }},
		{"contact", constants.AnchorContact, func() string {
			return sections.Footer(sections.FooterContent{
				Brand:       m.page.Brand,
				Tagline:     m.page.Tagline,
				Blurb:       m.page.FooterBlurb,
				Contact:     m.page.Contact,
				QuickLinks:  m.page.QuickLinks,
				OfficeHours: m.page.OfficeHours,
				Year:        m.year,
			}, m.width)
		}},
	}
}

func (m Model) divider() string {
	w := m.width
	if w <= 0 {
		w = 40
	}
	return dividerStyle.Render(strings.Repeat("─", w))
}

// renderBody lays out every section and records the line each one starts on
func (m Model) renderBody() (string, map[string]int) {
	anchors := make(map[string]int)
	var parts []string
	line := 0
	for i, s := range m.sections() {
		if i > 0 {
			parts = append(parts, m.divider())
			line++
		}
		out := s.render()
		anchors[s.anchor] = line
		parts = append(parts, out)
		line += lipgloss.Height(out)
	}
	return strings.Join(parts, "\n"), anchors
}

// RenderStatic prints the page, or one named section of it, without a terminal
// program. FAQ answers are all expanded.
func RenderStatic(page content.Page, width int, name string) (string, error) {
	m := NewModel(page, nil)
	defer m.cancel()
	m.width = width
	m.navbar.SetWidth(width)
	m.faq.SetWidth(width)
	m.faq.OpenAll()
	m.enroll.SetWidth(width)
	m.enroll.SetFocused(true)

	if name == "" || name == "all" {
		body, _ := m.renderBody()
		return m.navbar.View() + "\n" + body, nil
	}
	for _, s := range m.sections() {
		if s.name == name {
			return s.render(), nil
		}
	}
	return "", fmt.Errorf("unknown section %q (expected one of: all, %s)", name, strings.Join(SectionNames, ", "))
}

package navbar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ezauto/internal/constants"
	"github.com/julianstephens/ezauto/internal/content"
	"github.com/julianstephens/ezauto/internal/models"
)

var (
	// Top of the page: no background, extra breathing room
	transparentStyle = lipgloss.NewStyle().
				Padding(1, 2)

	// Past the scroll threshold: solid brand bar
	solidStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("160")).
			Foreground(lipgloss.Color("231")).
			Padding(0, 2)

	brandStyle = lipgloss.NewStyle().
			Bold(true)

	taglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	linkStyle = lipgloss.NewStyle().
			Padding(0, 1)

	ctaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("220")).
			Bold(true).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)
)

// Below this width the desktop bar drops the tagline to keep the links on one row
const taglineMinWidth = 110

// State is the navigation bar's own state. It never reads any other region.
type State struct {
	MenuOpen bool
	Scrolled bool
}

// Observe records the current vertical scroll offset
func (s *State) Observe(offset int) {
	s.Scrolled = offset > constants.ScrollThreshold
}

// ToggleMenu flips the mobile menu
func (s *State) ToggleMenu() {
	s.MenuOpen = !s.MenuOpen
}

// Select handles activation of a link and returns the anchor to navigate to.
// On the mobile layout the menu always closes, whatever was selected.
func (s *State) Select(link models.NavLink, layout constants.Layout) string {
	if layout == constants.LayoutMobile {
		s.MenuOpen = false
	}
	return link.Anchor
}

// LayoutFor picks the layout for a terminal width
func LayoutFor(width int) constants.Layout {
	if width < constants.MobileBreakpoint {
		return constants.LayoutMobile
	}
	return constants.LayoutDesktop
}

// NavigateMsg asks the page to jump to an anchor
type NavigateMsg struct {
	Anchor string
}

type KeyMap struct {
	Links key.Binding
	CTA   key.Binding
	Menu  key.Binding
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Links: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-5", "jump to section"),
		),
		CTA: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "enroll now"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
	}
}

type Model struct {
	State
	Keys    KeyMap
	brand   string
	tagline string
	links   []models.NavLink
	cta     models.NavLink
	cursor  int
	width   int
}

func New(page content.Page) Model {
	return Model{
		Keys:    DefaultKeyMap(),
		brand:   page.Brand,
		tagline: page.Tagline,
		links:   page.Nav,
		cta:     page.CTA,
	}
}

func (m *Model) SetWidth(width int) {
	m.width = width
}

func (m Model) Layout() constants.Layout {
	return LayoutFor(m.width)
}

// MenuVisible reports whether the mobile menu is open and on screen
func (m Model) MenuVisible() bool {
	return m.MenuOpen && m.Layout() == constants.LayoutMobile
}

// Cursor returns the highlighted entry of the open mobile menu
func (m Model) Cursor() int {
	return m.cursor
}

// Handles reports whether the key belongs to the navigation bar
func (m Model) Handles(msg tea.KeyMsg) bool {
	if m.MenuVisible() {
		if key.Matches(msg, m.Keys.Up, m.Keys.Down, m.Keys.Enter) {
			return true
		}
	}
	if key.Matches(msg, m.Keys.Menu) {
		return m.Layout() == constants.LayoutMobile
	}
	if key.Matches(msg, m.Keys.CTA) {
		return true
	}
	if key.Matches(msg, m.Keys.Links) {
		_, ok := m.linkForKey(msg)
		return ok
	}
	return false
}

// menuItems is the mobile menu: every link followed by the CTA
func (m Model) menuItems() []models.NavLink {
	items := make([]models.NavLink, 0, len(m.links)+1)
	items = append(items, m.links...)
	return append(items, m.cta)
}

func (m Model) linkForKey(msg tea.KeyMsg) (models.NavLink, bool) {
	n, err := strconv.Atoi(msg.String())
	if err != nil || n < 1 || n > len(m.links) {
		return models.NavLink{}, false
	}
	return m.links[n-1], true
}

func (m *Model) choose(link models.NavLink) tea.Cmd {
	anchor := m.Select(link, m.Layout())
	m.cursor = 0
	return func() tea.Msg {
		return NavigateMsg{Anchor: anchor}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.MenuVisible() {
		items := m.menuItems()
		switch {
		case key.Matches(keyMsg, m.Keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(keyMsg, m.Keys.Down):
			if m.cursor < len(items)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(keyMsg, m.Keys.Enter):
			cmd := m.choose(items[m.cursor])
			return m, cmd
		}
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Menu):
		if m.Layout() == constants.LayoutMobile {
			m.ToggleMenu()
			m.cursor = 0
		}
	case key.Matches(keyMsg, m.Keys.CTA):
		cmd := m.choose(m.cta)
		return m, cmd
	case key.Matches(keyMsg, m.Keys.Links):
		if link, ok := m.linkForKey(keyMsg); ok {
			cmd := m.choose(link)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	style := transparentStyle
	if m.Scrolled {
		style = solidStyle
	}
	if m.width > 0 {
		style = style.Width(m.width)
	}

	brand := brandStyle.Render(m.brand)
	if !m.Scrolled && (m.width == 0 || m.width >= taglineMinWidth || m.Layout() == constants.LayoutMobile) {
		brand = lipgloss.JoinHorizontal(lipgloss.Top, brand, " ", taglineStyle.Render(m.tagline))
	}

	if m.Layout() == constants.LayoutDesktop {
		var row []string
		for i, l := range m.links {
			row = append(row, linkStyle.Render(fmt.Sprintf("%d %s", i+1, l.Name)))
		}
		row = append(row, " ", ctaStyle.Render(m.cta.Name))
		bar := lipgloss.JoinHorizontal(lipgloss.Top, brand, "   ", lipgloss.JoinHorizontal(lipgloss.Top, row...))
		return style.Render(bar)
	}

	toggle := "[m] Menu"
	if m.MenuOpen {
		toggle = "[m] Close"
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, brand, "  ", toggle)
	if !m.MenuOpen {
		return style.Render(bar)
	}

	var b strings.Builder
	b.WriteString(bar)
	b.WriteString("\n")
	for i, item := range m.menuItems() {
		label := item.Name
		if i == len(m.links) {
			label = ctaStyle.Render(item.Name)
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> ") + label)
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

package faq

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ezauto/internal/models"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("160")).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	questionStyle = lipgloss.NewStyle().
			Bold(true)

	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			PaddingLeft(4)

	closingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true).
			MarginTop(1)
)

// Disclosure tracks which entries are expanded, keyed by entry ID.
// Entries are independent: opening one never closes another.
type Disclosure struct {
	open map[string]bool
}

func NewDisclosure() Disclosure {
	return Disclosure{open: make(map[string]bool)}
}

// Toggle flips the entry with the given ID and no other
func (d *Disclosure) Toggle(id string) {
	if d.open == nil {
		d.open = make(map[string]bool)
	}
	if d.open[id] {
		delete(d.open, id)
		return
	}
	d.open[id] = true
}

func (d Disclosure) IsOpen(id string) bool {
	return d.open[id]
}

// OpenIDs returns the expanded entry IDs in sorted order
func (d Disclosure) OpenIDs() []string {
	ids := make([]string, 0, len(d.open))
	for id := range d.open {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev question"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next question"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "expand/collapse"),
		),
	}
}

type Model struct {
	Disclosure
	Keys    KeyMap
	items   []models.FAQItem
	trust   models.Trust
	cursor  int
	focused bool
	width   int
}

func New(items []models.FAQItem, trust models.Trust) Model {
	return Model{
		Disclosure: NewDisclosure(),
		Keys:       DefaultKeyMap(),
		items:      items,
		trust:      trust,
	}
}

func (m *Model) SetWidth(width int) {
	m.width = width
}

func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// OpenAll expands every entry, used for non-interactive rendering
func (m *Model) OpenAll() {
	for _, item := range m.items {
		if !m.IsOpen(item.ID) {
			m.Toggle(item.ID)
		}
	}
}

func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.Keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.Keys.Toggle):
		m.Toggle(m.items[m.cursor].ID)
	}
	return m, nil
}

func (m Model) View() string {
	wrap := lipgloss.NewStyle()
	if m.width > 8 {
		wrap = wrap.Width(m.width - 4)
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(strings.ToUpper(m.trust.Label)))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(m.trust.Title))
	b.WriteString("\n")
	b.WriteString(wrap.Render(m.trust.Body))
	b.WriteString("\n")
	for _, badge := range m.trust.Badges {
		b.WriteString(badgeStyle.Render("✔ " + badge))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		marker := "▸"
		if m.IsOpen(item.ID) {
			marker = "▾"
		}
		line := marker + " " + item.Question
		if m.focused && i == m.cursor {
			b.WriteString(focusedStyle.Render(line))
		} else {
			b.WriteString(questionStyle.Render(line))
		}
		b.WriteString("\n")

		// A closed entry has no answer in the output at all
		if m.IsOpen(item.ID) {
			answer := answerStyle
			if m.width > 8 {
				answer = answer.Width(m.width - 4)
			}
			b.WriteString(answer.Render(item.Answer))
			b.WriteString("\n")
		}
	}

	b.WriteString(closingStyle.Render(m.trust.Closing))
	return b.String()
}

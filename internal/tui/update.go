package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ezauto/internal/constants"
	"github.com/julianstephens/ezauto/internal/logger"
	"github.com/julianstephens/ezauto/internal/tui/components/navbar"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.navbar.SetWidth(msg.Width)
		m.faq.SetWidth(msg.Width)
		m.enroll.SetWidth(msg.Width)
		m.help.Width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height)
			m.viewport.MouseWheelEnabled = true
			m.ready = true
		}
		m.refresh()
		return m, nil

	case navbar.NavigateMsg:
		m.jumpTo(msg.Anchor)
		if msg.Anchor == constants.AnchorEnroll {
			m.setFocus(constants.FocusForm)
		}
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.observe()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Form internals, submission results and timers belong to the enrollment section
	var cmd tea.Cmd
	m.enroll, cmd = m.enroll.Update(msg)
	m.refresh()
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	// The form receives every other key, including tab to move between fields
	if m.focus == constants.FocusForm {
		if key.Matches(msg, m.keys.Back) {
			m.setFocus(constants.FocusPage)
			return m, nil
		}
		var cmd tea.Cmd
		m.enroll, cmd = m.enroll.Update(msg)
		m.refresh()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		m.setFocus((m.focus + 1) % constants.FocusCount)
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.setFocus((m.focus + constants.FocusCount - 1) % constants.FocusCount)
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.setFocus(constants.FocusPage)
		return m, nil
	}

	if m.navbar.Handles(msg) {
		var cmd tea.Cmd
		m.navbar, cmd = m.navbar.Update(msg)
		m.layout()
		return m, cmd
	}

	if m.focus == constants.FocusFAQ {
		m.faq, _ = m.faq.Update(msg)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.observe()
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	// Abandon any in-flight submission
	m.cancel()
	logger.Debug("Quitting", "focus", m.focus)
	return m, tea.Quit
}

func (m *Model) setFocus(f constants.SessionFocus) {
	m.focus = f
	m.faq.SetFocused(f == constants.FocusFAQ)
	m.enroll.SetFocused(f == constants.FocusForm)
	m.refresh()

	switch f {
	case constants.FocusFAQ:
		m.jumpTo(constants.AnchorFAQ)
	case constants.FocusForm:
		m.jumpTo(constants.AnchorEnroll)
	}
}

func (m *Model) jumpTo(anchor string) {
	line, ok := m.anchors[anchor]
	if !ok || !m.ready {
		return
	}
	m.viewport.SetYOffset(line)
	m.observe()
}

// refresh re-renders the page into the viewport
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	body, anchors := m.renderBody()
	m.anchors = anchors
	m.layout()
	m.viewport.SetContent(body)
	m.observe()
}

// observe hands the scroll offset to the navigation bar. It runs after every
// viewport change.
func (m *Model) observe() {
	m.navbar.Observe(m.viewport.YOffset)
	m.layout()
}

// layout sizes the viewport to the space between the navbar and the help line
func (m *Model) layout() {
	if !m.ready {
		return
	}
	h := m.height - lipgloss.Height(m.navbar.View()) - lipgloss.Height(m.statusView())
	if h < 1 {
		h = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
}

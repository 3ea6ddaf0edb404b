package enroll

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ezauto/internal/constants"
	"github.com/julianstephens/ezauto/internal/enrollment"
	"github.com/julianstephens/ezauto/internal/logger"
	"github.com/julianstephens/ezauto/internal/models"
	"github.com/julianstephens/ezauto/internal/submit"
	"github.com/julianstephens/ezauto/internal/validation"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	busyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Background(lipgloss.Color("236")).
			Padding(0, 2)

	successStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(1, 2)

	successTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)

	failedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(1, 2)
)

// SubmitResolvedMsg carries the outcome of the submission scheduled at Gen
type SubmitResolvedMsg struct {
	Gen     uint64
	Receipt submit.Receipt
	Err     error
}

// SuccessExpiredMsg ends the confirmation shown since Gen
type SuccessExpiredMsg struct {
	Gen uint64
}

type KeyMap struct {
	SendAnother key.Binding
	Retry       key.Binding
	Edit        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		SendAnother: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "send another inquiry"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit details"),
		),
	}
}

type Model struct {
	Keys         KeyMap
	machine      *enrollment.Machine
	submitter    submit.Submitter
	ctx          context.Context
	form         *huh.Form
	courses      []models.CourseDescriptor
	confirmation string
	privacy      string
	formError    string
	focused      bool
	width        int
}

// New builds the enrollment section. ctx bounds every in-flight submission.
func New(ctx context.Context, s submit.Submitter, courses []models.CourseDescriptor, confirmation, privacy string) Model {
	m := Model{
		Keys:         DefaultKeyMap(),
		machine:      enrollment.New(),
		submitter:    s,
		ctx:          ctx,
		courses:      courses,
		confirmation: confirmation,
		privacy:      privacy,
	}
	m.form = m.newForm()
	return m
}

// Machine exposes the underlying state machine
func (m Model) Machine() *enrollment.Machine {
	return m.machine
}

func (m *Model) SetWidth(width int) {
	m.width = width
	if m.form != nil && width > 8 {
		m.form = m.form.WithWidth(width - 4)
	}
}

func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// newForm binds a fresh form to the machine's fields. Values already entered are kept.
func (m *Model) newForm() *huh.Form {
	fm := &m.machine.Form

	options := []huh.Option[models.Course]{huh.NewOption(models.CourseUnset.Label(), models.CourseUnset)}
	for _, c := range m.courses {
		options = append(options, huh.NewOption(c.Title, c.Code))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full Name").
				Placeholder("Juan Dela Cruz").
				Value(&fm.Name).
				Validate(validation.RequiredText("Full name")),
			huh.NewInput().
				Title("Mobile Number").
				Placeholder("09XX XXX XXXX").
				Value(&fm.Mobile).
				Validate(validation.RequiredText("Mobile number")),
			huh.NewSelect[models.Course]().
				Title("Select Course").
				Options(options...).
				Value(&fm.Course).
				Validate(validation.RequiredCourse),
			huh.NewInput().
				Title("Preferred Schedule").
				Placeholder("e.g. Weekends, Morning").
				Value(&fm.Schedule),
			huh.NewText().
				Title("Message (Optional)").
				Placeholder("Any specific questions?").
				Lines(3).
				Value(&fm.Message),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(false)

	if m.width > 8 {
		form = form.WithWidth(m.width - 4)
	}
	return form
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// resetForm rebuilds the form after leaving a non-editable phase
func (m *Model) resetForm() tea.Cmd {
	m.form = m.newForm()
	return m.form.Init()
}

// submitForm hands the current fields to the state machine and starts the
// submitter. Missing fields keep the form as it is.
func (m *Model) submitForm() tea.Cmd {
	ticket, err := m.machine.Submit()
	if err != nil {
		var ve *validation.ValidationError
		if errors.As(err, &ve) {
			m.formError = ve.Error()
		} else {
			m.formError = err.Error()
		}
		return m.resetForm()
	}
	m.formError = ""
	logger.Info("Enrollment submitted", "reference", ticket.Request.ID, "course", ticket.Request.Form.Course)

	ctx, s := m.ctx, m.submitter
	return func() tea.Msg {
		receipt, err := s.Submit(ctx, ticket.Request)
		return SubmitResolvedMsg{Gen: ticket.Gen, Receipt: receipt, Err: err}
	}
}

func expireAfter(gen uint64) tea.Cmd {
	return tea.Tick(constants.SuccessDisplayDelay, func(time.Time) tea.Msg {
		return SuccessExpiredMsg{Gen: gen}
	})
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SubmitResolvedMsg:
		if !m.machine.Resolve(msg.Gen, msg.Receipt.ID, msg.Err) {
			logger.Debug("Dropping stale submission result", "gen", msg.Gen)
			return m, nil
		}
		if m.machine.IsSuccess() {
			logger.Info("Enrollment accepted", "reference", msg.Receipt.ID)
			return m, expireAfter(m.machine.Gen())
		}
		logger.Warn("Enrollment failed", "error", msg.Err)
		return m, nil

	case SuccessExpiredMsg:
		if m.machine.Expire(msg.Gen) {
			return m, m.resetForm()
		}
		return m, nil

	case tea.KeyMsg:
		switch m.machine.Phase() {
		case enrollment.PhaseSubmitting:
			return m, nil
		case enrollment.PhaseSuccess:
			if key.Matches(msg, m.Keys.SendAnother) && m.machine.SendAnother() {
				return m, m.resetForm()
			}
			return m, nil
		case enrollment.PhaseFailed:
			switch {
			case key.Matches(msg, m.Keys.Retry):
				if m.machine.Retry() {
					return m, m.submitForm()
				}
			case key.Matches(msg, m.Keys.Edit):
				if m.machine.Retry() {
					return m, m.resetForm()
				}
			}
			return m, nil
		}
	}

	if !m.machine.Editable() {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m, tea.Batch(cmd, m.submitForm())
	case huh.StateAborted:
		return m, tea.Batch(cmd, m.resetForm())
	}
	return m, cmd
}

// ShortHelp lists the keys that apply to the current phase
func (m Model) ShortHelp() []key.Binding {
	switch m.machine.Phase() {
	case enrollment.PhaseSuccess:
		return []key.Binding{m.Keys.SendAnother}
	case enrollment.PhaseFailed:
		return []key.Binding{m.Keys.Retry, m.Keys.Edit}
	}
	return nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Enroll Today"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Fill out the form and our coordinator will reach out to confirm your slot."))
	b.WriteString("\n\n")

	switch m.machine.Phase() {
	case enrollment.PhaseSubmitting:
		b.WriteString(m.viewSubmitting())
	case enrollment.PhaseSuccess:
		b.WriteString(m.viewSuccess())
	case enrollment.PhaseFailed:
		b.WriteString(m.viewFailed())
	default:
		b.WriteString(m.viewForm())
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m Model) viewForm() string {
	var b strings.Builder
	if m.formError != "" {
		b.WriteString(errorStyle.Render(m.formError))
		b.WriteString("\n\n")
	}
	if !m.focused {
		b.WriteString(hintStyle.Render("Press tab to fill out the form."))
		b.WriteString("\n\n")
	}
	b.WriteString(m.form.View())
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(m.privacy))
	return b.String()
}

func (m Model) viewSubmitting() string {
	fm := m.machine.Form
	var b strings.Builder
	b.WriteString(mutedStyle.Render("Full Name:       ") + fm.Name + "\n")
	b.WriteString(mutedStyle.Render("Mobile Number:   ") + fm.Mobile + "\n")
	b.WriteString(mutedStyle.Render("Course:          ") + fm.Course.Label() + "\n")
	if fm.Schedule != "" {
		b.WriteString(mutedStyle.Render("Schedule:        ") + fm.Schedule + "\n")
	}
	b.WriteString("\n")
	b.WriteString(busyStyle.Render("⏳ Processing..."))
	return b.String()
}

func (m Model) viewSuccess() string {
	var b strings.Builder
	b.WriteString(successTitleStyle.Render("✔ Enrollment Sent!"))
	b.WriteString("\n\n")
	b.WriteString(m.confirmation)
	if ref := m.machine.LastReference(); ref != "" {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Reference: " + ref))
	}
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("[n] Send another inquiry"))
	return successStyle.Render(b.String())
}

func (m Model) viewFailed() string {
	var b strings.Builder
	b.WriteString(errorStyle.Render("✘ Enrollment could not be sent"))
	b.WriteString("\n\n")
	if se := m.machine.LastError(); se != nil {
		b.WriteString(se.Error())
		if hint := se.Hint(); hint != "" {
			b.WriteString("\n")
			b.WriteString(hintStyle.Render(hint))
		}
	}
	b.WriteString("\n\n")
	b.WriteString("[r] Retry   [e] Edit details")
	return failedStyle.Render(b.String())
}

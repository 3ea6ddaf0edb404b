// Package enrollment implements the enrollment form lifecycle:
//
//	Idle -> Submitting -> Success -> Idle
//	             \-> Failed -> Idle
//
// Every transition advances a generation counter. Deferred events (submission
// results, the success display timeout) carry the generation that was current
// when they were scheduled and are dropped when it no longer matches, which is
// how pending timers are cancelled.
package enrollment

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/ezauto/internal/models"
	"github.com/julianstephens/ezauto/internal/validation"
)

// Phase is the current state of the enrollment lifecycle
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSuccess
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSuccess:
		return "success"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Request is the payload handed to a submitter
type Request struct {
	ID          string
	Form        models.EnrollmentForm
	SubmittedAt time.Time
}

// Ticket identifies an accepted submission
type Ticket struct {
	Gen     uint64
	Request Request
}

// Machine owns the enrollment form fields and the submission phase.
// It is not safe for concurrent use; all calls are expected from a single event loop.
type Machine struct {
	Form models.EnrollmentForm

	phase   Phase
	gen     uint64
	lastErr *SubmissionError
	lastID  string
	now     func() time.Time
	newID   func() string
}

// New returns a Machine in the Idle phase with an empty form
func New() *Machine {
	return &Machine{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Phase returns the current phase
func (m *Machine) Phase() Phase { return m.phase }

// Gen returns the current generation
func (m *Machine) Gen() uint64 { return m.gen }

// IsSubmitting reports whether a submission is in flight (submit control disabled)
func (m *Machine) IsSubmitting() bool { return m.phase == PhaseSubmitting }

// IsSuccess reports whether the confirmation is being displayed
func (m *Machine) IsSuccess() bool { return m.phase == PhaseSuccess }

// Editable reports whether the form fields accept edits
func (m *Machine) Editable() bool { return m.phase == PhaseIdle }

// LastError returns the error of the most recent failed submission, if the machine is in PhaseFailed
func (m *Machine) LastError() *SubmissionError {
	if m.phase != PhaseFailed {
		return nil
	}
	return m.lastErr
}

// LastReference returns the request ID of the most recent accepted submission
func (m *Machine) LastReference() string { return m.lastID }

func (m *Machine) transition(to Phase) {
	m.phase = to
	m.gen++
}

// Submit accepts the current form for submission. Missing required fields
// leave the machine Idle with every field unchanged.
func (m *Machine) Submit() (Ticket, error) {
	if m.phase != PhaseIdle {
		return Ticket{}, ErrNotIdle
	}
	if err := validation.ValidateEnrollment(m.Form); err != nil {
		return Ticket{}, err
	}

	req := Request{
		ID:          m.newID(),
		Form:        m.Form,
		SubmittedAt: m.now(),
	}
	m.lastErr = nil
	m.transition(PhaseSubmitting)
	return Ticket{Gen: m.gen, Request: req}, nil
}

// Resolve completes the submission identified by gen. A nil err moves to
// Success and clears the form; otherwise the machine moves to Failed and keeps
// the fields so the user need not re-type them. Returns false if gen is stale.
func (m *Machine) Resolve(gen uint64, ref string, err error) bool {
	if m.phase != PhaseSubmitting || gen != m.gen {
		return false
	}
	if err != nil {
		m.lastErr = AsSubmissionError(err)
		m.transition(PhaseFailed)
		return true
	}
	m.lastID = ref
	m.Form.Clear()
	m.transition(PhaseSuccess)
	return true
}

// Expire ends the confirmation display scheduled at gen. Returns false if the
// user already left the Success phase.
func (m *Machine) Expire(gen uint64) bool {
	if m.phase != PhaseSuccess || gen != m.gen {
		return false
	}
	m.transition(PhaseIdle)
	return true
}

// SendAnother leaves the confirmation immediately. Any pending Expire for the
// previous generation becomes a no-op.
func (m *Machine) SendAnother() bool {
	if m.phase != PhaseSuccess {
		return false
	}
	m.transition(PhaseIdle)
	return true
}

// Retry returns from Failed to Idle with the entered fields intact.
// There is no automatic resubmission.
func (m *Machine) Retry() bool {
	if m.phase != PhaseFailed {
		return false
	}
	m.lastErr = nil
	m.transition(PhaseIdle)
	return true
}

package enrollment

import (
	"errors"
	"testing"

	"github.com/julianstephens/ezauto/internal/models"
	"github.com/julianstephens/ezauto/internal/validation"
)

func validForm() models.EnrollmentForm {
	return models.EnrollmentForm{
		Name:   "Juana Dela Cruz",
		Mobile: "0912 345 6789",
		Course: models.CourseTDC,
	}
}

func newTestMachine() *Machine {
	m := New()
	m.newID = func() string { return "ref-1" }
	return m
}

func assertExclusive(t *testing.T, m *Machine) {
	t.Helper()
	if m.IsSubmitting() && m.IsSuccess() {
		t.Fatalf("IsSubmitting and IsSuccess both true in phase %s", m.Phase())
	}
}

func TestMachine_InitialState(t *testing.T) {
	m := New()
	if m.Phase() != PhaseIdle {
		t.Errorf("Phase() = %s, want idle", m.Phase())
	}
	if !m.Editable() {
		t.Error("new machine should be editable")
	}
	if !m.Form.IsZero() {
		t.Errorf("new form should be empty, got %+v", m.Form)
	}
}

func TestMachine_SubmitRejectsMissingFields(t *testing.T) {
	forms := []models.EnrollmentForm{
		{},
		{Name: "Juana Dela Cruz", Mobile: "0912 345 6789"},
		{Name: "Juana Dela Cruz", Course: models.CoursePDC, Schedule: "Weekends"},
		{Mobile: "0912 345 6789", Course: models.CourseTDC, Message: "Hello"},
	}

	for _, f := range forms {
		m := newTestMachine()
		m.Form = f
		gen := m.Gen()

		_, err := m.Submit()

		var verr *validation.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Submit(%+v) error = %v, want ValidationError", f, err)
		}
		if m.Phase() != PhaseIdle {
			t.Errorf("Phase() = %s after rejected submit, want idle", m.Phase())
		}
		if m.Gen() != gen {
			t.Errorf("generation advanced on rejected submit")
		}
		if m.Form != f {
			t.Errorf("form changed on rejected submit: got %+v, want %+v", m.Form, f)
		}
	}
}

func TestMachine_ValidSubmissionLifecycle(t *testing.T) {
	m := newTestMachine()
	m.Form = validForm()

	ticket, err := m.Submit()
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if m.Phase() != PhaseSubmitting || !m.IsSubmitting() {
		t.Fatalf("Phase() = %s, want submitting", m.Phase())
	}
	if m.Editable() {
		t.Error("form should not be editable while submitting")
	}
	if ticket.Request.Form != validForm() {
		t.Errorf("ticket carries %+v, want %+v", ticket.Request.Form, validForm())
	}
	if ticket.Request.ID != "ref-1" {
		t.Errorf("ticket ID = %q, want ref-1", ticket.Request.ID)
	}
	assertExclusive(t, m)

	// submit control disabled: a second submit is refused
	if _, err := m.Submit(); !errors.Is(err, ErrNotIdle) {
		t.Errorf("second Submit() error = %v, want ErrNotIdle", err)
	}

	if !m.Resolve(ticket.Gen, ticket.Request.ID, nil) {
		t.Fatal("Resolve() returned false for current generation")
	}
	if m.Phase() != PhaseSuccess || !m.IsSuccess() {
		t.Fatalf("Phase() = %s, want success", m.Phase())
	}
	if !m.Form.IsZero() {
		t.Errorf("form not cleared on success: %+v", m.Form)
	}
	if m.LastReference() != "ref-1" {
		t.Errorf("LastReference() = %q", m.LastReference())
	}
	assertExclusive(t, m)

	if !m.Expire(m.Gen()) {
		t.Fatal("Expire() returned false for current generation")
	}
	if m.Phase() != PhaseIdle {
		t.Errorf("Phase() = %s after expiry, want idle", m.Phase())
	}
}

func TestMachine_SendAnotherCancelsPendingExpiry(t *testing.T) {
	m := newTestMachine()
	m.Form = validForm()
	ticket, _ := m.Submit()
	m.Resolve(ticket.Gen, ticket.Request.ID, nil)

	decayGen := m.Gen()

	if !m.SendAnother() {
		t.Fatal("SendAnother() returned false in success phase")
	}
	if m.Phase() != PhaseIdle {
		t.Fatalf("Phase() = %s, want idle", m.Phase())
	}

	genAfterReset := m.Gen()
	if m.Expire(decayGen) {
		t.Error("stale Expire() fired after SendAnother")
	}
	if m.Gen() != genAfterReset || m.Phase() != PhaseIdle {
		t.Error("stale Expire() changed state")
	}
}

func TestMachine_StaleExpiryDoesNotEndNewConfirmation(t *testing.T) {
	m := newTestMachine()

	m.Form = validForm()
	first, _ := m.Submit()
	m.Resolve(first.Gen, "a", nil)
	firstDecay := m.Gen()
	m.SendAnother()

	m.Form = validForm()
	second, _ := m.Submit()
	m.Resolve(second.Gen, "b", nil)

	if m.Expire(firstDecay) {
		t.Fatal("decay timer from first confirmation ended the second one")
	}
	if !m.IsSuccess() {
		t.Errorf("Phase() = %s, want success", m.Phase())
	}
}

func TestMachine_ResolveStaleGeneration(t *testing.T) {
	m := newTestMachine()
	m.Form = validForm()
	ticket, _ := m.Submit()

	if m.Resolve(ticket.Gen+1, "x", nil) {
		t.Error("Resolve() accepted a generation that was never issued")
	}
	if m.Phase() != PhaseSubmitting {
		t.Errorf("Phase() = %s, want submitting", m.Phase())
	}
}

func TestMachine_FailurePreservesFields(t *testing.T) {
	m := newTestMachine()
	m.Form = validForm()
	m.Form.Message = "Weekend slots please"
	entered := m.Form

	ticket, _ := m.Submit()
	m.Resolve(ticket.Gen, ticket.Request.ID, errors.New("connection refused"))

	if m.Phase() != PhaseFailed {
		t.Fatalf("Phase() = %s, want failed", m.Phase())
	}
	if m.Form != entered {
		t.Errorf("form changed on failure: got %+v, want %+v", m.Form, entered)
	}
	se := m.LastError()
	if se == nil || se.Err == nil || se.Err.Error() != "connection refused" {
		t.Errorf("LastError() = %v", se)
	}
	assertExclusive(t, m)

	// no automatic retry: the phase stays Failed until asked
	if _, err := m.Submit(); !errors.Is(err, ErrNotIdle) {
		t.Errorf("Submit() from failed = %v, want ErrNotIdle", err)
	}

	if !m.Retry() {
		t.Fatal("Retry() returned false in failed phase")
	}
	if m.Phase() != PhaseIdle || m.Form != entered {
		t.Errorf("after Retry: phase %s form %+v", m.Phase(), m.Form)
	}
	if m.LastError() != nil {
		t.Error("LastError() should be nil outside the failed phase")
	}
}

func TestMachine_TransitionsOutsidePhaseAreNoops(t *testing.T) {
	m := newTestMachine()

	if m.SendAnother() {
		t.Error("SendAnother() from idle returned true")
	}
	if m.Retry() {
		t.Error("Retry() from idle returned true")
	}
	if m.Expire(m.Gen()) {
		t.Error("Expire() from idle returned true")
	}
	if m.Resolve(m.Gen(), "x", nil) {
		t.Error("Resolve() from idle returned true")
	}
	if m.Phase() != PhaseIdle || m.Gen() != 0 {
		t.Errorf("no-op calls changed state: phase %s gen %d", m.Phase(), m.Gen())
	}
}

func TestSubmissionError(t *testing.T) {
	base := errors.New("dial tcp: refused")
	se := AsSubmissionError(base)
	if !errors.Is(se, base) {
		t.Error("SubmissionError should unwrap to its cause")
	}
	if AsSubmissionError(se) != se {
		t.Error("AsSubmissionError should return an existing SubmissionError unchanged")
	}
	if AsSubmissionError(nil) != nil {
		t.Error("AsSubmissionError(nil) should be nil")
	}

	rejected := &SubmissionError{Status: 422}
	if rejected.Error() != "submission rejected with status 422" {
		t.Errorf("Error() = %q", rejected.Error())
	}
	if rejected.Hint() == se.Hint() {
		t.Error("rejection and transport failure should carry different hints")
	}
}

package enrollment

import (
	"errors"
	"fmt"
)

// ErrNotIdle is returned when a submission is attempted outside the Idle phase
var ErrNotIdle = errors.New("enrollment form is not accepting submissions")

// SubmissionError wraps a failed submission: a transport failure (Err set) or a
// rejection by the receiving endpoint (Status set).
type SubmissionError struct {
	Status int
	Err    error
}

func (e *SubmissionError) Error() string {
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("submission rejected with status %d: %v", e.Status, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("submission rejected with status %d", e.Status)
	case e.Err != nil:
		return fmt.Sprintf("submission failed: %v", e.Err)
	default:
		return "submission failed"
	}
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// Hint implements errors.Hinter
func (e *SubmissionError) Hint() string {
	if e.Status != 0 {
		return "the enrollment endpoint refused the request; check submit.webhook_url and the keyring token"
	}
	return "your details were kept; try again in a moment"
}

// AsSubmissionError normalizes err into a *SubmissionError
func AsSubmissionError(err error) *SubmissionError {
	if err == nil {
		return nil
	}
	var se *SubmissionError
	if errors.As(err, &se) {
		return se
	}
	return &SubmissionError{Err: err}
}

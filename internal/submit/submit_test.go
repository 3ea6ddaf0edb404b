package submit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julianstephens/ezauto/internal/config"
	"github.com/julianstephens/ezauto/internal/constants"
	"github.com/julianstephens/ezauto/internal/enrollment"
	"github.com/julianstephens/ezauto/internal/models"
)

func testRequest() enrollment.Request {
	return enrollment.Request{
		ID: "3f1c9a52-0000-4000-8000-000000000001",
		Form: models.EnrollmentForm{
			Name:     "Juana Dela Cruz",
			Mobile:   "0912 345 6789",
			Course:   models.CourseTDC,
			Schedule: "Weekends",
		},
		SubmittedAt: time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestSimulated_Succeeds(t *testing.T) {
	s := NewSimulated(5 * time.Millisecond)

	receipt, err := s.Submit(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if receipt.ID != testRequest().ID {
		t.Errorf("receipt ID = %q, want %q", receipt.ID, testRequest().ID)
	}
	if receipt.AcceptedAt.IsZero() {
		t.Error("receipt AcceptedAt not set")
	}
}

func TestSimulated_WaitsForDelay(t *testing.T) {
	s := NewSimulated(30 * time.Millisecond)

	start := time.Now()
	if _, err := s.Submit(context.Background(), testRequest()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("Submit() returned after %s, want at least 30ms", elapsed)
	}
}

func TestSimulated_Cancelled(t *testing.T) {
	s := NewSimulated(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Submit(ctx, testRequest())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Submit() error = %v, want context.Canceled", err)
	}
}

func TestWebhook_Success(t *testing.T) {
	var got WebhookPayload
	var gotAuth, gotRequestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	wh := NewWebhook(server.URL, time.Second, func() (string, error) { return "tok123", nil })

	receipt, err := wh.Submit(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if receipt.ID != testRequest().ID {
		t.Errorf("receipt ID = %q", receipt.ID)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want Bearer tok123", gotAuth)
	}
	if gotRequestID != testRequest().ID {
		t.Errorf("X-Request-ID = %q", gotRequestID)
	}
	if got.Name != "Juana Dela Cruz" || got.Mobile != "0912 345 6789" || got.Course != "TDC" || got.Schedule != "Weekends" || got.Message != "" {
		t.Errorf("payload = %+v", got)
	}
	if !got.SubmittedAt.Equal(testRequest().SubmittedAt) {
		t.Errorf("submitted_at = %s", got.SubmittedAt)
	}
}

func TestWebhook_NoTokenOmitsAuthorization(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	wh := NewWebhook(server.URL, time.Second, func() (string, error) { return "", nil })
	if _, err := wh.Submit(context.Background(), testRequest()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestWebhook_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("mobile number already enrolled"))
	}))
	defer server.Close()

	wh := NewWebhook(server.URL, time.Second, nil)
	_, err := wh.Submit(context.Background(), testRequest())

	var se *enrollment.SubmissionError
	if !errors.As(err, &se) {
		t.Fatalf("Submit() error = %v, want SubmissionError", err)
	}
	if se.Status != http.StatusUnprocessableEntity {
		t.Errorf("Status = %d, want 422", se.Status)
	}
	if se.Err == nil || se.Err.Error() != "mobile number already enrolled" {
		t.Errorf("Err = %v", se.Err)
	}
}

func TestWebhook_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	wh := NewWebhook(url, time.Second, nil)
	_, err := wh.Submit(context.Background(), testRequest())

	var se *enrollment.SubmissionError
	if !errors.As(err, &se) {
		t.Fatalf("Submit() error = %v, want SubmissionError", err)
	}
	if se.Status != 0 || se.Err == nil {
		t.Errorf("transport failure should set Err only, got %+v", se)
	}
}

func TestWebhook_TokenError(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	wh := NewWebhook(server.URL, time.Second, func() (string, error) {
		return "", errors.New("keyring locked")
	})
	_, err := wh.Submit(context.Background(), testRequest())

	var se *enrollment.SubmissionError
	if !errors.As(err, &se) {
		t.Fatalf("Submit() error = %v, want SubmissionError", err)
	}
	if called {
		t.Error("request should not be sent when the token cannot be read")
	}
}

func TestNew(t *testing.T) {
	s, err := New(config.SubmitConfig{Mode: constants.SubmitModeSimulate}, nil)
	if err != nil {
		t.Fatalf("New(simulate) error = %v", err)
	}
	sim, ok := s.(*Simulated)
	if !ok {
		t.Fatalf("New(simulate) = %T, want *Simulated", s)
	}
	if sim.Delay != constants.SubmitAckDelay {
		t.Errorf("Delay = %s, want %s", sim.Delay, constants.SubmitAckDelay)
	}

	s, err = New(config.SubmitConfig{Mode: constants.SubmitModeWebhook, WebhookURL: "https://example.com/hook", Timeout: time.Second}, nil)
	if err != nil {
		t.Fatalf("New(webhook) error = %v", err)
	}
	if Describe(s) != "webhook https://example.com/hook" {
		t.Errorf("Describe() = %q", Describe(s))
	}

	if _, err := New(config.SubmitConfig{Mode: "fax"}, nil); err == nil {
		t.Error("New(fax) should fail")
	}
}

package submit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/julianstephens/ezauto/internal/constants"
	"github.com/julianstephens/ezauto/internal/enrollment"
	"github.com/julianstephens/ezauto/internal/logger"
)

// WebhookPayload is the JSON body posted for each enrollment
type WebhookPayload struct {
	Reference   string    `json:"reference"`
	Name        string    `json:"name"`
	Mobile      string    `json:"mobile"`
	Course      string    `json:"course"`
	Schedule    string    `json:"schedule"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Webhook posts enrollments to an HTTP endpoint. Any 2xx response is an acknowledgment.
type Webhook struct {
	URL    string
	client *resty.Client
	token  TokenFunc
}

func NewWebhook(url string, timeout time.Duration, token TokenFunc) *Webhook {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", constants.AppName+"/"+constants.Version)
	return &Webhook{URL: url, client: client, token: token}
}

func (w *Webhook) Submit(ctx context.Context, req enrollment.Request) (Receipt, error) {
	payload := WebhookPayload{
		Reference:   req.ID,
		Name:        strings.TrimSpace(req.Form.Name),
		Mobile:      strings.TrimSpace(req.Form.Mobile),
		Course:      string(req.Form.Course),
		Schedule:    strings.TrimSpace(req.Form.Schedule),
		Message:     strings.TrimSpace(req.Form.Message),
		SubmittedAt: req.SubmittedAt.UTC(),
	}

	r := w.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", req.ID).
		SetBody(payload)

	if w.token != nil {
		token, err := w.token()
		if err != nil {
			return Receipt{}, &enrollment.SubmissionError{Err: fmt.Errorf("failed to read webhook token: %w", err)}
		}
		if token != "" {
			r.SetAuthToken(token)
		}
	}

	res, err := r.Post(w.URL)
	if err != nil {
		logger.Warn("Enrollment webhook unreachable", "reference", req.ID, "error", err)
		return Receipt{}, &enrollment.SubmissionError{Err: err}
	}

	if !res.IsSuccess() {
		body := strings.TrimSpace(res.String())
		logger.Warn("Enrollment webhook rejected request", "reference", req.ID, "status", res.StatusCode())
		se := &enrollment.SubmissionError{Status: res.StatusCode()}
		if body != "" {
			se.Err = errors.New(truncate(body, 200))
		}
		return Receipt{}, se
	}

	logger.Info("Enrollment acknowledged", "reference", req.ID, "course", payload.Course, "mode", "webhook")
	return Receipt{ID: req.ID, AcceptedAt: time.Now()}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

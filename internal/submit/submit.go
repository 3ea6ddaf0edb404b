// Package submit provides the enrollment submission capability: it accepts
// the five form fields and eventually resolves success or failure.
package submit

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/ezauto/internal/config"
	"github.com/julianstephens/ezauto/internal/constants"
	"github.com/julianstephens/ezauto/internal/enrollment"
)

// Receipt acknowledges an accepted submission. It carries no payload from the receiver.
type Receipt struct {
	ID         string
	AcceptedAt time.Time
}

// Submitter delivers an enrollment request
type Submitter interface {
	Submit(ctx context.Context, req enrollment.Request) (Receipt, error)
}

// TokenFunc returns the bearer token for the webhook, or "" for none
type TokenFunc func() (string, error)

// New returns the submitter selected by cfg
func New(cfg config.SubmitConfig, token TokenFunc) (Submitter, error) {
	switch cfg.Mode {
	case "", constants.SubmitModeSimulate:
		return NewSimulated(constants.SubmitAckDelay), nil
	case constants.SubmitModeWebhook:
		return NewWebhook(cfg.WebhookURL, cfg.Timeout, token), nil
	default:
		return nil, fmt.Errorf("unknown submit mode %q", cfg.Mode)
	}
}

// Describe returns a short human-readable description of a submitter
func Describe(s Submitter) string {
	switch v := s.(type) {
	case *Simulated:
		return fmt.Sprintf("simulated (%s acknowledgment)", v.Delay)
	case *Webhook:
		return "webhook " + v.URL
	default:
		return fmt.Sprintf("%T", s)
	}
}

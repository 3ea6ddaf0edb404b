package submit

import (
	"context"
	"time"

	"github.com/julianstephens/ezauto/internal/enrollment"
	"github.com/julianstephens/ezauto/internal/logger"
)

// Simulated acknowledges every request after a fixed delay without any network round-trip
type Simulated struct {
	Delay time.Duration
}

func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{Delay: delay}
}

// Submit waits for Delay and succeeds. Cancelling ctx abandons the wait.
func (s *Simulated) Submit(ctx context.Context, req enrollment.Request) (Receipt, error) {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		logger.Debug("Simulated submission cancelled", "reference", req.ID)
		return Receipt{}, ctx.Err()
	case <-timer.C:
	}

	logger.Info("Enrollment acknowledged", "reference", req.ID, "course", req.Form.Course, "mode", "simulate")
	return Receipt{ID: req.ID, AcceptedAt: time.Now()}, nil
}

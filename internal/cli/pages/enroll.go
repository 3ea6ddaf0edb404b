package pages

import (
	"context"
	"fmt"

	"github.com/julianstephens/ezauto/internal/cli"
	"github.com/julianstephens/ezauto/internal/constants"
	"github.com/julianstephens/ezauto/internal/enrollment"
	"github.com/julianstephens/ezauto/internal/logger"
	"github.com/julianstephens/ezauto/internal/models"
)

// EnrollCmd sends one enrollment inquiry through the same lifecycle as the form
type EnrollCmd struct {
	Name     string `help:"Full name."`
	Mobile   string `help:"Mobile number."`
	Course   string `help:"Course code (TDC or PDC)."`
	Schedule string `help:"Preferred schedule, e.g. 'Weekends, Morning'."`
	Message  string `help:"Optional message for the coordinator."`
}

func (c *EnrollCmd) Run(ctx *cli.Context) error {
	course, err := models.ParseCourse(c.Course)
	if err != nil {
		return err
	}

	m := enrollment.New()
	m.Form = models.EnrollmentForm{
		Name:     c.Name,
		Mobile:   c.Mobile,
		Course:   course,
		Schedule: c.Schedule,
		Message:  c.Message,
	}

	ticket, err := m.Submit()
	if err != nil {
		return err
	}
	logger.Info("Enrollment submitted", "reference", ticket.Request.ID, "course", course)
	fmt.Println("Processing...")

	timeout := constants.SubmitAckDelay + constants.DefaultSubmitTimeout
	if ctx.Config != nil && ctx.Config.Submit.Timeout > 0 {
		timeout = constants.SubmitAckDelay + ctx.Config.Submit.Timeout
	}
	sctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	receipt, err := ctx.Submitter.Submit(sctx, ticket.Request)
	m.Resolve(ticket.Gen, receipt.ID, err)

	if m.Phase() == enrollment.PhaseFailed {
		logger.Warn("Enrollment failed", "reference", ticket.Request.ID, "error", err)
		return m.LastError()
	}

	fmt.Println("✓ Enrollment Sent!")
	fmt.Println(ctx.Page.Confirmation)
	fmt.Printf("Reference: %s\n", m.LastReference())
	return nil
}

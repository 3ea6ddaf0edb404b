package cli

import (
	"github.com/julianstephens/ezauto/internal/config"
	"github.com/julianstephens/ezauto/internal/content"
	"github.com/julianstephens/ezauto/internal/keyring"
	"github.com/julianstephens/ezauto/internal/submit"
)

type Context struct {
	Config    *config.Config
	Page      content.Page
	Submitter submit.Submitter
}

// NewContext wires the submitter selected by cfg. The webhook token is read
// from the OS keyring on every submission.
func NewContext(cfg *config.Config) (*Context, error) {
	s, err := submit.New(cfg.Submit, keyring.OptionalWebhookToken)
	if err != nil {
		return nil, err
	}
	return &Context{
		Config:    cfg,
		Page:      content.Default(),
		Submitter: s,
	}, nil
}

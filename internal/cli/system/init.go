package system

import (
	"fmt"

	"github.com/julianstephens/ezauto/internal/cli"
	"github.com/julianstephens/ezauto/internal/config"
)

type InitCmd struct {
	Force bool `help:"Overwrite an existing config file."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	path := ctx.Config.Path
	if err := config.WriteDefault(path, c.Force); err != nil {
		return err
	}
	fmt.Printf("Wrote default config to: %s\n", path)
	return nil
}

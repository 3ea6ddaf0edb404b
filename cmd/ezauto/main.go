package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/ezauto/internal/cli"
	"github.com/julianstephens/ezauto/internal/cli/pages"
	"github.com/julianstephens/ezauto/internal/cli/system"
	"github.com/julianstephens/ezauto/internal/config"
	"github.com/julianstephens/ezauto/internal/constants"
	"github.com/julianstephens/ezauto/internal/errors"
	"github.com/julianstephens/ezauto/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Tui     system.TuiCmd    `cmd:"" help:"Launch the interactive landing page." default:"1"`
	Page    pages.PageCmd    `cmd:"" help:"Print the landing page without the interactive program."`
	Enroll  pages.EnrollCmd  `cmd:"" help:"Send an enrollment inquiry."`
	Init    system.InitCmd   `cmd:"" help:"Write a default config file."`
	Doctor  system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the webhook token in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored webhook token (masked)."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Delete the stored webhook token."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check OS keyring availability." default:"1"`
	} `cmd:"" help:"Manage the webhook token in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("EZ Auto Motorcycle Driving School landing page for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	// The alt-screen program owns the terminal, so debug output goes to the log file only
	quiet := ctx.Selected() == nil || ctx.Selected().Name == "tui"
	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: cfg.Dir, Quiet: quiet}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}
	logger.Debug("Loaded config", "path", cfg.Path, "submit_mode", cfg.Submit.Mode)

	appCtx, err := cli.NewContext(cfg)
	if err != nil {
		errors.Fatal(err)
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

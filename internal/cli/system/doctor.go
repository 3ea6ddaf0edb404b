package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/ezauto/internal/cli"
	"github.com/julianstephens/ezauto/internal/config"
	"github.com/julianstephens/ezauto/internal/constants"
	"github.com/julianstephens/ezauto/internal/keyring"
	"github.com/julianstephens/ezauto/internal/submit"
	"github.com/julianstephens/ezauto/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: Config readable
	if err := checkConfig(ctx); err != nil {
		fmt.Printf("❌ Config: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Config: OK\n")
	}

	// Check 2: Log directory writable
	if err := checkLogDir(ctx); err != nil {
		fmt.Printf("❌ Log directory: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Log directory: OK\n")
	}

	// Check 3: Page content
	if err := checkContent(ctx); err != nil {
		fmt.Printf("❌ Page content: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Page content: OK\n")
	}

	// Check 4: Submitter
	fmt.Printf("✓ Submitter: %s\n", submit.Describe(ctx.Submitter))

	// Check 5: Webhook token (webhook mode only, warning only)
	if ctx.Config.Submit.Mode == constants.SubmitModeWebhook {
		if err := checkWebhookToken(); err != nil {
			fmt.Printf("⚠ Webhook token: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Webhook token: OK\n")
		}
	} else {
		fmt.Printf("⊘ Webhook token: SKIPPED (submit.mode is %s)\n", ctx.Config.Submit.Mode)
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkConfig(ctx *cli.Context) error {
	if ctx.Config == nil {
		return errors.New("no configuration loaded")
	}
	if _, err := os.Stat(ctx.Config.Path); err == nil {
		if _, err := config.Load(ctx.Config.Path); err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to access config: %w", err)
	}
	return ctx.Config.Validate()
}

func checkLogDir(ctx *cli.Context) error {
	dir := filepath.Join(ctx.Config.Dir, "logs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("log directory not writable: %w", err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

func checkContent(ctx *cli.Context) error {
	result := validation.ValidateContent(ctx.Page)
	if result.HasConflicts() {
		return fmt.Errorf("found %d content issue(s)\n%s", len(result.Conflicts), result.FormatReport())
	}
	return nil
}

func checkWebhookToken() error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	token, err := keyring.OptionalWebhookToken()
	if err != nil {
		return err
	}
	if token == "" {
		return errors.New("no webhook token stored; requests will be sent without Authorization. Use 'ezauto keyring set' to store one")
	}
	return nil
}

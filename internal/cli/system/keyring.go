package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/ezauto/internal/cli"
	"github.com/julianstephens/ezauto/internal/keyring"
)

// KeyringSetCmd stores the webhook bearer token in the OS keyring
type KeyringSetCmd struct {
	Token string `arg:"" help:"Bearer token sent with webhook submissions."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetWebhookToken(cmd.Token); err != nil {
		return err
	}
	fmt.Println("✓ Webhook token stored successfully in OS keyring")
	return nil
}

// KeyringGetCmd shows the stored webhook token, masked
type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	token, err := keyring.GetWebhookToken()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no webhook token found in keyring. Use 'ezauto keyring set' to store one")
		}
		return fmt.Errorf("failed to retrieve webhook token from keyring: %w", err)
	}

	fmt.Println("Webhook token retrieved from keyring:")
	fmt.Println(keyring.Mask(token))
	return nil
}

// KeyringDeleteCmd removes the webhook token from the OS keyring
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteWebhookToken(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no webhook token found in keyring")
		}
		return err
	}
	fmt.Println("✓ Webhook token deleted from OS keyring")
	return nil
}

// KeyringStatusCmd checks the availability of the OS keyring
type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		fmt.Println("❌ OS keyring is not available on this system")
		return errors.New("keyring unavailable")
	}
	fmt.Println("✓ OS keyring is available")

	_, err := keyring.GetWebhookToken()
	switch {
	case err == nil:
		fmt.Println("✓ Webhook token is stored in keyring")
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Println("ℹ No webhook token stored in keyring")
	default:
		return err
	}
	return nil
}

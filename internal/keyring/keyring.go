package keyring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/ezauto/internal/constants"
)

var (
	// ErrNotFound is returned when no webhook token is stored in the keyring
	ErrNotFound = errors.New("webhook token not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetWebhookToken retrieves the enrollment webhook bearer token from the OS keyring.
// Returns ErrNotFound if no token is stored.
func GetWebhookToken() (string, error) {
	token, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return token, nil
}

// SetWebhookToken stores the enrollment webhook bearer token in the OS keyring.
func SetWebhookToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("webhook token cannot be empty")
	}
	if strings.ContainsAny(token, " \t\r\n") {
		return errors.New("webhook token cannot contain whitespace")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, token); err != nil {
		return fmt.Errorf("failed to store webhook token in keyring: %w", err)
	}
	return nil
}

// DeleteWebhookToken removes the webhook token from the OS keyring.
func DeleteWebhookToken() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete webhook token from keyring: %w", err)
	}
	return nil
}

// OptionalWebhookToken returns the stored token, or "" when none is stored.
// Keyring failures other than a missing entry are returned.
func OptionalWebhookToken() (string, error) {
	token, err := GetWebhookToken()
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return token, err
}

// Mask hides all but the last four characters of a token for display
func Mask(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-4) + token[len(token)-4:]
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

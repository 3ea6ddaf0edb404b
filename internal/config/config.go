package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/julianstephens/ezauto/internal/constants"
)

// Config is the runtime configuration of ezauto
type Config struct {
	Path   string
	Dir    string
	Debug  bool
	Submit SubmitConfig
}

// SubmitConfig selects and tunes the enrollment submitter
type SubmitConfig struct {
	Mode       string
	WebhookURL string
	Timeout    time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("submit.mode", constants.SubmitModeSimulate)
	v.SetDefault("submit.webhook_url", "")
	v.SetDefault("submit.timeout", constants.DefaultSubmitTimeout.String())
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(strings.ToUpper(constants.AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Load reads the config file at path, applying EZAUTO_* environment overrides.
// A missing file is not an error; defaults are used.
func Load(path string) (*Config, error) {
	v := newViper(path)

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to access config %s: %w", path, err)
	}

	timeout, err := time.ParseDuration(v.GetString("submit.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid submit.timeout %q: %w", v.GetString("submit.timeout"), err)
	}

	cfg := &Config{
		Path:  path,
		Dir:   filepath.Dir(path),
		Debug: v.GetBool("debug"),
		Submit: SubmitConfig{
			Mode:       strings.ToLower(strings.TrimSpace(v.GetString("submit.mode"))),
			WebhookURL: strings.TrimSpace(v.GetString("submit.webhook_url")),
			Timeout:    timeout,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the submit settings for consistency
func (c *Config) Validate() error {
	switch c.Submit.Mode {
	case constants.SubmitModeSimulate:
	case constants.SubmitModeWebhook:
		if c.Submit.WebhookURL == "" {
			return errors.New("submit.webhook_url is required when submit.mode is webhook")
		}
		u, err := url.Parse(c.Submit.WebhookURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("submit.webhook_url must be an http(s) URL, got %q", c.Submit.WebhookURL)
		}
	default:
		return fmt.Errorf("invalid submit.mode %q (want %s or %s)", c.Submit.Mode, constants.SubmitModeSimulate, constants.SubmitModeWebhook)
	}
	if c.Submit.Timeout <= 0 {
		return fmt.Errorf("submit.timeout must be positive, got %s", c.Submit.Timeout)
	}
	return nil
}

// WriteDefault writes a config file containing the default settings.
// An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(path)
	if force {
		return v.WriteConfigAs(path)
	}
	if err := v.SafeWriteConfigAs(path); err != nil {
		var exists viper.ConfigFileAlreadyExistsError
		if errors.As(err, &exists) {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
		}
		return err
	}
	return nil
}

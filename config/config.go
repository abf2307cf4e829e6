// Package config resolves client settings from defaults, an optional
// certreg.yaml config file, and CERTREG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/certsource/certreg/signing"
)

const envPrefix = "CERTREG"

// Config is the resolved client configuration.
type Config struct {
	// GatewayURL is the REST gateway base URL. Only the http scheme is
	// supported.
	GatewayURL string
	// KeyDir holds the signing key files.
	KeyDir string
	// KeyName selects the key file pair used when no --key flag is
	// given.
	KeyName string
	// PollInterval is the pause between polls of a pending submission.
	PollInterval time.Duration
	// MaxPollAttempts bounds polling. Zero polls until a terminal
	// status.
	MaxPollAttempts int
}

// Load resolves the configuration. Precedence, highest first:
// environment (CERTREG_GATEWAY_URL and friends), certreg.yaml in the
// working directory or ~/.certreg, then built-in defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("gateway_url", "http://localhost:9009")
	v.SetDefault("key_dir", signing.DefaultKeyDir())
	v.SetDefault("key_name", "default")
	v.SetDefault("poll_interval", "3s")
	v.SetDefault("max_poll_attempts", 0)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigName("certreg")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.certreg")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		GatewayURL:      v.GetString("gateway_url"),
		KeyDir:          v.GetString("key_dir"),
		KeyName:         v.GetString("key_name"),
		PollInterval:    v.GetDuration("poll_interval"),
		MaxPollAttempts: v.GetInt("max_poll_attempts"),
	}
	if cfg.PollInterval <= 0 {
		return nil, fmt.Errorf("poll_interval must be positive, got %s", cfg.PollInterval)
	}
	if cfg.MaxPollAttempts < 0 {
		return nil, fmt.Errorf("max_poll_attempts must be zero or positive, got %d", cfg.MaxPollAttempts)
	}
	return cfg, nil
}

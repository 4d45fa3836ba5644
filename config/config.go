package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/lunebank/plaid-go/plaid"
)

// Load loads the configuration from file and environment variables.
// A missing config file is not an error as long as the credentials
// arrive via the environment.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Credentials from the environment override the file.
	v.BindEnv("plaid.client_id", plaid.EnvClientID)
	v.BindEnv("plaid.secret", plaid.EnvSecret)
	v.BindEnv("plaid.environment", plaid.EnvEnvironment)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".plaidctl"))
		}

		// Check /etc
		v.AddConfigPath("/etc/plaidctl/")
	}

	if err := v.ReadInConfig(); err != nil {
		// When searching standard locations, not finding a file is fine;
		// the environment may carry everything. An explicitly given path
		// must exist.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("plaid.environment", "sandbox")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Plaid.ClientID == "" {
		return fmt.Errorf("plaid.client_id is required")
	}

	if cfg.Plaid.Secret == "" || cfg.Plaid.Secret == "your-secret-here" {
		return fmt.Errorf("plaid.secret must be set to a valid secret")
	}

	if _, err := plaid.ParseEnvironment(cfg.Plaid.Environment); err != nil {
		return err
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// Environment parses the configured Plaid environment.
func (c *Config) Environment() (plaid.Environment, error) {
	return plaid.ParseEnvironment(c.Plaid.Environment)
}

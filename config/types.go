package config

// Config represents the complete configuration structure
type Config struct {
	Plaid   PlaidConfig   `mapstructure:"plaid"`
	Filters FilterConfig  `mapstructure:"filters"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// PlaidConfig holds API credentials and the environment to talk to.
// Each field can also be supplied via the PLAID_CLIENT_ID, PLAID_SECRET
// and PLAID_ENVIRONMENT environment variables, which take precedence
// over the config file.
type PlaidConfig struct {
	ClientID    string `mapstructure:"client_id"`
	Secret      string `mapstructure:"secret"`
	Environment string `mapstructure:"environment"`
}

// FilterConfig contains named transaction filter expressions
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lunebank/plaid-go/config"
	"github.com/lunebank/plaid-go/plaid"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *plaid.Client

	appVersion   = "dev"
	appBuildTime = "unknown"

	// Command flags
	accessToken string
	filterExpr  string
	preset      string
	outputJSON  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "plaidctl",
	Short: "Inspect accounts, transactions and Items through the Plaid API",
	Long: `plaidctl is a CLI for exploring data behind a Plaid Item: accounts and
balances, transactions (with expression filters), institutions, link
tokens and sandbox test Items.

Credentials come from PLAID_CLIENT_ID, PLAID_SECRET and
PLAID_ENVIRONMENT, a .env file, or a config file.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build version for the version and update
// commands.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("plaidctl {{.Version}} (built %s)\n", buildTime))
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&accessToken, "access-token", "t", "", "access token of the Item to operate on (or PLAID_ACCESS_TOKEN)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "print raw JSON instead of formatted output")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	env, err := cfg.Environment()
	if err != nil {
		return err
	}

	client, err = plaid.NewClient(cfg.Plaid.ClientID, cfg.Plaid.Secret, env,
		plaid.WithLogger(logger),
		plaid.WithUserAgent("plaidctl/"+appVersion),
	)
	if err != nil {
		return fmt.Errorf("failed to create Plaid client: %w", err)
	}

	logger.Debug().Str("environment", string(env)).Msg("Plaid client ready")

	if accessToken == "" {
		accessToken = os.Getenv("PLAID_ACCESS_TOKEN")
	}

	return nil
}

// requireAccessToken guards commands that operate on an Item.
func requireAccessToken() error {
	if accessToken == "" {
		return fmt.Errorf("an access token is required: pass --access-token or set PLAID_ACCESS_TOKEN")
	}
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format. Color only when enabled and stderr is a terminal.
	useColor := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, bool, error) {
	// Priority: command line filter > preset
	if filterExpr != "" {
		return filterExpr, true, nil
	}

	if preset != "" {
		if expression, ok := cfg.Filters[preset]; ok {
			return expression, true, nil
		}
		return "", false, fmt.Errorf("preset '%s' not found in config", preset)
	}

	return "", false, nil
}

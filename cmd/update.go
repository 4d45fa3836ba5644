package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const githubRepo = "lunebank/plaid-go"

var checkOnly bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update plaidctl to the latest release",
	// No API credentials needed to update the binary.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
		return nil
	},
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only check whether a newer release exists")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	current, err := semver.ParseTolerant(appVersion)
	if err != nil {
		return fmt.Errorf("cannot update a development build (version %q)", appVersion)
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(githubRepo))
	if err != nil {
		return fmt.Errorf("checking for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", githubRepo)
	}

	if latest.LessOrEqual(current.String()) {
		fmt.Printf("plaidctl %s is up to date\n", appVersion)
		return nil
	}

	if checkOnly {
		fmt.Printf("plaidctl %s is available (current: %s)\n", latest.Version(), appVersion)
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating executable: %w", err)
	}

	logger.Info().Str("version", latest.Version()).Msg("downloading update")
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("updating binary: %w", err)
	}

	fmt.Printf("Updated to plaidctl %s\n", latest.Version())
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	sandboxInstitution string
	sandboxProducts    []string
)

var sandboxCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "Sandbox-only helpers for test Items",
}

// sandboxSeedCmd creates a sandbox Item end to end: it mints a
// public_token for a test institution and exchanges it for an access
// token, skipping the Link flow entirely.
var sandboxSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a test Item and print its access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		created, err := client.CreateSandboxPublicToken(ctx, sandboxInstitution, sandboxProducts)
		if err != nil {
			return err
		}
		logger.Debug().Str("institution", sandboxInstitution).Msg("public token created")

		exchanged, err := client.ExchangePublicToken(ctx, created.PublicToken)
		if err != nil {
			return err
		}

		fmt.Printf("Access token: %s\n", exchanged.AccessToken)
		fmt.Printf("Item ID:      %s\n", exchanged.ItemID)
		return nil
	},
}

var sandboxResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Force the Item into the ITEM_LOGIN_REQUIRED error state",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAccessToken(); err != nil {
			return err
		}

		if _, err := client.ResetSandboxItem(cmd.Context(), accessToken); err != nil {
			return err
		}

		logger.Info().Msg("Item login reset, it now requires update mode")
		return nil
	},
}

var sandboxWebhookCmd = &cobra.Command{
	Use:   "fire-webhook [code]",
	Short: "Fire a test webhook for the Item",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAccessToken(); err != nil {
			return err
		}

		code := "DEFAULT_UPDATE"
		if len(args) > 0 {
			code = args[0]
		}

		resp, err := client.FireWebhook(cmd.Context(), accessToken, code)
		if err != nil {
			return err
		}

		if resp.WebhookFired {
			logger.Info().Str("code", code).Msg("webhook fired")
		} else {
			logger.Warn().Str("code", code).Msg("webhook was not fired")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sandboxCmd)
	sandboxCmd.AddCommand(sandboxSeedCmd)
	sandboxCmd.AddCommand(sandboxResetCmd)
	sandboxCmd.AddCommand(sandboxWebhookCmd)

	sandboxSeedCmd.Flags().StringVar(&sandboxInstitution, "institution", "ins_109508", "sandbox institution ID")
	sandboxSeedCmd.Flags().StringSliceVar(&sandboxProducts, "product", []string{"transactions"}, "initial products for the Item")
}

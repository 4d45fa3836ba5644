package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lunebank/plaid-go/plaid"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Inspect and manage the linked Item",
}

var itemGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the Item's status",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAccessToken(); err != nil {
			return err
		}

		resp, err := client.GetItem(cmd.Context(), accessToken)
		if err != nil {
			return err
		}

		if outputJSON {
			return json.NewEncoder(os.Stdout).Encode(resp)
		}

		printItem(resp.Item, resp.Status)
		return nil
	},
}

var itemRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the Item and invalidate its access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAccessToken(); err != nil {
			return err
		}

		if _, err := client.RemoveItem(cmd.Context(), accessToken); err != nil {
			return err
		}

		logger.Info().Msg("Item removed, access token is no longer valid")
		return nil
	},
}

var itemWebhookCmd = &cobra.Command{
	Use:   "webhook <url>",
	Short: "Update the Item's webhook URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAccessToken(); err != nil {
			return err
		}

		resp, err := client.UpdateItemWebhook(cmd.Context(), accessToken, args[0])
		if err != nil {
			return err
		}

		if resp.Item.Webhook != nil {
			logger.Info().Str("webhook", *resp.Item.Webhook).Msg("webhook updated")
		}
		return nil
	},
}

var itemExchangeCmd = &cobra.Command{
	Use:   "exchange <public-token>",
	Short: "Exchange a Link public token for an access token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.ExchangePublicToken(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Access token: %s\n", resp.AccessToken)
		fmt.Printf("Item ID:      %s\n", resp.ItemID)
		return nil
	},
}

var itemRotateCmd = &cobra.Command{
	Use:   "rotate",
	Short: "Rotate the access token, invalidating the current one",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAccessToken(); err != nil {
			return err
		}

		resp, err := client.InvalidateAccessToken(cmd.Context(), accessToken)
		if err != nil {
			return err
		}

		fmt.Printf("New access token: %s\n", resp.NewAccessToken)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(itemCmd)
	itemCmd.AddCommand(itemGetCmd)
	itemCmd.AddCommand(itemRemoveCmd)
	itemCmd.AddCommand(itemWebhookCmd)
	itemCmd.AddCommand(itemExchangeCmd)
	itemCmd.AddCommand(itemRotateCmd)
}

func printItem(item plaid.Item, status *plaid.ItemStatus) {
	fmt.Printf("Item %s\n", item.ItemID)
	if item.InstitutionID != nil {
		fmt.Printf("  Institution: %s\n", *item.InstitutionID)
	}
	if item.Webhook != nil && *item.Webhook != "" {
		fmt.Printf("  Webhook: %s\n", *item.Webhook)
	}
	fmt.Printf("  Billed products: %s\n", strings.Join(item.BilledProducts, ", "))
	fmt.Printf("  Available products: %s\n", strings.Join(item.AvailableProducts, ", "))
	if item.Error != nil {
		fmt.Printf("  Error: %s (%s)\n", item.Error.ErrorCode, item.Error.ErrorMessage)
	}

	if status == nil {
		return
	}
	if status.Transactions != nil && status.Transactions.LastSuccessfulUpdate != nil {
		fmt.Printf("  Last transactions update: %s\n",
			status.Transactions.LastSuccessfulUpdate.Format(time.RFC3339))
	}
	if status.LastWebhook != nil && status.LastWebhook.SentAt != nil {
		code := ""
		if status.LastWebhook.CodeSent != nil {
			code = *status.LastWebhook.CodeSent
		}
		fmt.Printf("  Last webhook: %s at %s\n", code,
			status.LastWebhook.SentAt.Format(time.RFC3339))
	}
}

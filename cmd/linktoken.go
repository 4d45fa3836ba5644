package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lunebank/plaid-go/plaid"
)

var (
	linkUserID     string
	linkClientName string
	linkProducts   []string
	linkCountries  []string
	linkLanguage   string
	linkWebhook    string
	linkRedirect   string
)

var linkTokenCmd = &cobra.Command{
	Use:   "link-token",
	Short: "Create a link_token for initializing Plaid Link",
	Long: `Create a link_token, the parameter a frontend needs to open
Plaid Link. Link hands back a public_token; exchange it for an access
token with 'plaidctl sandbox seed' or your own backend.`,
	RunE: runLinkToken,
}

func init() {
	rootCmd.AddCommand(linkTokenCmd)

	linkTokenCmd.Flags().StringVar(&linkUserID, "user-id", "", "unique ID for the end user (required)")
	linkTokenCmd.Flags().StringVar(&linkClientName, "client-name", "plaidctl", "application name shown in Link")
	linkTokenCmd.Flags().StringSliceVar(&linkProducts, "product", []string{"transactions"}, "products to initialize Link for")
	linkTokenCmd.Flags().StringSliceVar(&linkCountries, "country", []string{"US"}, "country codes")
	linkTokenCmd.Flags().StringVar(&linkLanguage, "language", "en", "language Link is displayed in")
	linkTokenCmd.Flags().StringVar(&linkWebhook, "webhook", "", "webhook URL for the created Item")
	linkTokenCmd.Flags().StringVar(&linkRedirect, "redirect-uri", "", "OAuth redirect URI")

	_ = linkTokenCmd.MarkFlagRequired("user-id")
}

func runLinkToken(cmd *cobra.Command, args []string) error {
	resp, err := client.CreateLinkToken(cmd.Context(), plaid.LinkTokenConfigs{
		User:         plaid.LinkTokenUser{ClientUserID: linkUserID},
		ClientName:   linkClientName,
		Language:     linkLanguage,
		CountryCodes: linkCountries,
		Products:     linkProducts,
		Webhook:      linkWebhook,
		RedirectURI:  linkRedirect,
	})
	if err != nil {
		return err
	}

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(resp)
	}

	fmt.Printf("Link token: %s\n", resp.LinkToken)
	fmt.Printf("Expires:    %s\n", resp.Expiration.Format("2006-01-02 15:04:05 MST"))
	return nil
}

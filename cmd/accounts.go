package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lunebank/plaid-go/plaid"
)

var refreshBalances bool

// accountsCmd represents the accounts command
var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the accounts linked to an Item",
	Long: `List the accounts behind an Item with their balances. By default the
balances may come from Plaid's cache; use --refresh to force the
institution to report current figures.`,
	RunE: runAccounts,
}

func init() {
	rootCmd.AddCommand(accountsCmd)

	accountsCmd.Flags().BoolVar(&refreshBalances, "refresh", false, "force a real-time balance refresh")
}

func runAccounts(cmd *cobra.Command, args []string) error {
	if err := requireAccessToken(); err != nil {
		return err
	}
	ctx := cmd.Context()

	var accounts []plaid.Account
	if refreshBalances {
		resp, err := client.GetBalances(ctx, accessToken, nil)
		if err != nil {
			return err
		}
		accounts = resp.Accounts
	} else {
		resp, err := client.GetAccounts(ctx, accessToken, nil)
		if err != nil {
			return err
		}
		accounts = resp.Accounts
	}

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(accounts)
	}

	printAccounts(accounts)
	return nil
}

func printAccounts(accounts []plaid.Account) {
	if len(accounts) == 0 {
		fmt.Println("No accounts found.")
		return
	}

	fmt.Printf("\nFound %d accounts:\n", len(accounts))
	fmt.Println(strings.Repeat("-", 80))

	for _, account := range accounts {
		fmt.Printf("• %s", account.Name)
		if account.Mask != nil {
			fmt.Printf(" (****%s)", *account.Mask)
		}
		fmt.Println()

		subtype := "-"
		if account.Subtype != nil {
			subtype = *account.Subtype
		}
		fmt.Printf("  Type: %s / %s\n", account.Type, subtype)
		fmt.Printf("  Current: %s\n", account.Balances.CurrentAmount())
		if available, ok := account.Balances.AvailableAmount(); ok {
			fmt.Printf("  Available: %s\n", available)
		}
		if limit, ok := account.Balances.LimitAmount(); ok {
			fmt.Printf("  Limit: %s\n", limit)
		}
	}
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lunebank/plaid-go/plaid"
)

// snapshot bundles everything known about an Item at one moment.
type snapshot struct {
	Item         plaid.Item          `json:"item"`
	Accounts     []plaid.Account     `json:"accounts"`
	Transactions []plaid.Transaction `json:"transactions"`
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Fetch the Item, its accounts and recent transactions in one go",
	Long: `Fetch the Item's status, all its accounts and the transactions in
the given date range concurrently, then print them together. Useful for
a quick health check of a connection.`,
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().StringVar(&startDateStr, "start", "", "start date (YYYY-MM-DD, default 30 days ago)")
	snapshotCmd.Flags().StringVar(&endDateStr, "end", "", "end date (YYYY-MM-DD, default today)")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	if err := requireAccessToken(); err != nil {
		return err
	}

	start, end, err := parseDateRange()
	if err != nil {
		return err
	}

	var snap snapshot
	g, ctx := errgroup.WithContext(cmd.Context())

	g.Go(func() error {
		resp, err := client.GetItem(ctx, accessToken)
		if err != nil {
			return fmt.Errorf("item: %w", err)
		}
		snap.Item = resp.Item
		return nil
	})

	g.Go(func() error {
		resp, err := client.GetAccounts(ctx, accessToken, nil)
		if err != nil {
			return fmt.Errorf("accounts: %w", err)
		}
		snap.Accounts = resp.Accounts
		return nil
	})

	g.Go(func() error {
		transactions, err := fetchAllTransactions(ctx, start, end)
		if err != nil {
			return fmt.Errorf("transactions: %w", err)
		}
		snap.Transactions = transactions
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(snap)
	}

	printItem(snap.Item, nil)
	fmt.Println()
	printAccounts(snap.Accounts)
	fmt.Println()
	printTransactions(snap.Transactions)
	return nil
}

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lunebank/plaid-go/filter"
	"github.com/lunebank/plaid-go/plaid"
)

var (
	startDateStr string
	endDateStr   string
	syncCursor   string
)

// transactionsCmd represents the transactions command
var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "List transactions for an Item",
	Long: `List transactions within a date range, paging through the full result
set. A filter expression narrows the output, e.g.

  plaidctl transactions --filter 'Amount > 50 && !Pending'
  plaidctl transactions --filter 'hasCategory("Travel")'`,
	RunE: runTransactions,
}

// syncCmd represents the transactions sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull incremental transaction updates",
	Long: `Pull added, modified and removed transactions since a cursor. With no
cursor the full history is fetched and the final cursor printed for the
next invocation.`,
	RunE: runSync,
}

// refreshCmd represents the transactions refresh command
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Ask Plaid to re-extract transactions from the institution",
	RunE:  runRefresh,
}

func init() {
	rootCmd.AddCommand(transactionsCmd)
	transactionsCmd.AddCommand(syncCmd)
	transactionsCmd.AddCommand(refreshCmd)

	transactionsCmd.Flags().StringVar(&startDateStr, "start", "", "start date (YYYY-MM-DD, default 30 days ago)")
	transactionsCmd.Flags().StringVar(&endDateStr, "end", "", "end date (YYYY-MM-DD, default today)")
	transactionsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	transactionsCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")

	syncCmd.Flags().StringVar(&syncCursor, "cursor", "", "cursor from a previous sync (empty for initial sync)")
}

func runTransactions(cmd *cobra.Command, args []string) error {
	if err := requireAccessToken(); err != nil {
		return err
	}
	ctx := cmd.Context()

	start, end, err := parseDateRange()
	if err != nil {
		return err
	}

	transactions, err := fetchAllTransactions(ctx, start, end)
	if err != nil {
		return err
	}

	expression, ok, err := getFilterExpression()
	if err != nil {
		return err
	}
	if ok {
		logger.Info().Str("filter", expression).Msg("Applying transaction filter")
		f, err := filter.Compile(expression)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		transactions = f.Apply(transactions)
	}

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(transactions)
	}

	printTransactions(transactions)
	return nil
}

// fetchAllTransactions pages through the date range. Plaid caps count at
// 500 per request.
func fetchAllTransactions(ctx context.Context, start, end plaid.Date) ([]plaid.Transaction, error) {
	const pageSize = 500

	var all []plaid.Transaction
	for {
		resp, err := client.GetTransactions(ctx, accessToken, start, end, &plaid.GetTransactionsOptions{
			Count:  pageSize,
			Offset: len(all),
		})
		if err != nil {
			return nil, err
		}
		all = append(all, resp.Transactions...)
		if len(all) >= resp.TotalTransactions || len(resp.Transactions) == 0 {
			return all, nil
		}
	}
}

func runSync(cmd *cobra.Command, args []string) error {
	if err := requireAccessToken(); err != nil {
		return err
	}
	ctx := cmd.Context()

	cursor := syncCursor
	var added, modified []plaid.Transaction
	var removed []plaid.RemovedTransaction

	for {
		resp, err := client.SyncTransactions(ctx, accessToken, cursor, 0)
		if err != nil {
			return err
		}
		added = append(added, resp.Added...)
		modified = append(modified, resp.Modified...)
		removed = append(removed, resp.Removed...)
		cursor = resp.NextCursor
		if !resp.HasMore {
			break
		}
	}

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"added":       added,
			"modified":    modified,
			"removed":     removed,
			"next_cursor": cursor,
		})
	}

	fmt.Printf("Added: %d, modified: %d, removed: %d\n", len(added), len(modified), len(removed))
	printTransactions(added)
	fmt.Printf("\nNext cursor: %s\n", cursor)
	return nil
}

func runRefresh(cmd *cobra.Command, args []string) error {
	if err := requireAccessToken(); err != nil {
		return err
	}

	resp, err := client.RefreshTransactions(cmd.Context(), accessToken)
	if err != nil {
		return err
	}

	logger.Info().Str("request_id", resp.RequestID).Msg("Refresh requested")
	fmt.Println("✓ Refresh requested. New data is announced via webhooks.")
	return nil
}

func parseDateRange() (plaid.Date, plaid.Date, error) {
	end := plaid.DateOf(time.Now())
	start := plaid.DateOf(time.Now().AddDate(0, 0, -30))

	if startDateStr != "" {
		t, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			return plaid.Date{}, plaid.Date{}, fmt.Errorf("invalid --start date: %w", err)
		}
		start = plaid.DateOf(t)
	}
	if endDateStr != "" {
		t, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			return plaid.Date{}, plaid.Date{}, fmt.Errorf("invalid --end date: %w", err)
		}
		end = plaid.DateOf(t)
	}
	return start, end, nil
}

func printTransactions(transactions []plaid.Transaction) {
	if len(transactions) == 0 {
		fmt.Println("No transactions found.")
		return
	}

	fmt.Printf("\nFound %d transactions:\n", len(transactions))
	fmt.Println(strings.Repeat("-", 80))

	for _, tx := range transactions {
		marker := " "
		if tx.Pending {
			marker = "~"
		}
		fmt.Printf("%s %s  %-40s %12s\n", marker, tx.Date, truncate(tx.Name, 40), tx.Money())
		if len(tx.Category) > 0 {
			fmt.Printf("    %s\n", strings.Join(tx.Category, " > "))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

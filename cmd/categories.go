package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var categoryGroup string

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List Plaid's transaction categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GetCategories(cmd.Context())
		if err != nil {
			return err
		}

		categories := resp.Categories
		if categoryGroup != "" {
			filtered := categories[:0]
			for _, c := range categories {
				if c.Group == categoryGroup {
					filtered = append(filtered, c)
				}
			}
			categories = filtered
		}

		if outputJSON {
			return json.NewEncoder(os.Stdout).Encode(categories)
		}

		for _, c := range categories {
			fmt.Printf("%-10s %s\n", c.CategoryID, strings.Join(c.Hierarchy, " > "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)

	categoriesCmd.Flags().StringVar(&categoryGroup, "group", "", "only show categories in this group, e.g. \"place\"")
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lunebank/plaid-go/plaid"
)

var (
	institutionCountries []string
	institutionProducts  []string
	includeMetadata      bool
)

// institutionsCmd represents the institutions command
var institutionsCmd = &cobra.Command{
	Use:   "institutions [query]",
	Short: "Search the institutions Plaid supports",
	Long: `Search institutions by name, or look one up directly by ID:

  plaidctl institutions chase
  plaidctl institutions ins_3`,
	Args: cobra.ExactArgs(1),
	RunE: runInstitutions,
}

func init() {
	rootCmd.AddCommand(institutionsCmd)

	institutionsCmd.Flags().StringSliceVar(&institutionCountries, "country", []string{"US"}, "country codes to search in")
	institutionsCmd.Flags().StringSliceVar(&institutionProducts, "product", []string{"transactions"}, "products the institution must support")
	institutionsCmd.Flags().BoolVar(&includeMetadata, "metadata", false, "include URL, logo and brand color")
}

func runInstitutions(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	query := args[0]

	// Institution IDs look like ins_3; anything else is a name search.
	if strings.HasPrefix(query, "ins_") {
		resp, err := client.GetInstitutionByID(ctx, query, institutionCountries, &plaid.GetInstitutionByIDOptions{
			IncludeOptionalMetadata: includeMetadata,
		})
		if err != nil {
			return err
		}
		if outputJSON {
			return json.NewEncoder(os.Stdout).Encode(resp.Institution)
		}
		printInstitutions([]plaid.Institution{resp.Institution})
		return nil
	}

	resp, err := client.SearchInstitutions(ctx, query, institutionProducts, institutionCountries, &plaid.SearchInstitutionsOptions{
		IncludeOptionalMetadata: includeMetadata,
	})
	if err != nil {
		return err
	}

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(resp.Institutions)
	}
	printInstitutions(resp.Institutions)
	return nil
}

func printInstitutions(institutions []plaid.Institution) {
	if len(institutions) == 0 {
		fmt.Println("No institutions found.")
		return
	}

	for _, ins := range institutions {
		fmt.Printf("• %s (%s)\n", ins.Name, ins.InstitutionID)
		fmt.Printf("  Products: %s\n", strings.Join(ins.Products, ", "))
		fmt.Printf("  Countries: %s\n", strings.Join(ins.CountryCodes, ", "))
		if ins.OAuth {
			fmt.Println("  OAuth: yes")
		}
		if ins.URL != nil {
			fmt.Printf("  URL: %s\n", *ins.URL)
		}
	}
}

package cli

import (
	"fmt"
	"os"

	"github.com/civicgrid/yojana/internal/catalog"
	"github.com/civicgrid/yojana/internal/model"
	"github.com/spf13/cobra"
)

var catalogLang string

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the scheme catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all schemes in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return err
		}

		fmt.Printf("%d schemes in the catalog:\n\n", cat.Len())
		for _, rec := range cat.All() {
			scope := "Nationwide"
			if !rec.Nationwide() {
				scope = rec.StateScope
			}
			fmt.Printf("  %-22s %-34s %s\n", rec.ID, rec.Name.Get(catalogLang), scope)
		}
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one scheme in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return err
		}

		rec, ok := cat.Get(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown scheme id %q. Try 'yojana catalog list'.\n", args[0])
			return fmt.Errorf("scheme not found")
		}

		fmt.Printf("%s (%s)\n\n", rec.Name.Get(catalogLang), rec.ID)
		fmt.Printf("%s\n\n", rec.Description.Get(catalogLang))
		fmt.Println("Eligibility criteria:")
		for _, c := range rec.Criteria.Get(catalogLang) {
			fmt.Printf("  - %s\n", c)
		}
		fmt.Printf("\nBenefits: %s\n", rec.Benefits.Get(catalogLang))
		fmt.Printf("Category: %s\n", rec.Category.Get(catalogLang))
		if rec.Nationwide() {
			fmt.Println("Scope:    Nationwide")
		} else {
			fmt.Printf("Scope:    %s only\n", rec.StateScope)
		}
		fmt.Printf("Source:   %s\n", rec.SourceURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.PersistentFlags().StringVar(&catalogLang, "lang", model.LangEnglish, "display language (en, hi)")
}

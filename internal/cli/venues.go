package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlazarov/confminer/internal/extract/venues"
)

// venuesCmd represents the venues command
var venuesCmd = &cobra.Command{
	Use:   "venues",
	Short: "List venues with dedicated parsing rules",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range venues.NewRegistry().Names() {
			fmt.Println(name)
		}
		fmt.Println("\nAny other venue name uses generic extraction (requires --url).")
	},
}

func init() {
	rootCmd.AddCommand(venuesCmd)
}

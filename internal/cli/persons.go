package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mlazarov/confminer/internal/pipeline"
)

var (
	personsCSV  string
	personsJSON string
)

// personsCmd represents the persons command
var personsCmd = &cobra.Command{
	Use:   "persons <venue> <year>",
	Short: "Scrape committee members for a venue and year",
	Long: `Persons fetches a conference committee page and extracts the
program, steering, and organizing committee members as normalized
records.

Known venues (qcrypt, qip, tqc) resolve the page URL from the year;
any other venue name uses generic extraction and requires --url.

Example:
  confminer persons qcrypt 2023
  confminer persons qip 2026 --csv qip_2026_committees.csv
  confminer persons mycon 2025 --url https://mycon.org/2025/committees/`,
	Args: cobra.ExactArgs(2),
	RunE: runPersons,
}

func init() {
	rootCmd.AddCommand(personsCmd)

	personsCmd.Flags().StringVar(&pageURL, "url", "", "committee page URL (overrides the venue's URL pattern)")
	personsCmd.Flags().StringVar(&personsCSV, "csv", "", "output CSV path (default: <venue>_<year>_committees.csv)")
	personsCmd.Flags().StringVar(&personsJSON, "json", "", "output JSON path (optional)")
	addFetchFlags(personsCmd)
}

func runPersons(cmd *cobra.Command, args []string) error {
	venue := args[0]
	year, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad year %q: %w", args[1], err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Scraping committees: %s %d\n", venue, year)
	}

	p := pipeline.NewPipeline(cfg)

	persons, err := p.ScrapePersons(ctx, venue, year, pageURL)
	if err != nil {
		return fmt.Errorf("scrape persons: %w", err)
	}

	csvPath := personsCSV
	if csvPath == "" {
		csvPath = fmt.Sprintf("%s_%d_committees.csv", venue, year)
	}
	if err := p.Renderer().WritePersonsCSV(csvPath, venue, year, persons); err != nil {
		return fmt.Errorf("write CSV: %w", err)
	}
	if personsJSON != "" {
		if err := p.Renderer().WriteJSON(personsJSON, persons); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
	}

	fmt.Printf("✓ %s %d: %d committee members -> %s\n", venue, year, len(persons), csvPath)
	return nil
}

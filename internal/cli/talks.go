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
	talksCSV  string
	talksJSON string
)

// talksCmd represents the talks command
var talksCmd = &cobra.Command{
	Use:   "talks <venue> <year>",
	Short: "Scrape invited and tutorial talks for a venue and year",
	Long: `Talks fetches a conference programme page and extracts the
invited, tutorial, and keynote talks as normalized records.

Example:
  confminer talks qcrypt 2024
  confminer talks qip 2026 --csv qip_2026_talks.csv`,
	Args: cobra.ExactArgs(2),
	RunE: runTalks,
}

func init() {
	rootCmd.AddCommand(talksCmd)

	talksCmd.Flags().StringVar(&pageURL, "url", "", "programme page URL (overrides the venue's URL pattern)")
	talksCmd.Flags().StringVar(&talksCSV, "csv", "", "output CSV path (default: <venue>_<year>_talks.csv)")
	talksCmd.Flags().StringVar(&talksJSON, "json", "", "output JSON path (optional)")
	addFetchFlags(talksCmd)
}

func runTalks(cmd *cobra.Command, args []string) error {
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
		fmt.Fprintf(os.Stderr, "Scraping talks: %s %d\n", venue, year)
	}

	p := pipeline.NewPipeline(cfg)

	talks, err := p.ScrapeTalks(ctx, venue, year, pageURL)
	if err != nil {
		return fmt.Errorf("scrape talks: %w", err)
	}

	csvPath := talksCSV
	if csvPath == "" {
		csvPath = fmt.Sprintf("%s_%d_talks.csv", venue, year)
	}
	if err := p.Renderer().WriteTalksCSV(csvPath, venue, year, talks); err != nil {
		return fmt.Errorf("write CSV: %w", err)
	}
	if talksJSON != "" {
		if err := p.Renderer().WriteJSON(talksJSON, talks); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
	}

	fmt.Printf("✓ %s %d: %d talks -> %s\n", venue, year, len(talks), csvPath)
	return nil
}

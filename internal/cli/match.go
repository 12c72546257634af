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
	scheduleURL string
	matchCSV    string
	matchJSON   string
	reviewPath  string
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <venue> <year>",
	Short: "Match scraped talks against the conference schedule",
	Long: `Match scrapes the talks for a venue/year, parses the schedule
page, and pairs each talk with its schedule slot by shared arXiv ids
and title similarity. Matched talks gain speaker, date, time, and
duration; unmatched talks are written as-is.

When --llm is set, unmatched talks also get advisory review notes
(requires OPENAI_API_KEY). Notes never change the matching results.

Example:
  confminer match qip 2026 --schedule https://qip.iaqi.org/2026/programme/schedule/index.html`,
	Args: cobra.ExactArgs(2),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVar(&scheduleURL, "schedule", "", "schedule page URL (required)")
	matchCmd.Flags().StringVar(&pageURL, "url", "", "programme page URL (overrides the venue's URL pattern)")
	matchCmd.Flags().StringVar(&matchCSV, "csv", "", "output CSV path (default: <venue>_<year>_talks_scheduled.csv)")
	matchCmd.Flags().StringVar(&matchJSON, "json", "", "full outcome JSON path (optional)")
	matchCmd.Flags().StringVar(&reviewPath, "review-notes", "", "review notes path (default: <venue>_<year>_review.txt)")
	matchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate review notes for unmatched talks")
	matchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "model for review notes")
	_ = matchCmd.MarkFlagRequired("schedule")
	addFetchFlags(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
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
		fmt.Fprintf(os.Stderr, "Matching schedule: %s %d\n", venue, year)
	}

	p := pipeline.NewPipeline(cfg)

	talks, err := p.ScrapeTalks(ctx, venue, year, pageURL)
	if err != nil {
		return fmt.Errorf("scrape talks: %w", err)
	}

	outcome, err := p.MatchSchedule(ctx, talks, scheduleURL)
	if err != nil {
		return fmt.Errorf("match schedule: %w", err)
	}

	csvPath := matchCSV
	if csvPath == "" {
		csvPath = fmt.Sprintf("%s_%d_talks_scheduled.csv", venue, year)
	}
	if err := p.Renderer().WriteTalksCSV(csvPath, venue, year, outcome.Talks); err != nil {
		return fmt.Errorf("write CSV: %w", err)
	}
	if matchJSON != "" {
		if err := p.Renderer().WriteJSON(matchJSON, outcome); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
	}
	if outcome.ReviewNotes != "" {
		notesPath := reviewPath
		if notesPath == "" {
			notesPath = fmt.Sprintf("%s_%d_review.txt", venue, year)
		}
		if err := p.Renderer().WriteReviewNotes(notesPath, outcome.ReviewNotes); err != nil {
			return fmt.Errorf("write review notes: %w", err)
		}
	}

	fmt.Printf("✓ %s %d: matched %d/%d talks against %d schedule events -> %s\n",
		venue, year, outcome.MatchedCount(), len(outcome.Talks), len(outcome.Events), csvPath)
	return nil
}

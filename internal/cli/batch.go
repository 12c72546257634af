package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlazarov/confminer/internal/pipeline"
	"github.com/mlazarov/confminer/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Scrape multiple venue/year targets from a file in parallel",
	Long: `Batch scrapes multiple conference targets concurrently:
- Read "venue year" lines from the input file (# starts a comment)
- Scrape committees and talks for each target in parallel
- Write per-target CSV files into the output directory

A venue without a programme rule produces only the committee CSV.

Example:
  confminer batch targets.txt
  confminer batch targets.txt --concurrency 8 --output-dir ./data
  confminer batch targets.txt --local --archive-dir ~/Web`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./confminer-data", "output directory for CSV files")
	batchCmd.Flags().DurationVar(&batchTimeout, "batch-timeout", 10*time.Minute, "total timeout for batch processing")
	addFetchFlags(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Confminer Batch Scrape\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p := pipeline.NewPipeline(cfg)
	processor := worker.NewBatchProcessor(p, concurrency)

	fmt.Fprintf(os.Stderr, "⚙️  Reading targets from file...\n")
	targets, err := worker.ReadTargetsFromFile(file)
	if err != nil {
		return fmt.Errorf("read targets: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Loaded %d targets\n", len(targets))
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "⚙️  Scraping with %d workers...\n", concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	results := processor.ProcessTargets(ctx, targets)

	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Target, result.Err)
			continue
		}

		successCount++

		prefix := fmt.Sprintf("%s_%d", result.Target.Venue, result.Target.Year)
		personsPath := filepath.Join(outputDir, prefix+"_committees.csv")
		if err := p.Renderer().WritePersonsCSV(personsPath, result.Target.Venue, result.Target.Year, result.Persons); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write committees CSV: %v\n", result.Target, err)
			continue
		}

		if len(result.Talks) > 0 {
			talksPath := filepath.Join(outputDir, prefix+"_talks.csv")
			if err := p.Renderer().WriteTalksCSV(talksPath, result.Target.Venue, result.Target.Year, result.Talks); err != nil {
				fmt.Fprintf(os.Stderr, "✗ %s: failed to write talks CSV: %v\n", result.Target, err)
				continue
			}
		}

		fmt.Fprintf(os.Stderr, "✓ %s (%d persons, %d talks)\n", result.Target, len(result.Persons), len(result.Talks))
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d targets\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

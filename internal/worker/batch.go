package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mlazarov/confminer/internal/model"
)

// Target names one venue/year to scrape.
type Target struct {
	Venue string
	Year  int
}

func (t Target) String() string {
	return fmt.Sprintf("%s %d", t.Venue, t.Year)
}

// Scraper runs one venue/year extraction.
type Scraper interface {
	ScrapeTarget(ctx context.Context, t Target) *TargetResult
}

// TargetResult is the outcome of one target scrape.
type TargetResult struct {
	Target  Target
	Persons []model.PersonRecord
	Talks   []model.TalkRecord
	Err     error
}

// GetError returns the error from the result.
func (r *TargetResult) GetError() error {
	return r.Err
}

// TargetJob adapts a target to the worker pool.
type TargetJob struct {
	Target  Target
	Scraper Scraper
}

// Execute runs the scrape.
func (j *TargetJob) Execute(ctx context.Context) Result {
	return j.Scraper.ScrapeTarget(ctx, j.Target)
}

// BatchProcessor scrapes multiple targets concurrently.
type BatchProcessor struct {
	scraper     Scraper
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(scraper Scraper, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		scraper:     scraper,
		concurrency: concurrency,
	}
}

// ProcessTargets scrapes the targets concurrently and returns the
// results in completion order.
func (b *BatchProcessor) ProcessTargets(ctx context.Context, targets []Target) []*TargetResult {
	if len(targets) == 0 {
		return []*TargetResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, t := range targets {
		pool.Submit(&TargetJob{
			Target:  t,
			Scraper: b.scraper,
		})
	}

	results := pool.Wait()

	targetResults := make([]*TargetResult, len(results))
	for i, result := range results {
		targetResults[i] = result.(*TargetResult)
	}
	return targetResults
}

// ProcessFile reads targets from a file and scrapes them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*TargetResult, error) {
	targets, err := ReadTargetsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read targets: %w", err)
	}
	return b.ProcessTargets(ctx, targets), nil
}

// ReadTargetsFromFile reads "venue year" lines from a file, skipping
// blank lines and comments and deduplicating.
func ReadTargetsFromFile(filePath string) ([]Target, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var targets []Target
	seen := make(map[Target]bool)

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected \"venue year\", got %q", lineNo, line)
		}
		year, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad year %q", lineNo, fields[1])
		}

		t := Target{Venue: fields[0], Year: year}
		if !seen[t] {
			seen[t] = true
			targets = append(targets, t)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return targets, nil
}

// Package pipeline wires fetching, venue extraction, schedule matching
// and rendering into the operations the CLI exposes.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/mlazarov/confminer/internal/extract/venues"
	"github.com/mlazarov/confminer/internal/llm"
	"github.com/mlazarov/confminer/internal/match"
	"github.com/mlazarov/confminer/internal/model"
	"github.com/mlazarov/confminer/internal/schedule"
	"github.com/mlazarov/confminer/internal/worker"
)

// Pipeline orchestrates the complete scrape process.
type Pipeline struct {
	fetcher  *Fetcher
	registry *venues.Registry
	renderer *Renderer
	reviewer *llm.Reviewer // nil when disabled
	config   *model.Config
}

// NewPipeline creates a pipeline from configuration.
func NewPipeline(cfg *model.Config) *Pipeline {
	var reviewer *llm.Reviewer
	if cfg.LLM.Enabled {
		r, err := llm.NewReviewer(cfg.LLM)
		if err != nil {
			fmt.Printf("Warning: review notes disabled: %v\n", err)
		} else {
			reviewer = r
		}
	}

	return &Pipeline{
		fetcher:  NewFetcher(cfg),
		registry: venues.NewRegistry(),
		renderer: NewRenderer(cfg.Output.Verbose),
		reviewer: reviewer,
		config:   cfg,
	}
}

// Renderer exposes the output writer for the CLI.
func (p *Pipeline) Renderer() *Renderer { return p.renderer }

// Venues lists the registered venue names.
func (p *Pipeline) Venues() []string { return p.registry.Names() }

func (p *Pipeline) fetchDoc(ctx context.Context, url string) (*html.Node, error) {
	body, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}
	return doc, nil
}

// ScrapePersons extracts committee members for a venue/year. An empty
// pageURL uses the venue's known URL pattern; unknown venues require
// an explicit URL.
func (p *Pipeline) ScrapePersons(ctx context.Context, venueName string, year int, pageURL string) ([]model.PersonRecord, error) {
	v := p.registry.Find(venueName)

	if pageURL == "" {
		u, err := v.CommitteeURL(year)
		if err != nil {
			return nil, fmt.Errorf("%s %d committee page: %w", v.Name(), year, err)
		}
		pageURL = u
	}

	doc, err := p.fetchDoc(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch committee page: %w", err)
	}

	persons, err := v.ExtractPersons(doc)
	if err != nil {
		return nil, fmt.Errorf("extract persons: %w", err)
	}

	if p.config.Output.Verbose {
		fmt.Printf("Extracted %d committee members from %s\n", len(persons), pageURL)
	}
	return persons, nil
}

// ScrapeTalks extracts invited and tutorial talks for a venue/year.
func (p *Pipeline) ScrapeTalks(ctx context.Context, venueName string, year int, pageURL string) ([]model.TalkRecord, error) {
	v := p.registry.Find(venueName)

	if pageURL == "" {
		u, err := v.ProgramURL(year)
		if err != nil {
			return nil, fmt.Errorf("%s %d programme page: %w", v.Name(), year, err)
		}
		pageURL = u
	}

	doc, err := p.fetchDoc(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch programme page: %w", err)
	}

	talks, err := v.ExtractTalks(doc)
	if err != nil {
		return nil, fmt.Errorf("extract talks: %w", err)
	}

	if p.config.Output.Verbose {
		fmt.Printf("Extracted %d talks from %s\n", len(talks), pageURL)
	}
	return talks, nil
}

// MatchOutcome bundles the results of a schedule match.
type MatchOutcome struct {
	Talks       []model.TalkRecord    `json:"talks"`
	Events      []model.ScheduleEvent `json:"events"`
	Results     []model.MatchResult   `json:"results"`
	ReviewNotes string                `json:"review_notes,omitempty"`
}

// MatchedCount returns the number of talks with an accepted pairing.
func (o *MatchOutcome) MatchedCount() int {
	n := 0
	for _, r := range o.Results {
		if r.Matched() {
			n++
		}
	}
	return n
}

// MatchSchedule parses the schedule page, matches the talks against
// its events, and attaches speaker and timing information. Review
// notes, when enabled, are generated after matching and never change
// the results.
func (p *Pipeline) MatchSchedule(ctx context.Context, talks []model.TalkRecord, scheduleURL string) (*MatchOutcome, error) {
	doc, err := p.fetchDoc(ctx, scheduleURL)
	if err != nil {
		return nil, fmt.Errorf("fetch schedule page: %w", err)
	}

	events := schedule.Parse(doc)
	results := match.Schedule(talks, events)

	outcome := &MatchOutcome{
		Talks:   match.Enrich(talks, events, results),
		Events:  events,
		Results: results,
	}

	if p.reviewer != nil {
		if idx := match.Unmatched(results); len(idx) > 0 {
			unmatched := make([]model.TalkRecord, 0, len(idx))
			for _, i := range idx {
				unmatched = append(unmatched, outcome.Talks[i])
			}
			notes, err := p.reviewer.ReviewUnmatched(ctx, unmatched, events)
			if err != nil {
				fmt.Printf("Warning: review note generation failed: %v\n", err)
			} else {
				outcome.ReviewNotes = notes
			}
		}
	}

	return outcome, nil
}

// ScrapeTarget runs one batch target: committee members always, talks
// when the venue has a programme rule. A venue without talk support is
// a skip, not a failure.
func (p *Pipeline) ScrapeTarget(ctx context.Context, t worker.Target) *worker.TargetResult {
	res := &worker.TargetResult{Target: t}

	persons, err := p.ScrapePersons(ctx, t.Venue, t.Year, "")
	if err != nil {
		res.Err = err
		return res
	}
	res.Persons = persons

	talks, err := p.ScrapeTalks(ctx, t.Venue, t.Year, "")
	if err != nil {
		if errors.Is(err, venues.ErrUnknownVenueFormat) {
			if p.config.Output.Verbose {
				fmt.Printf("Skipping talks for %s: %v\n", t, err)
			}
			return res
		}
		res.Err = err
		return res
	}
	res.Talks = talks

	return res
}

package match

import (
	"testing"

	"github.com/mlazarov/confminer/internal/model"
)

func TestScheduleMatchesByTitle(t *testing.T) {
	talks := []model.TalkRecord{
		{Title: "Quantum Key Distribution over Long Distances"},
		{Title: "Something Entirely Unrelated About Cooking"},
	}
	events := []model.ScheduleEvent{
		{Title: "Quantum key distribution over long distances", Date: "Monday"},
		{Title: "Topological Codes in Practice", Date: "Tuesday"},
	}

	results := Schedule(talks, events)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	if results[0].EventIndex != 0 {
		t.Errorf("talk 0 matched event %d, want 0", results[0].EventIndex)
	}
	if results[0].Score < 20 {
		t.Errorf("identical titles scored %f", results[0].Score)
	}
	if results[1].Matched() {
		t.Errorf("unrelated talk matched event %d", results[1].EventIndex)
	}
}

func TestScheduleBracketAndCaseInsensitive(t *testing.T) {
	talks := []model.TalkRecord{
		{Title: "Device-Independent Randomness [remote]"},
	}
	events := []model.ScheduleEvent{
		{Title: "DEVICE-INDEPENDENT RANDOMNESS"},
	}

	results := Schedule(talks, events)
	if !results[0].Matched() {
		t.Fatal("bracketed annotation should not block the match")
	}
	if results[0].Score < 50 {
		t.Errorf("exact title modulo brackets and case scored %f, want >= 50", results[0].Score)
	}
}

func TestScheduleArxivOverridesTitle(t *testing.T) {
	talks := []model.TalkRecord{
		{Title: "A Completely Renamed Conference Talk", ArxivIDs: []string{"2401.12345"}},
	}
	events := []model.ScheduleEvent{
		{Title: "Tight bounds for shadow tomography"},
		{Title: "Untitled plenary slot", ArxivIDs: []string{"2401.12345"}},
	}

	results := Schedule(talks, events)
	if results[0].EventIndex != 1 {
		t.Errorf("shared arXiv id should win, matched event %d", results[0].EventIndex)
	}
	if results[0].Score < 100 {
		t.Errorf("Score = %f, want at least the arXiv bonus", results[0].Score)
	}
}

func TestScheduleTwoTalksOneEvent(t *testing.T) {
	talks := []model.TalkRecord{
		{Title: "Quantum proofs of proximity"},
		{Title: "Quantum proofs of proximity revisited"},
	}
	events := []model.ScheduleEvent{
		{Title: "Quantum proofs of proximity"},
	}

	results := Schedule(talks, events)
	if results[0].EventIndex != 0 || results[1].EventIndex != 0 {
		t.Errorf("merged slots allow two talks on one event, got %d and %d",
			results[0].EventIndex, results[1].EventIndex)
	}
}

func TestScheduleTieKeepsEarlierEvent(t *testing.T) {
	talks := []model.TalkRecord{{Title: "Quantum advantage demonstrations"}}
	events := []model.ScheduleEvent{
		{Title: "Quantum advantage demonstrations", Date: "Monday"},
		{Title: "Quantum advantage demonstrations", Date: "Friday"},
	}

	results := Schedule(talks, events)
	if results[0].EventIndex != 0 {
		t.Errorf("tie should keep the earlier event, got %d", results[0].EventIndex)
	}
}

func TestEnrich(t *testing.T) {
	talks := []model.TalkRecord{
		{Title: "Long plenary", PaperType: model.PaperPlenaryShort},
		{Title: "Unmatched talk"},
	}
	events := []model.ScheduleEvent{
		{Title: "Long plenary", Date: "Monday", StartTime: "09:30", DurationMinutes: 60, Speaker: "Jane Doe"},
	}
	results := []model.MatchResult{
		{TalkIndex: 0, EventIndex: 0, Score: 50},
		{TalkIndex: 1, EventIndex: -1},
	}

	enriched := Enrich(talks, events, results)

	if talks[0].Speaker != "" {
		t.Error("Enrich must not mutate its input")
	}

	got := enriched[0]
	if got.Speaker != "Jane Doe" || got.ScheduledDate != "Monday" || got.ScheduledTime != "09:30" {
		t.Errorf("enriched = %+v", got)
	}
	if got.DurationMinutes != 60 {
		t.Errorf("DurationMinutes = %d", got.DurationMinutes)
	}
	if got.PaperType != model.PaperPlenaryLong {
		t.Errorf("PaperType = %v, 60-minute slot should refine to plenary_long", got.PaperType)
	}

	if enriched[1].Speaker != "" || enriched[1].ScheduledDate != "" {
		t.Errorf("unmatched talk must stay untouched, got %+v", enriched[1])
	}
}

func TestUnmatched(t *testing.T) {
	results := []model.MatchResult{
		{TalkIndex: 0, EventIndex: 2},
		{TalkIndex: 1, EventIndex: -1},
		{TalkIndex: 2, EventIndex: -1},
	}
	idx := Unmatched(results)
	if len(idx) != 2 || idx[0] != 1 || idx[1] != 2 {
		t.Errorf("Unmatched = %v", idx)
	}
}

func TestJaccard(t *testing.T) {
	a := map[string]struct{}{"quantum": {}, "key": {}, "distribution": {}}
	b := map[string]struct{}{"quantum": {}, "key": {}, "exchange": {}}
	got := jaccard(a, b)
	want := 2.0 / 4.0
	if got != want {
		t.Errorf("jaccard = %f, want %f", got, want)
	}
	if jaccard(nil, b) != 0 {
		t.Error("empty set should score 0")
	}
}

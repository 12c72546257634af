// Package match pairs extracted talks with schedule events by title
// similarity. Scoring is deliberately simple: a shared arXiv id is a
// near-certain match, and token overlap of the normalized titles covers
// the rest.
package match

import (
	"github.com/mlazarov/confminer/internal/model"
	"github.com/mlazarov/confminer/internal/textnorm"
)

const (
	// arxivScore is awarded when talk and event share an arXiv id.
	arxivScore = 100.0

	// jaccardWeight scales the title token overlap.
	jaccardWeight = 50.0

	// acceptThreshold is the minimum score for a pairing. Below it the
	// talk stays unmatched and is surfaced for manual review.
	acceptThreshold = 20.0
)

// Schedule scores every talk against every event and keeps the best
// pairing per talk. Ties keep the earlier event. Events are not
// consumed: two talks may legitimately claim the same event, as merged
// slots schedule several papers together.
func Schedule(talks []model.TalkRecord, events []model.ScheduleEvent) []model.MatchResult {
	results := make([]model.MatchResult, 0, len(talks))

	for i, talk := range talks {
		best := model.MatchResult{TalkIndex: i, EventIndex: -1}
		talkTitle := textnorm.Title(talk.Title)

		for j, event := range events {
			score := Score(talk, talkTitle, event)
			if score > best.Score && score > acceptThreshold {
				best.EventIndex = j
				best.Score = score
			}
		}
		results = append(results, best)
	}
	return results
}

// Score rates one talk/event pairing. talkTitle is the precomputed
// normalized talk title.
func Score(talk model.TalkRecord, talkTitle string, event model.ScheduleEvent) float64 {
	score := 0.0
	if sharesArxivID(talk.ArxivIDs, event.ArxivIDs) {
		score += arxivScore
	}

	eventTitle := event.NormalizedTitle
	if eventTitle == "" {
		eventTitle = textnorm.Title(event.Title)
	}
	score += jaccardWeight * jaccard(textnorm.TokenSet(talkTitle), textnorm.TokenSet(eventTitle))

	return score
}

// Enrich copies the schedule fields of each matched event onto its
// talk and returns the updated slice. Plenary talks pick up their
// long/short classification from the slot duration. Input slices are
// not mutated.
func Enrich(talks []model.TalkRecord, events []model.ScheduleEvent, results []model.MatchResult) []model.TalkRecord {
	out := make([]model.TalkRecord, len(talks))
	copy(out, talks)

	for _, r := range results {
		if !r.Matched() || r.TalkIndex >= len(out) || r.EventIndex >= len(events) {
			continue
		}
		talk := &out[r.TalkIndex]
		event := events[r.EventIndex]

		talk.Speaker = event.Speaker
		talk.ScheduledDate = event.Date
		talk.ScheduledTime = event.StartTime
		talk.DurationMinutes = event.DurationMinutes

		if talk.PaperType == model.PaperPlenaryLong || talk.PaperType == model.PaperPlenaryShort {
			if event.DurationMinutes >= 60 {
				talk.PaperType = model.PaperPlenaryLong
			} else if event.DurationMinutes > 0 {
				talk.PaperType = model.PaperPlenaryShort
			}
		}
	}
	return out
}

// Unmatched returns the indexes of talks with no accepted pairing.
func Unmatched(results []model.MatchResult) []int {
	var idx []int
	for _, r := range results {
		if !r.Matched() {
			idx = append(idx, r.TalkIndex)
		}
	}
	return idx
}

func sharesArxivID(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// jaccard computes |A∩B| / |A∪B| over token sets; empty sets score 0.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

package extract

import (
	"sort"

	"github.com/mlazarov/confminer/internal/model"
	"github.com/mlazarov/confminer/internal/textnorm"
)

// DedupePersons removes duplicate people by normalized name. Records are
// processed in ascending name order and the first record for a key is
// kept; later duplicates are dropped, not merged. The one exception:
// a duplicate may back-fill the affiliation when the kept record has
// none. Idempotent.
func DedupePersons(records []model.PersonRecord) []model.PersonRecord {
	sorted := make([]model.PersonRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	kept := make([]model.PersonRecord, 0, len(sorted))
	index := make(map[string]int)

	for _, rec := range sorted {
		key := textnorm.Name(rec.Name)
		if at, seen := index[key]; seen {
			if kept[at].Affiliation == "" && rec.Affiliation != "" {
				kept[at].Affiliation = rec.Affiliation
			}
			continue
		}
		index[key] = len(kept)
		kept = append(kept, rec)
	}
	return kept
}

// DedupeTalks removes duplicate talks by normalized title, keeping the
// first occurrence in input order.
func DedupeTalks(talks []model.TalkRecord) []model.TalkRecord {
	seen := make(map[string]bool)
	kept := make([]model.TalkRecord, 0, len(talks))

	for _, talk := range talks {
		key := textnorm.Title(talk.Title)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, talk)
	}
	return kept
}

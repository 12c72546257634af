package extract

import (
	"reflect"
	"testing"

	"github.com/mlazarov/confminer/internal/model"
)

func TestDedupePersons(t *testing.T) {
	records := []model.PersonRecord{
		{Name: "Jane Doe", Affiliation: "MIT", Committee: model.CommitteePC},
		{Name: "Dr. Jane Doe", Affiliation: "Caltech", Committee: model.CommitteePC},
		{Name: "Alice Chen", Committee: model.CommitteePC},
	}

	got := DedupePersons(records)
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	// Output is ordered by ascending display name.
	if got[0].Name != "Alice Chen" || got[1].Name != "Dr. Jane Doe" {
		t.Errorf("unexpected order: %q, %q", got[0].Name, got[1].Name)
	}
	// First record for a key wins; "Jane Doe" sorts after "Dr. Jane Doe".
	if got[1].Affiliation != "Caltech" {
		t.Errorf("Affiliation = %q, want Caltech", got[1].Affiliation)
	}
}

func TestDedupePersonsBackfillsAffiliation(t *testing.T) {
	records := []model.PersonRecord{
		{Name: "Alice Chen", Committee: model.CommitteePC},
		{Name: "alice chen", Affiliation: "Tsinghua", Committee: model.CommitteePC},
	}

	got := DedupePersons(records)
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Name != "Alice Chen" {
		t.Errorf("Name = %q, want Alice Chen", got[0].Name)
	}
	if got[0].Affiliation != "Tsinghua" {
		t.Errorf("Affiliation = %q, duplicate should back-fill", got[0].Affiliation)
	}
}

func TestDedupePersonsIdempotent(t *testing.T) {
	records := []model.PersonRecord{
		{Name: "Jane Doe", Affiliation: "MIT", Committee: model.CommitteePC},
		{Name: "Alice Chen", Committee: model.CommitteeSC},
		{Name: "Bob Lee", Affiliation: "IBM", Committee: model.CommitteePC},
	}

	once := DedupePersons(records)
	twice := DedupePersons(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("DedupePersons not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestDedupeTalks(t *testing.T) {
	talks := []model.TalkRecord{
		{Title: "Quantum Key Distribution", PaperType: model.PaperInvited},
		{Title: "QUANTUM KEY DISTRIBUTION!", PaperType: model.PaperInvited},
		{Title: "Entanglement Distillation", PaperType: model.PaperTutorial},
		{Title: ""},
	}

	got := DedupeTalks(talks)
	if len(got) != 2 {
		t.Fatalf("expected 2 talks, got %d", len(got))
	}
	if got[0].Title != "Quantum Key Distribution" {
		t.Errorf("first occurrence must win, got %q", got[0].Title)
	}
}

package venues

import (
	"testing"

	"github.com/mlazarov/confminer/internal/model"
)

func TestQIPURLs(t *testing.T) {
	q := NewQIP()

	u, err := q.CommitteeURL(2026)
	if err != nil {
		t.Fatalf("CommitteeURL: %v", err)
	}
	if u != "https://qip.iaqi.org/2026/about/programme-committee/index.html" {
		t.Errorf("CommitteeURL = %q", u)
	}

	u, err = q.ProgramURL(2026)
	if err != nil {
		t.Fatalf("ProgramURL: %v", err)
	}
	if u != "https://qip.iaqi.org/2026/programme/tutorial/index.html" {
		t.Errorf("ProgramURL = %q", u)
	}
}

func TestQIPPersons(t *testing.T) {
	doc := parseDoc(t, `<html><body><div class="ce-bodytext">
<p><strong>Programme Committee Chair:</strong> Jane Doe, MIT</p>
<p><strong>Topic Chairs</strong></p>
<p>Quantum algorithms: Alice Chen, Tsinghua University<br>
Quantum cryptography: Bob Lee, IBM Research</p>
<p><strong>Programme Committee</strong></p>
<p>Carol White, NIST<br>
David Green, University of Sydney<br>
Erwin Schrödinger, Universität Wien</p>
<p><strong>Steering Committee</strong></p>
<p>Frank Black, Caltech<br>
Grace Hopper, Yale University</p>
</div></body></html>`)

	got, err := NewQIP().ExtractPersons(doc)
	if err != nil {
		t.Fatalf("ExtractPersons: %v", err)
	}

	byName := map[string]model.PersonRecord{}
	for _, rec := range got {
		byName[rec.Name] = rec
	}

	chair, ok := byName["Jane Doe"]
	if !ok {
		t.Fatal("chair missing")
	}
	if chair.Committee != model.CommitteePC || chair.Position != model.PositionChair {
		t.Errorf("chair = %+v", chair)
	}
	if chair.Affiliation != "MIT" {
		t.Errorf("chair affiliation = %q", chair.Affiliation)
	}

	area, ok := byName["Alice Chen"]
	if !ok {
		t.Fatal("area chair missing")
	}
	if area.Position != model.PositionAreaChair || area.Affiliation != "Tsinghua University" {
		t.Errorf("area chair = %+v", area)
	}

	member, ok := byName["Carol White"]
	if !ok {
		t.Fatal("member missing")
	}
	if member.Committee != model.CommitteePC || member.Position != model.PositionMember {
		t.Errorf("member = %+v", member)
	}

	sc, ok := byName["Grace Hopper"]
	if !ok {
		t.Fatal("steering member missing")
	}
	if sc.Committee != model.CommitteeSC {
		t.Errorf("steering member = %+v", sc)
	}

	if _, ok := byName["Erwin Schrödinger"]; !ok {
		t.Error("diacritic name missing")
	}
}

func TestQIPPersonsNoBodyText(t *testing.T) {
	doc := parseDoc(t, `<html><body><p>Plain page.</p></body></html>`)
	if _, err := NewQIP().ExtractPersons(doc); err == nil {
		t.Error("expected an error for a page without ce-bodytext")
	}
}

func TestQIPTalks(t *testing.T) {
	doc := parseDoc(t, `<html><body><div class="ce-bodytext">
<p>Saturday, January 24</p>
<p><strong>Jane Doe</strong><br>MIT</p>
<p><strong>Introduction to Quantum Error Correction</strong></p>
<p>This tutorial covers stabilizer codes and the surface code from the ground up.</p>
<p>The second half treats decoders and thresholds in detail for practitioners.</p>
<p><strong>John Smith</strong><br>University of Waterloo</p>
<p><strong>Hamiltonian Complexity</strong></p>
<p>An overview of the local Hamiltonian problem and its place in quantum complexity.</p>
</div></body></html>`)

	got, err := NewQIP().ExtractTalks(doc)
	if err != nil {
		t.Fatalf("ExtractTalks: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 talks, got %d: %+v", len(got), got)
	}

	first := got[0]
	if first.Title != "Introduction to Quantum Error Correction" {
		t.Errorf("Title = %q", first.Title)
	}
	if len(first.Speakers) != 1 || first.Speakers[0] != "Jane Doe" {
		t.Errorf("Speakers = %v", first.Speakers)
	}
	if len(first.Affiliations) != 1 || first.Affiliations[0] != "MIT" {
		t.Errorf("Affiliations = %v", first.Affiliations)
	}
	if first.PaperType != model.PaperTutorial {
		t.Errorf("PaperType = %v", first.PaperType)
	}
	if first.Abstract == "" {
		t.Error("abstract paragraphs were not collected")
	}

	second := got[1]
	if second.Title != "Hamiltonian Complexity" || second.Speakers[0] != "John Smith" {
		t.Errorf("second talk = %+v", second)
	}
}

func TestQIPTalksIncompleteEntryDropped(t *testing.T) {
	doc := parseDoc(t, `<html><body><div class="ce-bodytext">
<p><strong>Jane Doe</strong><br>MIT</p>
<p>A speaker block with no title paragraph should produce nothing at all.</p>
</div></body></html>`)

	got, err := NewQIP().ExtractTalks(doc)
	if err != nil {
		t.Fatalf("ExtractTalks: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no talks, got %+v", got)
	}
}

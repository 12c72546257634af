package extract

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/mlazarov/confminer/internal/model"
)

func parseDoc(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestPersonsFromHeadingList(t *testing.T) {
	doc := parseDoc(t, `<html><body>
<h2>Program Committee</h2>
<ul>
  <li>Jane Doe (MIT)</li>
  <li>John Smith, University of Waterloo</li>
  <li>BAD ENTRY</li>
</ul>
<h2>Sponsors</h2>
<ul><li>Acme Corp Quantum Division</li></ul>
</body></html>`)

	got := Persons(doc, model.DefaultCommitteeLabels(), model.CommitteePC)
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(got), got)
	}
	if got[0].Name != "Jane Doe" || got[0].Affiliation != "MIT" {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[1].Name != "John Smith" || got[1].Affiliation != "University of Waterloo" {
		t.Errorf("got[1] = %+v", got[1])
	}
	for _, rec := range got {
		if rec.Committee != model.CommitteePC {
			t.Errorf("Committee = %v, want PC", rec.Committee)
		}
		if rec.Position != model.PositionMember {
			t.Errorf("Position = %v, want member", rec.Position)
		}
	}
}

func TestPersonsRegionStopsAtNextHeading(t *testing.T) {
	doc := parseDoc(t, `<html><body>
<h2>Steering Committee</h2>
<ul><li>Alice Chen (Tsinghua)</li></ul>
<h2>Local Committee</h2>
<ul><li>Bob Lee (IBM)</li></ul>
</body></html>`)

	got := Persons(doc, model.DefaultCommitteeLabels(), model.CommitteeSC)
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d: %+v", len(got), got)
	}
	if got[0].Name != "Alice Chen" {
		t.Errorf("Name = %q, want Alice Chen", got[0].Name)
	}
}

func TestPersonsStructuredCard(t *testing.T) {
	doc := parseDoc(t, `<html><body>
<h2>Program Committee</h2>
<section class="members">
  <ul class="members">
    <li>
      <div class="label">
        <h3>Jane Doe</h3>
        <h4>MIT</h4>
        <h4>Program Chair</h4>
      </div>
    </li>
    <li>
      <div class="label">
        <h3>John Smith</h3>
        <h4>University of Waterloo</h4>
      </div>
    </li>
  </ul>
</section>
</body></html>`)

	got := Persons(doc, model.DefaultCommitteeLabels(), model.CommitteePC)
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(got), got)
	}

	if got[0].Name != "Jane Doe" || got[0].Affiliation != "MIT" {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[0].Position != model.PositionChair || got[0].RoleTitle != "Program Chair" {
		t.Errorf("chair card = %+v", got[0])
	}
	if got[1].Name != "John Smith" || got[1].Position != model.PositionMember {
		t.Errorf("member card = %+v", got[1])
	}
}

func TestPersonsBreakSeparatedParagraph(t *testing.T) {
	doc := parseDoc(t, `<html><body>
<h3>Organizing Committee</h3>
<p>Alice Chen (Tsinghua)<br>Bob Lee (IBM)<br>Carol White (NIST)</p>
</body></html>`)

	got := Persons(doc, model.DefaultCommitteeLabels(), model.CommitteeOC)
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d: %+v", len(got), got)
	}
}

func TestPersonsEmptyDocument(t *testing.T) {
	doc := parseDoc(t, `<html><body><p>Nothing to see.</p></body></html>`)
	got := Persons(doc, model.DefaultCommitteeLabels(), model.CommitteePC)
	if len(got) != 0 {
		t.Errorf("expected no records, got %+v", got)
	}
}

func TestAllPersonsStableOrder(t *testing.T) {
	doc := parseDoc(t, `<html><body>
<h2>Steering Committee</h2>
<ul><li>Alice Chen (Tsinghua)</li></ul>
<h2>Program Committee</h2>
<ul><li>Bob Lee (IBM)</li></ul>
</body></html>`)

	got := AllPersons(doc, model.DefaultCommitteeLabels())
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(got), got)
	}
	// PC before SC regardless of page order.
	if got[0].Committee != model.CommitteePC || got[1].Committee != model.CommitteeSC {
		t.Errorf("order = %v, %v", got[0].Committee, got[1].Committee)
	}
}
